/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package table

// ColumnSpec describes one column of a harmonized schema.
type ColumnSpec struct {
	Name string
	Type ColumnType
}

// Column is an ordered sequence of values sharing one inferred type.
type Column struct {
	Name   string
	Type   ColumnType
	Values []Value
}

// Table is an ordered set of named columns. Invariant: all columns have
// equal length.
type Table struct {
	Columns []Column
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

func (t *Table) NumCols() int {
	return len(t.Columns)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the column with the given name, if present.
func (t *Table) Lookup(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Columns[c].Values[i]
	}
	return row
}

// IsBlankRow reports whether every value in row i is null or an empty
// string.
func (t *Table) IsBlankRow(i int) bool {
	for c := range t.Columns {
		v := t.Columns[c].Values[i]
		if v.Null {
			continue
		}
		if v.Type == TypeString && v.Str == "" {
			continue
		}
		return false
	}
	return true
}

// Select returns a new table containing the given rows, in order.
func (t *Table) Select(rows []int) *Table {
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for c := range t.Columns {
		values := make([]Value, len(rows))
		for i, r := range rows {
			values[i] = t.Columns[c].Values[r]
		}
		out.Columns[c] = Column{Name: t.Columns[c].Name, Type: t.Columns[c].Type, Values: values}
	}
	return out
}
