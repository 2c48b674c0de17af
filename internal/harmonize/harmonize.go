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

// Package harmonize aligns a set of loaded tables to one common schema:
// the union of column names in first-seen order, each at the widest type
// any table requires, with string as the fallback whenever a value would
// not survive the cast.
package harmonize

import (
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/table"
	"go.uber.org/zap"
)

// Harmonize rebuilds every table to an identical ordered column set.
// Missing columns are filled with nulls at the common type; present columns
// are cast cell-wise.
func Harmonize(tables []*table.Table, logger *zap.Logger) ([]*table.Table, []table.ColumnSpec) {
	specs := commonSchema(tables)

	out := make([]*table.Table, len(tables))
	for i, t := range tables {
		rebuilt := &table.Table{Columns: make([]table.Column, len(specs))}
		for c, spec := range specs {
			col, ok := t.Lookup(spec.Name)
			if !ok {
				rebuilt.Columns[c] = nullColumn(spec, t.NumRows())
				continue
			}
			rebuilt.Columns[c] = castColumn(col, spec)
		}
		out[i] = rebuilt
	}

	logger.Info("Harmonized tables",
		zap.Int("tables", len(tables)),
		zap.Int("columns", len(specs)))
	for _, spec := range specs {
		logger.Debug("Common column type",
			zap.String("column", spec.Name),
			zap.Stringer("type", spec.Type))
	}

	return out, specs
}

// commonSchema computes the union of column names in first-seen order and
// the widest type per name. A candidate numeric/boolean/date type is
// demoted to string when any table holds a non-blank value in that column
// that fails to parse as the candidate.
func commonSchema(tables []*table.Table) []table.ColumnSpec {
	var order []string
	types := make(map[string]table.ColumnType)

	for _, t := range tables {
		for _, col := range t.Columns {
			if existing, ok := types[col.Name]; ok {
				types[col.Name] = table.Widen(existing, col.Type)
			} else {
				order = append(order, col.Name)
				types[col.Name] = col.Type
			}
		}
	}

	// String dominance pass.
	for _, name := range order {
		ct := types[name]
		if ct == table.TypeString {
			continue
		}
		if !castable(tables, name, ct) {
			types[name] = table.TypeString
		}
	}

	specs := make([]table.ColumnSpec, len(order))
	for i, name := range order {
		specs[i] = table.ColumnSpec{Name: name, Type: types[name]}
	}
	return specs
}

func castable(tables []*table.Table, name string, ct table.ColumnType) bool {
	for _, t := range tables {
		col, ok := t.Lookup(name)
		if !ok {
			continue
		}
		for _, v := range col.Values {
			if v.Null {
				continue
			}
			if _, ok := table.Parse(v.Render(), ct); !ok {
				return false
			}
		}
	}
	return true
}

func nullColumn(spec table.ColumnSpec, rows int) table.Column {
	values := make([]table.Value, rows)
	for i := range values {
		values[i] = table.NullValue(spec.Type)
	}
	return table.Column{Name: spec.Name, Type: spec.Type, Values: values}
}

func castColumn(col *table.Column, spec table.ColumnSpec) table.Column {
	values := make([]table.Value, len(col.Values))
	for i, v := range col.Values {
		values[i] = castValue(v, spec.Type)
	}
	return table.Column{Name: spec.Name, Type: spec.Type, Values: values}
}

func castValue(v table.Value, ct table.ColumnType) table.Value {
	if v.Null {
		return table.NullValue(ct)
	}
	if v.Type == ct {
		return v
	}
	if nv, ok := table.Parse(v.Render(), ct); ok {
		return nv
	}
	return table.StringValue(v.Render())
}
