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
package harmonize

import (
	"testing"

	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/table"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// makeTable builds a typed table from raw string columns, inferring each
// column's type the way the loader does.
func makeTable(t *testing.T, names []string, cols [][]string) *table.Table {
	t.Helper()
	tbl := &table.Table{}
	for i, name := range names {
		colType := table.InferType(cols[i])
		values := make([]table.Value, len(cols[i]))
		for j, s := range cols[i] {
			v, ok := table.Parse(s, colType)
			require.True(t, ok)
			values[j] = v
		}
		tbl.Columns = append(tbl.Columns, table.Column{Name: name, Type: colType, Values: values})
	}
	return tbl
}

func TestHarmonize_ColumnUnion(t *testing.T) {
	t1 := makeTable(t, []string{"A", "B"}, [][]string{{"1", "2"}, {"x", "y"}})
	t2 := makeTable(t, []string{"B", "C"}, [][]string{{"z"}, {"3"}})

	out, specs := Harmonize([]*table.Table{t1, t2}, zap.NewNop())

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	require.Equal(t, []string{"A", "B", "C"}, names, "union in first-seen order")

	for _, tbl := range out {
		require.Equal(t, []string{"A", "B", "C"}, tbl.ColumnNames())
	}

	// A is null for t2's rows, C is null for t1's rows.
	a2, _ := out[1].Lookup("A")
	require.True(t, a2.Values[0].Null)
	c1, _ := out[0].Lookup("C")
	require.True(t, c1.Values[0].Null)
	require.True(t, c1.Values[1].Null)
}

func TestHarmonize_WidensIntAndFloat(t *testing.T) {
	t1 := makeTable(t, []string{"n"}, [][]string{{"1", "2"}})
	t2 := makeTable(t, []string{"n"}, [][]string{{"2.5"}})

	out, specs := Harmonize([]*table.Table{t1, t2}, zap.NewNop())
	require.Equal(t, table.TypeFloat, specs[0].Type)
	require.Equal(t, table.TypeFloat, out[0].Columns[0].Type)
	require.Equal(t, "1", out[0].Columns[0].Values[0].Render())
	require.Equal(t, "2.5", out[1].Columns[0].Values[0].Render())
}

func TestHarmonize_StringDominance(t *testing.T) {
	tests := []struct {
		name string
		t1   [][]string
		t2   [][]string
	}{
		{"Text beats numbers", [][]string{{"1", "2"}}, [][]string{{"abc"}}},
		{"Integers beat dates", [][]string{{"2024-01-01"}}, [][]string{{"17"}}},
		{"Booleans beat floats", [][]string{{"true"}}, [][]string{{"1.5"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1 := makeTable(t, []string{"v"}, tt.t1)
			t2 := makeTable(t, []string{"v"}, tt.t2)

			out, specs := Harmonize([]*table.Table{t1, t2}, zap.NewNop())
			require.Equal(t, table.TypeString, specs[0].Type)
			for _, tbl := range out {
				require.Equal(t, table.TypeString, tbl.Columns[0].Type)
			}
			// Values survive as their text forms.
			require.Equal(t, tt.t1[0][0], out[0].Columns[0].Values[0].Render())
		})
	}
}

func TestHarmonize_KeepsDateWhenAllTablesConform(t *testing.T) {
	t1 := makeTable(t, []string{"d"}, [][]string{{"2024-01-01"}})
	t2 := makeTable(t, []string{"d"}, [][]string{{"2023-06-15", ""}})

	out, specs := Harmonize([]*table.Table{t1, t2}, zap.NewNop())
	require.Equal(t, table.TypeDate, specs[0].Type)
	require.True(t, out[1].Columns[0].Values[1].Null, "blank stays null under the common type")
}

func TestHarmonize_NullFillMatchesRowCount(t *testing.T) {
	t1 := makeTable(t, []string{"A"}, [][]string{{"1", "2", "3"}})
	t2 := makeTable(t, []string{"B"}, [][]string{{"x"}})

	out, _ := Harmonize([]*table.Table{t1, t2}, zap.NewNop())
	require.Equal(t, 3, out[0].NumRows())
	require.Equal(t, 1, out[1].NumRows())
	for _, tbl := range out {
		for _, col := range tbl.Columns {
			require.Len(t, col.Values, tbl.NumRows())
		}
	}
}
