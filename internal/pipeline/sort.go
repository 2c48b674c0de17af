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
package pipeline

import (
	"sort"

	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/table"
)

// sortColumn picks the column to order the output by: the first date-typed
// column in harmonized order, falling back to the first column.
func sortColumn(specs []table.ColumnSpec) int {
	for i, spec := range specs {
		if spec.Type == table.TypeDate {
			return i
		}
	}
	return 0
}

// sortRows orders the table ascending by the given column, nulls last,
// stable for ties.
func sortRows(t *table.Table, col int) *table.Table {
	if t.NumCols() == 0 {
		return t
	}
	values := t.Columns[col].Values

	idx := make([]int, t.NumRows())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := values[idx[a]], values[idx[b]]
		if va.Null || vb.Null {
			return !va.Null && vb.Null
		}
		return va.Less(vb)
	})
	return t.Select(idx)
}
