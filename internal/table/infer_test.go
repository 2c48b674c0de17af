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

import "testing"

func TestInferType(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want ColumnType
	}{
		{"All integers", []string{"1", "2", "-3"}, TypeInt},
		{"Integers with blanks", []string{"1", "", "  ", "2"}, TypeInt},
		{"Mixed int and float", []string{"1", "2.5"}, TypeFloat},
		{"All floats", []string{"1.5", "2.25"}, TypeFloat},
		{"Booleans", []string{"true", "False", "TRUE"}, TypeBool},
		{"ISO dates", []string{"2024-01-01", "2023-12-31"}, TypeDate},
		{"Datetimes", []string{"2024-01-01 10:00:00"}, TypeDate},
		{"Mixed date and text", []string{"2024-01-01", "soon"}, TypeString},
		{"Mixed number and text", []string{"1", "one"}, TypeString},
		{"Leading zeros stay text", []string{"007", "042"}, TypeString},
		{"All blank", []string{"", "   "}, TypeString},
		{"Empty column", nil, TypeString},
		{"Plain text", []string{"alpha", "beta"}, TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferType(tt.raw); got != tt.want {
				t.Errorf("InferType(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
