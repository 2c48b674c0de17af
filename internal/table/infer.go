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

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. ISO forms first, then the slash forms
// commonly found in spreadsheet exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// InferType returns the narrowest type every non-blank value in the raw
// column satisfies, probing integer, float, boolean, then date. Blank cells
// are null and do not vote. An all-blank column infers string; the loader
// drops it before inference matters.
func InferType(raw []string) ColumnType {
	intOK, floatOK, boolOK, dateOK := true, true, true, true
	seen := false

	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		seen = true

		if intOK {
			if _, ok := Parse(s, TypeInt); !ok {
				intOK = false
			}
		}
		if floatOK {
			if _, ok := Parse(s, TypeFloat); !ok {
				floatOK = false
			}
		}
		if boolOK {
			if _, ok := Parse(s, TypeBool); !ok {
				boolOK = false
			}
		}
		if dateOK {
			if _, ok := Parse(s, TypeDate); !ok {
				dateOK = false
			}
		}
		if !intOK && !floatOK && !boolOK && !dateOK {
			return TypeString
		}
	}

	if !seen {
		return TypeString
	}
	switch {
	case intOK:
		return TypeInt
	case floatOK:
		return TypeFloat
	case boolOK:
		return TypeBool
	case dateOK:
		return TypeDate
	default:
		return TypeString
	}
}
