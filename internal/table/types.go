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
	"strconv"
	"strings"
	"time"
)

// ColumnType is the inferred semantic type of a column.
type ColumnType int

const (
	// TypeString represents free text.
	TypeString ColumnType = iota
	// TypeInt represents 64-bit integers.
	TypeInt
	// TypeFloat represents 64-bit floats.
	TypeFloat
	// TypeBool represents true/false literals.
	TypeBool
	// TypeDate represents calendar dates and timestamps.
	TypeDate
)

func (t ColumnType) String() string {
	switch t {
	case TypeInt:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "boolean"
	case TypeDate:
		return "date"
	default:
		return "string"
	}
}

// Widen returns the common type two column types harmonize to. Integer and
// float widen to float; a date paired with anything keeps date as the
// candidate (cell-level cast failures then force string dominance in the
// harmonizer); every other mixed pairing widens to string.
func Widen(a, b ColumnType) ColumnType {
	if a == b {
		return a
	}
	if a == TypeString || b == TypeString {
		return TypeString
	}
	if a == TypeDate || b == TypeDate {
		return TypeDate
	}
	if (a == TypeInt && b == TypeFloat) || (a == TypeFloat && b == TypeInt) {
		return TypeFloat
	}
	return TypeString
}

// Value is a tagged variant holding one typed cell. Exactly the field
// matching Type is meaningful; Null overrides all of them.
type Value struct {
	Type  ColumnType
	Null  bool
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

func NullValue(t ColumnType) Value { return Value{Type: t, Null: true} }
func StringValue(s string) Value   { return Value{Type: TypeString, Str: s} }
func IntValue(i int64) Value       { return Value{Type: TypeInt, Int: i} }
func FloatValue(f float64) Value   { return Value{Type: TypeFloat, Float: f} }
func BoolValue(b bool) Value       { return Value{Type: TypeBool, Bool: b} }
func DateValue(ts time.Time) Value { return Value{Type: TypeDate, Time: ts} }

// Render returns the CSV text form of the value. Nulls render as the empty
// string. Dates render date-only when they carry no clock component so a
// written file round-trips through inference unchanged.
func (v Value) Render() string {
	if v.Null {
		return ""
	}
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.Int, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.Bool)
	case TypeDate:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format("2006-01-02 15:04:05")
	default:
		return v.Str
	}
}

// Equal reports whether two values of the same column are exact duplicates.
func (v Value) Equal(o Value) bool {
	if v.Null || o.Null {
		return v.Null == o.Null
	}
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case TypeInt:
		return v.Int == o.Int
	case TypeFloat:
		return v.Float == o.Float
	case TypeBool:
		return v.Bool == o.Bool
	case TypeDate:
		return v.Time.Equal(o.Time)
	default:
		return v.Str == o.Str
	}
}

// Less orders two non-null values of the same type. Null ordering is the
// sorter's concern, not Less's.
func (v Value) Less(o Value) bool {
	switch v.Type {
	case TypeInt:
		return v.Int < o.Int
	case TypeFloat:
		return v.Float < o.Float
	case TypeBool:
		return !v.Bool && o.Bool
	case TypeDate:
		return v.Time.Before(o.Time)
	default:
		return v.Str < o.Str
	}
}

// Parse converts raw CSV text to a value of type t. Blank and
// whitespace-only text parses as null of any type. The boolean form is the
// strict true/false pair; 1/0 stay numeric.
func Parse(s string, t ColumnType) (Value, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullValue(t), true
	}
	switch t {
	case TypeInt:
		if hasLeadingZero(s) {
			return Value{}, false
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, false
		}
		return IntValue(i), true
	case TypeFloat:
		if hasLeadingZero(s) {
			return Value{}, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, false
		}
		return FloatValue(f), true
	case TypeBool:
		switch strings.ToLower(s) {
		case "true":
			return BoolValue(true), true
		case "false":
			return BoolValue(false), true
		}
		return Value{}, false
	case TypeDate:
		ts, ok := parseDate(s)
		if !ok {
			return Value{}, false
		}
		return DateValue(ts), true
	default:
		return StringValue(s), true
	}
}

// hasLeadingZero flags numerics like "007" or "0123.5" whose leading zeros
// are significant (IDs, postal codes); they stay strings.
func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
