// Copyright 2026 The Tabrdf Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is a type of a cell value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a scalar cell value. The zero value is null.
type Value struct {
	kind Kind
	s    string // string value, or source text of a number
	i    int64
	f    float64
}

// Null returns a missing value.
func Null() Value { return Value{} }

// String returns a string cell.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer cell.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating point cell.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// FloatText returns a floating point cell that remembers the text it was parsed from.
// The text is used as the lexical form only if it is written in exponent notation.
func FloatText(v float64, text string) Value { return Value{kind: KindFloat, f: v, s: text} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Native returns the value as a Go type: nil, string, int64 or float64.
func (v Value) Native() interface{} {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	}
	return nil
}

// Lexical returns the canonical text form of the value.
//
// Integers are written in base 10. Floats are written as plain decimals with no
// exponent and no trailing zeros (3.0 becomes "3"). The source text is used
// when known, so no precision is lost, and kept as is if it has an exponent.
func (v Value) Lexical() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return strconv.FormatFloat(v.f, 'g', -1, 64)
		}
		if strings.ContainsAny(v.s, "eE") {
			return strings.TrimSpace(v.s)
		}
		if v.s != "" {
			if d, err := decimal.NewFromString(strings.TrimSpace(v.s)); err == nil {
				return d.String()
			}
		}
		return decimal.NewFromFloat(v.f).String()
	}
	return ""
}

func (v Value) String() string {
	if v.kind == KindNull {
		return "<null>"
	}
	return v.Lexical()
}
