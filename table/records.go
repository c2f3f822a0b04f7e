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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EncodingError is returned for a record that is not valid UTF-8.
type EncodingError struct {
	// Record is the 0-based record number, the header being record 0.
	Record int
	Column int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("record %d, field %d: invalid UTF-8", e.Record, e.Column+1)
}

var (
	ErrNoHeader    = errors.New("no header row")
	ErrIndexColumn = errors.New("index column not found")
	ErrEmptyIndex  = errors.New("empty index value")
)

// DefaultNullValues is a list of cell texts that are read as missing values.
var DefaultNullValues = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "None", "#N/A"}

// Options controls how raw records are turned into a dataset.
type Options struct {
	// IndexColumn is the column that provides row identifiers. The column is
	// removed from the dataset. If empty, rows are identified by position.
	IndexColumn string
	// InferTypes enables detection of integer and float columns.
	InferTypes bool
	// NullValues overrides DefaultNullValues.
	NullValues []string
	// Comma is the field delimiter for delimited text formats.
	Comma rune
	// Sheet selects a worksheet for spreadsheet formats. First sheet if empty.
	Sheet string
}

// DefaultOptions returns options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{InferTypes: true, Comma: ','}
}

func (o Options) nullSet() map[string]struct{} {
	vals := o.NullValues
	if vals == nil {
		vals = DefaultNullValues
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

// FromRecords builds a dataset from raw text records. The first record is the header.
func FromRecords(records [][]string, opts Options) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	for n, rec := range records {
		for i, s := range rec {
			if !utf8.ValidString(s) {
				return nil, &EncodingError{Record: n, Column: i}
			}
		}
	}
	header := make([]string, len(records[0]))
	copy(header, records[0])
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx := -1
	if opts.IndexColumn != "" {
		for i, c := range header {
			if c == opts.IndexColumn {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrIndexColumn, opts.IndexColumn)
		}
	}
	columns := make([]string, 0, len(header))
	for i, c := range header {
		if i != idx {
			columns = append(columns, c)
		}
	}
	ds, err := New(columns...)
	if err != nil {
		return nil, err
	}

	body := records[1:]
	nulls := opts.nullSet()
	raw := make([][]string, len(body))
	ids := make([]string, len(body))
	for n, rec := range body {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("record %d: %w: got %d fields, expected %d", n+1, ErrRowWidth, len(rec), len(header))
		}
		cells := make([]string, 0, len(columns))
		for i := range header {
			var s string
			if i < len(rec) {
				s = rec[i]
			}
			if i == idx {
				if _, null := nulls[s]; null {
					return nil, fmt.Errorf("record %d: %w in column %q", n+1, ErrEmptyIndex, opts.IndexColumn)
				}
				ids[n] = s
				continue
			}
			cells = append(cells, s)
		}
		if idx < 0 {
			ids[n] = strconv.Itoa(n)
		}
		raw[n] = cells
	}

	kinds := make([]Kind, len(columns))
	for c := range columns {
		kinds[c] = KindString
		if opts.InferTypes {
			kinds[c] = inferKind(raw, c, nulls)
		}
	}
	for n, cells := range raw {
		vals := make([]Value, len(cells))
		for c, s := range cells {
			vals[c] = parseCell(s, kinds[c], nulls)
		}
		if err := ds.Append(ids[n], vals...); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// inferKind returns the narrowest kind that fits every non-null cell of a column.
func inferKind(raw [][]string, col int, nulls map[string]struct{}) Kind {
	isInt, isFloat, seen := true, true, false
	for _, cells := range raw {
		s := cells[col]
		if _, null := nulls[s]; null {
			continue
		}
		seen = true
		t := strings.TrimSpace(s)
		if isInt {
			if _, err := strconv.ParseInt(t, 10, 64); errors.Is(err, strconv.ErrRange) {
				// integers that do not fit are kept verbatim
				return KindString
			} else if err != nil {
				isInt = false
			}
		}
		if !isInt && isFloat {
			if !isDecimalText(t) {
				isFloat = false
			} else if _, err := strconv.ParseFloat(t, 64); err != nil {
				isFloat = false
			}
		}
		if !isInt && !isFloat {
			return KindString
		}
	}
	switch {
	case !seen:
		return KindString
	case isInt:
		return KindInt
	default:
		return KindFloat
	}
}

// isDecimalText rejects texts that strconv accepts but spreadsheets do not treat
// as numbers, such as "inf" or hexadecimal floats.
func isDecimalText(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.', c == '-', c == '+', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}

func parseCell(s string, kind Kind, nulls map[string]struct{}) Value {
	if _, null := nulls[s]; null {
		return Null()
	}
	t := strings.TrimSpace(s)
	switch kind {
	case KindInt:
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			return Int(v)
		}
	case KindFloat:
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			return FloatText(v, t)
		}
	}
	return String(s)
}
