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

// Package table defines the tabular dataset consumed by the converter and
// readers for the supported spreadsheet formats.
package table

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrEmptyColumn     = errors.New("empty column name")
	ErrRowWidth        = errors.New("row width does not match columns")
)

// Row is a single record of a dataset. Cells are aligned with the dataset columns.
type Row struct {
	// ID identifies the row. It is either a value of the index column or the
	// position of the row, starting from 0.
	ID    string
	Cells []Value
}

// Cell returns a value of the i-th column, or null if i is out of range.
func (r Row) Cell(i int) Value {
	if i < 0 || i >= len(r.Cells) {
		return Null()
	}
	return r.Cells[i]
}

// Dataset is an ordered list of named columns and an ordered list of rows.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// New creates an empty dataset with the given columns.
func New(columns ...string) (*Dataset, error) {
	d := &Dataset{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyColumn, i)
		}
		if _, ok := d.index[c]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c)
		}
		d.index[c] = i
		d.columns[i] = c
	}
	return d, nil
}

// Columns returns column names in order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// ColumnIndex returns the position of a column, or -1 if it does not exist.
func (d *Dataset) ColumnIndex(name string) int {
	if i, ok := d.index[name]; ok {
		return i
	}
	return -1
}

// HasColumn reports whether the dataset has a column with a given name.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Append adds a row with an explicit identifier.
func (d *Dataset) Append(id string, cells ...Value) error {
	if len(cells) != len(d.columns) {
		return fmt.Errorf("%w: got %d cells, expected %d", ErrRowWidth, len(cells), len(d.columns))
	}
	row := Row{ID: id, Cells: make([]Value, len(cells))}
	copy(row.Cells, cells)
	d.rows = append(d.rows, row)
	return nil
}

// AppendRow adds a row identified by its position.
func (d *Dataset) AppendRow(cells ...Value) error {
	return d.Append(strconv.Itoa(len(d.rows)), cells...)
}

// Rows returns all rows in order. The slice must not be modified.
func (d *Dataset) Rows() []Row { return d.rows }

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Get returns a cell of a row by column name.
func (d *Dataset) Get(r Row, column string) Value {
	i, ok := d.index[column]
	if !ok {
		return Null()
	}
	return r.Cell(i)
}
