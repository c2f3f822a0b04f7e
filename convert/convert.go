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

// Package convert ties datasets, mappings and output formats together.
package convert

import (
	"bytes"
	"io"
	"time"

	"github.com/tabrdf/tabrdf/clog"
	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/output"
	"github.com/tabrdf/tabrdf/table"
	"github.com/tabrdf/tabrdf/turtle"
)

// Stats summarizes a conversion.
type Stats struct {
	Rows       int `json:"rows"`
	Subjects   int `json:"subjects"`
	Statements int `json:"statements"`
	// Skipped counts null cells of mapped columns.
	Skipped int `json:"skipped"`
}

// Add accumulates the counts of another conversion.
func (s *Stats) Add(o Stats) {
	s.Rows += o.Rows
	s.Subjects += o.Subjects
	s.Statements += o.Statements
	s.Skipped += o.Skipped
}

// Write serializes every row of the dataset to w. Rows are streamed, so a
// failing row may leave partial output in w; use Convert when that matters.
func Write(w io.Writer, ds *table.Dataset, m *mapping.Mapping, f *output.Format) (Stats, error) {
	var st Stats
	start := time.Now()
	err := write(w, ds, m, f, &st)
	observe(f.Name, st, time.Since(start), err)
	if err != nil {
		return st, err
	}
	if clog.V(2) {
		clog.Infof("converted %d rows to %d subjects and %d statements as %s (%d cells skipped)",
			st.Rows, st.Subjects, st.Statements, f.Name, st.Skipped)
	}
	return st, nil
}

func write(w io.Writer, ds *table.Dataset, m *mapping.Mapping, f *output.Format, st *Stats) error {
	if err := m.Check(ds.Columns()); err != nil {
		return err
	}
	ow := f.Writer(w, m.Prefixes)
	for _, row := range ds.Rows() {
		d, err := m.Describe(ds, row)
		if err != nil {
			return err
		}
		if err = ow.WriteDescription(d); err != nil {
			return err
		}
		st.Rows++
		st.Skipped += d.Skipped
		if !d.Empty() {
			st.Subjects++
			st.Statements += len(d.Quads)
		}
	}
	return ow.Close()
}

// Convert serializes a dataset in the named format. No output is returned if
// any row fails.
func Convert(ds *table.Dataset, m *mapping.Mapping, format string) ([]byte, Stats, error) {
	f, err := output.Lookup(format)
	if err != nil {
		return nil, Stats{}, err
	}
	var buf bytes.Buffer
	st, err := Write(&buf, ds, m, f)
	if err != nil {
		return nil, st, err
	}
	return buf.Bytes(), st, nil
}

// ToTurtle is a shorthand for turtle.Encode.
func ToTurtle(ds *table.Dataset, m *mapping.Mapping) (string, error) {
	return turtle.Encode(ds, m)
}
