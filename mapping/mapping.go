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

// Package mapping holds the validated row-to-RDF mapping and the rules that
// turn cell values into RDF terms.
//
// A Mapping is produced once from a Config and is immutable afterwards:
//
//	cfg, err := mapping.Parse(data)
//	m, err := cfg.Compile()
//	err = m.Check(ds.Columns())
//	for _, row := range ds.Rows() {
//	    d, err := m.Describe(ds, row)
//	    // d.Subject, d.Quads
//	}
package mapping

import (
	"sort"
	"strconv"

	"github.com/cayleygraph/quad"

	"github.com/tabrdf/tabrdf/table"
	"github.com/tabrdf/tabrdf/voc"
)

// Kind selects how a column value becomes an RDF object.
type Kind uint8

const (
	// Plain values become plain string literals.
	Plain Kind = iota
	// Typed values become literals with a datatype IRI.
	Typed
	// Lang values become language-tagged literals.
	Lang
	// Reference values become IRIs relative to a prefix.
	Reference
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Typed:
		return "typed"
	case Lang:
		return "lang"
	case Reference:
		return "reference"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Column maps one source column to a predicate.
type Column struct {
	Name      string
	Predicate quad.IRI
	Kind      Kind

	// Datatype is set for Typed columns.
	Datatype quad.IRI
	// Lang is set for Lang columns.
	Lang string
	// RelationPrefix is set for Reference columns.
	RelationPrefix string
}

// Subject describes how subject IRIs are built for rows.
type Subject struct {
	// Prefix roots subject IRIs.
	Prefix string
	// Column supplies the local name. The row identifier is used if empty.
	Column string
	// Classes are asserted for every subject with rdf:type.
	Classes []quad.IRI
}

// Mapping is a validated mapping configuration.
type Mapping struct {
	Prefixes *voc.PrefixTable
	Subject  Subject
	Columns  []Column

	// DatasetOrder emits column statements in the column order of the
	// dataset instead of the order of Columns. Set for legacy configurations.
	DatasetOrder bool
}

// ordered returns the columns in the order their statements are emitted.
func (m *Mapping) ordered(ds *table.Dataset) []Column {
	if !m.DatasetOrder {
		return m.Columns
	}
	cols := make([]Column, len(m.Columns))
	copy(cols, m.Columns)
	sort.SliceStable(cols, func(i, j int) bool {
		return ds.ColumnIndex(cols[i].Name) < ds.ColumnIndex(cols[j].Name)
	})
	return cols
}

// Check verifies that every column referenced by the mapping exists.
func (m *Mapping) Check(columns []string) error {
	have := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		have[c] = struct{}{}
	}
	if m.Subject.Column != "" {
		if _, ok := have[m.Subject.Column]; !ok {
			return &MissingColumnError{Column: m.Subject.Column, Field: "subject.column"}
		}
	}
	for i, c := range m.Columns {
		if _, ok := have[c.Name]; !ok {
			return &MissingColumnError{Column: c.Name, Field: "mappings[" + strconv.Itoa(i) + "].column"}
		}
	}
	return nil
}
