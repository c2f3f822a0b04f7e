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

package mapping

import (
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"

	"github.com/tabrdf/tabrdf/table"
)

// RDFType is the full IRI of rdf:type.
const RDFType = quad.IRI(rdf.NS + "type")

// Description is the set of statements generated for a single row.
type Description struct {
	Row     string
	Subject quad.IRI
	// Quads holds class assertions first, then one statement per non-null
	// mapped cell in mapping order (dataset order for legacy mappings).
	Quads []quad.Quad
	// Skipped counts mapped cells that produced no statement.
	Skipped int
}

// Empty reports whether the row produced no statements.
func (d *Description) Empty() bool { return len(d.Quads) == 0 }

// SubjectIRI returns the subject of a row.
func (m *Mapping) SubjectIRI(ds *table.Dataset, row table.Row) (quad.IRI, error) {
	local := row.ID
	if m.Subject.Column != "" {
		v := ds.Get(row, m.Subject.Column)
		if v.IsNull() || strings.TrimSpace(v.Lexical()) == "" {
			return "", &EmptySubjectError{Row: row.ID, Column: m.Subject.Column}
		}
		local = strings.TrimSpace(v.Lexical())
	}
	return m.Prefixes.ResolveLocal(m.Subject.Prefix, local)
}

// Describe derives the statements of a row. The dataset must have passed Check.
func (m *Mapping) Describe(ds *table.Dataset, row table.Row) (*Description, error) {
	subj, err := m.SubjectIRI(ds, row)
	if err != nil {
		return nil, err
	}
	d := &Description{
		Row:     row.ID,
		Subject: subj,
		Quads:   make([]quad.Quad, 0, len(m.Subject.Classes)+len(m.Columns)),
	}
	for _, class := range m.Subject.Classes {
		d.Quads = append(d.Quads, quad.Quad{Subject: subj, Predicate: RDFType, Object: class})
	}
	for _, c := range m.ordered(ds) {
		obj, ok, err := CellToTerm(ds.Get(row, c.Name), c, m.Prefixes)
		if err != nil {
			return nil, fmt.Errorf("row %s, column %q: %w", row.ID, c.Name, err)
		}
		if !ok {
			d.Skipped++
			continue
		}
		d.Quads = append(d.Quads, quad.Quad{Subject: subj, Predicate: c.Predicate, Object: obj})
	}
	return d, nil
}
