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
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/tabrdf/tabrdf/table"
	"github.com/tabrdf/tabrdf/voc"
)

// CellToTerm converts a cell into the object term of a statement.
// It reports false if the cell produces no statement.
//
// Plain, Typed and Lang columns use the lexical form of the value. Reference
// columns read the value as a local name under the relation prefix, unless it
// is already a prefixed name or an absolute IRI.
func CellToTerm(v table.Value, c Column, pt *voc.PrefixTable) (quad.Value, bool, error) {
	if v.IsNull() {
		return nil, false, nil
	}
	lex := v.Lexical()
	switch c.Kind {
	case Reference:
		ref := strings.TrimSpace(lex)
		if ref == "" {
			return nil, false, nil
		}
		iri, err := ResolveReference(pt, c.RelationPrefix, ref)
		if err != nil {
			return nil, false, err
		}
		return iri, true, nil
	case Typed:
		return quad.TypedString{Value: quad.String(lex), Type: c.Datatype}, true, nil
	case Lang:
		return quad.LangString{Value: quad.String(lex), Lang: c.Lang}, true, nil
	}
	return quad.String(lex), true, nil
}

// ResolveReference turns a reference cell into an IRI.
//
//	ResolveReference(pt, "ex", "Bob")                  // ex:Bob
//	ResolveReference(pt, "ex", "foaf:Bob")             // foaf:Bob, if foaf is declared
//	ResolveReference(pt, "ex", "http://example.com/x") // unchanged
//	ResolveReference(pt, "ex", "New York")             // ex:New%20York
//
// A value that looks like a prefixed name with an undeclared prefix is an error
// rather than a local name, so typos in qualified references are not hidden.
func ResolveReference(pt *voc.PrefixTable, prefix, ref string) (quad.IRI, error) {
	if strings.HasPrefix(ref, "<") && strings.HasSuffix(ref, ">") {
		return pt.Resolve(ref)
	}
	if i := strings.IndexByte(ref, ':'); i > 0 && voc.IsPrefixName(ref[:i]) {
		if _, ok := pt.Lookup(ref[:i]); ok {
			return pt.ResolveLocal(ref[:i], ref[i+1:])
		}
		return pt.Resolve(ref)
	}
	return pt.ResolveLocal(prefix, ref)
}
