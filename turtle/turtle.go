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

// Package turtle serializes row descriptions as Turtle.
//
// Only the flat subset needed for row-to-triple mapping is produced: a prefix
// block followed by one predicate-object list per subject.
package turtle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cayleygraph/quad"

	"github.com/tabrdf/tabrdf/internal/lru"
	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/table"
	"github.com/tabrdf/tabrdf/voc"
)

var (
	ErrUnsupportedTerm = errors.New("turtle: unsupported term")
	ErrInvalidUTF8     = errors.New("turtle: invalid UTF-8")
)

const indent = "    "

// namesCacheSize bounds the number of abbreviated IRIs kept per encoder.
const namesCacheSize = 4096

// Encoder writes subject blocks to an underlying writer.
// The prefix block is written before the first subject or on Close.
type Encoder struct {
	w       io.Writer
	pt      *voc.PrefixTable
	buf     bytes.Buffer
	names   *lru.Cache
	header  bool
	subject int
	err     error
}

// NewEncoder creates an encoder that abbreviates IRIs with the given prefixes.
func NewEncoder(w io.Writer, pt *voc.PrefixTable) *Encoder {
	return &Encoder{w: w, pt: pt, names: lru.New(namesCacheSize)}
}

// format abbreviates an IRI. Predicates, classes and datatypes repeat on
// every row, so results are cached.
func (e *Encoder) format(iri quad.IRI) string {
	if s, ok := e.names.Get(string(iri)); ok {
		return s
	}
	s := e.pt.Format(iri)
	e.names.Put(string(iri), s)
	return s
}

func (e *Encoder) flush() error {
	if e.err != nil {
		return e.err
	}
	_, e.err = e.w.Write(e.buf.Bytes())
	e.buf.Reset()
	return e.err
}

func (e *Encoder) writeHeader() {
	if e.header {
		return
	}
	e.header = true
	for _, p := range e.pt.List() {
		fmt.Fprintf(&e.buf, "@prefix %s: <%s> .\n", p.Name, p.Base)
	}
}

// WriteDescription writes the block of a single subject. Descriptions with no
// statements are ignored.
func (e *Encoder) WriteDescription(d *mapping.Description) error {
	if e.err != nil {
		return e.err
	}
	e.writeHeader()
	if d.Empty() {
		return e.flush()
	}
	block, err := e.block(d.Subject, d.Quads)
	if err != nil {
		// the header may still be buffered and is written with the next block
		return err
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(block)
	e.subject++
	return e.flush()
}

func (e *Encoder) block(subj quad.IRI, quads []quad.Quad) (string, error) {
	if !utf8.ValidString(string(subj)) {
		return "", fmt.Errorf("%w: subject %q", ErrInvalidUTF8, subj)
	}
	var b strings.Builder
	b.WriteString(e.pt.Format(subj))
	for i, q := range quads {
		if q.Subject != subj {
			return "", fmt.Errorf("turtle: statement about %v in block of %v", q.Subject, subj)
		}
		pred, ok := q.Predicate.(quad.IRI)
		if !ok {
			return "", fmt.Errorf("%w: predicate %T", ErrUnsupportedTerm, q.Predicate)
		}
		obj, err := e.Term(q.Object)
		if err != nil {
			return "", err
		}
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(" ;\n" + indent)
		}
		if pred == mapping.RDFType {
			b.WriteString("a")
		} else {
			b.WriteString(e.format(pred))
		}
		b.WriteByte(' ')
		b.WriteString(obj)
	}
	b.WriteString(" .\n")
	return b.String(), nil
}

// Term renders an object term. Terms that are not valid UTF-8 are rejected.
func (e *Encoder) Term(v quad.Value) (string, error) {
	switch v := v.(type) {
	case quad.IRI:
		if !utf8.ValidString(string(v)) {
			return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, string(v))
		}
		return e.format(v), nil
	case quad.String:
		if !utf8.ValidString(string(v)) {
			return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, string(v))
		}
		return Quote(string(v)), nil
	case quad.LangString:
		if !utf8.ValidString(string(v.Value)) {
			return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, string(v.Value))
		}
		return Quote(string(v.Value)) + "@" + v.Lang, nil
	case quad.TypedString:
		if !utf8.ValidString(string(v.Value)) || !utf8.ValidString(string(v.Type)) {
			return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, string(v.Value))
		}
		return Quote(string(v.Value)) + "^^" + e.format(v.Type), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedTerm, v)
}

// Subjects returns the number of blocks written so far.
func (e *Encoder) Subjects() int { return e.subject }

// Close writes the prefix block if nothing else was written.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	e.writeHeader()
	return e.flush()
}

// Encode serializes all rows of a dataset. Nothing is returned if any row fails.
func Encode(ds *table.Dataset, m *mapping.Mapping) (string, error) {
	if err := m.Check(ds.Columns()); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := NewEncoder(&buf, m.Prefixes)
	for _, row := range ds.Rows() {
		d, err := m.Describe(ds, row)
		if err != nil {
			return "", err
		}
		if err = enc.WriteDescription(d); err != nil {
			return "", err
		}
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
