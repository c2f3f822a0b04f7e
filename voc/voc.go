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

// Package voc implements an ordered RDF namespace (prefix) table.
package voc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
)

var (
	ErrDuplicatePrefix = errors.New("duplicate prefix")
	ErrInvalidPrefix   = errors.New("invalid prefix name")
	ErrInvalidIRI      = errors.New("invalid IRI")
	ErrEmptyName       = errors.New("empty name")
)

// UnresolvedPrefixError is returned when a name references a prefix that is not
// declared in the table.
type UnresolvedPrefixError struct {
	Prefix string
	Name   string
}

func (e *UnresolvedPrefixError) Error() string {
	if e.Prefix == "" && !strings.Contains(e.Name, ":") {
		return fmt.Sprintf("unresolved name %q: no prefix and not an absolute IRI", e.Name)
	}
	return fmt.Sprintf("unresolved prefix %q in %q", e.Prefix, e.Name)
}

// Prefix binds a short name to a base IRI.
type Prefix struct {
	Name string
	Base string
}

// PrefixTable is an ordered set of prefix declarations. It is immutable once
// created and safe for concurrent use.
type PrefixTable struct {
	list   []Prefix
	byName map[string]string
}

// NewPrefixTable creates a table preserving the order of declarations.
//
// Names must be valid Turtle prefix names (the empty name is allowed) and base
// IRIs must be non-empty and free of characters forbidden in IRIs.
func NewPrefixTable(prefixes ...Prefix) (*PrefixTable, error) {
	t := &PrefixTable{
		list:   make([]Prefix, 0, len(prefixes)),
		byName: make(map[string]string, len(prefixes)),
	}
	for _, p := range prefixes {
		if !isPrefixName(p.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, p.Name)
		}
		if _, ok := t.byName[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePrefix, p.Name)
		}
		if p.Base == "" || !isIRI(p.Base) {
			return nil, fmt.Errorf("%w for prefix %q: %q", ErrInvalidIRI, p.Name, p.Base)
		}
		t.byName[p.Name] = p.Base
		t.list = append(t.list, p)
	}
	return t, nil
}

// Lookup returns the base IRI bound to a prefix name.
func (t *PrefixTable) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	base, ok := t.byName[name]
	return base, ok
}

// List enumerates all prefix declarations in insertion order.
func (t *PrefixTable) List() []Prefix {
	if t == nil {
		return nil
	}
	out := make([]Prefix, len(t.list))
	copy(out, t.list)
	return out
}

// Len returns the number of declared prefixes.
func (t *PrefixTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.list)
}

// Resolve converts a prefixed name into a full IRI.
//
//	Resolve("foaf:name")                    // <http://xmlns.com/foaf/0.1/name>
//	Resolve("http://example.org/x")         // returned unchanged
//	Resolve("<http://example.org/x>")       // brackets are stripped
//
// A declared prefix always wins over reading the name as an absolute IRI.
func (t *PrefixTable) Resolve(name string) (quad.IRI, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		iri := name[1 : len(name)-1]
		if iri == "" || !isIRI(iri) {
			return "", fmt.Errorf("%w: %q", ErrInvalidIRI, name)
		}
		return quad.IRI(iri), nil
	}
	i := strings.IndexByte(name, ':')
	if i < 0 {
		return "", &UnresolvedPrefixError{Name: name}
	}
	pref, local := name[:i], name[i+1:]
	if base, ok := t.Lookup(pref); ok {
		iri := base + local
		if !isIRI(iri) {
			return "", fmt.Errorf("%w: %q", ErrInvalidIRI, name)
		}
		return quad.IRI(iri), nil
	}
	if IsAbsoluteIRI(name) {
		if !isIRI(name) {
			return "", fmt.Errorf("%w: %q", ErrInvalidIRI, name)
		}
		return quad.IRI(name), nil
	}
	return "", &UnresolvedPrefixError{Prefix: pref, Name: name}
}

// ResolveLocal joins a local name to the base of a declared prefix.
// Characters that may not appear in an IRI are percent-encoded.
func (t *PrefixTable) ResolveLocal(prefix, local string) (quad.IRI, error) {
	base, ok := t.Lookup(prefix)
	if !ok {
		return "", &UnresolvedPrefixError{Prefix: prefix, Name: prefix + ":" + local}
	}
	return quad.IRI(base + EscapeLocal(local)), nil
}

// ShortIRI replaces the base of the longest matching prefix with the prefix name.
// It reports false if no prefix matches or the remainder is not a valid local name.
//
//	ShortIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type") // "rdf:type", true
func (t *PrefixTable) ShortIRI(iri quad.IRI) (string, bool) {
	if t == nil {
		return "", false
	}
	s := string(iri)
	best := -1
	for i, p := range t.list {
		if !strings.HasPrefix(s, p.Base) {
			continue
		}
		if !isLocalName(s[len(p.Base):]) {
			continue
		}
		if best < 0 || len(p.Base) > len(t.list[best].Base) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	p := t.list[best]
	return p.Name + ":" + s[len(p.Base):], true
}

// Format renders an IRI in its prefixed form when possible and as <iri> otherwise.
func (t *PrefixTable) Format(iri quad.IRI) string {
	if short, ok := t.ShortIRI(iri); ok {
		return short
	}
	return iri.String()
}
