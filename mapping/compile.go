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
	"strconv"

	"github.com/cayleygraph/quad"
	"golang.org/x/text/language"

	"github.com/tabrdf/tabrdf/clog"
	"github.com/tabrdf/tabrdf/voc"
)

// Compile validates the configuration and builds an immutable Mapping.
//
// Every name is resolved against the declared prefixes here, so a Mapping
// never fails on configuration problems while rows are processed.
func (c *Config) Compile() (*Mapping, error) {
	pt, err := voc.NewPrefixTable(c.Prefixes...)
	if err != nil {
		return nil, &InvalidConfigError{Field: "prefixes", Err: err}
	}
	subj, cols, err := c.normalize()
	if err != nil {
		return nil, err
	}
	m := &Mapping{Prefixes: pt, DatasetOrder: c.IsLegacy()}

	if subj.Prefix == "" {
		return nil, &InvalidConfigError{Field: "subject.prefix", Reason: "required"}
	}
	if _, ok := pt.Lookup(subj.Prefix); !ok {
		return nil, fmt.Errorf("subject.prefix: %w", &voc.UnresolvedPrefixError{Prefix: subj.Prefix, Name: subj.Prefix + ":"})
	}
	m.Subject = Subject{Prefix: subj.Prefix, Column: subj.Column}
	for i, name := range subj.Classes {
		iri, err := resolve(pt, name)
		if err != nil {
			return nil, fmt.Errorf("subject.classes[%d]: %w", i, err)
		}
		m.Subject.Classes = append(m.Subject.Classes, iri)
	}

	m.Columns = make([]Column, 0, len(cols))
	for i, cc := range cols {
		col, err := compileColumn(pt, cc)
		if err != nil {
			return nil, fmt.Errorf("mappings[%d]: %w", i, err)
		}
		m.Columns = append(m.Columns, col)
	}
	return m, nil
}

func compileColumn(pt *voc.PrefixTable, cc ColumnConfig) (Column, error) {
	if cc.Column == "" {
		return Column{}, &InvalidConfigError{Field: "column", Reason: "required"}
	}
	var set []string
	if cc.DataType != "" {
		set = append(set, "dataType")
	}
	if cc.Language != "" {
		set = append(set, "language")
	}
	if cc.RelationPrefix != "" {
		set = append(set, "relationPrefix")
	}
	if len(set) > 1 {
		return Column{}, &ConflictingMappingError{Column: cc.Column, Fields: set}
	}
	if cc.Predicate == "" {
		return Column{}, &InvalidConfigError{Field: "predicate", Reason: "required for column " + strconv.Quote(cc.Column)}
	}
	pred, err := resolve(pt, cc.Predicate)
	if err != nil {
		return Column{}, fmt.Errorf("predicate: %w", err)
	}
	col := Column{Name: cc.Column, Predicate: pred, Kind: Plain}
	switch {
	case cc.DataType != "":
		dt, err := resolve(pt, cc.DataType)
		if err != nil {
			return Column{}, fmt.Errorf("dataType: %w", err)
		}
		col.Kind, col.Datatype = Typed, dt
	case cc.Language != "":
		// Raw keeps the configured tag apart from letter case.
		tag, err := language.Raw.Parse(cc.Language)
		if err != nil {
			return Column{}, &InvalidConfigError{Field: "language", Reason: strconv.Quote(cc.Language), Err: err}
		}
		col.Kind, col.Lang = Lang, tag.String()
	case cc.RelationPrefix != "":
		if _, ok := pt.Lookup(cc.RelationPrefix); !ok {
			return Column{}, fmt.Errorf("relationPrefix: %w", &voc.UnresolvedPrefixError{Prefix: cc.RelationPrefix, Name: cc.RelationPrefix + ":"})
		}
		col.Kind, col.RelationPrefix = Reference, cc.RelationPrefix
	}
	return col, nil
}

func resolve(pt *voc.PrefixTable, name string) (quad.IRI, error) {
	iri, err := pt.Resolve(name)
	if err == voc.ErrEmptyName {
		return "", &InvalidConfigError{Field: "name", Reason: "empty"}
	}
	return iri, err
}

// normalize returns the subject rule and column list of either config shape.
func (c *Config) normalize() (SubjectConfig, []ColumnConfig, error) {
	if !c.IsLegacy() {
		if c.Subject == nil {
			return SubjectConfig{}, nil, &InvalidConfigError{Field: "subject", Reason: "required"}
		}
		return *c.Subject, c.Mappings, nil
	}
	if c.Subject != nil || len(c.Mappings) != 0 {
		return SubjectConfig{}, nil, &InvalidConfigError{Field: "mapping", Err: errMixedShapes}
	}
	subj := SubjectConfig{Prefix: c.SubjectPrefix, Classes: c.SubjectClasses}

	mapped := make(map[string]bool, len(c.PredicateMaps))
	for _, kv := range c.PredicateMaps {
		mapped[kv.Key] = true
	}
	relations := make(map[string]bool, len(c.Relations))
	for _, name := range c.Relations {
		relations[name] = true
		if !mapped[name] {
			clog.Warningf("relations: column %q has no entry in predicate_maps, ignoring", name)
		}
	}
	for name := range c.LanguageTags {
		if !mapped[name] {
			clog.Warningf("language_tags: column %q has no entry in predicate_maps, ignoring", name)
		}
	}
	for name := range c.DataTypes {
		if !mapped[name] {
			clog.Warningf("data_types: column %q has no entry in predicate_maps, ignoring", name)
		}
	}

	cols := make([]ColumnConfig, 0, len(c.PredicateMaps))
	for _, kv := range c.PredicateMaps {
		cc := ColumnConfig{
			Column:    kv.Key,
			Predicate: kv.Value,
			DataType:  c.DataTypes[kv.Key],
			Language:  c.LanguageTags[kv.Key],
		}
		if relations[kv.Key] {
			cc.RelationPrefix = c.SubjectPrefix
		}
		cols = append(cols, cc)
	}
	return subj, cols, nil
}
