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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tabrdf/tabrdf/voc"
)

// Config is the mapping file as written by the user. It must be compiled into
// a Mapping before use.
//
// Two shapes are accepted: the structured one (subject, mappings) and the flat
// legacy one (subject_prefix, predicate_maps, ...). They cannot be mixed.
type Config struct {
	Prefixes Prefixes       `yaml:"prefixes"`
	Subject  *SubjectConfig `yaml:"subject,omitempty"`
	Mappings []ColumnConfig `yaml:"mappings,omitempty"`

	SubjectPrefix  string            `yaml:"subject_prefix,omitempty"`
	SubjectClasses []string          `yaml:"subject_classes,omitempty"`
	PredicateMaps  Pairs             `yaml:"predicate_maps,omitempty"`
	LanguageTags   map[string]string `yaml:"language_tags,omitempty"`
	DataTypes      map[string]string `yaml:"data_types,omitempty"`
	Relations      []string          `yaml:"relations,omitempty"`
}

// SubjectConfig selects how subjects are named.
type SubjectConfig struct {
	Prefix  string   `yaml:"prefix"`
	Column  string   `yaml:"column,omitempty"`
	Classes []string `yaml:"classes,omitempty"`
}

// ColumnConfig maps a single column.
type ColumnConfig struct {
	Column         string `yaml:"column"`
	Predicate      string `yaml:"predicate"`
	DataType       string `yaml:"dataType,omitempty"`
	Language       string `yaml:"language,omitempty"`
	RelationPrefix string `yaml:"relationPrefix,omitempty"`
}

// Prefixes is a list of prefix declarations decoded from a YAML mapping node,
// keeping the order in which they were written.
type Prefixes []voc.Prefix

func (p *Prefixes) UnmarshalYAML(n *yaml.Node) error {
	pairs, err := decodePairs(n)
	if err != nil {
		return err
	}
	out := make(Prefixes, 0, len(pairs))
	for _, kv := range pairs {
		out = append(out, voc.Prefix{Name: kv.Key, Base: kv.Value})
	}
	*p = out
	return nil
}

func (p Prefixes) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, pr := range p {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: pr.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: pr.Base},
		)
	}
	return n, nil
}

// Pair is a single key-value entry of an ordered string map.
type Pair struct {
	Key   string
	Value string
}

// Pairs is a string map decoded in document order.
type Pairs []Pair

func (p *Pairs) UnmarshalYAML(n *yaml.Node) error {
	pairs, err := decodePairs(n)
	if err != nil {
		return err
	}
	*p = pairs
	return nil
}

func decodePairs(n *yaml.Node) (Pairs, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of strings", n.Line)
	}
	out := make(Pairs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected a string value for key %q", k.Line, k.Value)
		}
		out = append(out, Pair{Key: k.Value, Value: v.Value})
	}
	return out, nil
}

// IsLegacy reports whether the configuration uses the flat legacy shape.
func (c *Config) IsLegacy() bool {
	return c.SubjectPrefix != "" || len(c.SubjectClasses) != 0 || len(c.PredicateMaps) != 0 ||
		len(c.LanguageTags) != 0 || len(c.DataTypes) != 0 || len(c.Relations) != 0
}

// Parse decodes a mapping configuration from YAML or JSON.
func Parse(data []byte) (*Config, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a mapping configuration from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err == io.EOF {
		return nil, &InvalidConfigError{Field: "mapping", Reason: "document is empty"}
	} else if err != nil {
		return nil, &InvalidConfigError{Field: "mapping", Err: err}
	}
	return &c, nil
}

// Load reads and compiles a mapping file.
func Load(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := c.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

var errMixedShapes = errors.New("subject/mappings cannot be combined with subject_prefix/predicate_maps")
