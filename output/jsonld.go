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

package output

import (
	"encoding/json"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/piprate/json-gold/ld"

	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/voc"
)

func init() {
	RegisterFormat(Format{
		Name: "jsonld",
		Ext:  []string{".jsonld"},
		Mime: []string{"application/ld+json"},
		Writer: func(w io.Writer, pt *voc.PrefixTable) Writer {
			return &jsonldWriter{w: w, pt: pt, data: ld.NewRDFDataset()}
		},
	})
}

const defaultGraph = "@default"

// jsonldWriter collects the dataset and writes a single compacted document on
// Close, using the prefix table as the context.
type jsonldWriter struct {
	w    io.Writer
	pt   *voc.PrefixTable
	data *ld.RDFDataset
}

func (w *jsonldWriter) WriteDescription(d *mapping.Description) error {
	for _, q := range d.Quads {
		lq, err := toLDQuad(q)
		if err != nil {
			return err
		}
		w.data.Graphs[defaultGraph] = append(w.data.Graphs[defaultGraph], lq)
	}
	return nil
}

func toLDQuad(q quad.Quad) (*ld.Quad, error) {
	s, err := jsonld.ToNode(q.Subject)
	if err != nil {
		return nil, err
	}
	p, err := jsonld.ToNode(q.Predicate)
	if err != nil {
		return nil, err
	}
	o, err := jsonld.ToNode(q.Object)
	if err != nil {
		return nil, err
	}
	return ld.NewQuad(s, p, o, defaultGraph), nil
}

// Context returns a JSON-LD context declaring every named prefix.
func Context(pt *voc.PrefixTable) map[string]interface{} {
	ctx := make(map[string]interface{}, pt.Len())
	for _, p := range pt.List() {
		if p.Name == "" {
			continue
		}
		ctx[p.Name] = p.Base
	}
	return ctx
}

func (w *jsonldWriter) Close() error {
	opts := ld.NewJsonLdOptions("")
	api := ld.NewJsonLdApi()
	doc, err := api.FromRDF(w.data, opts)
	if err != nil {
		return err
	}
	proc := ld.NewJsonLdProcessor()
	c, err := proc.Compact(doc, map[string]interface{}{"@context": Context(w.pt)}, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
