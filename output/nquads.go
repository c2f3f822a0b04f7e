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
	"io"

	"github.com/cayleygraph/quad/nquads"

	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/voc"
)

func init() {
	RegisterFormat(Format{
		Name: "nquads",
		Ext:  []string{".nq", ".nt"},
		Mime: []string{"application/n-quads", "application/n-triples"},
		Writer: func(w io.Writer, _ *voc.PrefixTable) Writer {
			return &nquadsWriter{w: nquads.NewWriter(w)}
		},
	})
}

// nquadsWriter streams statements into the default graph, which makes the
// output valid N-Triples as well.
type nquadsWriter struct {
	w *nquads.Writer
}

func (w *nquadsWriter) WriteDescription(d *mapping.Description) error {
	for _, q := range d.Quads {
		if err := w.w.WriteQuad(q); err != nil {
			return err
		}
	}
	return nil
}

func (w *nquadsWriter) Close() error { return w.w.Close() }
