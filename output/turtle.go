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

	"github.com/tabrdf/tabrdf/turtle"
	"github.com/tabrdf/tabrdf/voc"
)

func init() {
	RegisterFormat(Format{
		Name: "turtle",
		Ext:  []string{".ttl"},
		Mime: []string{"text/turtle", "application/x-turtle"},
		Writer: func(w io.Writer, pt *voc.PrefixTable) Writer {
			return turtle.NewEncoder(w, pt)
		},
	})
}
