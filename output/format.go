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

// Package output serializes row descriptions in one of the registered RDF formats.
package output

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/voc"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Writer receives the descriptions of all rows in order. Output may be
// buffered until Close.
type Writer interface {
	WriteDescription(d *mapping.Description) error
	Close() error
}

// Format describes an output serialization.
type Format struct {
	// Name identifies the format on the command line and in HTTP requests.
	Name string
	// Ext lists file extensions, the first one is used for generated names.
	Ext []string
	// Mime lists content types, the first one is used in HTTP responses.
	Mime []string
	// Writer creates a writer that abbreviates IRIs with the given prefixes
	// where the format supports it.
	Writer func(w io.Writer, pt *voc.PrefixTable) Writer
}

var (
	formatsByName = make(map[string]*Format)
	formatsByExt  = make(map[string]*Format)
	formatsByMime = make(map[string]*Format)
)

// RegisterFormat registers an output format. It panics on duplicates.
func RegisterFormat(f Format) {
	if _, ok := formatsByName[f.Name]; ok {
		panic(fmt.Errorf("output format %s is already registered", f.Name))
	}
	formatsByName[f.Name] = &f
	for _, e := range f.Ext {
		if sf, ok := formatsByExt[e]; ok {
			panic(fmt.Errorf("output format %s is already registered with extension %s", sf.Name, e))
		}
		formatsByExt[e] = &f
	}
	for _, m := range f.Mime {
		if sf, ok := formatsByMime[m]; ok {
			panic(fmt.Errorf("output format %s is already registered with MIME %s", sf.Name, m))
		}
		formatsByMime[m] = &f
	}
}

// FormatByName returns a registered format or nil.
func FormatByName(name string) *Format {
	return formatsByName[strings.ToLower(name)]
}

// FormatByExt returns a registered format by file extension or nil.
func FormatByExt(ext string) *Format {
	return formatsByExt[strings.ToLower(ext)]
}

// FormatByMime returns a registered format by content type or nil.
// Parameters such as charset are ignored.
func FormatByMime(mime string) *Format {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return formatsByMime[strings.TrimSpace(strings.ToLower(mime))]
}

// FormatByPath picks a format by the extension of a file name. A trailing
// .gz is ignored.
func FormatByPath(path string) *Format {
	path = strings.TrimSuffix(strings.ToLower(path), ".gz")
	return FormatByExt(filepath.Ext(path))
}

// Lookup returns the named format, or ErrUnsupportedFormat.
func Lookup(name string) (*Format, error) {
	f := FormatByName(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Formats lists registered formats sorted by name.
func Formats() []Format {
	list := make([]Format, 0, len(formatsByName))
	for _, f := range formatsByName {
		list = append(list, *f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Names returns the names of registered formats.
func Names() []string {
	var names []string
	for _, f := range Formats() {
		names = append(names, f.Name)
	}
	return names
}
