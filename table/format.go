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

package table

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown table format")

// Format is a description of a tabular file format.
type Format struct {
	// Name is a short format name used as an identifier for RegisterFormat.
	Name string
	// Ext is a list of file extensions, allowed for the format.
	Ext []string
	// Mime is a list of MIME (content) types, allowed for the format.
	Mime []string
	// Binary is set if the format is not human-readable.
	Binary bool
	// Read decodes a dataset from r.
	Read func(r io.Reader, opts Options) (*Dataset, error)
}

var (
	formatsByName = make(map[string]*Format)
	formatsByExt  = make(map[string]*Format)
	formatsByMime = make(map[string]*Format)
)

// RegisterFormat registers a new table format.
func RegisterFormat(f Format) {
	if _, ok := formatsByName[f.Name]; ok {
		panic(fmt.Errorf("format %s is already registered", f.Name))
	}
	formatsByName[f.Name] = &f
	for _, e := range f.Ext {
		if sf, ok := formatsByExt[e]; ok {
			panic(fmt.Errorf("format %s is already registered with extension %s", sf.Name, e))
		}
		formatsByExt[e] = &f
	}
	for _, m := range f.Mime {
		if sf, ok := formatsByMime[m]; ok {
			panic(fmt.Errorf("format %s is already registered with MIME %s", sf.Name, m))
		}
		formatsByMime[m] = &f
	}
}

// FormatByName returns a registered format by its name, or nil.
func FormatByName(name string) *Format {
	return formatsByName[strings.ToLower(name)]
}

// FormatByExt returns a registered format by its file extension (with a dot), or nil.
func FormatByExt(ext string) *Format {
	return formatsByExt[strings.ToLower(ext)]
}

// FormatByMime returns a registered format by its MIME type, or nil.
func FormatByMime(mime string) *Format {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return formatsByMime[strings.TrimSpace(strings.ToLower(mime))]
}

// Formats returns all registered formats sorted by name.
func Formats() []Format {
	list := make([]Format, 0, len(formatsByName))
	for _, f := range formatsByName {
		list = append(list, *f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Read decodes a dataset using a named format.
func Read(r io.Reader, format string, opts Options) (*Dataset, error) {
	f := FormatByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return f.Read(r, opts)
}
