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

package internal

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tabrdf/tabrdf/output"
)

// Create opens a destination for writing. "-" is stdout and a ".gz" suffix
// enables gzip compression.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create file %q: %w", path, err)
	}
	if filepath.Ext(path) != ".gz" {
		return f, nil
	}
	return &gzipFile{Writer: gzip.NewWriter(f), f: f}, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type gzipFile struct {
	*gzip.Writer
	f *os.File
}

func (w *gzipFile) Close() error {
	err := w.Writer.Close()
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

// OutputFormat picks the output format. An explicit name wins, then the
// extension of path. Turtle is used when neither is known.
func OutputFormat(path, name string) (*output.Format, error) {
	if name != "" {
		return output.Lookup(name)
	}
	if path != "" && path != "-" {
		if f := output.FormatByPath(path); f != nil {
			return f, nil
		}
	}
	return output.Lookup("turtle")
}

// OutputPath names the output of an input file inside dir, replacing the
// table extension with the first extension of the format.
func OutputPath(dir, input string, f *output.Format) string {
	base := filepath.Base(input)
	for _, ext := range []string{".gz", ".bz2"} {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	ext := ""
	if len(f.Ext) != 0 {
		ext = f.Ext[0]
	}
	return filepath.Join(dir, base+ext)
}

// Dump writes data to path, see Create.
func Dump(path string, data []byte) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
