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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tabrdf/tabrdf/clog"
	"github.com/tabrdf/tabrdf/internal/decompressor"
	"github.com/tabrdf/tabrdf/table"
)

var ErrNoInput = errors.New("no input specified")

// Open returns the contents of a local file, a http(s) URL or stdin for "-".
// The content type is returned for URLs when the server sets one.
func Open(ctx context.Context, path string) (io.ReadCloser, string, error) {
	if path == "" {
		return nil, "", ErrNoInput
	}
	if path == "-" {
		return io.NopCloser(os.Stdin), "", nil
	}
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "file" || u.Scheme == "" || len(u.Scheme) == 1 {
		// Single-letter schemes are Windows drive letters.
		if err == nil && u.Scheme == "file" {
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("could not open file %q: %w", path, err)
		}
		return f, "", nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("could not get resource <%s>: %w", u, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("could not get resource <%s>: %s", u, resp.Status)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// FormatFor picks the table format for a path. An explicit name wins, then
// the file extension (ignoring .gz and .bz2), then the content type.
func FormatFor(path, name, mime string) (*table.Format, error) {
	if name != "" {
		if f := table.FormatByName(name); f != nil {
			return f, nil
		}
		return nil, fmt.Errorf("%w: %q", table.ErrUnknownFormat, name)
	}
	p := path
	if u, err := url.Parse(path); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		p = u.Path
	}
	p = strings.ToLower(p)
	p = strings.TrimSuffix(strings.TrimSuffix(p, ".gz"), ".bz2")
	if f := table.FormatByExt(filepath.Ext(p)); f != nil {
		return f, nil
	}
	if mime != "" {
		if f := table.FormatByMime(mime); f != nil {
			return f, nil
		}
	}
	if path == "-" {
		return table.FormatByName("csv"), nil
	}
	return nil, fmt.Errorf("%w: cannot detect format of %q", table.ErrUnknownFormat, path)
}

// LoadDataset reads a table from a file, URL or stdin, decompressing it if
// needed. Format may be empty to detect it from the path.
func LoadDataset(ctx context.Context, path, format string, opts table.Options) (*table.Dataset, error) {
	rc, mime, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	f, err := FormatFor(path, format, mime)
	if err != nil {
		return nil, err
	}
	r, err := decompressor.New(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds, err := f.Read(r, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if clog.V(1) {
		clog.Infof("read %d rows with %d columns from %q as %s", ds.Len(), len(ds.Columns()), path, f.Name)
	}
	return ds, nil
}
