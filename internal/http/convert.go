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

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/tabrdf/tabrdf/convert"
	"github.com/tabrdf/tabrdf/internal/decompressor"
	"github.com/tabrdf/tabrdf/output"
	"github.com/tabrdf/tabrdf/table"
)

// inputFormat picks the table format from the "input" parameter or the
// request content type. CSV is assumed otherwise.
func inputFormat(r *http.Request) (*table.Format, error) {
	if name := r.URL.Query().Get("input"); name != "" {
		if f := table.FormatByName(name); f != nil {
			return f, nil
		}
		return nil, errors.New("unknown input format: " + strconv.Quote(name))
	}
	if f := table.FormatByMime(r.Header.Get("Content-Type")); f != nil {
		return f, nil
	}
	return table.FormatByName("csv"), nil
}

// outputFormat picks the output format from the "format" parameter, the
// Accept header or the server default.
func (api *API) outputFormat(r *http.Request) (*output.Format, error) {
	if name := r.URL.Query().Get("format"); name != "" {
		return output.Lookup(name)
	}
	if f := output.FormatByMime(r.Header.Get("Accept")); f != nil {
		return f, nil
	}
	return output.Lookup(api.config.Format)
}

func (api *API) readOptions(r *http.Request) (table.Options, error) {
	opts := api.config.Options
	if v := r.URL.Query().Get("index"); v != "" {
		opts.IndexColumn = v
	}
	if v := r.URL.Query().Get("sheet"); v != "" {
		opts.Sheet = v
	}
	if v := r.URL.Query().Get("infer"); v != "" {
		infer, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("invalid infer parameter: " + strconv.Quote(v))
		}
		opts.InferTypes = infer
	}
	return opts, nil
}

func (api *API) ServeV1Convert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if api.config.Mapping == nil {
		jsonResponse(w, http.StatusServiceUnavailable, "no mapping configured")
		return
	}
	in, err := inputFormat(r)
	if err != nil {
		jsonResponse(w, http.StatusUnsupportedMediaType, err)
		return
	}
	out, err := api.outputFormat(r)
	if err != nil {
		jsonResponse(w, http.StatusNotAcceptable, err)
		return
	}
	opts, err := api.readOptions(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	body, err := decompressor.New(http.MaxBytesReader(w, r.Body, api.config.MaxBody))
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	ds, err := in.Read(body, opts)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	data, st, err := convert.Convert(ds, api.config.Mapping, out.Name)
	if err != nil {
		jsonResponse(w, http.StatusUnprocessableEntity, err)
		return
	}
	h := w.Header()
	if len(out.Mime) != 0 {
		h.Set("Content-Type", out.Mime[0])
	}
	h.Set("X-Tabrdf-Rows", strconv.Itoa(st.Rows))
	h.Set("X-Tabrdf-Subjects", strconv.Itoa(st.Subjects))
	h.Set("X-Tabrdf-Statements", strconv.Itoa(st.Statements))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
