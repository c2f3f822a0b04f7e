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

// Package http exposes table conversion over HTTP.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/table"
)

// DefaultMaxBody limits the size of an uploaded table.
const DefaultMaxBody = 32 << 20

// Config configures the conversion endpoint.
type Config struct {
	// Mapping is applied to every uploaded table.
	Mapping *mapping.Mapping
	// Format is the output format used when the request does not choose one.
	Format string
	// Options are the defaults for reading uploaded tables.
	Options table.Options
	// MaxBody limits the request body, DefaultMaxBody is used if zero.
	MaxBody int64
}

// API serves the conversion endpoints.
type API struct {
	config *Config
}

func (api *API) APIv1(r *httprouter.Router) {
	r.POST("/api/v1/convert", CORS(LogRequest(api.ServeV1Convert)))
}

// NewHandler builds the router with all routes registered.
func NewHandler(cfg *Config) http.Handler {
	if cfg.MaxBody == 0 {
		cfg.MaxBody = DefaultMaxBody
	}
	if cfg.Format == "" {
		cfg.Format = "turtle"
	}
	r := httprouter.New()
	api := &API{config: cfg}
	r.OPTIONS("/*path", CORS(HandlePreflight))
	api.APIv1(r)
	r.GET("/health", HandleHealth)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func jsonResponse(w http.ResponseWriter, code int, err interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error": `))
	data, _ := json.Marshal(fmt.Sprint(err))
	w.Write(data)
	w.Write([]byte(`}`))
}
