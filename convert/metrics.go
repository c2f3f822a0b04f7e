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

package convert

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tabrdf_convert_rows_total",
		Help: "Number of rows converted.",
	}, []string{"format"})
	mStatements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tabrdf_convert_statements_total",
		Help: "Number of statements written.",
	}, []string{"format"})
	mSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tabrdf_convert_skipped_cells_total",
		Help: "Number of null cells of mapped columns.",
	}, []string{"format"})
	mErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tabrdf_convert_errors_total",
		Help: "Number of failed conversions.",
	}, []string{"format"})
	mSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "tabrdf_convert_seconds",
		Help: "Time to convert a dataset.",
	}, []string{"format"})
)

func observe(format string, st Stats, dt time.Duration, err error) {
	if err != nil {
		mErrors.WithLabelValues(format).Inc()
		return
	}
	mRows.WithLabelValues(format).Add(float64(st.Rows))
	mStatements.WithLabelValues(format).Add(float64(st.Statements))
	mSkipped.WithLabelValues(format).Add(float64(st.Skipped))
	mSeconds.WithLabelValues(format).Observe(dt.Seconds())
}
