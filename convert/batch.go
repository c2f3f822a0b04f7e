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
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/tabrdf/tabrdf/clog"
	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/output"
	"github.com/tabrdf/tabrdf/table"
)

// Job is a single conversion of a batch.
type Job struct {
	// Name identifies the job in errors and logs, usually the input path.
	Name string
	// Load reads the dataset.
	Load func(ctx context.Context) (*table.Dataset, error)
	// Create opens the destination. It is called only after the whole
	// dataset was converted successfully.
	Create func() (io.WriteCloser, error)
}

// Batch runs independent conversions sharing one mapping with at most workers
// jobs in flight. The first error cancels jobs that have not started yet.
// Stats are returned in job order.
func Batch(ctx context.Context, m *mapping.Mapping, f *output.Format, jobs []Job, workers int) ([]Stats, error) {
	if workers <= 0 {
		workers = 1
	}
	stats := make([]Stats, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		i, job := i, jobs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := runJob(ctx, m, f, job)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			stats[i] = st
			clog.Infof("%s: %d subjects, %d statements", job.Name, st.Subjects, st.Statements)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

func runJob(ctx context.Context, m *mapping.Mapping, f *output.Format, job Job) (Stats, error) {
	ds, err := job.Load(ctx)
	if err != nil {
		return Stats{}, err
	}
	var buf bytes.Buffer
	st, err := Write(&buf, ds, m, f)
	if err != nil {
		return st, err
	}
	if err = ctx.Err(); err != nil {
		return st, err
	}
	w, err := job.Create()
	if err != nil {
		return st, err
	}
	if _, err = buf.WriteTo(w); err != nil {
		w.Close()
		return st, err
	}
	return st, w.Close()
}
