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

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabrdf/tabrdf/clog"
	"github.com/tabrdf/tabrdf/convert"
	"github.com/tabrdf/tabrdf/internal"
	"github.com/tabrdf/tabrdf/table"
)

const flagOutDir = "out_dir"

func NewBatchCmd() *cobra.Command {
	b := bindings{}
	cmd := &cobra.Command{
		Use:   "batch <input>...",
		Short: "Convert many tables in parallel with the same mapping.",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return b.apply(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString(flagOutDir)
			if dir == "" {
				return errors.New("an output directory must be specified")
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			m, err := loadMapping()
			if err != nil {
				return err
			}
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			f, err := internal.OutputFormat("", viper.GetString(KeyConvertFormat))
			if err != nil {
				return err
			}
			loadFormat := viper.GetString(KeyLoadFormat)

			jobs := make([]convert.Job, 0, len(args))
			seen := make(map[string]string, len(args))
			for _, in := range args {
				in := in
				out := internal.OutputPath(dir, in, f)
				if prev, ok := seen[out]; ok {
					return fmt.Errorf("inputs %q and %q would both be written to %q", prev, in, out)
				}
				seen[out] = in
				jobs = append(jobs, convert.Job{
					Name: in,
					Load: func(ctx context.Context) (*table.Dataset, error) {
						return internal.LoadDataset(ctx, in, loadFormat, opts)
					},
					Create: func() (io.WriteCloser, error) {
						return internal.Create(out)
					},
				})
			}
			workers := viper.GetInt(KeyBatchWorkers)
			stats, err := convert.Batch(cmd.Context(), m, f, jobs, workers)
			if err != nil {
				return err
			}
			var total convert.Stats
			for _, st := range stats {
				total.Add(st)
			}
			clog.Infof("converted %d tables: %d rows, %d subjects, %d statements",
				len(stats), total.Rows, total.Subjects, total.Statements)
			return nil
		},
	}
	cmd.Flags().StringP(flagOutDir, "d", "", "directory to write outputs to")
	cmd.Flags().IntP("workers", "w", 4, "number of tables converted at the same time")
	b[KeyBatchWorkers] = "workers"
	registerMappingFlag(cmd, b)
	registerLoadFlags(cmd, b)
	registerDumpFlags(cmd, b)
	return cmd
}
