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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabrdf/tabrdf/clog"
	"github.com/tabrdf/tabrdf/convert"
	"github.com/tabrdf/tabrdf/internal"
)

func NewConvertCmd() *cobra.Command {
	b := bindings{}
	cmd := &cobra.Command{
		Use:     "convert [input] [output]",
		Aliases: []string{"conv"},
		Short:   "Convert a table into an RDF file using a mapping.",
		Args:    cobra.MaximumNArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return b.apply(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			load, _ := cmd.Flags().GetString(flagLoad)
			dump, _ := cmd.Flags().GetString(flagDump)
			if load == "" && len(args) > 0 {
				load, args = args[0], args[1:]
			}
			if dump == "" && len(args) > 0 {
				dump = args[0]
			}
			if load == "" {
				return errors.New("an input table must be specified")
			}
			if dump == "" {
				dump = "-"
			}
			m, err := loadMapping()
			if err != nil {
				return err
			}
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			f, err := internal.OutputFormat(dump, viper.GetString(KeyConvertFormat))
			if err != nil {
				return err
			}
			ds, err := internal.LoadDataset(cmd.Context(), load, viper.GetString(KeyLoadFormat), opts)
			if err != nil {
				return err
			}
			data, st, err := convert.Convert(ds, m, f.Name)
			if err != nil {
				return fmt.Errorf("%s: %w", load, err)
			}
			if dump == "-" {
				_, err = cmd.OutOrStdout().Write(data)
			} else {
				err = internal.Dump(dump, data)
			}
			if err != nil {
				return err
			}
			clog.Infof("%d rows, %d subjects, %d statements written as %s (%d empty cells)",
				st.Rows, st.Subjects, st.Statements, f.Name, st.Skipped)
			return nil
		},
	}
	cmd.Flags().StringP(flagLoad, "i", "", `table to convert (".gz" and ".bz2" supported, "-" for stdin, http(s) URLs)`)
	cmd.Flags().StringP(flagDump, "o", "", `file to write (".gz" supported, "-" for stdout)`)
	registerMappingFlag(cmd, b)
	registerLoadFlags(cmd, b)
	registerDumpFlags(cmd, b)
	return cmd
}
