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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabrdf/tabrdf/internal"
)

func NewValidateCmd() *cobra.Command {
	b := bindings{}
	cmd := &cobra.Command{
		Use:   "validate [input]",
		Short: "Check a mapping file and optionally the columns of a table.",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return b.apply(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMapping()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mapping: %d prefixes, %d classes, %d columns\n",
				m.Prefixes.Len(), len(m.Subject.Classes), len(m.Columns))
			if len(args) == 0 {
				return nil
			}
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			ds, err := internal.LoadDataset(cmd.Context(), args[0], viper.GetString(KeyLoadFormat), opts)
			if err != nil {
				return err
			}
			if err = m.Check(ds.Columns()); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for _, row := range ds.Rows() {
				if _, err = m.Describe(ds, row); err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
			}
			fmt.Fprintf(out, "%s: %d rows OK\n", args[0], ds.Len())
			return nil
		},
	}
	registerMappingFlag(cmd, b)
	registerLoadFlags(cmd, b)
	return cmd
}
