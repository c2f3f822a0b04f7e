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
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/output"
	"github.com/tabrdf/tabrdf/table"
)

const (
	KeyMapping = "mapping"

	KeyConvertFormat = "convert.format"

	KeyLoadFormat  = "load.format"
	KeyIndexColumn = "load.index_column"
	KeySheet       = "load.sheet"
	KeyDelimiter   = "load.delimiter"
	KeyInferTypes  = "load.infer_types"
	KeyNullValues  = "load.null_values"

	KeyBatchWorkers = "batch.workers"

	KeyHTTPHost = "http.host"
)

const (
	flagMapping     = "mapping"
	flagLoad        = "load"
	flagLoadFormat  = "load_format"
	flagIndexColumn = "index_column"
	flagSheet       = "sheet"
	flagDelimiter   = "delimiter"
	flagNoInfer     = "no_infer"
	flagDump        = "dump"
	flagDumpFormat  = "dump_format"
)

var errNoMapping = errors.New("no mapping file specified, use --mapping")

// bindings are applied when a command runs, so that commands sharing a key
// do not steal each other's flags.
type bindings map[string]string

func (b bindings) apply(cmd *cobra.Command) error {
	for key, name := range b {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func registerMappingFlag(cmd *cobra.Command, b bindings) {
	cmd.Flags().StringP(flagMapping, "m", "", "mapping file (YAML or JSON)")
	b[KeyMapping] = flagMapping
}

func registerLoadFlags(cmd *cobra.Command, b bindings) {
	var names []string
	for _, f := range table.Formats() {
		names = append(names, f.Name)
	}
	cmd.Flags().String(flagLoadFormat, "", `table format to use instead of auto-detection ("`+strings.Join(names, `", "`)+`")`)
	cmd.Flags().String(flagIndexColumn, "", "column holding row identifiers (default: row position)")
	cmd.Flags().String(flagSheet, "", "worksheet to read from workbooks (default: first sheet)")
	cmd.Flags().String(flagDelimiter, ",", "field delimiter of CSV input")
	cmd.Flags().Bool(flagNoInfer, false, "read all cells as strings")
	b[KeyLoadFormat] = flagLoadFormat
	b[KeyIndexColumn] = flagIndexColumn
	b[KeySheet] = flagSheet
	b[KeyDelimiter] = flagDelimiter
}

func registerDumpFlags(cmd *cobra.Command, b bindings) {
	cmd.Flags().String(flagDumpFormat, "", `output format to use instead of auto-detection ("`+strings.Join(output.Names(), `", "`)+`")`)
	b[KeyConvertFormat] = flagDumpFormat
}

// loadOptions builds reader options from the configuration.
func loadOptions(cmd *cobra.Command) (table.Options, error) {
	opts := table.DefaultOptions()
	opts.IndexColumn = viper.GetString(KeyIndexColumn)
	opts.Sheet = viper.GetString(KeySheet)
	if viper.IsSet(KeyInferTypes) {
		opts.InferTypes = viper.GetBool(KeyInferTypes)
	}
	if noInfer, _ := cmd.Flags().GetBool(flagNoInfer); noInfer {
		opts.InferTypes = false
	}
	if nulls := viper.GetStringSlice(KeyNullValues); len(nulls) != 0 {
		opts.NullValues = nulls
	}
	if d := viper.GetString(KeyDelimiter); d != "" {
		if d == `\t` {
			d = "\t"
		}
		r, n := utf8.DecodeRuneInString(d)
		if n != len(d) {
			return opts, fmt.Errorf("delimiter must be a single character, got %q", d)
		}
		opts.Comma = r
	}
	return opts, nil
}

func loadMapping() (*mapping.Mapping, error) {
	path := viper.GetString(KeyMapping)
	if path == "" {
		return nil, errNoMapping
	}
	return mapping.Load(path)
}
