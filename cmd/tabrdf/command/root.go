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

// Package command implements the tabrdf command line.
package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabrdf/tabrdf/clog"
)

// NewRootCmd creates the tabrdf command with all subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tabrdf",
		Short:         "Tabrdf converts tables into RDF graphs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if conf, _ := cmd.Flags().GetString("config"); conf != "" {
				viper.SetConfigFile(conf)
			}
			err := viper.ReadInConfig()
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && err != nil {
				return err
			}
			if conf := viper.ConfigFileUsed(); conf != "" {
				wd, _ := os.Getwd()
				if rel, _ := filepath.Rel(wd, conf); rel != "" && strings.Count(rel, "..") < 3 {
					conf = rel
				}
				clog.Infof("using config file: %v", conf)
			}
			return nil
		},
	}
	root.PersistentFlags().StringP("config", "c", "", "path to an explicit configuration file")
	root.AddCommand(
		NewConvertCmd(),
		NewBatchCmd(),
		NewValidateCmd(),
		NewHttpCmd(),
		NewVersionCmd(),
	)
	return root
}

func init() {
	viper.SetConfigName("tabrdf")
	viper.SetEnvPrefix("tabrdf")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.tabrdf")
	viper.AddConfigPath("/etc/tabrdf")
	viper.SetDefault(KeyBatchWorkers, 4)
	viper.SetDefault(KeyHTTPHost, "127.0.0.1:8082")
}
