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
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabrdf/tabrdf/clog"
	chttp "github.com/tabrdf/tabrdf/internal/http"
)

func NewHttpCmd() *cobra.Command {
	b := bindings{}
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the conversion endpoint on the given host and port.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return b.apply(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMapping()
			if err != nil {
				return err
			}
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			format := viper.GetString(KeyConvertFormat)
			h := chttp.NewHandler(&chttp.Config{
				Mapping: m,
				Format:  format,
				Options: opts,
			})
			host := viper.GetString(KeyHTTPHost)
			phost := host
			if name, port, err := net.SplitHostPort(host); err == nil && name == "" {
				phost = net.JoinHostPort("localhost", port)
			}
			clog.Infof("listening on %s, convert with POST http://%s/api/v1/convert", host, phost)
			srv := &http.Server{
				Addr:              host,
				Handler:           h,
				ReadHeaderTimeout: 10 * time.Second,
			}
			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			select {
			case err = <-errc:
				return err
			case <-cmd.Context().Done():
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			clog.Infof("shutting down %s", host)
			return srv.Shutdown(ctx)
		},
	}
	cmd.Flags().String("host", "127.0.0.1:8082", "host:port to listen on")
	b[KeyHTTPHost] = "host"
	registerMappingFlag(cmd, b)
	registerLoadFlags(cmd, b)
	registerDumpFlags(cmd, b)
	return cmd
}
