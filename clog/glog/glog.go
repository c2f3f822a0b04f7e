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

// Package glog registers github.com/golang/glog as the clog backend.
package glog

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/tabrdf/tabrdf/clog"
)

func init() {
	clog.SetLogger(Logger{})
}

// depth skips the Logger method and the clog wrapper.
const depth = 2

// Logger forwards clog calls to glog, which owns verbosity through its -v flag.
type Logger struct{}

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(depth, fmt.Sprintf(format, args...))
}

func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(depth, fmt.Sprintf(format, args...))
}

func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(depth, fmt.Sprintf(format, args...))
}

func (Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(depth, fmt.Sprintf(format, args...))
}

func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}
