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

// Package clog is the logging facade used by tabrdf packages.
//
// Library code logs through the package-level functions only. A binary picks
// the backend by calling SetLogger, usually by importing clog/glog.
package clog

import (
	"log"
	"sync/atomic"
)

// Logger is the clog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// Leveled is implemented by backends that manage verbosity themselves.
type Leveled interface {
	Logger
	V(level int) bool
}

var (
	logger    Logger = stdlog{}
	verbosity int32
)

// SetLogger sets the logging backend. A nil logger discards everything.
func SetLogger(l Logger) { logger = l }

// V reports whether messages at the given verbosity level should be logged.
// Backends implementing Leveled are consulted first.
func V(level int) bool {
	if l, ok := logger.(Leveled); ok {
		return l.V(level)
	}
	return int(atomic.LoadInt32(&verbosity)) >= level
}

// SetV sets the verbosity level used by backends that do not manage it.
func SetV(level int) { atomic.StoreInt32(&verbosity, int32(level)) }

func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatalf logs the message and terminates the program.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
	}
}

type stdlog struct{}

func (stdlog) Infof(format string, args ...interface{})    { log.Printf("I "+format, args...) }
func (stdlog) Warningf(format string, args ...interface{}) { log.Printf("W "+format, args...) }
func (stdlog) Errorf(format string, args ...interface{})   { log.Printf("E "+format, args...) }
func (stdlog) Fatalf(format string, args ...interface{})   { log.Fatalf("F "+format, args...) }
