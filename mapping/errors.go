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

package mapping

import (
	"fmt"
	"strings"
)

// ConflictingMappingError is returned when a column mapping sets more than one
// of dataType, language and relationPrefix.
type ConflictingMappingError struct {
	Column string
	Fields []string
}

func (e *ConflictingMappingError) Error() string {
	return fmt.Sprintf("mapping for column %q sets conflicting fields: %s", e.Column, strings.Join(e.Fields, ", "))
}

// MissingColumnError is returned when the mapping references a column that the
// dataset does not have.
type MissingColumnError struct {
	Column string
	// Field is the configuration field that references the column.
	Field string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s references column %q which is not in the dataset", e.Field, e.Column)
}

// InvalidConfigError describes a structural problem in a mapping configuration.
type InvalidConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid " + e.Field
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidConfigError) Unwrap() error { return e.Err }

// EmptySubjectError is returned when the subject column of a row has no value.
type EmptySubjectError struct {
	Row    string
	Column string
}

func (e *EmptySubjectError) Error() string {
	return fmt.Sprintf("row %s: subject column %q is empty", e.Row, e.Column)
}
