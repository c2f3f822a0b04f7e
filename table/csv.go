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

package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

func init() {
	RegisterFormat(Format{
		Name: "csv",
		Ext:  []string{".csv"},
		Mime: []string{"text/csv"},
		Read: ReadCSV,
	})
	RegisterFormat(Format{
		Name: "tsv",
		Ext:  []string{".tsv", ".tab"},
		Mime: []string{"text/tab-separated-values"},
		Read: func(r io.Reader, opts Options) (*Dataset, error) {
			opts.Comma = '\t'
			return ReadCSV(r, opts)
		},
	})
}

// ReadCSV reads a delimited text table. The first record is the header.
func ReadCSV(r io.Reader, opts Options) (*Dataset, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	ds, err := FromRecords(records, opts)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return ds, nil
}
