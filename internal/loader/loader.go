/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/table"
	"go.uber.org/zap"
)

// Load parses one CSV file into a typed table. The first record is the
// header; ragged rows are tolerated (short rows padded with blanks, long
// rows truncated to the header width). Columns that are blank in every row
// are dropped before the table is returned.
func Load(path string, logger *zap.Logger) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV records: %w", err)
	}

	names := normalizeHeader(header)

	raw := make([][]string, len(names))
	for c := range raw {
		raw[c] = make([]string, len(records))
	}
	for i, rec := range records {
		for c := range names {
			if c < len(rec) {
				raw[c][i] = rec[c]
			}
		}
	}

	t := &table.Table{}
	var dropped []string
	for c, name := range names {
		if isBlankColumn(raw[c]) {
			dropped = append(dropped, name)
			continue
		}
		colType := table.InferType(raw[c])
		values := make([]table.Value, len(raw[c]))
		for i, s := range raw[c] {
			v, ok := table.Parse(s, colType)
			if !ok {
				// Inference guarantees conformance; this is a belt for
				// future layout changes.
				v = table.StringValue(strings.TrimSpace(s))
			}
			values[i] = v
		}
		t.Columns = append(t.Columns, table.Column{Name: name, Type: colType, Values: values})
	}

	if len(dropped) > 0 {
		logger.Debug("Dropped blank columns",
			zap.String("path", path),
			zap.Strings("columns", dropped))
	}
	logger.Debug("Loaded file",
		zap.String("path", path),
		zap.Int("rows", t.NumRows()),
		zap.Strings("columns", t.ColumnNames()))

	return t, nil
}

// normalizeHeader fills empty header cells with positional names and
// de-duplicates repeated names by suffixing _2, _3, and so on.
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		counts[name]++
		if n := counts[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		names[i] = name
	}
	return names
}

func isBlankColumn(values []string) bool {
	for _, s := range values {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
