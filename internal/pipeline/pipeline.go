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

// Package pipeline runs the consolidation batch: scan, load, harmonize,
// concatenate, clean, sort, write.
package pipeline

import (
	"strings"

	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/config"
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/harmonize"
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/loader"
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/table"
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/utils"
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/writer"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Run executes one consolidation. Unreadable or malformed input files are
// logged and skipped; a missing input directory, an input set with no CSV
// files, an input set where every file fails, or an unwritable output path
// are fatal.
func Run(cfg *config.Config, logger *zap.Logger) error {
	files, err := utils.ListCSVFiles(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return &ErrNoInputFiles{Dir: cfg.InputDir}
	}
	logger.Info("Found CSV files",
		zap.Int("count", len(files)),
		zap.String("input_dir", cfg.InputDir))

	var tables []*table.Table
	var loadErrs error
	for _, path := range files {
		t, err := loader.Load(path, logger)
		if err != nil {
			logger.Error("Skipping unreadable file",
				zap.String("path", path),
				zap.Error(err))
			loadErrs = multierr.Append(loadErrs, &ErrFileParse{Path: path, Err: err})
			continue
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return &ErrNoLoadableFiles{Err: loadErrs}
	}

	harmonized, specs := harmonize.Harmonize(tables, logger)

	merged := concat(harmonized, specs)
	logger.Info("Concatenated tables", zap.Int("rows", merged.NumRows()))

	before := merged.NumRows()
	merged = dropBlankRows(merged)
	logger.Info("Removed blank rows",
		zap.Int("removed", before-merged.NumRows()),
		zap.Int("rows", merged.NumRows()))

	before = merged.NumRows()
	merged = dedupe(merged)
	logger.Info("Removed duplicate rows",
		zap.Int("removed", before-merged.NumRows()),
		zap.Int("rows", merged.NumRows()))

	col := sortColumn(specs)
	if len(specs) > 0 {
		logger.Info("Sorting rows",
			zap.String("column", specs[col].Name),
			zap.Stringer("type", specs[col].Type))
		merged = sortRows(merged, col)
	}

	if err := writer.Write(merged, cfg.OutputFile); err != nil {
		return &ErrWriteOutput{Path: cfg.OutputFile, Err: err}
	}

	logger.Info("Consolidation complete",
		zap.String("output_file", cfg.OutputFile),
		zap.Int("rows", merged.NumRows()),
		zap.Strings("columns", merged.ColumnNames()))
	return nil
}

// concat appends the harmonized tables row-wise, preserving file order then
// row order. All inputs share the harmonized schema by construction.
func concat(tables []*table.Table, specs []table.ColumnSpec) *table.Table {
	out := &table.Table{Columns: make([]table.Column, len(specs))}
	for c, spec := range specs {
		out.Columns[c] = table.Column{Name: spec.Name, Type: spec.Type}
	}
	for _, t := range tables {
		for c := range specs {
			out.Columns[c].Values = append(out.Columns[c].Values, t.Columns[c].Values...)
		}
	}
	return out
}

func dropBlankRows(t *table.Table) *table.Table {
	var keep []int
	for i := 0; i < t.NumRows(); i++ {
		if !t.IsBlankRow(i) {
			keep = append(keep, i)
		}
	}
	return t.Select(keep)
}

// dedupe removes exact-duplicate rows, keeping the first occurrence.
func dedupe(t *table.Table) *table.Table {
	seen := make(map[string]bool, t.NumRows())
	var keep []int
	for i := 0; i < t.NumRows(); i++ {
		key := rowKey(t, i)
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}
	return t.Select(keep)
}

func rowKey(t *table.Table, i int) string {
	var b strings.Builder
	for c := range t.Columns {
		v := t.Columns[c].Values[i]
		if v.Null {
			b.WriteByte(0x00)
		} else {
			b.WriteString(v.Render())
		}
		b.WriteByte(0x1f)
	}
	return b.String()
}
