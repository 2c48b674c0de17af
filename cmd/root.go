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
package cmd

import (
	"fmt"
	"strings"

	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/config"
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/logging"
	"github.com/GoogleCloudPlatform/csv-data-consolidation/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "csv_consolidator <input_directory> <output_file.csv>",
	Short: "A tool to consolidate a directory of CSV files into one cleaned CSV",
	Long: `csv_consolidator merges heterogeneous CSV files from a directory into a
single cleaned file. Column schemas are aligned across files, blank rows and
columns are removed, exact duplicate rows are dropped, and the result is
sorted by the first date-like column before being written out.`,
	Example:           `./csv_consolidator ./exports ./merged.csv --log-level DEBUG`,
	Args:              cobra.ExactArgs(2),
	SilenceUsage:      true,
	PersistentPreRunE: initFlagsAndConfig,
	RunE:              runConsolidate,
}

// initFlagsAndConfig initializes the run configuration using command flags
// and positional arguments.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	if len(args) == 2 {
		cfg.InputDir = args[0]
		cfg.OutputFile = args[1]
	}
	if cmd != nil && cmd.Flags().Changed("log-level") {
		cfg.LogLevel = strings.ToUpper(strings.TrimSpace(logLevel))
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	config.SetConfig(cfg)
	return nil
}

func validateLogLevel(level string) error {
	supportedLevels := []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	isValidLevel := false
	for _, supportedLevel := range supportedLevels {
		if level == supportedLevel {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("unsupported log level: %s (only %s are supported)", level, strings.Join(supportedLevels, ", "))
	}
	return nil
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting consolidation",
		zap.String("version", config.Version),
		zap.String("input_dir", cfg.InputDir),
		zap.String("output_file", cfg.OutputFile))

	if err := pipeline.Run(cfg, logger); err != nil {
		logger.Error("Consolidation failed", zap.Error(err))
		return err
	}
	return nil
}

// Execute runs the root command and returns its error for the exit-code
// contract in main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
}
