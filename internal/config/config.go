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
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Version is logged at startup and has no semantic meaning beyond
// identifying the build in run logs.
const Version = "1.0.0"

// Config holds all configuration for a consolidation run.
type Config struct {
	InputDir   string
	OutputFile string
	LogLevel   string
}

var globalConfig *Config

// GetConfig returns the current configuration. Before SetConfig has been
// called it returns defaults, with the log level resolved through viper so
// the CSV_CONSOLIDATOR_LOG_LEVEL environment variable is honored. The
// --log-level flag overrides both in root.go.
func GetConfig() *Config {
	if globalConfig != nil {
		return globalConfig
	}

	v := viper.New()
	v.SetDefault("log_level", "INFO")
	v.SetEnvPrefix("CSV_CONSOLIDATOR")
	_ = v.BindEnv("log_level")

	return &Config{
		LogLevel: strings.ToUpper(strings.TrimSpace(v.GetString("log_level"))),
	}
}

// SetConfig sets the global configuration.
func SetConfig(cfg *Config) {
	globalConfig = cfg
}

// Reset clears the global configuration. Used by tests.
func Reset() {
	globalConfig = nil
}
