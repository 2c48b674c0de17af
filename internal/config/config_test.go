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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetConfig_Defaults(t *testing.T) {
	Reset()
	cfg := GetConfig()
	require.Equal(t, "INFO", cfg.LogLevel)
	require.Empty(t, cfg.InputDir)
	require.Empty(t, cfg.OutputFile)
}

func TestGetConfig_EnvOverride(t *testing.T) {
	Reset()
	t.Setenv("CSV_CONSOLIDATOR_LOG_LEVEL", "debug")
	cfg := GetConfig()
	require.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestSetConfig(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	want := &Config{InputDir: "in", OutputFile: "out.csv", LogLevel: "ERROR"}
	SetConfig(want)
	require.Same(t, want, GetConfig())
}
