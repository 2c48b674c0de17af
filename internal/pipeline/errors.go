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
package pipeline

import "fmt"

// ErrNoInputFiles represents an input directory containing no CSV files.
type ErrNoInputFiles struct {
	Dir string
}

// ErrFileParse represents a single input file that could not be read or
// parsed. It is non-fatal; the pipeline skips the file.
type ErrFileParse struct {
	Path string
	Err  error
}

// ErrNoLoadableFiles represents a run in which every input file failed to
// load.
type ErrNoLoadableFiles struct {
	Err error
}

// ErrWriteOutput represents a failure to create or write the output file.
type ErrWriteOutput struct {
	Path string
	Err  error
}

func (e *ErrNoInputFiles) Error() string {
	return fmt.Sprintf("no CSV files found in %s", e.Dir)
}

func (e *ErrFileParse) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ErrFileParse) Unwrap() error {
	return e.Err
}

func (e *ErrNoLoadableFiles) Error() string {
	return fmt.Sprintf("no valid CSV files could be read: %v", e.Err)
}

func (e *ErrNoLoadableFiles) Unwrap() error {
	return e.Err
}

func (e *ErrWriteOutput) Error() string {
	return fmt.Sprintf("failed to write output to %s: %v", e.Path, e.Err)
}

func (e *ErrWriteOutput) Unwrap() error {
	return e.Err
}
