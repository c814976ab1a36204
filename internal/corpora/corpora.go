// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs table-driven tests whose table lives in the file
// system: every input file under a root directory is one test case, and its
// expected outputs sit next to it as files with extra extensions.
package corpora

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bufbuild/tagtable/internal/textdiff"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob of test cases whose outputs
	// should be rewritten instead of checked. Matching tests still fail, so
	// that a refresh is never mistaken for a passing run.
	Refresh string

	// The file extension (without a dot) of files which define a test case,
	// e.g. "yaml".
	Extension string

	// The outputs of each test case. For a test case "foo.yaml", the output
	// with extension "dump" is read from "foo.yaml.dump". A missing output
	// file is the same as an empty one.
	Outputs []Output

	// Test executes one test case, returning one string per element of
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one expected output of every test case in a [Corpus].
type Output struct {
	Extension string
}

// Run runs every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	dir := callerDir(0)
	root := filepath.Join(dir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			cases = append(cases, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: walking %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}

	for _, path := range cases {
		name, _ := filepath.Rel(dir, path)
		t.Run(filepath.ToSlash(name), func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: reading %q: %v", path, err)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d results, want %d", len(results), len(c.Outputs))
			}

			update := false
			if refresh != "" {
				update, _ = doublestar.Match(refresh, filepath.ToSlash(name))
			}

			for i, output := range c.Outputs {
				outPath := path + "." + output.Extension
				if update {
					t.Logf("corpora: refreshing %q", outPath)
					t.Fail()
					if err := write(outPath, results[i]); err != nil {
						t.Errorf("corpora: writing %q: %v", outPath, err)
					}
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: reading %q: %v", outPath, err)
					continue
				}

				if diff := Diff(results[i], string(want)); diff != "" {
					t.Errorf("corpora: output mismatch for %q:\n%s", outPath, diff)
				}
			}
		})
	}
}

// Diff compares got with want, describing a mismatch as a colorized unified
// diff. Returns the empty string if they match.
func Diff(got, want string) string {
	diff, err := textdiff.Unified("want", want, "got", got, 2)
	if err != nil {
		return err.Error()
	}
	return textdiff.Colorize(diff)
}

// write writes an output file; an empty output is represented by the file's
// absence.
func write(path, data string) error {
	if data == "" {
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(data), 0o644)
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine the calling test's directory")
	}
	return filepath.Dir(file)
}
