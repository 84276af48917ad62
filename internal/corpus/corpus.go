// Copyright 2026 The ppkernel Authors.
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

// Package corpus runs golden-file tests against a tree of on-disk term
// fixtures: each fixture is pretty-printed and compared against a sibling
// file holding the expected rendering, with a refresh mode that rewrites
// the expected files instead of failing.
package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Suite describes one golden-file corpus: a directory of fixture files
// under Root, each paired with an expected-output file carrying the same
// name plus ".golden".
type Suite struct {
	// Root is the fixture directory, relative to the file calling Run.
	Root string

	// RefreshEnv, if set, names an environment variable holding a glob
	// pattern. Fixtures whose relative path matches it have their golden
	// file rewritten instead of compared.
	RefreshEnv string

	// Extension is the fixture file extension, without a dot (e.g. "json").
	Extension string

	// Render produces the expected golden output for one fixture's raw
	// bytes. The returned string is compared byte-for-byte against the
	// ".golden" sibling file (or written there in refresh mode).
	Render func(t *testing.T, relPath string, fixture []byte) string
}

// Run walks Root for files matching Extension and runs one subtest per
// fixture found.
func (s Suite) Run(t *testing.T) {
	t.Helper()
	callerDir := callerDir(0)
	root := filepath.Join(callerDir, s.Root)
	t.Logf("corpus: scanning %q for *.%s fixtures", root, s.Extension)

	var paths []string
	err := filepath.Walk(root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == s.Extension {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpus: walking %q: %v", root, err)
	}

	refreshPattern := ""
	if s.RefreshEnv != "" {
		refreshPattern = os.Getenv(s.RefreshEnv)
		if refreshPattern != "" && !doublestar.ValidatePattern(refreshPattern) {
			t.Fatalf("corpus: %s holds an invalid glob %q", s.RefreshEnv, refreshPattern)
		}
	}

	for _, p := range paths {
		relPath, _ := filepath.Rel(callerDir, p)
		t.Run(relPath, func(t *testing.T) {
			raw, err := os.ReadFile(p)
			if err != nil {
				t.Fatalf("corpus: reading fixture %q: %v", p, err)
			}

			got := s.Render(t, relPath, raw)
			goldenPath := p + ".golden"

			refreshing := refreshPattern != ""
			if refreshing {
				if matched, _ := doublestar.Match(refreshPattern, relPath); !matched {
					refreshing = false
				}
			}

			if refreshing {
				if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
					t.Fatalf("corpus: writing golden file %q: %v", goldenPath, err)
				}
				return
			}

			want, err := os.ReadFile(goldenPath)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("corpus: reading golden file %q: %v", goldenPath, err)
			}

			if diff := compare(got, string(want)); diff != "" {
				t.Errorf("output mismatch for %q (rerun with %s=%s to refresh):\n%s", relPath, s.RefreshEnv, relPath, diff)
			}
		})
	}
}

func compare(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "golden",
		ToFile:   "rendered",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpus: could not determine caller's directory")
	}
	return filepath.Dir(file)
}
