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

package corpus_test

import (
	"testing"

	"github.com/lithos-lang/ppkernel/doc"
	"github.com/lithos-lang/ppkernel/env"
	"github.com/lithos-lang/ppkernel/internal/corpus"
	"github.com/lithos-lang/ppkernel/internal/fixture"
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/printer"
)

func TestFixturesPrintToTheirGoldenFiles(t *testing.T) {
	suite := corpus.Suite{
		Root:       "testdata",
		RefreshEnv: "PPKERNEL_REFRESH",
		Extension:  "json",
		Render: func(t *testing.T, relPath string, raw []byte) string {
			expr, err := fixture.Decode(raw)
			if err != nil {
				t.Fatalf("corpus: decoding %q: %v", relPath, err)
			}

			e := env.NewMapEnvironment(false)
			p := printer.New(e, env.NaiveChecker{Env: e}, notation.MapTokenTable{}, printer.DefaultOptions())
			return doc.Render(doc.Options{MaxWidth: 80, IndentWidth: 2}, p.Print(expr))
		},
	}
	suite.Run(t)
}
