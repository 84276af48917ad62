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

package printer_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lithos-lang/ppkernel/env"
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/printer"
	"github.com/lithos-lang/ppkernel/term"
)

// Each goroutine formats a different metavariable-bearing expression whose
// correct rendering depends entirely on that call's own purification
// table. A pool smaller than the goroutine count forces instance reuse;
// if Factory let two goroutines share a pooled Printer, one goroutine's
// metavariable numbering would leak into another's output.
func TestFactoryNeverLetsConcurrentCallsCrossTalk(t *testing.T) {
	e := env.NewMapEnvironment(false)
	factory := printer.NewFactory(e, env.NaiveChecker{Env: e}, notation.MapTokenTable{}, 3)

	const n = 12
	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("orig.m%d", i)
			m := term.Meta{Name: term.ParseName(name), Type: term.Const{Name: term.ParseName("T")}}
			expr := term.App{Fn: term.Const{Name: term.ParseName("Box")}, Arg: m}

			out, err := factory.Format(context.Background(), expr, printer.DefaultOptions())
			results[i], errs[i] = out, err
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "Box ?M1", results[i])
	}
}
