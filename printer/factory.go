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

package printer

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/lithos-lang/ppkernel/doc"
	"github.com/lithos-lang/ppkernel/env"
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/term"
)

// Factory owns a small, fixed-size pool of Printer instances guarded by
// a weighted semaphore. A bare Printer carries per-call mutable state
// (purification tables, step counters) that two goroutines printing
// concurrently would stomp on; Factory lets many callers format terms
// at once without ever handing the same Printer to two of them
// simultaneously.
type Factory struct {
	sem   *semaphore.Weighted
	slots chan *Printer
}

// NewFactory builds a pool of size Printers sharing environment, checker
// and tokens.
func NewFactory(environment env.Environment, checker env.TypeChecker, tokens notation.TokenTable, size int) *Factory {
	if size <= 0 {
		size = 1
	}
	f := &Factory{
		sem:   semaphore.NewWeighted(int64(size)),
		slots: make(chan *Printer, size),
	}
	for i := 0; i < size; i++ {
		f.slots <- New(environment, checker, tokens, DefaultOptions())
	}
	return f
}

// Format acquires a pooled Printer, reconfigures it with options, prints
// e and renders the result to a string. ctx bounds how long the caller
// is willing to wait for a free slot.
func (f *Factory) Format(ctx context.Context, e term.Expr, options Options) (string, error) {
	if err := f.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("printer: acquiring pool slot: %w", err)
	}
	defer f.sem.Release(1)

	p := <-f.slots
	defer func() { f.slots <- p }()

	p.SetOptions(options)
	d := p.Print(e)
	return doc.Render(options.withDefaults().docOptions(), d), nil
}
