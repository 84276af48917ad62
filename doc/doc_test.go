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

package doc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lithos-lang/ppkernel/doc"
)

func TestRenderFlatWhenItFits(t *testing.T) {
	t.Parallel()
	d := doc.Group(doc.Compose(
		doc.Text("f"),
		doc.Nest(2, doc.Compose(doc.Line(), doc.Text("x"))),
	))
	got := doc.Render(doc.Options{MaxWidth: 80}, d)
	assert.Equal(t, "f x", got)
}

func TestRenderBreaksWhenTooWide(t *testing.T) {
	t.Parallel()
	d := doc.Group(doc.Compose(
		doc.Text("f"),
		doc.Nest(2, doc.Compose(doc.Line(), doc.Text("xxxxxxxxxx"))),
	))
	got := doc.Render(doc.Options{MaxWidth: 5}, d)
	assert.Equal(t, "f\n  xxxxxxxxxx", got)
}

func TestNestedGroupsBreakIndependently(t *testing.T) {
	t.Parallel()
	inner := doc.Group(doc.Compose(doc.Text("a"), doc.Line(), doc.Text("b")))
	outer := doc.Group(doc.Compose(
		doc.Text("outer("),
		doc.Nest(2, doc.Compose(doc.Line(), inner, doc.Text(",,,,,,,,,,,,,,,,,,,,,,,,,,,,,,"))),
	))
	got := doc.Render(doc.Options{MaxWidth: 10}, outer)
	assert.Equal(t, "outer(\n  a b,,,,,,,,,,,,,,,,,,,,,,,,,,,,,,", got)
}

func TestParenWrapsContent(t *testing.T) {
	t.Parallel()
	got := doc.Render(doc.Options{}, doc.Paren(doc.Text("x")))
	assert.Equal(t, "(x)", got)
}

func TestUnicodeWidthAffectsWrapping(t *testing.T) {
	t.Parallel()
	// λ is a single-column rune; this should behave the same as an ASCII
	// identifier of the same display width for layout purposes.
	d := doc.Group(doc.Compose(doc.Text("λ"), doc.Line(), doc.Text("x")))
	got := doc.Render(doc.Options{MaxWidth: 80}, d)
	assert.Equal(t, "λ x", got)
}
