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

package doc

import "strings"

// Options configures Render.
type Options struct {
	// MaxWidth is the column at which a Group prefers to break. Zero means
	// unbounded (everything renders flat).
	MaxWidth int

	// IndentWidth records the caller's indent unit. Render does not read
	// it: a Nest(n, ...) always indents by exactly n columns, so callers
	// pass nest amounts already scaled by their own indent unit.
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 1 << 30
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

// Render lays d out as a string, breaking groups that do not fit within
// Options.MaxWidth columns.
func Render(options Options, d Doc) string {
	options = options.withDefaults()
	r := &renderer{opts: options}
	r.render(d, 0, false)
	return r.out.String()
}

type renderer struct {
	opts   Options
	out    strings.Builder
	column int
}

// render emits d starting at the renderer's current column. broken indicates whether
// the nearest enclosing Group has decided to break; indent is the column
// to return to after a broken Line.
func (r *renderer) render(d Doc, indent int, broken bool) {
	switch d.kind {
	case kindEmpty:
		return

	case kindText:
		r.out.WriteString(d.text)
		r.column += d.flatWidth()

	case kindLine:
		if broken {
			r.out.WriteByte('\n')
			r.out.WriteString(strings.Repeat(" ", indent))
			r.column = indent
		} else {
			r.out.WriteByte(' ')
			r.column++
		}

	case kindConcat:
		for _, c := range d.children {
			r.render(c, indent, broken)
		}

	case kindNest:
		for _, c := range d.children {
			r.render(c, indent+d.indent, broken)
		}

	case kindGroup:
		child := d.children[0]
		fits := r.column+child.flatWidth() <= r.opts.MaxWidth
		r.render(child, indent, !fits)

	case kindHighlight, kindHighlightKeyword:
		for _, c := range d.children {
			r.render(c, indent, broken)
		}
	}
}
