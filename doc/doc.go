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

// Package doc is a small Wadler-style pretty-printing document algebra:
// text, concatenation, indentation groups and soft line breaks, laid out
// against a maximum column width.
//
// It plays the same role as the document/layout engine that the kernel
// pretty printer in package printer treats as an external collaborator:
// printer never inspects a Doc's internals, only composes new ones from
// the primitives here.
package doc

import "github.com/rivo/uniseg"

// Doc is an immutable formatting document. The zero value is the empty
// document.
type Doc struct {
	kind     kind
	text     string
	indent   int
	children []Doc
}

type kind int

const (
	kindEmpty kind = iota
	kindText
	kindLine     // becomes a space when flat, a newline+indent when broken
	kindConcat
	kindNest
	kindGroup
	kindHighlight
	kindHighlightKeyword
)

// Text returns a document that renders s verbatim, regardless of its
// surrounding group's flat/broken decision.
func Text(s string) Doc {
	if s == "" {
		return Doc{}
	}
	return Doc{kind: kindText, text: s}
}

// Space is shorthand for Text(" ").
func Space() Doc { return Text(" ") }

// Comma is shorthand for Text(",").
func Comma() Doc { return Text(",") }

// Colon is shorthand for Text(":").
func Colon() Doc { return Text(":") }

// Line is a soft line break: a single space when its enclosing Group lays
// out flat, and a newline (plus the current indentation) when it breaks.
func Line() Doc { return Doc{kind: kindLine} }

// Compose concatenates documents left to right.
func Compose(docs ...Doc) Doc {
	flat := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if d.kind == kindEmpty {
			continue
		}
		flat = append(flat, d)
	}
	if len(flat) == 0 {
		return Doc{}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Doc{kind: kindConcat, children: flat}
}

// Nest increases the indentation used by any Line inside d by n columns,
// once d's enclosing group has broken.
func Nest(n int, d Doc) Doc {
	if d.kind == kindEmpty {
		return d
	}
	return Doc{kind: kindNest, indent: n, children: []Doc{d}}
}

// Group marks d as a unit whose internal Lines are rendered flat (as
// spaces) if d fits on the remainder of the current line, and broken
// (as newlines) otherwise. Groups nest: a broken outer group does not
// force its inner groups to break if they fit.
func Group(d Doc) Doc {
	if d.kind == kindEmpty {
		return d
	}
	return Doc{kind: kindGroup, children: []Doc{d}}
}

// Paren wraps d in literal parentheses, hugging its content.
func Paren(d Doc) Doc {
	return Compose(Text("("), d, Text(")"))
}

// Highlight marks d for non-keyword emphasis (e.g. literals) in renderers
// that support it. Plain-text rendering is unaffected.
func Highlight(d Doc) Doc {
	if d.kind == kindEmpty {
		return d
	}
	return Doc{kind: kindHighlight, children: []Doc{d}}
}

// HighlightKeyword marks d as a language keyword for renderers that
// support emphasis. Plain-text rendering is unaffected.
func HighlightKeyword(d Doc) Doc {
	if d.kind == kindEmpty {
		return d
	}
	return Doc{kind: kindHighlightKeyword, children: []Doc{d}}
}

// IsEmpty reports whether d renders to the empty string.
func (d Doc) IsEmpty() bool { return d.kind == kindEmpty }

// flatWidth measures the flat (unbroken) display width of d, counting
// every Line as one column.
func (d Doc) flatWidth() int {
	switch d.kind {
	case kindEmpty:
		return 0
	case kindText:
		return uniseg.StringWidth(d.text)
	case kindLine:
		return 1
	case kindConcat:
		total := 0
		for _, c := range d.children {
			total += c.flatWidth()
		}
		return total
	case kindNest, kindGroup, kindHighlight, kindHighlightKeyword:
		total := 0
		for _, c := range d.children {
			total += c.flatWidth()
		}
		return total
	default:
		return 0
	}
}
