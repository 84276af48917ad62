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

// Package notation defines the data shapes for a user-extensible table
// of mixfix notations: the token-transition sequences the renderer walks
// and the sample patterns the matcher compares subterms against.
//
// This package holds only data types; the matching and rendering logic
// lives in package printer, since both need tight, call-by-call
// coupling with the child printer (to recursively print matched
// subterms at the right binding power) that would otherwise force a
// circular import between the two packages.
package notation

import "github.com/lithos-lang/ppkernel/term"

// ActionKind classifies what a Transition consumes from the term being
// matched/rendered.
type ActionKind int

const (
	// ActionSkip emits a literal token and consumes nothing.
	ActionSkip ActionKind = iota
	// ActionExpr consumes one subterm, parsed/printed at the given
	// right-binding-power.
	ActionExpr
	// ActionExprs consumes a repeated list of subterms (unimplemented;
	// see Entry doc comment).
	ActionExprs
	// ActionBinder consumes a single binder (unimplemented).
	ActionBinder
	// ActionBinders consumes a list of binders (unimplemented).
	ActionBinders
	// ActionScopedExpr consumes an expression under an extended binder
	// scope (unimplemented).
	ActionScopedExpr
	// ActionExt defers to an external extension parser/printer
	// (unimplemented).
	ActionExt
	// ActionLuaExt defers to a scripted extension (unimplemented).
	ActionLuaExt
)

// Transition is one step of a notation's token sequence.
type Transition struct {
	Token  string
	Action ActionKind
	// RBP is the right-binding-power passed to the child printer when
	// Action is ActionExpr. Unused otherwise.
	RBP int
}

// Entry is one registered mixfix notation.
//
// ActionExprs, ActionBinder, ActionBinders and ActionScopedExpr are
// accepted in a Transition's Action field but not actually matched or
// rendered: the matcher/renderer abort and fall back to structural
// printing on encountering them, per the degrade-gracefully policy for
// unsupported notation actions.
type Entry struct {
	// Transitions is the token sequence, left to right as a reader would
	// encounter it; the renderer walks it right to left.
	Transitions []Transition

	// Pattern is a sample expression used to match candidate terms
	// against this entry: its shape (constant heads, bound-variable
	// positions) drives the matcher in printer/match.go.
	Pattern term.Expr

	// ASCIISafe reports whether every token in Transitions is plain
	// ASCII; entries without this set are skipped when pp.unicode is
	// off.
	ASCIISafe bool

	// IsNumeralLit marks an entry that renders bare numeral literals
	// (e.g. a notation for `OfNat` instances). The printer does not read
	// this flag and does no numeral folding: such entries are tried in
	// registration order like any other.
	IsNumeralLit bool

	// IsNud marks a prefix (null-denotation) entry, i.e. one with no
	// left operand. A non-nud entry is a left-denotation (mixfix or
	// postfix) entry whose leftmost pattern variable is the left
	// operand.
	IsNud bool
}

// TokenTable maps a literal token to the binding power a parser using
// the same table would assign it, so the renderer can compute last_rbp
// for the rightmost Skip transition.
type TokenTable interface {
	Precedence(tok string) (int, bool)
}

// MapTokenTable is the simplest TokenTable: a fixed map from token text
// to binding power.
type MapTokenTable map[string]int

// Precedence implements TokenTable.
func (t MapTokenTable) Precedence(tok string) (int, bool) {
	bp, ok := t[tok]
	return bp, ok
}
