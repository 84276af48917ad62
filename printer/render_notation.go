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
	"github.com/lithos-lang/ppkernel/doc"
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/term"
)

// tryNotation consults every notation entry registered against e's
// spine head, in registration order, returning the first one that both
// matches and renders. A miss at either step falls through to the next
// entry; exhausting every entry (or finding no head, or having notation
// display off) reports false so the caller structurally prints instead.
func (p *Printer) tryNotation(e term.Expr) (result, bool) {
	if !p.options.Notation {
		return result{}, false
	}
	head, ok := term.HeadName(e)
	if !ok {
		return result{}, false
	}
	for _, entry := range p.env.NotationEntries(head) {
		if !p.options.Unicode && !entry.ASCIISafe {
			continue
		}
		n := countPatternSlots(entry.Pattern)
		args := make([]term.Expr, n)
		if !p.matchNotation(entry.Pattern, e, args) {
			continue
		}
		if res, ok := p.renderNotation(entry, args); ok {
			return res, true
		}
	}
	return result{}, false
}

// renderNotation walks an entry's transitions right to left, popping
// matched subterms from the tail of args as each Expr transition is
// consumed (args is already ordered so its rightmost remaining slot is
// whatever transition is being rendered next, since both the renderer
// and the slot indexing work from the right). tokenLBP carries each
// transition's own token precedence leftward so that the transition to
// its left uses it as the left-binding-power gate for its child (i.e.
// every Expr child is gated by its right neighbor's token precedence,
// not by its own token's). lastRBP, the whole notation's resulting
// right-binding-power, starts at MaxBP-1 so a rightmost Skip whose token
// has no entry in the token table (a closing bracket) still reads as
// effectively atomic rather than spuriously parenthesizable. Any
// transition kind other than Skip or Expr aborts the render so the
// caller tries the next entry or falls back to structural printing.
func (p *Printer) renderNotation(entry notation.Entry, args []term.Expr) (result, bool) {
	transitions := entry.Transitions
	if len(transitions) == 0 {
		return result{}, false
	}

	cursor := len(args) - 1
	pieces := make([]doc.Doc, len(transitions))
	lastRBP := MaxBP - 1
	tokenLBP := 0

	for i := len(transitions) - 1; i >= 0; i-- {
		t := transitions[i]
		isRightmost := i == len(transitions)-1
		switch t.Action {
		case notation.ActionSkip:
			if isRightmost {
				if bp, ok := p.tokens.Precedence(t.Token); ok {
					lastRBP = bp
				}
			}
			pieces[i] = doc.Text(t.Token)
		case notation.ActionExpr:
			if cursor < 0 || args[cursor] == nil {
				return result{}, false
			}
			arg := args[cursor]
			cursor--
			childRes := p.ppNotationChild(arg, tokenLBP, t.RBP)
			if isRightmost {
				lastRBP = t.RBP
			}
			pieces[i] = doc.Compose(doc.Text(t.Token), doc.Space(), childRes.doc)
		default:
			return result{}, false
		}
		if bp, ok := p.tokens.Precedence(t.Token); ok {
			tokenLBP = bp
		} else {
			tokenLBP = 0
		}
	}

	firstLBP, _ := p.tokens.Precedence(transitions[0].Token)

	all := pieces
	if !entry.IsNud {
		if cursor < 0 || args[cursor] == nil {
			return result{}, false
		}
		left := args[cursor]
		cursor--
		leftRes := p.ppNotationChild(left, firstLBP, 0)
		all = append([]doc.Doc{leftRes.doc}, pieces...)
	}

	d := doc.Group(joinSpace(all))
	return result{lbp: firstLBP, rbp: lastRBP, doc: d}, true
}
