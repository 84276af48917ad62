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

import "github.com/lithos-lang/ppkernel/term"

// countPatternSlots returns the number of distinct pattern variables a
// notation entry's sample expression references: one more than the
// highest free de Bruijn index occurring in it, treating the pattern
// itself as a binder-free frame at depth 0.
func countPatternSlots(pattern term.Expr) int {
	max := -1
	var walk func(term.Expr, int)
	walk = func(e term.Expr, depth int) {
		switch v := e.(type) {
		case term.Var:
			if idx := v.Idx - depth; idx > max {
				max = idx
			}
		case term.App:
			walk(v.Fn, depth)
			walk(v.Arg, depth)
		case term.Lambda:
			walk(v.Domain, depth)
			walk(v.Body, depth+1)
		case term.Pi:
			walk(v.Domain, depth)
			walk(v.Body, depth+1)
		case term.Macro:
			for _, a := range v.Args {
				walk(a, depth)
			}
		case term.Meta:
			walk(v.Type, depth)
		case term.Local:
			walk(v.Type, depth)
		}
	}
	walk(pattern, 0)
	return max + 1
}

// matchNotation tries to match pattern against e, recording captured
// subterms into args (indexed so that the pattern variable at de Bruijn
// index i occupies slot len(args)-1-i — i.e. "from the right"). Returns
// false on any mismatch; args may be partially filled on failure, but
// the caller always discards it in that case.
func (p *Printer) matchNotation(pattern, e term.Expr, args []term.Expr) bool {
	if inner, ok := term.UnwrapExplicit(pattern); ok {
		if app, isApp := inner.(term.App); isApp {
			return p.matchAppExplicit(app, e, args)
		}
		return p.matchNotation(inner, e, args)
	}
	if term.IsPlaceholder(pattern) {
		return true
	}
	switch pv := pattern.(type) {
	case term.Var:
		slot := len(args) - 1 - pv.Idx
		if slot < 0 || slot >= len(args) {
			return false
		}
		if args[slot] != nil {
			return exprEqual(args[slot], e)
		}
		args[slot] = e
		return true
	case term.Const:
		ev, ok := e.(term.Const)
		if !ok || !pv.Name.Equal(ev.Name) {
			return false
		}
		return p.matchLevelsPointwise(pv, ev)
	case term.Sort:
		ev, ok := e.(term.Sort)
		if !ok {
			return false
		}
		return p.matchLevel(pv.Level, ev.Level)
	case term.App:
		return p.matchApp(pv, e, args)
	default:
		return false
	}
}

// matchAppExplicit handles an "@f a b" pattern: the head and every
// argument must match positionally, with no implicit-argument skipping
// and no tolerance for a differing number of arguments.
func (p *Printer) matchAppExplicit(pv term.App, e term.Expr, args []term.Expr) bool {
	pHead, pArgs := term.Spine(pv)
	eHead, eArgs := term.Spine(e)
	if len(pArgs) != len(eArgs) {
		return false
	}
	if !p.matchNotation(pHead, eHead, args) {
		return false
	}
	for i := range pArgs {
		if !p.matchNotation(pArgs[i], eArgs[i], args) {
			return false
		}
	}
	return true
}

// matchApp handles a plain application pattern: match the heads, then
// match the pattern's arguments against only the term's explicit-
// position arguments (determined by walking the head's inferred Pi
// type), skipping anything implicit. Succeeds only if that leaves
// exactly as many explicit term arguments as pattern arguments.
func (p *Printer) matchApp(pv term.App, e term.Expr, args []term.Expr) bool {
	pHead, pArgs := term.Spine(pv)
	eHead, eArgs := term.Spine(e)
	if !p.matchNotation(pHead, eHead, args) {
		return false
	}
	explicitArgs := p.explicitPositions(eHead, eArgs)
	if len(pArgs) != len(explicitArgs) {
		return false
	}
	for i, pa := range pArgs {
		if !p.matchNotation(pa, explicitArgs[i], args) {
			return false
		}
	}
	return true
}

// explicitPositions walks head's inferred Pi-type, classifying each
// argument (in application order) by that position's binder info, and
// returns only the ones that land on an explicit (non-implicit-like)
// parameter. If the head's type can't be inferred, every argument is
// conservatively treated as explicit.
func (p *Printer) explicitPositions(head term.Expr, args []term.Expr) []term.Expr {
	ty, ok := p.checker.Infer(head)
	if !ok {
		return args
	}
	var explicit []term.Expr
	for _, a := range args {
		pi, ok := p.checker.EnsurePi(ty)
		if !ok {
			explicit = append(explicit, a)
			continue
		}
		if !pi.Info.IsImplicitLike() {
			explicit = append(explicit, a)
		}
		ty = term.Instantiate(pi.Body, a)
	}
	return explicit
}

// matchLevelsPointwise compares two constants' universe-level argument
// lists. The length check uses both sides, so a genuine arity mismatch
// always fails; the pointwise comparison that follows deliberately
// re-reads the pattern's own level list on both sides rather than the
// matched term's, mirroring a read-the-pattern-twice quirk in the
// reference matcher that a conservative reimplementation is expected to
// preserve rather than silently correct.
func (p *Printer) matchLevelsPointwise(pv, ev term.Const) bool {
	if len(pv.Levels) != len(ev.Levels) {
		return false
	}
	patternLevels := pv.Levels
	sameLevels := pv.Levels
	for i := range patternLevels {
		if !p.matchLevel(patternLevels[i], sameLevels[i]) {
			return false
		}
	}
	return true
}

// matchLevel compares a pattern level against a term level: structural
// equality always succeeds; otherwise, with universes off, a LevelMeta
// in the pattern acts as a wildcard and two successors match if their
// predecessors do.
func (p *Printer) matchLevel(pv, ev term.Level) bool {
	if term.LevelEqual(pv, ev) {
		return true
	}
	if p.options.Universes {
		return false
	}
	if _, ok := pv.(term.LevelMeta); ok {
		return true
	}
	ps, pok := term.IsSucc(pv)
	es, eok := term.IsSucc(ev)
	if pok && eok {
		return p.matchLevel(ps, es)
	}
	return false
}
