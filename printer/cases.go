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
	"strings"

	"github.com/lithos-lang/ppkernel/doc"
	"github.com/lithos-lang/ppkernel/term"
)

func (p *Printer) ppSort(v term.Sort) result {
	if _, isZero := v.Level.(term.LevelZero); isZero && p.env.Impredicative() {
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.HighlightKeyword(doc.Text("Prop"))}
	}
	kw := "Type"
	if !p.options.Universes {
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.HighlightKeyword(doc.Text(kw))}
	}
	d := doc.Compose(doc.HighlightKeyword(doc.Text(kw)), doc.Text(".{"+term.LevelText(v.Level)+"}"))
	return result{lbp: MaxBP, rbp: MaxBP, doc: d}
}

func (p *Printer) ppConst(v term.Const) result {
	name := p.shortenName(v.Name)
	text := name.String()
	if p.options.Universes && len(v.Levels) > 0 {
		parts := make([]string, len(v.Levels))
		for i, l := range v.Levels {
			if term.IsMaxOrIMax(l) {
				parts[i] = "(" + term.LevelText(l) + ")"
			} else {
				parts[i] = term.LevelText(l)
			}
		}
		text += ".{" + strings.Join(parts, " ") + "}"
	}
	return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Text(text)}
}

// shortenName applies constant-name shortening: strip the longest active
// namespace prefix that leaves a non-empty residual (unless full_names
// is on), preferring a registered alias when one is usable; then, unless
// private_names is on, resolve a hidden internal name to its public
// counterpart.
func (p *Printer) shortenName(name term.Name) term.Name {
	if !p.options.FullNames {
		if alias, ok := p.env.Alias(name); ok {
			name = alias
		} else {
			best := name
			for _, ns := range p.env.Namespaces() {
				if residual, ok := name.StripPrefix(ns); ok && len(residual.String()) < len(best.String()) {
					best = residual
				}
			}
			name = best
		}
	}
	if !p.options.PrivateNames {
		if resolved, ok := p.env.ResolveHidden(name); ok {
			name = resolved
		}
	}
	return name
}

// ppApp prints f a as "f ⟨nest line⟩ a", with f at AppBP (so a further
// left-nested application needs no parens) and a at MaxBP (so an
// argument that is itself an application does). When the spine's
// ultimate head has implicit parameters and implicit display is on, it
// is marked with a leading "@".
func (p *Printer) ppApp(v term.App) result {
	fnRes := p.ppHead(v.Fn)
	argRes := p.ppChild(v.Arg, MaxBP)
	d := doc.Group(doc.Compose(fnRes.doc, doc.Nest(p.options.Indent, doc.Compose(doc.Line(), argRes.doc))))
	return result{lbp: AppBP, rbp: AppBP, doc: d}
}

func (p *Printer) ppHead(fn term.Expr) result {
	if _, isApp := fn.(term.App); !isApp && p.options.Implicit && p.headHasImplicitParams(fn) {
		inner := p.ppChild(fn, AppBP)
		return result{lbp: inner.lbp, rbp: inner.rbp, doc: doc.Compose(doc.Text("@"), inner.doc)}
	}
	return p.ppChild(fn, AppBP)
}

// ppMacro prints an explicit annotation transparently, and everything
// else generically as "[name arg...]".
func (p *Printer) ppMacro(v term.Macro) result {
	if inner, ok := term.UnwrapExplicit(v); ok {
		return p.pp(inner)
	}
	parts := make([]doc.Doc, len(v.Args)+1)
	parts[0] = doc.Text(v.Def.MacroName())
	for i, a := range v.Args {
		parts[i+1] = p.ppChild(a, MaxBP).doc
	}
	d := doc.Compose(doc.Text("["), joinSpace(parts), doc.Text("]"))
	return result{lbp: MaxBP, rbp: MaxBP, doc: d}
}

// ppCoercion elides a registered coercion's head and its leading arity
// arguments. With too few arguments to strip, it falls back to generic
// printing. With exactly arity+1 arguments, the single remaining
// argument is exposed as-is. With more, a fresh application of the
// exposed head to the remaining arguments is printed in its place.
func (p *Printer) ppCoercion(e term.Expr, arity int) result {
	_, args := term.Spine(e)
	switch {
	case len(args) <= arity:
		return p.pp(e)
	case len(args) == arity+1:
		return p.resolveChild(args[arity])
	default:
		remaining := term.AppN(args[arity], args[arity+1:]...)
		return p.resolveChild(remaining)
	}
}
