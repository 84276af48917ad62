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
	"fmt"

	"github.com/lithos-lang/ppkernel/doc"
	"github.com/lithos-lang/ppkernel/env"
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/term"
)

// Binding powers. MaxBP is the tightest context (an atom never needs
// parens); AppBP is one below it, giving left-nested application chains
// ("f a b") no parens while any argument that is itself an application
// ("f (g x)") gets them; ArrowBP is the Pi arrow form's precedence.
const (
	MaxBP   = 1024
	AppBP   = MaxBP - 1
	ArrowBP = 25
)

// result is what every case printer and notation render produces: a
// document plus the binding powers that govern whether a caller needs
// to parenthesize it.
type result struct {
	lbp, rbp int
	doc      doc.Doc
}

// Printer renders kernel terms to documents. A single instance is not
// safe for concurrent use — its purification tables and step counters
// are reset and mutated across one Print call — see Factory for a
// pool that is.
type Printer struct {
	env     env.Environment
	checker env.TypeChecker
	tokens  notation.TokenTable
	options Options

	depth    int
	numSteps int
	localSeq int

	metaPrefix  string
	nextMetaIdx int
	metaTable   map[string]string
	localTable  map[string]string
	usedLocals  map[string]bool
}

// New builds a Printer over environment, using checker for the fallible
// type queries implicit-argument detection and arrow-form decisions
// need, and tokens for notation binding powers.
func New(environment env.Environment, checker env.TypeChecker, tokens notation.TokenTable, options Options) *Printer {
	return &Printer{
		env:     environment,
		checker: checker,
		tokens:  tokens,
		options: options.withDefaults(),
	}
}

// SetOptions reconfigures p for a subsequent Print call.
func (p *Printer) SetOptions(options Options) {
	p.options = options.withDefaults()
}

// Print is the top-level operator: reset the purification and step
// state, purify e, optionally β-reduce it, then print it as a child at
// the loosest binding power.
func (p *Printer) Print(e term.Expr) doc.Doc {
	p.depth = 0
	p.numSteps = 0
	p.localSeq = 0
	p.metaPrefix = "M"
	p.nextMetaIdx = 1
	p.metaTable = make(map[string]string)
	p.localTable = make(map[string]string)
	p.usedLocals = make(map[string]bool)

	e = p.purifyExpr(e)
	if p.options.Beta {
		e = term.BetaReduce(e, p.options.MaxSteps)
	}
	return p.ppChild(e, 0).doc
}

func (p *Printer) ellipsis() string {
	if p.options.Unicode {
		return "…"
	}
	return "..."
}

// pp dispatches a single subterm: depth/step budget, then notation, then
// the transparent annotations, then the structural case printers.
func (p *Printer) pp(e term.Expr) result {
	if p.depth >= p.options.MaxDepth || p.numSteps >= p.options.MaxSteps {
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Text(p.ellipsis())}
	}
	p.numSteps++
	p.depth++
	defer func() { p.depth-- }()

	if res, ok := p.tryNotation(e); ok {
		return res
	}

	if term.IsPlaceholder(e) {
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Text("_")}
	}
	if lam, proof, ok := term.IsHave(e); ok {
		return p.ppHave(lam, proof)
	}
	if ty, proof, ok := term.IsShow(e); ok {
		return p.ppShow(ty, proof)
	}
	if _, _, _, ok := term.IsLet(e); ok {
		return p.ppLet(e)
	}
	if inner, ok := term.UnwrapTypedExpr(e); ok {
		return p.pp(inner)
	}
	if inner, ok := term.UnwrapLetValue(e); ok {
		return p.pp(inner)
	}

	if !p.options.MetavarArgs {
		if head, args := term.Spine(e); len(args) > 0 {
			if m, ok := head.(term.Meta); ok {
				return p.pp(m)
			}
		}
	}

	switch v := e.(type) {
	case term.Var:
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Text(fmt.Sprintf("#%d", v.Idx))}
	case term.Sort:
		return p.ppSort(v)
	case term.Const:
		return p.ppConst(v)
	case term.Meta:
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Text("?" + v.Name.String())}
	case term.Local:
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Text(v.UserName.String())}
	case term.App:
		return p.ppApp(v)
	case term.Lambda:
		return p.ppLambda(v)
	case term.Pi:
		return p.ppPi(v)
	case term.Macro:
		return p.ppMacro(v)
	case term.NumLit:
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Highlight(doc.Text(v.Text))}
	default:
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Text("?")}
	}
}

// resolveChild handles the two concerns that sit between "print this
// subterm" and "parenthesize it for this context": implicit-application
// transparency and coercion elision. Both ppChild and ppNotationChild
// funnel through here before applying their own gating rule.
func (p *Printer) resolveChild(e term.Expr) result {
	if app, ok := e.(term.App); ok && !p.options.Implicit {
		if info, ok2 := p.argBinderInfo(app); ok2 && info.IsImplicitLike() {
			return p.resolveChild(app.Fn)
		}
	}
	if !p.options.Coercions {
		if head, ok := term.HeadName(e); ok {
			if arity, isCoe := p.env.IsCoercion(head); isCoe {
				return p.ppCoercion(e, arity)
			}
		}
	}
	return p.pp(e)
}

// ppChild prints e as a child demanding binding power bp, parenthesizing
// if e's own right binding power is too loose for that context.
func (p *Printer) ppChild(e term.Expr, bp int) result {
	res := p.resolveChild(e)
	if res.rbp < bp {
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Paren(res.doc)}
	}
	return res
}

// ppNotationChild is ppChild's two-gate counterpart for a notation's
// non-edge slots: e needs parens if its right binding power is too loose
// for what sits to its left, or its left binding power is too loose for
// what sits to its right.
func (p *Printer) ppNotationChild(e term.Expr, leftBP, rightBP int) result {
	res := p.resolveChild(e)
	if res.rbp < leftBP || res.lbp <= rightBP {
		return result{lbp: MaxBP, rbp: MaxBP, doc: doc.Paren(res.doc)}
	}
	return res
}

// argBinderInfo infers app.Fn's type and reports the binder info of the
// Pi parameter that app.Arg fills, if that can be determined at all.
func (p *Printer) argBinderInfo(app term.App) (term.BinderInfo, bool) {
	fnType, ok := p.checker.Infer(app.Fn)
	if !ok {
		return 0, false
	}
	pi, ok := p.checker.EnsurePi(fnType)
	if !ok {
		return 0, false
	}
	return pi.Info, true
}

// headHasImplicitParams walks head's inferred Pi chain looking for any
// implicit-like parameter, bounding the walk so a checker that keeps
// reporting Pi types can never loop this forever.
func (p *Printer) headHasImplicitParams(head term.Expr) bool {
	ty, ok := p.checker.Infer(head)
	if !ok {
		return false
	}
	for i := 0; i < 64; i++ {
		pi, ok := p.checker.EnsurePi(ty)
		if !ok {
			return false
		}
		if pi.Info.IsImplicitLike() {
			return true
		}
		ty = pi.Body
	}
	return false
}

func joinSpace(ds []doc.Doc) doc.Doc {
	out := make([]doc.Doc, 0, len(ds)*2-1)
	for i, d := range ds {
		if i > 0 {
			out = append(out, doc.Space())
		}
		out = append(out, d)
	}
	return doc.Compose(out...)
}

func joinComma(ds []doc.Doc) doc.Doc {
	out := make([]doc.Doc, 0, len(ds)*2-1)
	for i, d := range ds {
		if i > 0 {
			out = append(out, doc.Comma(), doc.Space())
		}
		out = append(out, d)
	}
	return doc.Compose(out...)
}
