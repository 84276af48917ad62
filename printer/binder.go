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
	"github.com/lithos-lang/ppkernel/term"
)

// binderGroup is a run of consecutive binders that share a binder info
// and (structurally equal) domain, collapsed into a single bracketed
// name list: "(x y : T)" rather than "(x : T) (y : T)".
type binderGroup struct {
	names  []term.Name
	info   term.BinderInfo
	domain term.Expr
}

// freshInternalName mints a synthetic internal identity for a binder
// the formatter is about to introduce as a Local, scoped to one Print
// call.
func (p *Printer) freshInternalName() term.Name {
	p.localSeq++
	return term.ParseName(fmt.Sprintf("$bv%d", p.localSeq))
}

// collapseBinders walks a homogeneous chain of Lambda (or Pi) nodes
// starting at e, introducing a fresh Local for each crossed binder and
// substituting it into the remaining body, grouping consecutive binders
// whose info and (purified) domain match. It stops at the first node
// that is not the same kind as e.
func (p *Printer) collapseBinders(e term.Expr) (groups []binderGroup, body term.Expr, isPi bool) {
	switch e.(type) {
	case term.Lambda:
	case term.Pi:
		isPi = true
	default:
		return nil, e, false
	}

	for {
		var name term.Name
		var info term.BinderInfo
		var domain, next term.Expr

		switch v := e.(type) {
		case term.Lambda:
			if isPi {
				return groups, e, isPi
			}
			name, info, domain, next = v.Name, v.Info, v.Domain, v.Body
		case term.Pi:
			if !isPi {
				return groups, e, isPi
			}
			name, info, domain, next = v.Name, v.Info, v.Domain, v.Body
		default:
			return groups, e, isPi
		}

		purifiedDomain := p.purifyExpr(domain)
		internal := p.freshInternalName()
		display := p.mkLocalName(internal, name)
		local := term.Local{InternalName: internal, UserName: display, Type: purifiedDomain, Info: info}
		bodyNext := term.Instantiate(next, local)

		if n := len(groups); n > 0 && groups[n-1].info == info && exprEqual(groups[n-1].domain, purifiedDomain) {
			groups[n-1].names = append(groups[n-1].names, display)
		} else {
			groups = append(groups, binderGroup{names: []term.Name{display}, info: info, domain: purifiedDomain})
		}
		e = bodyNext
	}
}

func (p *Printer) renderBinderGroup(g binderGroup) doc.Doc {
	var open, close string
	switch g.info {
	case term.BinderImplicit:
		open, close = "{", "}"
	case term.BinderStrictImplicit:
		if p.options.Unicode {
			open, close = "⦃", "⦄"
		} else {
			open, close = "{{", "}}"
		}
	case term.BinderInstImplicit:
		open, close = "[", "]"
	default:
		open, close = "(", ")"
	}
	names := make([]doc.Doc, len(g.names))
	for i, n := range g.names {
		names[i] = doc.Text(n.String())
	}
	domainDoc := p.ppChild(g.domain, 0).doc
	return doc.Compose(
		doc.Text(open), joinSpace(names), doc.Space(), doc.Colon(), doc.Space(), domainDoc, doc.Text(close),
	)
}

func (p *Printer) ppLambda(e term.Lambda) result {
	groups, body, _ := p.collapseBinders(e)
	kw := "λ"
	if !p.options.Unicode {
		kw = "fun"
	}
	binderDocs := make([]doc.Doc, len(groups))
	for i, g := range groups {
		binderDocs[i] = p.renderBinderGroup(g)
	}
	bodyRes := p.ppChild(body, 0)
	d := doc.Group(doc.Compose(
		doc.HighlightKeyword(doc.Text(kw)), doc.Space(), joinSpace(binderDocs), doc.Comma(),
		doc.Nest(p.options.Indent, doc.Compose(doc.Line(), bodyRes.doc)),
	))
	return result{lbp: 0, rbp: 0, doc: d}
}

func (p *Printer) ppPi(e term.Pi) result {
	if res, ok := p.tryArrowForm(e); ok {
		return res
	}
	groups, body, _ := p.collapseBinders(e)
	isForall := p.checker.IsProp(body)
	var kw string
	switch {
	case isForall && p.options.Unicode:
		kw = "∀"
	case isForall:
		kw = "forall"
	case p.options.Unicode:
		kw = "Π"
	default:
		kw = "Pi"
	}
	binderDocs := make([]doc.Doc, len(groups))
	for i, g := range groups {
		binderDocs[i] = p.renderBinderGroup(g)
	}
	bodyRes := p.ppChild(body, 0)
	d := doc.Group(doc.Compose(
		doc.HighlightKeyword(doc.Text(kw)), doc.Space(), joinSpace(binderDocs), doc.Comma(),
		doc.Nest(p.options.Indent, doc.Compose(doc.Line(), bodyRes.doc)),
	))
	return result{lbp: 0, rbp: 0, doc: d}
}

// tryArrowForm recognizes a non-dependent Pi (default binder info, body
// not mentioning the bound variable) and renders it as "A → B" instead
// of "Π (_ : A), B". The dropped binder still leaves B's remaining free
// variables one index too high for its new, binder-less frame, so B is
// lifted by one before being printed — a literal reading of the
// reference behavior rather than a reindexing "fix".
func (p *Printer) tryArrowForm(pi term.Pi) (result, bool) {
	if pi.Info != term.BinderDefault {
		return result{}, false
	}
	if term.OccursFree(pi.Body, 0) {
		return result{}, false
	}
	domain := p.purifyExpr(pi.Domain)
	body := p.purifyExpr(term.LiftFreeVars(pi.Body, 1))

	domainRes := p.ppChild(domain, ArrowBP)
	bodyRes := p.ppChild(body, ArrowBP-1)

	token := "→"
	if !p.options.Unicode {
		token = "->"
	}
	d := doc.Group(doc.Compose(
		domainRes.doc, doc.Space(), doc.Text(token),
		doc.Nest(p.options.Indent, doc.Compose(doc.Line(), bodyRes.doc)),
	))
	return result{lbp: ArrowBP - 1, rbp: ArrowBP - 1, doc: d}, true
}
