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
	"github.com/lithos-lang/ppkernel/term"
)

// ppHave renders `have n : T, from proof, body`.
func (p *Printer) ppHave(lam term.Lambda, proof term.Expr) result {
	internal := p.freshInternalName()
	display := p.mkLocalName(internal, lam.Name)
	ty := p.purifyExpr(lam.Domain)
	local := term.Local{InternalName: internal, UserName: display, Type: ty, Info: lam.Info}
	body := term.Instantiate(lam.Body, local)

	tyRes := p.ppChild(ty, 0)
	proofRes := p.ppChild(proof, 0)
	bodyRes := p.ppChild(body, 0)

	head := doc.Compose(doc.HighlightKeyword(doc.Text("have")), doc.Space(), doc.Text(display.String()), doc.Space())
	if lam.Info == term.BinderContextual {
		head = doc.Compose(head, doc.HighlightKeyword(doc.Text("[visible]")), doc.Space())
	}

	d := doc.Compose(
		head, doc.Colon(), doc.Space(), tyRes.doc, doc.Comma(), doc.Space(),
		doc.HighlightKeyword(doc.Text("from")), doc.Space(), proofRes.doc, doc.Comma(),
		doc.Nest(p.options.Indent, doc.Compose(doc.Line(), bodyRes.doc)),
	)
	return result{lbp: 0, rbp: 0, doc: d}
}

// ppShow renders `show T, from proof`.
func (p *Printer) ppShow(ty, proof term.Expr) result {
	tyRes := p.ppChild(p.purifyExpr(ty), 0)
	proofRes := p.ppChild(proof, 0)
	d := doc.Compose(
		doc.HighlightKeyword(doc.Text("show")), doc.Space(), tyRes.doc, doc.Comma(), doc.Space(),
		doc.HighlightKeyword(doc.Text("from")), doc.Space(), proofRes.doc,
	)
	return result{lbp: 0, rbp: 0, doc: d}
}

// ppLet walks a chain of `let n := v in b` bindings, discarding any
// binding whose body never mentions it (collapsing straight to the
// inner body, possibly dropping the "let" entirely if nothing survives)
// and otherwise collecting "n := v" clauses into a single
// "let n := v, m := w in body" form.
func (p *Printer) ppLet(e term.Expr) result {
	type clause struct {
		name  term.Name
		value doc.Doc
	}
	var clauses []clause
	cur := e
	for {
		name, value, body, ok := term.IsLet(cur)
		if !ok {
			break
		}
		if !term.OccursFree(body, 0) {
			cur = term.Instantiate(body, term.Macro{Def: term.PlaceholderDef})
			continue
		}
		internal := p.freshInternalName()
		display := p.mkLocalName(internal, name)
		local := term.Local{InternalName: internal, UserName: display}
		valueRes := p.ppChild(p.purifyExpr(value), 0)
		clauses = append(clauses, clause{name: display, value: valueRes.doc})
		cur = term.Instantiate(body, local)
	}

	bodyRes := p.ppChild(cur, 0)
	if len(clauses) == 0 {
		return bodyRes
	}

	parts := make([]doc.Doc, len(clauses))
	for i, c := range clauses {
		parts[i] = doc.Compose(doc.Text(c.name.String()), doc.Space(), doc.Text(":="), doc.Space(), c.value)
	}
	d := doc.Compose(
		doc.HighlightKeyword(doc.Text("let")), doc.Space(), joinComma(parts), doc.Space(),
		doc.HighlightKeyword(doc.Text("in")), doc.Space(), bodyRes.doc,
	)
	return result{lbp: 0, rbp: 0, doc: d}
}
