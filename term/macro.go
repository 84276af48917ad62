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

package term

// MacroDef names an opaque macro constructor. The pretty printer special
// cases a handful of well-known defs (placeholder, have, show, let,
// typed-expr, let-value, explicit) that are transparent surface
// annotations rather than kernel-visible syntax; everything else prints
// generically as "[name arg...]".
type MacroDef interface {
	MacroName() string
}

type builtinMacroDef string

func (d builtinMacroDef) MacroName() string { return string(d) }

// UserMacroDef wraps an arbitrary user-defined macro name for the
// generic "[name arg...]" rendering path.
type UserMacroDef string

func (d UserMacroDef) MacroName() string { return string(d) }

const (
	// PlaceholderDef marks a "_" the elaborator is meant to fill in.
	PlaceholderDef builtinMacroDef = "placeholder"
	// HaveDef wraps the Lambda introduced by MkHave.
	HaveDef builtinMacroDef = "have"
	// ShowDef wraps the application introduced by MkShow.
	ShowDef builtinMacroDef = "show"
	// LetDef wraps the Lambda introduced by MkLet.
	LetDef builtinMacroDef = "let"
	// TypedExprDef wraps a (type, expr) pair; printing skips straight to expr.
	TypedExprDef builtinMacroDef = "typed_expr"
	// LetValueDef wraps a single expr produced while elaborating a let value.
	LetValueDef builtinMacroDef = "let_value"
	// ExplicitDef wraps an expr prefixed with "@" to suppress implicit
	// argument insertion.
	ExplicitDef builtinMacroDef = "explicit"
)

// IsPlaceholder reports whether e is the "_" placeholder macro.
func IsPlaceholder(e Expr) bool {
	m, ok := e.(Macro)
	return ok && m.Def == MacroDef(PlaceholderDef)
}

// MkHave builds the surface form of `have n [: T] from proof, body`.
func MkHave(name Name, info BinderInfo, ty, proof, body Expr) Expr {
	lam := Lambda{Name: name, Info: info, Domain: ty, Body: body}
	return App{Fn: Macro{Def: HaveDef, Args: []Expr{lam}}, Arg: proof}
}

// IsHave reports whether e is a `have` form, and if so returns its
// binder Lambda and the supplied proof term.
func IsHave(e Expr) (lam Lambda, proof Expr, ok bool) {
	app, ok := e.(App)
	if !ok {
		return Lambda{}, nil, false
	}
	m, ok := app.Fn.(Macro)
	if !ok || m.Def != MacroDef(HaveDef) || len(m.Args) != 1 {
		return Lambda{}, nil, false
	}
	lam, ok = m.Args[0].(Lambda)
	if !ok {
		return Lambda{}, nil, false
	}
	return lam, app.Arg, true
}

// MkShow builds the surface form of `show T from proof`. The wrapped
// Lambda's body is never printed; only its domain (the shown type) and
// the applied proof matter for display, mirroring the annotation's
// origin as a transparent wrapper around an already-elaborated proof
// term.
func MkShow(ty, proof Expr) Expr {
	lam := Lambda{Name: Anonymous, Info: BinderDefault, Domain: ty, Body: Var{Idx: 0}}
	return Macro{Def: ShowDef, Args: []Expr{App{Fn: lam, Arg: proof}}}
}

// IsShow reports whether e is a `show` form, returning its shown type
// and proof term.
func IsShow(e Expr) (ty, proof Expr, ok bool) {
	m, ok := e.(Macro)
	if !ok || m.Def != MacroDef(ShowDef) || len(m.Args) != 1 {
		return nil, nil, false
	}
	app, ok := m.Args[0].(App)
	if !ok {
		return nil, nil, false
	}
	lam, ok := app.Fn.(Lambda)
	if !ok {
		return nil, nil, false
	}
	return lam.Domain, app.Arg, true
}

// MkLet builds `let n := value in body`, with body in de Bruijn form
// relative to the new binding (index 0 refers to it).
func MkLet(name Name, value, body Expr) Expr {
	lam := Lambda{Name: name, Info: BinderDefault, Domain: Macro{Def: PlaceholderDef}, Body: body}
	return Macro{Def: LetDef, Args: []Expr{value, lam}}
}

// IsLet reports whether e is a `let` form, returning its bound name,
// value and body (body still in de Bruijn form, one binder deep).
func IsLet(e Expr) (name Name, value, body Expr, ok bool) {
	m, ok := e.(Macro)
	if !ok || m.Def != MacroDef(LetDef) || len(m.Args) != 2 {
		return Anonymous, nil, nil, false
	}
	lam, ok := m.Args[1].(Lambda)
	if !ok {
		return Anonymous, nil, nil, false
	}
	return lam.Name, m.Args[0], lam.Body, true
}

// MkTypedExpr wraps expr with an elaborated type annotation that the
// printer unwraps transparently.
func MkTypedExpr(ty, expr Expr) Expr {
	return Macro{Def: TypedExprDef, Args: []Expr{ty, expr}}
}

// UnwrapTypedExpr returns the inner expression if e is a typed-expr
// annotation.
func UnwrapTypedExpr(e Expr) (Expr, bool) {
	m, ok := e.(Macro)
	if !ok || m.Def != MacroDef(TypedExprDef) || len(m.Args) != 2 {
		return nil, false
	}
	return m.Args[1], true
}

// MkLetValue wraps expr as an elaborated let-value annotation.
func MkLetValue(expr Expr) Expr {
	return Macro{Def: LetValueDef, Args: []Expr{expr}}
}

// UnwrapLetValue returns the inner expression if e is a let-value
// annotation.
func UnwrapLetValue(e Expr) (Expr, bool) {
	m, ok := e.(Macro)
	if !ok || m.Def != MacroDef(LetValueDef) || len(m.Args) != 1 {
		return nil, false
	}
	return m.Args[0], true
}

// MkExplicit marks inner with the "@" explicit-application annotation.
func MkExplicit(inner Expr) Expr {
	return Macro{Def: ExplicitDef, Args: []Expr{inner}}
}

// UnwrapExplicit returns the wrapped expression if e carries the "@"
// annotation.
func UnwrapExplicit(e Expr) (Expr, bool) {
	m, ok := e.(Macro)
	if !ok || m.Def != MacroDef(ExplicitDef) || len(m.Args) != 1 {
		return nil, false
	}
	return m.Args[0], true
}
