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

// Expr is the kernel expression language: a tagged variant over bound
// variables, sorts, constants, meta and local constants, applications,
// lambda/Pi abstractions, macros and numeric literals.
//
// The concrete variants below are value types; Expr itself is the
// interface all of them implement, so a term is built and matched by
// ordinary Go type switches.
type Expr interface {
	isExpr()
}

// Var is a bound variable referenced by de Bruijn index.
type Var struct{ Idx int }

// Sort is a universe sort, Sort(l) ~ "Type.{l}" (or "Prop" when l is the
// impredicative zero level and the environment is impredicative).
type Sort struct{ Level Level }

// Const is a reference to a declared constant, applied to universe level
// arguments.
type Const struct {
	Name   Name
	Levels []Level
}

// Meta is a metavariable: a placeholder for a term not yet determined,
// carrying its own type and an (initially arbitrary) name.
type Meta struct {
	Name Name
	Type Expr
}

// Local is a local constant: InternalName is the collision-free binder
// identity used for substitution, UserName is the name the user wrote
// (and the one purification may need to freshen for display).
type Local struct {
	InternalName Name
	UserName     Name
	Type         Expr
	Info         BinderInfo
}

// App is a function application.
type App struct {
	Fn, Arg Expr
}

// Lambda is a λ-abstraction. Body is in de Bruijn form relative to this
// binder; Name is a display hint, not an identity.
type Lambda struct {
	Name   Name
	Info   BinderInfo
	Domain Expr
	Body   Expr
}

// Pi is a dependent function type, Π(Name : Domain), Body.
type Pi struct {
	Name   Name
	Info   BinderInfo
	Domain Expr
	Body   Expr
}

// Macro is a named opaque construct carrying an ordered list of
// subexpressions. have/show/let/explicit/typed-expr/let-value/placeholder
// annotations are all encoded as macros recognized by name; see macro.go.
type Macro struct {
	Def  MacroDef
	Args []Expr
}

// NumLit is a numeral, printed as plain decimal text.
type NumLit struct{ Text string }

func (Var) isExpr()    {}
func (Sort) isExpr()   {}
func (Const) isExpr()  {}
func (Meta) isExpr()   {}
func (Local) isExpr()  {}
func (App) isExpr()    {}
func (Lambda) isExpr() {}
func (Pi) isExpr()     {}
func (Macro) isExpr()  {}
func (NumLit) isExpr() {}

// AppN applies fn to args left to right, building a left-nested spine.
func AppN(fn Expr, args ...Expr) Expr {
	e := fn
	for _, a := range args {
		e = App{Fn: e, Arg: a}
	}
	return e
}

// Spine decomposes an application spine into its head and its arguments
// in application order (first argument first).
func Spine(e Expr) (head Expr, args []Expr) {
	for {
		app, ok := e.(App)
		if !ok {
			reverse(args)
			return e, args
		}
		args = append(args, app.Arg)
		e = app.Fn
	}
}

func reverse(es []Expr) {
	for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
		es[i], es[j] = es[j], es[i]
	}
}

// HeadName returns the qualified name at the head of e's application
// spine, if the head is a constant. This is what notation lookup and
// coercion lookup key off of.
func HeadName(e Expr) (Name, bool) {
	head, _ := Spine(e)
	c, ok := head.(Const)
	if !ok {
		return Anonymous, false
	}
	return c.Name, true
}
