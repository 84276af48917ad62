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

// Package env provides the declaration environment, namespace and alias
// resolution, notation-entry index, coercion registry and a conservative
// type checker that the printer package consumes through narrow
// interfaces. None of this is meant to be a real elaborator: it is just
// enough machinery to drive the pretty printer's name-shortening and
// implicit-argument-detection logic end to end.
package env

import (
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/term"
)

// Declaration is a minimal entry in the environment: a name and its type.
type Declaration struct {
	Name term.Name
	Type term.Expr
}

// Environment is everything the printer consumes about declared names,
// namespaces, notations and coercions. It is read-only from the
// printer's point of view.
type Environment interface {
	// Lookup finds a declaration by its fully qualified name.
	Lookup(name term.Name) (Declaration, bool)

	// Namespaces returns the currently active namespaces, innermost
	// first. Constant-name shortening strips the longest active prefix.
	Namespaces() []term.Name

	// Alias resolves a registered short alias for a fully qualified
	// name, along with whether that alias is currently usable (i.e. not
	// shadowed by a declaration of the same name under an active
	// namespace).
	Alias(name term.Name) (alias term.Name, usable bool)

	// ResolveHidden maps a hidden (hygiene/elaboration) internal name to
	// its user-facing name, if pp.private_names is off.
	ResolveHidden(name term.Name) (term.Name, bool)

	// NotationEntries returns the notation entries registered against a
	// constant head, in registration order (the matcher tries them in
	// this order and keeps the first that both matches and renders).
	NotationEntries(head term.Name) []notation.Entry

	// IsCoercion reports whether head is a registered coercion and, if
	// so, its arity: the number of leading arguments consumed before the
	// "real" argument being coerced.
	IsCoercion(head term.Name) (arity int, ok bool)

	// Impredicative reports whether this environment treats the bottom
	// sort as an impredicative Prop (affecting Sort printing).
	Impredicative() bool
}

// TypeChecker is the conservative type-inference capability the printer
// needs for implicit-argument detection and arrow-form/Prop decisions.
// Every method may fail; failure is always treated as "no information"
// by the caller, never propagated as an error value.
type TypeChecker interface {
	// Infer returns e's type, if it can be determined without
	// elaboration or unification.
	Infer(e term.Expr) (term.Expr, bool)

	// WHNF reduces t to weak-head normal form.
	WHNF(t term.Expr) (term.Expr, bool)

	// IsProp reports whether e's type is the impredicative Prop sort.
	// Always returns a definite bool; a failed inference means false.
	IsProp(e term.Expr) bool

	// EnsurePi reduces t to WHNF and reports whether the result is a Pi,
	// returning it.
	EnsurePi(t term.Expr) (term.Pi, bool)
}
