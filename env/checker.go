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

package env

import "github.com/lithos-lang/ppkernel/term"

// NaiveChecker is a conservative TypeChecker: it infers types only for
// the handful of syntactic forms that carry their own type information
// (Local, Meta, Sort, and constants looked up in an Environment) and
// returns "no information" for everything else, rather than attempting
// real elaboration. This is exactly the shape of fallibility the printer
// is designed to tolerate: every failure here degrades the output
// (e.g. a head that secretly has implicit arguments goes unmarked) but
// never produces an invalid document.
type NaiveChecker struct {
	Env Environment
}

// Infer implements TypeChecker.
func (c NaiveChecker) Infer(e term.Expr) (term.Expr, bool) {
	switch v := e.(type) {
	case term.Local:
		return v.Type, v.Type != nil
	case term.Meta:
		return v.Type, v.Type != nil
	case term.Sort:
		return term.Sort{Level: term.LevelSucc{Of: v.Level}}, true
	case term.Const:
		if c.Env == nil {
			return nil, false
		}
		decl, ok := c.Env.Lookup(v.Name)
		if !ok {
			return nil, false
		}
		return decl.Type, decl.Type != nil
	default:
		return nil, false
	}
}

// WHNF implements TypeChecker. Without a reducer wired in, the best this
// conservative checker can do is recognize terms already in head normal
// form (everything except a literal beta-redex) and pass them through
// unchanged; an actual redex is reported as "could not reduce".
func (c NaiveChecker) WHNF(t term.Expr) (term.Expr, bool) {
	if app, ok := t.(term.App); ok {
		if _, isLambda := app.Fn.(term.Lambda); isLambda {
			return nil, false
		}
	}
	return t, true
}

// IsProp implements TypeChecker: true iff inference succeeds and the
// inferred type is Sort(zero) in an impredicative environment.
func (c NaiveChecker) IsProp(e term.Expr) bool {
	ty, ok := c.Infer(e)
	if !ok || c.Env == nil || !c.Env.Impredicative() {
		return false
	}
	sort, ok := ty.(term.Sort)
	if !ok {
		return false
	}
	_, isZero := sort.Level.(term.LevelZero)
	return isZero
}

// EnsurePi implements TypeChecker.
func (c NaiveChecker) EnsurePi(t term.Expr) (term.Pi, bool) {
	whnf, ok := c.WHNF(t)
	if !ok {
		return term.Pi{}, false
	}
	pi, ok := whnf.(term.Pi)
	return pi, ok
}
