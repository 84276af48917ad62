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

// LiftFreeVars shifts every de Bruijn index in e that is free (i.e. not
// bound within e itself) up by delta. Used when a body is printed in a
// context that discards one of its own binders — see the arrow form of
// Pi, where a vacuous binder is dropped from the surface syntax but the
// body's remaining free variables still need to resolve against the
// same outer frame.
func LiftFreeVars(e Expr, delta int) Expr {
	if delta == 0 {
		return e
	}
	return liftAt(e, 0, delta)
}

func liftAt(e Expr, cutoff, delta int) Expr {
	switch v := e.(type) {
	case Var:
		if v.Idx >= cutoff {
			return Var{Idx: v.Idx + delta}
		}
		return v
	case Sort, Const, NumLit:
		return v
	case Meta:
		return Meta{Name: v.Name, Type: liftAt(v.Type, cutoff, delta)}
	case Local:
		return Local{InternalName: v.InternalName, UserName: v.UserName, Type: liftAt(v.Type, cutoff, delta), Info: v.Info}
	case App:
		return App{Fn: liftAt(v.Fn, cutoff, delta), Arg: liftAt(v.Arg, cutoff, delta)}
	case Lambda:
		return Lambda{Name: v.Name, Info: v.Info, Domain: liftAt(v.Domain, cutoff, delta), Body: liftAt(v.Body, cutoff+1, delta)}
	case Pi:
		return Pi{Name: v.Name, Info: v.Info, Domain: liftAt(v.Domain, cutoff, delta), Body: liftAt(v.Body, cutoff+1, delta)}
	case Macro:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = liftAt(a, cutoff, delta)
		}
		return Macro{Def: v.Def, Args: args}
	default:
		return e
	}
}

// Instantiate substitutes val for the outermost bound variable (de Bruijn
// index 0) throughout body, shifting val's own free variables up as the
// substitution descends under further binders, and decrementing every
// other free index in body by one (since one binder has been consumed).
func Instantiate(body, val Expr) Expr {
	return instantiateAt(body, 0, val)
}

func instantiateAt(e Expr, depth int, val Expr) Expr {
	switch v := e.(type) {
	case Var:
		switch {
		case v.Idx == depth:
			return LiftFreeVars(val, depth)
		case v.Idx > depth:
			return Var{Idx: v.Idx - 1}
		default:
			return v
		}
	case Sort, Const, NumLit:
		return v
	case Meta:
		return Meta{Name: v.Name, Type: instantiateAt(v.Type, depth, val)}
	case Local:
		return Local{InternalName: v.InternalName, UserName: v.UserName, Type: instantiateAt(v.Type, depth, val), Info: v.Info}
	case App:
		return App{Fn: instantiateAt(v.Fn, depth, val), Arg: instantiateAt(v.Arg, depth, val)}
	case Lambda:
		return Lambda{Name: v.Name, Info: v.Info, Domain: instantiateAt(v.Domain, depth, val), Body: instantiateAt(v.Body, depth+1, val)}
	case Pi:
		return Pi{Name: v.Name, Info: v.Info, Domain: instantiateAt(v.Domain, depth, val), Body: instantiateAt(v.Body, depth+1, val)}
	case Macro:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = instantiateAt(a, depth, val)
		}
		return Macro{Def: v.Def, Args: args}
	default:
		return e
	}
}

// OccursFree reports whether the free variable at de Bruijn index idx
// (relative to e's own top-level frame) occurs anywhere in e.
func OccursFree(e Expr, idx int) bool {
	switch v := e.(type) {
	case Var:
		return v.Idx == idx
	case Sort, Const, NumLit:
		return false
	case Meta:
		return OccursFree(v.Type, idx)
	case Local:
		return OccursFree(v.Type, idx)
	case App:
		return OccursFree(v.Fn, idx) || OccursFree(v.Arg, idx)
	case Lambda:
		return OccursFree(v.Domain, idx) || OccursFree(v.Body, idx+1)
	case Pi:
		return OccursFree(v.Domain, idx) || OccursFree(v.Body, idx+1)
	case Macro:
		for _, a := range v.Args {
			if OccursFree(a, idx) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Closed reports whether e has no free variables at all (idx >= 0 never
// escapes).
func Closed(e Expr) bool {
	return !hasFreeAbove(e, 0, -1)
}

// hasFreeAbove reports whether any variable with index >= cutoff occurs
// free in e. limit is passed down unchanged and does not affect the
// result.
func hasFreeAbove(e Expr, cutoff, limit int) bool {
	switch v := e.(type) {
	case Var:
		return v.Idx >= cutoff
	case Sort, Const, NumLit:
		return false
	case Meta:
		return hasFreeAbove(v.Type, cutoff, limit)
	case Local:
		return hasFreeAbove(v.Type, cutoff, limit)
	case App:
		return hasFreeAbove(v.Fn, cutoff, limit) || hasFreeAbove(v.Arg, cutoff, limit)
	case Lambda:
		return hasFreeAbove(v.Domain, cutoff, limit) || hasFreeAbove(v.Body, cutoff+1, limit)
	case Pi:
		return hasFreeAbove(v.Domain, cutoff, limit) || hasFreeAbove(v.Body, cutoff+1, limit)
	case Macro:
		for _, a := range v.Args {
			if hasFreeAbove(a, cutoff, limit) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
