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

// BetaReduce performs leftmost-outermost β-reduction, stopping either
// when no redex remains or when fuel steps have been spent (in which
// case the partially-reduced term is returned; the printer never sees
// this as a failure, only as "didn't fully normalize in budget").
func BetaReduce(e Expr, fuel int) Expr {
	for i := 0; i < fuel; i++ {
		next, changed := betaStep(e)
		if !changed {
			return e
		}
		e = next
	}
	return e
}

// betaStep performs a single leftmost-outermost reduction and reports
// whether anything changed.
func betaStep(e Expr) (Expr, bool) {
	switch v := e.(type) {
	case App:
		if lam, ok := v.Fn.(Lambda); ok {
			return Instantiate(lam.Body, v.Arg), true
		}
		if fn, changed := betaStep(v.Fn); changed {
			return App{Fn: fn, Arg: v.Arg}, true
		}
		if arg, changed := betaStep(v.Arg); changed {
			return App{Fn: v.Fn, Arg: arg}, true
		}
		return v, false
	case Lambda:
		if dom, changed := betaStep(v.Domain); changed {
			return Lambda{Name: v.Name, Info: v.Info, Domain: dom, Body: v.Body}, true
		}
		if body, changed := betaStep(v.Body); changed {
			return Lambda{Name: v.Name, Info: v.Info, Domain: v.Domain, Body: body}, true
		}
		return v, false
	case Pi:
		if dom, changed := betaStep(v.Domain); changed {
			return Pi{Name: v.Name, Info: v.Info, Domain: dom, Body: v.Body}, true
		}
		if body, changed := betaStep(v.Body); changed {
			return Pi{Name: v.Name, Info: v.Info, Domain: v.Domain, Body: body}, true
		}
		return v, false
	case Meta:
		if ty, changed := betaStep(v.Type); changed {
			return Meta{Name: v.Name, Type: ty}, true
		}
		return v, false
	case Local:
		if ty, changed := betaStep(v.Type); changed {
			return Local{InternalName: v.InternalName, UserName: v.UserName, Type: ty, Info: v.Info}, true
		}
		return v, false
	case Macro:
		for i, a := range v.Args {
			if r, changed := betaStep(a); changed {
				args := make([]Expr, len(v.Args))
				copy(args, v.Args)
				args[i] = r
				return Macro{Def: v.Def, Args: args}, true
			}
		}
		return v, false
	default:
		return e, false
	}
}
