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

// HasMetaOrLocal reports whether e contains any term metavariable, any
// local constant, or (when includeUnivMeta is set) any universe
// metavariable. The purifier uses this to skip rewriting subtrees that
// need no renaming at all.
func HasMetaOrLocal(e Expr, includeUnivMeta bool) bool {
	switch v := e.(type) {
	case Var, NumLit:
		return false
	case Sort:
		return includeUnivMeta && HasMeta(v.Level)
	case Const:
		if !includeUnivMeta {
			return false
		}
		for _, l := range v.Levels {
			if HasMeta(l) {
				return true
			}
		}
		return false
	case Meta:
		return true
	case Local:
		return true
	case App:
		return HasMetaOrLocal(v.Fn, includeUnivMeta) || HasMetaOrLocal(v.Arg, includeUnivMeta)
	case Lambda:
		return HasMetaOrLocal(v.Domain, includeUnivMeta) || HasMetaOrLocal(v.Body, includeUnivMeta)
	case Pi:
		return HasMetaOrLocal(v.Domain, includeUnivMeta) || HasMetaOrLocal(v.Body, includeUnivMeta)
	case Macro:
		for _, a := range v.Args {
			if HasMetaOrLocal(a, includeUnivMeta) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// IsVar reports whether e is a bound variable node.
func IsVar(e Expr) bool {
	_, ok := e.(Var)
	return ok
}
