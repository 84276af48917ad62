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

// BinderInfo classifies how a Lambda/Pi binder (or a Local standing in for
// one) is displayed and how argument insertion treats it.
type BinderInfo int

const (
	// BinderDefault is an ordinary explicit binder: "(x : T)".
	BinderDefault BinderInfo = iota
	// BinderImplicit is inserted automatically unless pp.implicit is on: "{x : T}".
	BinderImplicit
	// BinderStrictImplicit is like Implicit but only inserted when more
	// explicit arguments follow: "⦃x : T⦄" / "{{x : T}}".
	BinderStrictImplicit
	// BinderInstImplicit is resolved by instance search: "[x : T]".
	BinderInstImplicit
	// BinderContextual marks a `have`/`show` binder as user-visible even
	// though it behaves like a let-bound local.
	BinderContextual
)

// IsImplicitLike reports whether bi is one of the three implicit-ish
// binder kinds that is_implicit/has_implicit_args treat as "hidden by
// default".
func (bi BinderInfo) IsImplicitLike() bool {
	switch bi {
	case BinderImplicit, BinderStrictImplicit, BinderInstImplicit:
		return true
	default:
		return false
	}
}
