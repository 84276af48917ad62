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

// Package term defines the kernel expression language that the pretty
// printer renders: de Bruijn-indexed variables, sorts, constants, meta
// and local constants, applications, binder abstractions, macros and
// numeric literals.
//
// This is a minimal stand-in for the "real" kernel term representation
// and reducer that a production type checker would own; printer only
// needs enough structure here to walk, substitute into, and query terms.
package term

import (
	"strconv"
	"strings"
)

// Name is a qualified, dot-separated identifier such as "nat.succ".
// The zero Name is anonymous.
type Name struct {
	parts []string
}

// Anonymous is the empty name.
var Anonymous = Name{}

// NewName builds a qualified name from its dot-separated components.
func NewName(parts ...string) Name {
	if len(parts) == 0 {
		return Anonymous
	}
	return Name{parts: parts}
}

// ParseName splits a dotted string into a Name.
func ParseName(s string) Name {
	if s == "" {
		return Anonymous
	}
	return NewName(strings.Split(s, ".")...)
}

// IsAnonymous reports whether n carries no components.
func (n Name) IsAnonymous() bool { return len(n.parts) == 0 }

// String renders n in dotted form.
func (n Name) String() string {
	return strings.Join(n.parts, ".")
}

// Append returns n with an extra trailing component.
func (n Name) Append(part string) Name {
	parts := make([]string, len(n.parts)+1)
	copy(parts, n.parts)
	parts[len(n.parts)] = part
	return Name{parts: parts}
}

// AppendAfter returns n with its last component suffixed by idx, e.g.
// "x".AppendAfter(1) == "x1". Used to freshen colliding names.
func (n Name) AppendAfter(idx int) Name {
	if n.IsAnonymous() {
		return ParseName("a").AppendAfter(idx)
	}
	parts := make([]string, len(n.parts))
	copy(parts, n.parts)
	parts[len(parts)-1] += strconv.Itoa(idx)
	return Name{parts: parts}
}

// Equal reports structural equality.
func (n Name) Equal(o Name) bool {
	if len(n.parts) != len(o.parts) {
		return false
	}
	for i := range n.parts {
		if n.parts[i] != o.parts[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether ns is a (possibly equal) leading prefix of n.
func (n Name) HasPrefix(ns Name) bool {
	if len(ns.parts) > len(n.parts) {
		return false
	}
	for i := range ns.parts {
		if n.parts[i] != ns.parts[i] {
			return false
		}
	}
	return true
}

// StripPrefix removes the leading components of ns from n, returning the
// residual name and whether the prefix actually matched and left a
// non-empty residual.
func (n Name) StripPrefix(ns Name) (Name, bool) {
	if ns.IsAnonymous() || !n.HasPrefix(ns) {
		return n, false
	}
	residual := n.parts[len(ns.parts):]
	if len(residual) == 0 {
		return Anonymous, false
	}
	return Name{parts: residual}, true
}
