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
	"github.com/google/go-cmp/cmp"

	"github.com/lithos-lang/ppkernel/term"
)

// exprEqual reports structural equality of two terms, including their
// embedded Name values (which carry an unexported parts slice — go-cmp
// automatically defers to Name's own Equal method instead of reflecting
// into it, which is the reason this is go-cmp and not a hand-rolled deep
// comparison).
func exprEqual(a, b term.Expr) bool {
	return cmp.Equal(a, b)
}
