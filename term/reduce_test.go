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

package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lithos-lang/ppkernel/term"
)

func TestBetaReduceContractsARedex(t *testing.T) {
	t.Parallel()
	a := term.Const{Name: term.ParseName("a")}
	lam := term.Lambda{Domain: term.Const{Name: term.ParseName("T")}, Body: term.Var{Idx: 0}}
	redex := term.App{Fn: lam, Arg: a}

	got := term.BetaReduce(redex, 10)
	assert.Equal(t, a, got)
}

func TestBetaReduceLeavesNormalFormUnchanged(t *testing.T) {
	t.Parallel()
	c := term.Const{Name: term.ParseName("c")}
	assert.Equal(t, c, term.BetaReduce(c, 10))
}

func TestBetaReduceStopsAtFuelLimit(t *testing.T) {
	t.Parallel()
	// Two nested redexes; one step of fuel only contracts the outer one.
	id := term.Lambda{Domain: term.Const{Name: term.ParseName("T")}, Body: term.Var{Idx: 0}}
	inner := term.App{Fn: id, Arg: term.Const{Name: term.ParseName("a")}}
	outer := term.App{Fn: id, Arg: inner}

	got := term.BetaReduce(outer, 1)
	assert.Equal(t, inner, got)

	fullyReduced := term.BetaReduce(outer, 10)
	assert.Equal(t, term.Const{Name: term.ParseName("a")}, fullyReduced)
}
