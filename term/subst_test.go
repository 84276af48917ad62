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

func TestInstantiateReplacesBoundVariable(t *testing.T) {
	t.Parallel()
	// body = #0 #1, instantiate #0 with Const("c") -> c #0
	body := term.App{Fn: term.Var{Idx: 0}, Arg: term.Var{Idx: 1}}
	got := term.Instantiate(body, term.Const{Name: term.ParseName("c")})
	want := term.App{Fn: term.Const{Name: term.ParseName("c")}, Arg: term.Var{Idx: 0}}
	assert.Equal(t, want, got)
}

func TestInstantiateLiftsValueAcrossBinders(t *testing.T) {
	t.Parallel()
	// body = λ _, #1   (the outer bound var seen from inside the lambda)
	body := term.Lambda{Domain: term.Sort{Level: term.LevelZero{}}, Body: term.Var{Idx: 1}}
	val := term.Local{InternalName: term.ParseName("x"), UserName: term.ParseName("x")}
	got := term.Instantiate(body, val).(term.Lambda)
	assert.Equal(t, val, got.Body)
}

func TestOccursFreeDetectsUsage(t *testing.T) {
	t.Parallel()
	e := term.Lambda{Domain: term.Sort{Level: term.LevelZero{}}, Body: term.Var{Idx: 1}}
	assert.True(t, term.OccursFree(e, 0))
	assert.False(t, term.OccursFree(e, 1))
}

func TestClosedDetectsOpenTerms(t *testing.T) {
	t.Parallel()
	assert.True(t, term.Closed(term.Const{Name: term.ParseName("c")}))
	assert.False(t, term.Closed(term.Var{Idx: 0}))
	assert.True(t, term.Closed(term.Lambda{Domain: term.Sort{Level: term.LevelZero{}}, Body: term.Var{Idx: 0}}))
}

func TestLiftFreeVarsShiftsOnlyFreeIndices(t *testing.T) {
	t.Parallel()
	e := term.Lambda{Domain: term.Sort{Level: term.LevelZero{}}, Body: term.App{Fn: term.Var{Idx: 0}, Arg: term.Var{Idx: 1}}}
	got := term.LiftFreeVars(e, 1).(term.Lambda)
	app := got.Body.(term.App)
	assert.Equal(t, term.Var{Idx: 0}, app.Fn) // bound within the lambda: untouched
	assert.Equal(t, term.Var{Idx: 2}, app.Arg) // free: shifted by 1
}
