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

package fixture_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lithos-lang/ppkernel/internal/fixture"
	"github.com/lithos-lang/ppkernel/term"
)

func TestRoundTripsAPiOverAConstant(t *testing.T) {
	t.Parallel()
	expr := term.Pi{
		Name:   term.ParseName("x"),
		Info:   term.BinderImplicit,
		Domain: term.Const{Name: term.ParseName("Nat")},
		Body:   term.App{Fn: term.Const{Name: term.ParseName("P")}, Arg: term.Var{Idx: 0}},
	}

	data, err := fixture.Encode(expr)
	require.NoError(t, err)

	got, err := fixture.Decode(data)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(expr, got))
}

func TestRoundTripsUniverseLevelsAndMacros(t *testing.T) {
	t.Parallel()
	expr := term.Sort{Level: term.LevelMax{A: term.LevelSucc{Of: term.LevelZero{}}, B: term.LevelParam{Name: term.ParseName("u")}}}
	have := term.MkHave(term.ParseName("h"), term.BinderDefault, term.Const{Name: term.ParseName("P")}, expr, term.Var{Idx: 0})

	data, err := fixture.Encode(have)
	require.NoError(t, err)

	got, err := fixture.Decode(data)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(have, got))
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	t.Parallel()
	_, err := fixture.Decode([]byte(`{"kind":"bogus"}`))
	require.Error(t, err)
}
