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

package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lithos-lang/ppkernel/env"
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/term"
)

func TestLookupFindsDeclaredConstant(t *testing.T) {
	t.Parallel()
	e := env.NewMapEnvironment(false)
	e.Declare(env.Declaration{Name: term.ParseName("n.m.f"), Type: term.Const{Name: term.ParseName("T")}})

	d, ok := e.Lookup(term.ParseName("n.m.f"))
	require.True(t, ok)
	assert.Equal(t, "T", d.Type.(term.Const).Name.String())

	_, ok = e.Lookup(term.ParseName("n.m.g"))
	assert.False(t, ok)
}

func TestAliasIsShadowedByActiveNamespaceDeclaration(t *testing.T) {
	t.Parallel()
	e := env.NewMapEnvironment(false, term.ParseName("n.m"))
	e.RegisterAlias(term.ParseName("n.m.f"), term.ParseName("f"))

	// No shadowing declaration yet: alias usable.
	alias, ok := e.Alias(term.ParseName("n.m.f"))
	require.True(t, ok)
	assert.Equal(t, "f", alias.String())

	// Declaring n.m.f itself as the shadowing name disables the alias.
	e.Declare(env.Declaration{Name: term.ParseName("n.m.f")})
	_, ok = e.Alias(term.ParseName("n.m.f"))
	assert.False(t, ok)
}

func TestNotationEntriesPreserveRegistrationOrder(t *testing.T) {
	t.Parallel()
	e := env.NewMapEnvironment(false)
	head := term.ParseName("add")
	first := notation.Entry{Transitions: []notation.Transition{{Token: "+"}}}
	second := notation.Entry{Transitions: []notation.Transition{{Token: "plus"}}}
	e.RegisterNotation(head, first)
	e.RegisterNotation(head, second)

	entries := e.NotationEntries(head)
	require.Len(t, entries, 2)
	assert.Equal(t, "+", entries[0].Transitions[0].Token)
	assert.Equal(t, "plus", entries[1].Transitions[0].Token)
}

func TestIsCoercionReportsRegisteredArity(t *testing.T) {
	t.Parallel()
	e := env.NewMapEnvironment(false)
	e.RegisterCoercion(term.ParseName("coe"), 2)

	arity, ok := e.IsCoercion(term.ParseName("coe"))
	require.True(t, ok)
	assert.Equal(t, 2, arity)

	_, ok = e.IsCoercion(term.ParseName("not_coe"))
	assert.False(t, ok)
}

func TestNaiveCheckerInfersLocalAndConstantTypes(t *testing.T) {
	t.Parallel()
	e := env.NewMapEnvironment(true)
	e.Declare(env.Declaration{Name: term.ParseName("T"), Type: term.Sort{Level: term.LevelZero{}}})
	checker := env.NaiveChecker{Env: e}

	local := term.Local{InternalName: term.ParseName("x"), UserName: term.ParseName("x"), Type: term.Const{Name: term.ParseName("T")}}
	ty, ok := checker.Infer(local)
	require.True(t, ok)
	assert.Equal(t, "T", ty.(term.Const).Name.String())

	ty, ok = checker.Infer(term.Const{Name: term.ParseName("T")})
	require.True(t, ok)
	assert.Equal(t, term.Sort{Level: term.LevelZero{}}, ty)

	_, ok = checker.Infer(term.Var{Idx: 0})
	assert.False(t, ok)
}

func TestNaiveCheckerIsPropRequiresImpredicativeZeroSort(t *testing.T) {
	t.Parallel()
	e := env.NewMapEnvironment(true)
	checker := env.NaiveChecker{Env: e}
	local := term.Local{InternalName: term.ParseName("h"), UserName: term.ParseName("h"), Type: term.Sort{Level: term.LevelZero{}}}
	assert.True(t, checker.IsProp(local))

	nonImpredicative := env.NaiveChecker{Env: env.NewMapEnvironment(false)}
	assert.False(t, nonImpredicative.IsProp(local))
}
