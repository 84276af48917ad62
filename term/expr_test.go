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
	"github.com/stretchr/testify/require"

	"github.com/lithos-lang/ppkernel/term"
)

func TestSpineDecomposesApplicationChain(t *testing.T) {
	t.Parallel()
	f := term.Const{Name: term.ParseName("f")}
	e := term.AppN(f, term.Var{Idx: 0}, term.Var{Idx: 1})
	head, args := term.Spine(e)
	assert.Equal(t, f, head)
	require.Len(t, args, 2)
	assert.Equal(t, term.Var{Idx: 0}, args[0])
	assert.Equal(t, term.Var{Idx: 1}, args[1])
}

func TestHeadNameFindsConstantHead(t *testing.T) {
	t.Parallel()
	e := term.AppN(term.Const{Name: term.ParseName("f")}, term.Var{Idx: 0})
	n, ok := term.HeadName(e)
	require.True(t, ok)
	assert.Equal(t, "f", n.String())

	_, ok = term.HeadName(term.Var{Idx: 0})
	assert.False(t, ok)
}

func TestHaveRoundTrips(t *testing.T) {
	t.Parallel()
	ty := term.Const{Name: term.ParseName("T")}
	proof := term.Const{Name: term.ParseName("pf")}
	body := term.Var{Idx: 0}
	e := term.MkHave(term.ParseName("h"), term.BinderDefault, ty, proof, body)

	lam, gotProof, ok := term.IsHave(e)
	require.True(t, ok)
	assert.Equal(t, "h", lam.Name.String())
	assert.Equal(t, ty, lam.Domain)
	assert.Equal(t, proof, gotProof)
	assert.Equal(t, body, lam.Body)
}

func TestShowRoundTrips(t *testing.T) {
	t.Parallel()
	ty := term.Const{Name: term.ParseName("T")}
	proof := term.Const{Name: term.ParseName("pf")}
	e := term.MkShow(ty, proof)

	gotTy, gotProof, ok := term.IsShow(e)
	require.True(t, ok)
	assert.Equal(t, ty, gotTy)
	assert.Equal(t, proof, gotProof)
}

func TestLetRoundTrips(t *testing.T) {
	t.Parallel()
	val := term.Const{Name: term.ParseName("v")}
	body := term.Var{Idx: 0}
	e := term.MkLet(term.ParseName("x"), val, body)

	n, gotVal, gotBody, ok := term.IsLet(e)
	require.True(t, ok)
	assert.Equal(t, "x", n.String())
	assert.Equal(t, val, gotVal)
	assert.Equal(t, body, gotBody)
}
