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

func TestLevelTextFoldsSuccChainsToDecimal(t *testing.T) {
	t.Parallel()
	one := term.LevelSucc{Of: term.LevelZero{}}
	two := term.LevelSucc{Of: one}
	assert.Equal(t, "0", term.LevelText(term.LevelZero{}))
	assert.Equal(t, "1", term.LevelText(one))
	assert.Equal(t, "2", term.LevelText(two))
}

func TestLevelTextParenthesizesMaxInsideSucc(t *testing.T) {
	t.Parallel()
	m := term.LevelMax{A: term.LevelParam{Name: term.ParseName("u")}, B: term.LevelParam{Name: term.ParseName("v")}}
	assert.Equal(t, "max u v", term.LevelText(m))
	assert.True(t, term.IsMaxOrIMax(m))
	assert.Equal(t, "(max u v)+1", term.LevelText(term.LevelSucc{Of: m}))
}

func TestHasMetaDetectsNestedMetavariable(t *testing.T) {
	t.Parallel()
	mv := term.LevelMeta{Name: term.ParseName("?m")}
	l := term.LevelSucc{Of: term.LevelMax{A: term.LevelZero{}, B: mv}}
	assert.True(t, term.HasMeta(l))
	assert.False(t, term.HasMeta(term.LevelSucc{Of: term.LevelZero{}}))
}

func TestMapMetaRenamesOnlyMetavariables(t *testing.T) {
	t.Parallel()
	l := term.LevelMax{A: term.LevelParam{Name: term.ParseName("u")}, B: term.LevelMeta{Name: term.ParseName("?m")}}
	renamed := term.MapMeta(l, func(n term.Name) term.Name { return term.ParseName("M1") })
	got := renamed.(term.LevelMax)
	assert.Equal(t, "u", got.A.(term.LevelParam).Name.String())
	assert.Equal(t, "M1", got.B.(term.LevelMeta).Name.String())
}
