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

package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lithos-lang/ppkernel/notation"
)

func TestMapTokenTableReportsPrecedenceForKnownTokens(t *testing.T) {
	t.Parallel()
	tokens := notation.MapTokenTable{"+": 65, "*": 70}

	bp, ok := tokens.Precedence("+")
	assert.True(t, ok)
	assert.Equal(t, 65, bp)
}

func TestMapTokenTableReportsMissingForUnknownTokens(t *testing.T) {
	t.Parallel()
	tokens := notation.MapTokenTable{"+": 65}

	_, ok := tokens.Precedence("-")
	assert.False(t, ok)
}
