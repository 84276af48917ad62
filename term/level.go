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

import "strconv"

// Level is a universe level expression: zero, a successor, the max or
// impredicative-max of two levels, a universe parameter, or a level
// metavariable.
type Level interface {
	isLevel()
}

// LevelZero is the bottom universe level.
type LevelZero struct{}

// LevelSucc is l+1.
type LevelSucc struct{ Of Level }

// LevelMax is the least upper bound of A and B.
type LevelMax struct{ A, B Level }

// LevelIMax is the impredicative max: imax(A, 0) = 0, otherwise max(A, B).
type LevelIMax struct{ A, B Level }

// LevelParam is a named universe parameter, e.g. "u".
type LevelParam struct{ Name Name }

// LevelMeta is a universe metavariable, printed as "?name" once purified.
type LevelMeta struct{ Name Name }

func (LevelZero) isLevel()  {}
func (LevelSucc) isLevel()  {}
func (LevelMax) isLevel()   {}
func (LevelIMax) isLevel()  {}
func (LevelParam) isLevel() {}
func (LevelMeta) isLevel()  {}

// IsMeta reports whether l is itself a metavariable (not merely contains one).
func IsMeta(l Level) bool {
	_, ok := l.(LevelMeta)
	return ok
}

// IsSucc reports whether l is a successor, returning its predecessor.
func IsSucc(l Level) (Level, bool) {
	s, ok := l.(LevelSucc)
	if !ok {
		return nil, false
	}
	return s.Of, true
}

// IsMaxOrIMax reports whether l is a Max or IMax node; the case printers
// use this to decide when a level needs parenthesizing inside Type.{...}.
func IsMaxOrIMax(l Level) bool {
	switch l.(type) {
	case LevelMax, LevelIMax:
		return true
	default:
		return false
	}
}

// HasMeta reports whether l contains a metavariable anywhere in its tree.
func HasMeta(l Level) bool {
	switch lv := l.(type) {
	case LevelZero, LevelParam:
		return false
	case LevelMeta:
		return true
	case LevelSucc:
		return HasMeta(lv.Of)
	case LevelMax:
		return HasMeta(lv.A) || HasMeta(lv.B)
	case LevelIMax:
		return HasMeta(lv.A) || HasMeta(lv.B)
	default:
		return false
	}
}

// LevelEqual reports structural equality of two levels.
func LevelEqual(a, b Level) bool {
	switch av := a.(type) {
	case LevelZero:
		_, ok := b.(LevelZero)
		return ok
	case LevelParam:
		bv, ok := b.(LevelParam)
		return ok && av.Name.Equal(bv.Name)
	case LevelMeta:
		bv, ok := b.(LevelMeta)
		return ok && av.Name.Equal(bv.Name)
	case LevelSucc:
		bv, ok := b.(LevelSucc)
		return ok && LevelEqual(av.Of, bv.Of)
	case LevelMax:
		bv, ok := b.(LevelMax)
		return ok && LevelEqual(av.A, bv.A) && LevelEqual(av.B, bv.B)
	case LevelIMax:
		bv, ok := b.(LevelIMax)
		return ok && LevelEqual(av.A, bv.A) && LevelEqual(av.B, bv.B)
	default:
		return false
	}
}

// MapMeta rewrites every metavariable in l via f, leaving everything else
// untouched. Used by the purifier to rename universe metavariables.
func MapMeta(l Level, f func(Name) Name) Level {
	if !HasMeta(l) {
		return l
	}
	switch lv := l.(type) {
	case LevelMeta:
		return LevelMeta{Name: f(lv.Name)}
	case LevelSucc:
		return LevelSucc{Of: MapMeta(lv.Of, f)}
	case LevelMax:
		return LevelMax{A: MapMeta(lv.A, f), B: MapMeta(lv.B, f)}
	case LevelIMax:
		return LevelIMax{A: MapMeta(lv.A, f), B: MapMeta(lv.B, f)}
	default:
		return l
	}
}

// LevelText renders a level as plain text, folding chains of LevelSucc
// applied to LevelZero into a decimal literal the way Lean's kernel level
// printer does (succ(succ(zero)) prints as "2", not "zero+1+1").
func LevelText(l Level) string {
	if n, ok := levelToNat(l); ok {
		return strconv.Itoa(n)
	}
	switch lv := l.(type) {
	case LevelZero:
		return "0"
	case LevelParam:
		return lv.Name.String()
	case LevelMeta:
		return "?" + lv.Name.String()
	case LevelSucc:
		if n, ok := levelToNat(lv.Of); ok {
			return strconv.Itoa(n + 1)
		}
		return levelTextChild(lv.Of) + "+1"
	case LevelMax:
		return "max " + levelTextChild(lv.A) + " " + levelTextChild(lv.B)
	case LevelIMax:
		return "imax " + levelTextChild(lv.A) + " " + levelTextChild(lv.B)
	default:
		return "?"
	}
}

func levelTextChild(l Level) string {
	if IsMaxOrIMax(l) {
		return "(" + LevelText(l) + ")"
	}
	return LevelText(l)
}

func levelToNat(l Level) (int, bool) {
	n := 0
	for {
		switch lv := l.(type) {
		case LevelZero:
			return n, true
		case LevelSucc:
			n++
			l = lv.Of
		default:
			return 0, false
		}
	}
}
