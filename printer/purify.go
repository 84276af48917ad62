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
	"strconv"

	"github.com/lithos-lang/ppkernel/term"
)

// purifyExpr rewrites every metavariable and local constant already
// embedded in e to a collision-free display name, short-circuiting on
// any subtree that carries neither (the common case for closed terms).
// It never introduces new binders — those are freshened separately by
// the binder formatter in binder.go, through the same mkLocalName table.
func (p *Printer) purifyExpr(e term.Expr) term.Expr {
	if !term.HasMetaOrLocal(e, p.options.Universes) {
		return e
	}
	switch v := e.(type) {
	case term.Var, term.NumLit:
		return v
	case term.Sort:
		if !p.options.Universes {
			return v
		}
		return term.Sort{Level: p.purifyLevel(v.Level)}
	case term.Const:
		if !p.options.Universes {
			return v
		}
		levels := make([]term.Level, len(v.Levels))
		for i, l := range v.Levels {
			levels[i] = p.purifyLevel(l)
		}
		return term.Const{Name: v.Name, Levels: levels}
	case term.Meta:
		return term.Meta{Name: p.mkMetavarName(v.Name), Type: p.purifyExpr(v.Type)}
	case term.Local:
		return term.Local{
			InternalName: v.InternalName,
			UserName:     p.mkLocalName(v.InternalName, v.UserName),
			Type:         p.purifyExpr(v.Type),
			Info:         v.Info,
		}
	case term.App:
		return term.App{Fn: p.purifyExpr(v.Fn), Arg: p.purifyExpr(v.Arg)}
	case term.Lambda:
		return term.Lambda{Name: v.Name, Info: v.Info, Domain: p.purifyExpr(v.Domain), Body: p.purifyExpr(v.Body)}
	case term.Pi:
		return term.Pi{Name: v.Name, Info: v.Info, Domain: p.purifyExpr(v.Domain), Body: p.purifyExpr(v.Body)}
	case term.Macro:
		args := make([]term.Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = p.purifyExpr(a)
		}
		return term.Macro{Def: v.Def, Args: args}
	default:
		return e
	}
}

func (p *Printer) purifyLevel(l term.Level) term.Level {
	return term.MapMeta(l, p.mkMetavarName)
}

// mkMetavarName assigns a short display name (meta_prefix followed by a
// per-Print-call counter) to a metavariable's internal name on first
// encounter, and returns the same name on every later encounter.
func (p *Printer) mkMetavarName(name term.Name) term.Name {
	key := name.String()
	if cached, ok := p.metaTable[key]; ok {
		return term.ParseName(cached)
	}
	display := p.metaPrefix + strconv.Itoa(p.nextMetaIdx)
	p.nextMetaIdx++
	p.metaTable[key] = display
	return term.ParseName(display)
}

// mkLocalName assigns a collision-free display name to a local's
// internal identity on first encounter: try the suggested name, then
// suggested1, suggested2, ... until one is unused. Later encounters of
// the same internal name get the cached display name back.
func (p *Printer) mkLocalName(internal, suggested term.Name) term.Name {
	key := internal.String()
	if cached, ok := p.localTable[key]; ok {
		return term.ParseName(cached)
	}
	base := suggested
	if base.IsAnonymous() {
		base = term.ParseName("x")
	}
	candidate := base
	for i := 1; p.usedLocals[candidate.String()]; i++ {
		candidate = base.AppendAfter(i)
	}
	p.usedLocals[candidate.String()] = true
	p.localTable[key] = candidate.String()
	return candidate
}
