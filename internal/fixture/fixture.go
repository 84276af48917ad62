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

// Package fixture decodes the JSON term fixtures used by the golden-file
// corpus harness and the ppfmt command. It is deliberately not a parser
// for any surface syntax: fixtures are a direct, tagged-union encoding of
// term.Expr written by a test or generated once from a real term, not
// source text a human is expected to author by hand.
package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/lithos-lang/ppkernel/term"
)

// node is the wire shape of both term.Expr and term.Level nodes. Only the
// fields relevant to Kind are populated on encode; unused fields are
// omitted so fixtures stay readable.
type node struct {
	Kind string `json:"kind"`

	Idx  *int   `json:"idx,omitempty"`
	Name string `json:"name,omitempty"`
	Text string `json:"text,omitempty"`
	Info string `json:"info,omitempty"`
	Def  string `json:"def,omitempty"`

	Internal string `json:"internal,omitempty"`
	User     string `json:"user,omitempty"`

	Level  *node  `json:"level,omitempty"`
	Levels []node `json:"levels,omitempty"`
	Type   *node  `json:"type,omitempty"`
	Fn     *node  `json:"fn,omitempty"`
	Arg    *node  `json:"arg,omitempty"`
	A      *node  `json:"a,omitempty"`
	B      *node  `json:"b,omitempty"`
	Of     *node  `json:"of,omitempty"`
	Domain *node  `json:"domain,omitempty"`
	Body   *node  `json:"body,omitempty"`
	Args   []node `json:"args,omitempty"`
}

var binderInfoNames = map[term.BinderInfo]string{
	term.BinderDefault:        "default",
	term.BinderImplicit:       "implicit",
	term.BinderStrictImplicit: "strict_implicit",
	term.BinderInstImplicit:   "inst_implicit",
	term.BinderContextual:     "contextual",
}

var binderInfoByName = func() map[string]term.BinderInfo {
	m := make(map[string]term.BinderInfo, len(binderInfoNames))
	for k, v := range binderInfoNames {
		m[v] = k
	}
	return m
}()

var macroDefNames = map[term.MacroDef]string{
	term.PlaceholderDef: "placeholder",
	term.HaveDef:        "have",
	term.ShowDef:        "show",
	term.LetDef:         "let",
	term.TypedExprDef:   "typed_expr",
	term.LetValueDef:    "let_value",
	term.ExplicitDef:    "explicit",
}

func macroDefName(d term.MacroDef) string {
	if name, ok := macroDefNames[d]; ok {
		return name
	}
	return d.MacroName()
}

func macroDefByName(name string) term.MacroDef {
	for def, n := range macroDefNames {
		if n == name {
			return def
		}
	}
	return term.UserMacroDef(name)
}

// Decode parses a JSON fixture into a term.Expr.
func Decode(data []byte) (term.Expr, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("fixture: invalid JSON: %w", err)
	}
	return decodeExpr(n)
}

// Encode serializes e into its JSON fixture form.
func Encode(e term.Expr) ([]byte, error) {
	return json.MarshalIndent(encodeExpr(e), "", "  ")
}

func encodeExpr(e term.Expr) node {
	switch v := e.(type) {
	case term.Var:
		idx := v.Idx
		return node{Kind: "var", Idx: &idx}
	case term.Sort:
		lv := encodeLevel(v.Level)
		return node{Kind: "sort", Level: &lv}
	case term.Const:
		levels := make([]node, len(v.Levels))
		for i, l := range v.Levels {
			levels[i] = encodeLevel(l)
		}
		return node{Kind: "const", Name: v.Name.String(), Levels: levels}
	case term.Meta:
		ty := encodeExpr(v.Type)
		return node{Kind: "meta", Name: v.Name.String(), Type: &ty}
	case term.Local:
		ty := encodeExpr(v.Type)
		return node{
			Kind: "local", Internal: v.InternalName.String(), User: v.UserName.String(),
			Type: &ty, Info: binderInfoNames[v.Info],
		}
	case term.App:
		fn, arg := encodeExpr(v.Fn), encodeExpr(v.Arg)
		return node{Kind: "app", Fn: &fn, Arg: &arg}
	case term.Lambda:
		dom, body := encodeExpr(v.Domain), encodeExpr(v.Body)
		return node{Kind: "lambda", Name: v.Name.String(), Info: binderInfoNames[v.Info], Domain: &dom, Body: &body}
	case term.Pi:
		dom, body := encodeExpr(v.Domain), encodeExpr(v.Body)
		return node{Kind: "pi", Name: v.Name.String(), Info: binderInfoNames[v.Info], Domain: &dom, Body: &body}
	case term.Macro:
		args := make([]node, len(v.Args))
		for i, a := range v.Args {
			args[i] = encodeExpr(a)
		}
		return node{Kind: "macro", Def: macroDefName(v.Def), Args: args}
	case term.NumLit:
		return node{Kind: "numlit", Text: v.Text}
	default:
		panic(fmt.Sprintf("fixture: unhandled Expr type %T", e))
	}
}

func decodeExpr(n node) (term.Expr, error) {
	switch n.Kind {
	case "var":
		if n.Idx == nil {
			return nil, fmt.Errorf("fixture: var node missing idx")
		}
		return term.Var{Idx: *n.Idx}, nil
	case "sort":
		lv, err := decodeLevelField(n.Level, "sort")
		if err != nil {
			return nil, err
		}
		return term.Sort{Level: lv}, nil
	case "const":
		var levels []term.Level
		if len(n.Levels) > 0 {
			levels = make([]term.Level, len(n.Levels))
		}
		for i, ln := range n.Levels {
			lv, err := decodeLevel(ln)
			if err != nil {
				return nil, err
			}
			levels[i] = lv
		}
		return term.Const{Name: term.ParseName(n.Name), Levels: levels}, nil
	case "meta":
		ty, err := decodeExprField(n.Type, "meta")
		if err != nil {
			return nil, err
		}
		return term.Meta{Name: term.ParseName(n.Name), Type: ty}, nil
	case "local":
		ty, err := decodeExprField(n.Type, "local")
		if err != nil {
			return nil, err
		}
		info, ok := binderInfoByName[n.Info]
		if !ok {
			info = term.BinderDefault
		}
		return term.Local{
			InternalName: term.ParseName(n.Internal), UserName: term.ParseName(n.User),
			Type: ty, Info: info,
		}, nil
	case "app":
		fn, err := decodeExprField(n.Fn, "app")
		if err != nil {
			return nil, err
		}
		arg, err := decodeExprField(n.Arg, "app")
		if err != nil {
			return nil, err
		}
		return term.App{Fn: fn, Arg: arg}, nil
	case "lambda", "pi":
		dom, err := decodeExprField(n.Domain, n.Kind)
		if err != nil {
			return nil, err
		}
		body, err := decodeExprField(n.Body, n.Kind)
		if err != nil {
			return nil, err
		}
		info, ok := binderInfoByName[n.Info]
		if !ok {
			info = term.BinderDefault
		}
		if n.Kind == "lambda" {
			return term.Lambda{Name: term.ParseName(n.Name), Info: info, Domain: dom, Body: body}, nil
		}
		return term.Pi{Name: term.ParseName(n.Name), Info: info, Domain: dom, Body: body}, nil
	case "macro":
		args := make([]term.Expr, len(n.Args))
		for i, an := range n.Args {
			a, err := decodeExpr(an)
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return term.Macro{Def: macroDefByName(n.Def), Args: args}, nil
	case "numlit":
		return term.NumLit{Text: n.Text}, nil
	default:
		return nil, fmt.Errorf("fixture: unknown expr kind %q", n.Kind)
	}
}

func decodeExprField(n *node, owner string) (term.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("fixture: %s node missing required child", owner)
	}
	return decodeExpr(*n)
}

func encodeLevel(l term.Level) node {
	switch v := l.(type) {
	case term.LevelZero:
		return node{Kind: "zero"}
	case term.LevelSucc:
		of := encodeLevel(v.Of)
		return node{Kind: "succ", Of: &of}
	case term.LevelMax:
		a, b := encodeLevel(v.A), encodeLevel(v.B)
		return node{Kind: "max", A: &a, B: &b}
	case term.LevelIMax:
		a, b := encodeLevel(v.A), encodeLevel(v.B)
		return node{Kind: "imax", A: &a, B: &b}
	case term.LevelParam:
		return node{Kind: "param", Name: v.Name.String()}
	case term.LevelMeta:
		return node{Kind: "levelmeta", Name: v.Name.String()}
	default:
		panic(fmt.Sprintf("fixture: unhandled Level type %T", l))
	}
}

func decodeLevel(n node) (term.Level, error) {
	switch n.Kind {
	case "zero":
		return term.LevelZero{}, nil
	case "succ":
		of, err := decodeLevelField(n.Of, "succ")
		if err != nil {
			return nil, err
		}
		return term.LevelSucc{Of: of}, nil
	case "max":
		a, err := decodeLevelField(n.A, "max")
		if err != nil {
			return nil, err
		}
		b, err := decodeLevelField(n.B, "max")
		if err != nil {
			return nil, err
		}
		return term.LevelMax{A: a, B: b}, nil
	case "imax":
		a, err := decodeLevelField(n.A, "imax")
		if err != nil {
			return nil, err
		}
		b, err := decodeLevelField(n.B, "imax")
		if err != nil {
			return nil, err
		}
		return term.LevelIMax{A: a, B: b}, nil
	case "param":
		return term.LevelParam{Name: term.ParseName(n.Name)}, nil
	case "levelmeta":
		return term.LevelMeta{Name: term.ParseName(n.Name)}, nil
	default:
		return nil, fmt.Errorf("fixture: unknown level kind %q", n.Kind)
	}
}

func decodeLevelField(n *node, owner string) (term.Level, error) {
	if n == nil {
		return nil, fmt.Errorf("fixture: %s node missing required level child", owner)
	}
	return decodeLevel(*n)
}
