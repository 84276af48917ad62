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

package env

import (
	"github.com/tidwall/btree"

	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/term"
)

// MapEnvironment is a minimal, in-memory Environment. Declarations,
// aliases, hidden-name mappings, notation entries and coercions are all
// kept in ordered btree maps (keyed by the dotted name string) rather
// than plain Go maps so that enumeration — which the notation matcher's
// "first entry wins" rule depends on for determinism — never rides on
// Go's randomized map iteration order.
type MapEnvironment struct {
	decls     btree.Map[string, Declaration]
	aliases   btree.Map[string, string] // full name -> alias
	hidden    btree.Map[string, string] // hidden name -> user-facing name
	notations btree.Map[string, []notation.Entry]
	coercions btree.Map[string, int]
	namespace []term.Name
	impred    bool
}

// NewMapEnvironment builds an empty environment. namespaces are the
// initially active namespaces, innermost first.
func NewMapEnvironment(impredicative bool, namespaces ...term.Name) *MapEnvironment {
	return &MapEnvironment{
		namespace: namespaces,
		impred:    impredicative,
	}
}

// Declare registers a declaration.
func (e *MapEnvironment) Declare(d Declaration) {
	e.decls.Set(d.Name.String(), d)
}

// RegisterAlias registers alias as a short form for name.
func (e *MapEnvironment) RegisterAlias(name, alias term.Name) {
	e.aliases.Set(name.String(), alias.String())
}

// RegisterHidden registers userFacing as the public name to show for
// the hidden internal name hidden.
func (e *MapEnvironment) RegisterHidden(hidden, userFacing term.Name) {
	e.hidden.Set(hidden.String(), userFacing.String())
}

// RegisterNotation adds entry to the notations tried for head, in
// registration order.
func (e *MapEnvironment) RegisterNotation(head term.Name, entry notation.Entry) {
	key := head.String()
	entries, _ := e.notations.Get(key)
	e.notations.Set(key, append(entries, entry))
}

// RegisterCoercion marks head as a coercion of the given arity.
func (e *MapEnvironment) RegisterCoercion(head term.Name, arity int) {
	e.coercions.Set(head.String(), arity)
}

// Lookup implements Environment.
func (e *MapEnvironment) Lookup(name term.Name) (Declaration, bool) {
	return e.decls.Get(name.String())
}

// Namespaces implements Environment.
func (e *MapEnvironment) Namespaces() []term.Name {
	return e.namespace
}

// Alias implements Environment. An alias is unusable if any active
// namespace, prefixed onto the alias, resolves to a real declaration —
// that declaration would shadow the short form.
func (e *MapEnvironment) Alias(name term.Name) (term.Name, bool) {
	aliasStr, ok := e.aliases.Get(name.String())
	if !ok {
		return term.Anonymous, false
	}
	alias := term.ParseName(aliasStr)
	for _, ns := range e.namespace {
		shadowed := term.ParseName(ns.String() + "." + aliasStr)
		if _, exists := e.decls.Get(shadowed.String()); exists {
			return term.Anonymous, false
		}
	}
	return alias, true
}

// ResolveHidden implements Environment.
func (e *MapEnvironment) ResolveHidden(name term.Name) (term.Name, bool) {
	s, ok := e.hidden.Get(name.String())
	if !ok {
		return term.Anonymous, false
	}
	return term.ParseName(s), true
}

// NotationEntries implements Environment.
func (e *MapEnvironment) NotationEntries(head term.Name) []notation.Entry {
	entries, _ := e.notations.Get(head.String())
	return entries
}

// IsCoercion implements Environment.
func (e *MapEnvironment) IsCoercion(head term.Name) (int, bool) {
	return e.coercions.Get(head.String())
}

// Impredicative implements Environment.
func (e *MapEnvironment) Impredicative() bool {
	return e.impred
}
