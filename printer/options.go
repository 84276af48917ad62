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

import "github.com/lithos-lang/ppkernel/doc"

// Options configures a Printer's rendering policy. Every field defaults
// to its Go zero value, which is not necessarily the out-of-the-box
// policy — use DefaultOptions for that. withDefaults only fills in the
// numeric budgets (Indent/MaxWidth/MaxDepth/MaxSteps); the boolean
// display toggles are taken exactly as given, the same way the teacher's
// own option struct only defaults its indent width and leaves every
// other field as the caller set it.
type Options struct {
	Indent   int
	MaxWidth int
	MaxDepth int
	MaxSteps int

	Implicit     bool
	Unicode      bool
	Coercions    bool
	Notation     bool
	Universes    bool
	FullNames    bool
	PrivateNames bool
	MetavarArgs  bool
	Beta         bool
}

// DefaultOptions is the out-of-the-box configuration: Unicode tokens,
// coercions and notation shown, metavariable argument spines shown,
// implicit arguments and universe annotations hidden.
func DefaultOptions() Options {
	return Options{
		Indent:      2,
		MaxWidth:    100,
		MaxDepth:    64,
		MaxSteps:    8192,
		Unicode:     true,
		Coercions:   true,
		Notation:    true,
		MetavarArgs: true,
	}
}

func (o Options) withDefaults() Options {
	if o.Indent == 0 {
		o.Indent = 2
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = 100
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = 64
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = 8192
	}
	return o
}

func (o Options) docOptions() doc.Options {
	return doc.Options{MaxWidth: o.MaxWidth, IndentWidth: o.Indent}
}
