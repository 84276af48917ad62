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

// Command ppfmt pretty-prints a directory of JSON term fixtures, driving
// the printer Factory the way a real caller would: one process, many
// terms, each pulled through a pooled Printer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithos-lang/ppkernel/env"
	"github.com/lithos-lang/ppkernel/internal/fixture"
	"github.com/lithos-lang/ppkernel/notation"
	"github.com/lithos-lang/ppkernel/printer"
)

func main() {
	widthFlag := flag.Int("width", 100, "max line width")
	implicitFlag := flag.Bool("implicit", false, "show implicit arguments")
	unicodeFlag := flag.Bool("unicode", true, "use Unicode symbols instead of ASCII spellings")
	impredicativeFlag := flag.Bool("impredicative", false, "treat the zero universe as impredicative (Prop)")
	poolFlag := flag.Int("pool", 4, "number of pooled printers")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ppfmt - pretty-print JSON term fixtures

Usage:
  ppfmt [options] <dir>...

Each *.json file under the given directories is decoded as a term
fixture and printed to stdout as "path: rendering".

Options:
  -width N          max line width (default 100)
  -implicit         show implicit arguments
  -unicode=false     use ASCII notation spellings instead of Unicode
  -impredicative    treat the zero universe as impredicative (Prop)
  -pool N           number of pooled printers (default 4)
`)
	}
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := printer.DefaultOptions()
	opts.MaxWidth = *widthFlag
	opts.Implicit = *implicitFlag
	opts.Unicode = *unicodeFlag

	e := env.NewMapEnvironment(*impredicativeFlag)
	factory := printer.NewFactory(e, env.NaiveChecker{Env: e}, notation.MapTokenTable{}, *poolFlag)

	exitCode := 0
	for _, dir := range dirs {
		if err := formatDir(factory, dir, opts); err != nil {
			fmt.Fprintf(os.Stderr, "ppfmt: %v\n", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func formatDir(factory *printer.Factory, dir string, opts printer.Options) error {
	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}

		raw, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		expr, err := fixture.Decode(raw)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", p, err)
		}

		out, err := factory.Format(context.Background(), expr, opts)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", p, err)
		}
		fmt.Printf("%s: %s\n", p, out)
		return nil
	})
}
