// This file is part of subleq - https://github.com/hughcoleman/subleq
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/hughcoleman/subleq/asm"
	"github.com/hughcoleman/subleq/internal/config"
	"github.com/hughcoleman/subleq/vm"
)

func outPath(src string) string {
	if i := strings.LastIndex(src, "."); i >= 0 {
		return src[:i] + ".bin"
	}
	return src + ".bin"
}

func run(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return cli.Exit("missing source file", 1)
	}
	src := c.Args().First()

	cfgPath := c.String("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		return cli.Exit(err, 2)
	}

	width := c.Int("size")
	if !c.IsSet("size") {
		width = cfg.Assembler.Width
	}

	out := c.String("out")
	if out == "" {
		out = outPath(src)
	}

	f, err := os.Open(src)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer f.Close()

	result, err := asm.Assemble(src, f, vm.Width(width))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := os.WriteFile(out, result.Image, 0644); err != nil {
		return cli.Exit(err, 2)
	}

	if c.Bool("emit-symbols") {
		if err := writeSymbols(out+".sym", result.Symbols); err != nil {
			return cli.Exit(err, 2)
		}
	}
	return nil
}

// writeSymbols writes an "address name" sidecar file, one label per line,
// sorted by address, for the debugger to load alongside a binary.
func writeSymbols(path string, symbols map[string]int) error {
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool { return symbols[names[a]] < symbols[names[b]] })

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "%d %s\n", symbols[name], name)
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func main() {
	app := &cli.App{
		Name:      "subleq-asm",
		Usage:     "assemble SUBLEQ source into a binary memory image",
		ArgsUsage: "source",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output binary `path`"},
			&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: "cell width in bytes (1, 2, 4, or 8)"},
			&cli.StringFlag{Name: "config", Usage: "path to an optional TOML config file"},
			&cli.BoolFlag{Name: "emit-symbols", Usage: "write a <out>.sym sidecar file with the label table"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
