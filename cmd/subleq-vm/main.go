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

	cli "github.com/urfave/cli/v2"

	"github.com/hughcoleman/subleq/debugger"
	"github.com/hughcoleman/subleq/internal/config"
	"github.com/hughcoleman/subleq/internal/term"
	"github.com/hughcoleman/subleq/vm"
)

func atExit(i *vm.Instance, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "pc=%d insCount=%d\n", i.PC, i.InsCount())
	}
	return 1
}

func run(c *cli.Context) (exitCode int) {
	if c.Args().Len() < 1 {
		fmt.Fprintln(os.Stderr, "missing binary file")
		return 1
	}
	path := c.Args().First()

	cfgPath := c.String("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	width := c.Int("size")
	if !c.IsSet("size") {
		width = cfg.Emulator.Width
	}

	img, err := vm.LoadImage(path, vm.Width(width))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	nullTerminate := c.Bool("null-terminate-input")
	if !c.IsSet("null-terminate-input") {
		nullTerminate = cfg.Emulator.NullTerminateIn
	}
	ascii := c.Bool("ascii")
	if !c.IsSet("ascii") {
		ascii = cfg.Emulator.ASCIIOut
	}

	var out vm.Output
	if ascii {
		out = vm.NewASCIIOutput(os.Stdout)
	} else {
		out = vm.NewDecimalOutput(os.Stdout)
	}

	if restore, rawErr := term.SetRaw(); rawErr == nil {
		defer restore()
	}
	in := vm.NewInput(os.Stdin, nullTerminate)

	instance, err := vm.New(img, vm.Width(width), 0, vm.WithInput(in), vm.WithOutput(out))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if c.Bool("debugger") {
		d := debugger.New(instance)
		_ = d.LoadSymbols(path + ".sym") // absence of a sidecar file is normal
		t := debugger.NewTUI(d)
		if err := t.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if d.Err != nil {
			return atExit(instance, d.Err)
		}
		return d.Status & 0xff
	}

	status, err := instance.Run()
	if err != nil {
		return atExit(instance, err)
	}
	return status & 0xff
}

func main() {
	app := &cli.App{
		Name:      "subleq-vm",
		Usage:     "run a SUBLEQ binary memory image",
		ArgsUsage: "binary",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "null-terminate-input", Aliases: []string{"n"}, Usage: "append a null byte to standard input at EOF"},
			&cli.BoolFlag{Name: "ascii", Aliases: []string{"a"}, Usage: "render output cells as raw ASCII bytes instead of decimal"},
			&cli.BoolFlag{Name: "debugger", Aliases: []string{"d"}, Usage: "enable the step-through debugger UI"},
			&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: "cell width in bytes (1, 2, 4, or 8); must match the assembler"},
			&cli.StringFlag{Name: "config", Usage: "path to an optional TOML config file"},
		},
	}
	var code int
	app.Action = func(c *cli.Context) error {
		code = run(c)
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}
