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

// Package debugger implements a step-through debugger over a vm.Instance,
// with both a headless command interface (ExecuteCommand) and a tview-based
// terminal UI (TUI) built on top of it.
package debugger

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hughcoleman/subleq/vm"
)

// Debugger wraps a vm.Instance with breakpoints and a command interface.
type Debugger struct {
	VM          *vm.Instance
	Breakpoints map[int]bool
	Symbols     map[int]string
	Halted      bool
	Status      int
	Err         error
	Output      bytes.Buffer
}

// New returns a Debugger controlling i.
func New(i *vm.Instance) *Debugger {
	return &Debugger{VM: i, Breakpoints: make(map[int]bool)}
}

// GetOutput returns and clears the text accumulated by the last command.
func (d *Debugger) GetOutput() string {
	s := d.Output.String()
	d.Output.Reset()
	return s
}

// ExecuteCommand runs one debugger command line.
func (d *Debugger) ExecuteCommand(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "step", "s":
		return d.Step()
	case "continue", "c":
		return d.Continue()
	case "break", "b":
		if len(fields) < 2 {
			return fmt.Errorf("usage: break <addr>")
		}
		addr, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad address %q: %w", fields[1], err)
		}
		d.Breakpoints[addr] = true
		fmt.Fprintf(&d.Output, "breakpoint set at %d\n", addr)
		return nil
	case "delete", "d":
		if len(fields) < 2 {
			return fmt.Errorf("usage: delete <addr>")
		}
		addr, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad address %q: %w", fields[1], err)
		}
		delete(d.Breakpoints, addr)
		fmt.Fprintf(&d.Output, "breakpoint cleared at %d\n", addr)
		return nil
	case "print", "p":
		if len(fields) < 2 {
			return fmt.Errorf("usage: print <addr>")
		}
		addr, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad address %q: %w", fields[1], err)
		}
		if addr < 0 || addr >= len(d.VM.Image) {
			return fmt.Errorf("address %d out of range", addr)
		}
		fmt.Fprintf(&d.Output, "mem[%d] = %d\n", addr, d.VM.Image[addr])
		return nil
	case "help", "h":
		fmt.Fprint(&d.Output, "commands: step, continue, break <addr>, delete <addr>, print <addr>, help\n")
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

// Step executes exactly one SUBLEQ cycle.
func (d *Debugger) Step() error {
	if d.Halted {
		fmt.Fprint(&d.Output, "already halted\n")
		return nil
	}
	halted, status, err := d.VM.Step()
	if err != nil {
		d.Err = err
		return err
	}
	if halted {
		d.Halted = true
		d.Status = status
		fmt.Fprintf(&d.Output, "%v\n", &vm.HaltError{Status: status})
	}
	return nil
}

// Continue runs until halt, an error, or a breakpoint address is reached.
// The breakpoint at the current PC (if any) is not re-triggered immediately;
// only breakpoints reached by stepping forward stop execution.
func (d *Debugger) Continue() error {
	for {
		if d.Halted {
			return nil
		}
		if err := d.Step(); err != nil {
			return err
		}
		if d.Halted {
			return nil
		}
		if d.Breakpoints[d.VM.PC] {
			fmt.Fprintf(&d.Output, "breakpoint hit at %d\n", d.VM.PC)
			return nil
		}
	}
}
