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

package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hughcoleman/subleq/vm"
)

// TUI is the terminal UI wrapped around a Debugger.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application

	DisasmView   *tview.TextView
	MemoryView   *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField

	Layout *tview.Flex
}

// NewTUI builds a TUI over d.
func NewTUI(d *Debugger) *TUI {
	t := &TUI{Debugger: d, App: tview.NewApplication()}
	t.initViews()
	t.buildLayout()
	t.setupKeyBindings()
	return t
}

func (t *TUI) initViews() {
	t.DisasmView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.DisasmView.SetBorder(true).SetTitle(" Disassembly ")

	t.MemoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.MemoryView.SetBorder(true).SetTitle(" Memory ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("> ")
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.DisasmView, 0, 1, false).
		AddItem(t.MemoryView, 0, 1, false)

	t.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 3, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			t.run("continue")
			return nil
		case tcell.KeyF11:
			t.run("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandInput.GetText()
	if cmd == "" {
		return
	}
	t.run(cmd)
	t.CommandInput.SetText("")
}

func (t *TUI) run(cmd string) {
	if err := t.Debugger.ExecuteCommand(cmd); err != nil {
		fmt.Fprintf(&t.Debugger.Output, "error: %v\n", err)
	}
	if out := t.Debugger.GetOutput(); out != "" {
		fmt.Fprint(t.OutputView, out)
		t.OutputView.ScrollToEnd()
	}
	t.refresh()
}

func (t *TUI) refresh() {
	t.updateDisasm()
	t.updateMemory()
	t.App.Draw()
}

func (t *TUI) updateDisasm() {
	i := t.Debugger.VM
	pc := i.PC
	var lines []string
	start := pc - 9
	if start < 0 {
		start = 0
	}
	for addr := start; addr < pc+30 && addr+2 < len(i.Image); addr += 3 {
		marker := "  "
		if addr == pc {
			marker = "->"
		}
		if t.Debugger.Breakpoints[addr] {
			marker = "* "
		}
		label := ""
		if name, ok := t.Debugger.Symbols[addr]; ok {
			label = name + ": "
		}
		lines = append(lines, fmt.Sprintf("%s %5d: %s%s", marker, addr, label, i.Image.Disassemble(addr)))
	}
	t.DisasmView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateMemory() {
	i := t.Debugger.VM
	var lines []string
	const perRow = 8
	for row := 0; row*perRow < len(i.Image) && row < 32; row++ {
		addr := row * perRow
		var cols []string
		for col := 0; col < perRow; col++ {
			a := addr + col
			if a >= len(i.Image) {
				break
			}
			cols = append(cols, fmt.Sprintf("%6d", i.Image[a]))
		}
		lines = append(lines, fmt.Sprintf("%5d: %s  %s", addr, strings.Join(cols, " "), stringGutter(i.Image, addr, perRow)))
	}
	t.MemoryView.SetText(strings.Join(lines, "\n"))
}

// stringGutter renders up to n bytes of the null-terminated buffer starting
// at addr, the same idea as a hexdump's trailing ASCII column, so a row
// holding a "print loop" style buffer shows its text alongside the raw
// cells. Bytes outside the printable range show as '.'.
func stringGutter(img vm.Image, addr, n int) string {
	buf := vm.StringCodec.Decode(img, addr)
	if len(buf) > n {
		buf = buf[:n]
	}
	out := make([]byte, len(buf))
	for i, b := range buf {
		if b >= 0x20 && b < 0x7f {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Run shows the TUI and blocks until the user quits.
func (t *TUI) Run() error {
	t.refresh()
	t.App.SetRoot(t.Layout, true).SetFocus(t.CommandInput)
	return t.App.Run()
}
