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

package asm

import (
	"io"

	"github.com/pkg/errors"

	"github.com/hughcoleman/subleq/vm"
)

// entryPrologueLen is the number of cells occupied by the jmp ENTRY
// prologue, when one is needed.
const entryPrologueLen = 3

// Result is the product of a successful Assemble call.
type Result struct {
	// Image is the assembled program, encoded as Width-byte little-endian
	// two's complement cells.
	Image []byte
	// Width is the cell width the image was encoded with.
	Width vm.Width
	// Symbols maps every user-defined label to its final address, for
	// callers that want to emit a debug symbol table alongside the image.
	Symbols map[string]int
	// Entry is the address execution begins at: 0, unless an ENTRY
	// directive named a label other than the one already at address 0.
	Entry int
}

// Assemble reads SUBLEQ assembly source named name from r and produces a
// binary image encoded at the given cell width.
func Assemble(name string, r io.Reader, width vm.Width) (*Result, error) {
	if !width.Valid() {
		return nil, errors.Errorf("%s: unsupported cell width %d", name, width)
	}

	p := newParserFor(name, r)
	stmts, err := p.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	l, err := lowerProgram(stmts)
	if err != nil {
		return nil, errors.Wrap(err, "lower")
	}

	shift, prologue, err := entryShift(l)
	if err != nil {
		return nil, err
	}

	cells := l.cells
	if prologue != nil {
		full := make([]Cell, 0, len(prologue)+len(cells))
		full = append(full, prologue...)
		full = append(full, cells...)
		cells = full
	}

	r2 := newResolver(l, shift)
	img, err := emit(cells, r2, width)
	if err != nil {
		return nil, errors.Wrap(err, "emit")
	}

	entry := 0
	if l.entryLabel != "" {
		addr, ok := r2.Symbols()[l.entryLabel]
		if !ok {
			return nil, &ResolveError{Kind: UnknownLabel, Name: l.entryLabel, Pos: l.entryPos}
		}
		entry = addr
	}

	return &Result{
		Image:   img,
		Width:   width,
		Symbols: r2.Symbols(),
		Entry:   entry,
	}, nil
}

// entryShift decides whether an ENTRY prologue is needed and, if so, builds
// it. It resolves l's ENTRY label against the unshifted (shift=0) numbering
// first: if that address is already 0, execution already starts at the
// right place and no prologue is required. Otherwise a 3-cell "jmp ENTRY"
// prologue is prepended and every other address in the image is shifted by
// entryPrologueLen to make room for it.
func entryShift(l *lowered) (shift int, prologue []Cell, err error) {
	if l.entryLabel == "" {
		return 0, nil, nil
	}
	natural, ok := l.labels[l.entryLabel]
	if !ok {
		return 0, nil, &ResolveError{Kind: UnknownLabel, Name: l.entryLabel, Pos: l.entryPos}
	}
	if natural.addr == 0 {
		return 0, nil, nil
	}

	// The prologue needs one fresh temporary of its own, allocated one past
	// every temporary the main lowering pass already handed out; its
	// zero-valued backing cell is appended after l.cells below.
	x := Temp{ID: l.numTemps}
	l.numTemps++
	l.cells = append(l.cells, CellInt{N: 0})

	prologue = []Cell{
		e(x, l.entryPos), e(x, l.entryPos), e(LabelRef{Name: l.entryLabel}, l.entryPos),
	}
	return entryPrologueLen, prologue, nil
}
