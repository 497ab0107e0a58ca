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

package vm

import (
	"io"

	"github.com/pkg/errors"
)

// Option configures an Instance at construction time.
type Option func(*Instance) error

// WithInput sets the Instance's input adapter, consumed by the "in" trap.
func WithInput(in Input) Option {
	return func(i *Instance) error { i.in = in; return nil }
}

// WithOutput sets the Instance's output adapter, consumed by the "out" trap.
func WithOutput(out Output) Option {
	return func(i *Instance) error { i.out = out; return nil }
}

// Instance is a running SUBLEQ machine: a program counter and the memory
// image it steps over.
type Instance struct {
	PC       int
	Image    Image
	Width    Width
	in       Input
	out      Output
	insCount int64
}

// New creates a SUBLEQ Instance over image, encoded at the given cell width.
// Execution begins at entry.
func New(image Image, width Width, entry int, opts ...Option) (*Instance, error) {
	if !width.Valid() {
		return nil, errors.Errorf("unsupported cell width %d", width)
	}
	i := &Instance{PC: entry, Image: image, Width: width}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.in == nil {
		i.in = NewInput(eofReader{}, false)
	}
	if i.out == nil {
		i.out = NewASCIIOutput(io.Discard)
	}
	return i, nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

// InsCount returns the number of SUBLEQ steps executed so far, including
// steps consumed by in/out traps. The final halt trap and a step that fails
// are not counted.
func (i *Instance) InsCount() int64 { return i.insCount }

// addr validates that a is a legal cell address.
func (i *Instance) addr(a Cell) (int, error) {
	v := int(a)
	if v < 0 || v >= len(i.Image) {
		return 0, &SegFault{PC: i.PC, Addr: v, Size: len(i.Image)}
	}
	return v, nil
}

// Step executes a single fetch-decode-execute cycle. halted is true iff the
// step was a halt trap, in which case status carries its exit status.
func (i *Instance) Step() (halted bool, status int, err error) {
	pc := i.PC
	if pc < 0 || pc+2 >= len(i.Image) {
		return false, 0, &SegFault{PC: pc, Addr: pc, Size: len(i.Image)}
	}
	a, b, c := i.Image[pc], i.Image[pc+1], i.Image[pc+2]

	switch {
	case a == -1 && b == -1:
		return true, int(byte(c)), nil

	case a == -1:
		dst, err := i.addr(b)
		if err != nil {
			return false, 0, err
		}
		v, err := i.in.ReadByte()
		if err != nil {
			if ie, ok := err.(*InputExhausted); ok {
				ie.PC = pc
			}
			return false, 0, err
		}
		i.Image[dst] = v
		i.PC = pc + 3

	case b == -1:
		src, err := i.addr(a)
		if err != nil {
			return false, 0, err
		}
		if err := i.out.WriteCell(i.Image[src]); err != nil {
			return false, 0, err
		}
		i.PC = pc + 3

	default:
		srcA, err := i.addr(a)
		if err != nil {
			return false, 0, err
		}
		dstB, err := i.addr(b)
		if err != nil {
			return false, 0, err
		}
		nv := i.Width.Wrap(i.Image[dstB] - i.Image[srcA])
		i.Image[dstB] = nv
		if nv <= 0 {
			i.PC = int(c)
		} else {
			i.PC = pc + 3
		}
	}
	i.insCount++
	return false, 0, nil
}

// Run drives the Instance to completion, returning the halt status from a
// "-1 -1 c" trap, or the error that stopped it early.
func (i *Instance) Run() (status int, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered panic @pc=%d insCount=%d", i.PC, i.insCount)
			default:
				panic(e)
			}
		}
	}()
	for {
		halted, st, err := i.Step()
		if err != nil {
			return 0, err
		}
		if halted {
			return st, nil
		}
	}
}
