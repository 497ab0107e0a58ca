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
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Input is the abstract byte-in channel consumed by the execution loop's
// "in" trap.
type Input interface {
	// ReadByte returns the next input byte as a Cell. On exhaustion it
	// returns an *InputExhausted error.
	ReadByte() (Cell, error)
}

// Output is the abstract integer-out channel consumed by the execution
// loop's "out" trap.
type Output interface {
	WriteCell(v Cell) error
}

// byteInput adapts an io.Reader to the Input interface, implementing the
// --null-terminate-input policy: the first read past EOF returns a single
// 0 cell, and every read after that fails with InputExhausted.
type byteInput struct {
	r             *bufio.Reader
	nullTerminate bool
	nullConsumed  bool
}

// NewInput wraps r as an Input. If nullTerminate is true, the stream
// yields one trailing 0 byte once r is exhausted, before InputExhausted
// takes over.
func NewInput(r io.Reader, nullTerminate bool) Input {
	return &byteInput{r: bufio.NewReader(r), nullTerminate: nullTerminate}
}

func (b *byteInput) ReadByte() (Cell, error) {
	c, err := b.r.ReadByte()
	if err == nil {
		return Cell(c), nil
	}
	if err != io.EOF {
		return 0, errors.Wrap(err, "read input")
	}
	if b.nullTerminate && !b.nullConsumed {
		b.nullConsumed = true
		return 0, nil
	}
	return 0, &InputExhausted{}
}

// asciiOutput renders each written cell as one raw output byte.
type asciiOutput struct {
	w *ErrWriter
}

// NewASCIIOutput returns an Output that writes each cell as a single byte.
func NewASCIIOutput(w io.Writer) Output {
	return &asciiOutput{w: NewErrWriter(w)}
}

func (o *asciiOutput) WriteCell(v Cell) error {
	_, err := o.w.Write([]byte{byte(v)})
	return err
}

// decimalOutput renders each written cell as a decimal number followed by a
// newline.
type decimalOutput struct {
	w *ErrWriter
}

// NewDecimalOutput returns an Output that writes each cell as a decimal
// number followed by a newline.
func NewDecimalOutput(w io.Writer) Output {
	return &decimalOutput{w: NewErrWriter(w)}
}

func (o *decimalOutput) WriteCell(v Cell) error {
	_, err := fmt.Fprintf(o.w, "%d\n", int64(v))
	return err
}
