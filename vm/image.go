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
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Image is a flat SUBLEQ memory: a mutable array of signed cells, addressed
// from 0. Its length is fixed once loaded; per §6 this spec treats the file
// length as the image length, with out-of-range accesses failing rather than
// being zero-filled.
type Image []Cell

// LoadImage reads a binary image from fileName, decoding it as a sequence
// of w-byte little-endian two's complement cells.
func LoadImage(fileName string, w Width) (Image, error) {
	if !w.Valid() {
		return nil, errors.Errorf("unsupported cell width %d", w)
	}
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load image")
	}
	if len(b)%int(w) != 0 {
		return nil, errors.Errorf("load image: file length %d is not a multiple of cell width %d", len(b), w)
	}
	n := len(b) / int(w)
	img := make(Image, n)
	for i := 0; i < n; i++ {
		img[i] = w.Decode(b[i*int(w) : (i+1)*int(w)])
	}
	return img, nil
}

// SaveImage writes mem to fileName, encoding every cell as a w-byte little
// endian two's complement value.
func SaveImage(fileName string, mem Image, w Width) error {
	if !w.Valid() {
		return errors.Errorf("unsupported cell width %d", w)
	}
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return errors.Wrap(err, "save image")
	}
	defer f.Close()
	buf := make([]byte, 0, len(mem)*int(w))
	for _, c := range mem {
		buf = append(buf, w.Encode(c)...)
	}
	if _, err := f.Write(buf); err != nil {
		return errors.Wrap(err, "save image")
	}
	return nil
}

// Disassemble renders the SUBLEQ triple at pc as "A B C", or a trap's
// mnemonic form (in/out/halt) when applicable, without advancing pc itself.
func (i Image) Disassemble(pc int) string {
	if pc < 0 || pc+2 >= len(i) {
		return "???"
	}
	a, b, c := i[pc], i[pc+1], i[pc+2]
	switch {
	case a == -1 && b == -1:
		return fmt.Sprintf("halt %d", c)
	case a == -1:
		return fmt.Sprintf("in %d", b)
	case b == -1:
		return fmt.Sprintf("out %d", a)
	default:
		return fmt.Sprintf("subleq %d %d %d", a, b, c)
	}
}
