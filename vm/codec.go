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

// StringCodec reads and writes null-terminated byte buffers in a memory
// image, the layout used by "print loop" style programs (walk a buffer,
// out each byte, halt at the terminator). The debugger's memory pane uses
// Decode to render such buffers alongside their raw cells; tests use Encode
// to set them up without writing out an assembly source file.
var StringCodec stringCodec

type stringCodec struct{}

// Decode returns the bytes starting at address start in mem, up to (but not
// including) the first zero cell. It returns nil if start is out of range.
func (stringCodec) Decode(mem []Cell, start int) []byte {
	if start < 0 || start >= len(mem) {
		return nil
	}
	var out []byte
	for _, c := range mem[start:] {
		if c == 0 {
			break
		}
		out = append(out, byte(c))
	}
	return out
}

// Encode writes s at address start in mem, followed by a terminating zero
// cell. It silently truncates if s (plus terminator) would overrun mem.
func (stringCodec) Encode(mem []Cell, start int, s []byte) {
	pos := start
	for _, c := range s {
		if pos >= len(mem) {
			return
		}
		mem[pos] = Cell(c)
		pos++
	}
	if pos < len(mem) {
		mem[pos] = 0
	}
}
