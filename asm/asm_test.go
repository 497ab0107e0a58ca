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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hughcoleman/subleq/vm"
)

// assembleAndRun assembles src and runs it to completion, returning its
// ASCII-mode output and halt status.
func assembleAndRun(t *testing.T, src string, in string) (string, int) {
	res, err := Assemble("t.asm", strings.NewReader(src), vm.Width4)
	require.NoError(t, err)

	img := decodeImage(t, res)

	var out bytes.Buffer
	instance, err := vm.New(img, vm.Width4, res.Entry,
		vm.WithInput(vm.NewInput(strings.NewReader(in), false)),
		vm.WithOutput(vm.NewASCIIOutput(&out)))
	require.NoError(t, err)

	status, err := instance.Run()
	require.NoError(t, err)
	return out.String(), status
}

// decodeImage turns a Result's encoded byte image back into vm.Cells,
// the same decoding vm.LoadImage does for a file on disk.
func decodeImage(t *testing.T, res *Result) vm.Image {
	require.True(t, len(res.Image)%int(res.Width) == 0)
	n := len(res.Image) / int(res.Width)
	img := make(vm.Image, n)
	for i := 0; i < n; i++ {
		img[i] = res.Width.Decode(res.Image[i*int(res.Width) : (i+1)*int(res.Width)])
	}
	return img
}

func TestAssembleMath(t *testing.T) {
	out, status := assembleAndRun(t, `
add a b
out b
sub c d
out d
halt

a: int 3
b: int 8
c: int 17
d: int 12
`, "")
	assert.Equal(t, 0, status)
	assert.Equal(t, []byte{0x0B, 0xFB}, []byte(out))
}

func TestAssembleIO(t *testing.T) {
	out, status := assembleAndRun(t, `
out m
in m
out m
halt

m: int 32
`, "A")
	assert.Equal(t, 0, status)
	assert.Equal(t, "\x20A", out)
}

func TestAssembleAddressingModes(t *testing.T) {
	// every instruction operand names an address, never an immediate value,
	// so "m" and "[m]" resolve to the same address and both dereference
	// once when used by an instruction: "mov [m] ptr" copies mem[m] into
	// ptr, the same as plain "mov m ptr" would. in a raw "int" data cell
	// the two forms likewise agree: both store the address of the label,
	// with no instruction around to dereference it.
	out, status := assembleAndRun(t, `
out m
out m+1
mov [m] ptr
out ptr
halt

ptr: int 0
m:   int 17
     int 189
`, "")
	assert.Equal(t, 0, status)
	bytes := []byte(out)
	require.Len(t, bytes, 3)
	assert.Equal(t, byte(17), bytes[0])  // mem[m]
	assert.Equal(t, byte(189), bytes[1]) // mem[m+1]
	assert.Equal(t, byte(17), bytes[2])  // ptr now holds mem[m], dereferenced by mov
}

func TestAssembleHaltStatus(t *testing.T) {
	_, status := assembleAndRun(t, "subleq -1 -1 7\n", "")
	assert.Equal(t, 7, status)
}

func TestAssembleHaltStatusTruncated(t *testing.T) {
	_, status := assembleAndRun(t, "subleq -1 -1 300\n", "")
	assert.Equal(t, 300&0xff, status)
}

func TestAssemblePrintLoop(t *testing.T) {
	out, status := assembleAndRun(t, `
loop:
	mov cursor aslot
	zer cur
aslot:	subleq 0 cur more
more:	zer byte
	sub cur byte
	beq byte end
	mov cursor oslot
oslot:	subleq 0 -1 step
step:	add one cursor
	jmp loop
end:	halt

cursor: int buf
one:    int 1
cur:    int 0
byte:   int 0
buf:    bytes "Hi"
`, "")
	assert.Equal(t, 0, status)
	assert.Equal(t, "Hi", out)
}

func TestAssembleBeqNotTaken(t *testing.T) {
	out, status := assembleAndRun(t, `
beq x end
out one
end: halt

x:   int 1
one: int 1
`, "")
	assert.Equal(t, 0, status)
	assert.Equal(t, []byte{0x01}, []byte(out))
}

func TestAssembleBeqTaken(t *testing.T) {
	out, status := assembleAndRun(t, `
beq x end
out one
end: halt

x:   int 0
one: int 1
`, "")
	assert.Equal(t, 0, status)
	assert.Equal(t, "", out)
}

func TestAssembleBeqNotTakenForNegativeOperand(t *testing.T) {
	out, status := assembleAndRun(t, `
beq x end
out one
end: halt

x:   int -3
one: int 1
`, "")
	assert.Equal(t, 0, status)
	assert.Equal(t, []byte{0x01}, []byte(out))
}

func TestAssembleCmpJumpsOnlyWhenEqual(t *testing.T) {
	out, status := assembleAndRun(t, `
cmp a b eq
out neq
jmp done
eq: out yes
done: halt

a:   int 5
b:   int -2
neq: int 1
yes: int 2
`, "")
	assert.Equal(t, 0, status)
	assert.Equal(t, []byte{0x01}, []byte(out))
}

func TestAssembleEntryPrologueShiftsAddresses(t *testing.T) {
	res, err := Assemble("t.asm", strings.NewReader(`
#set ENTRY=main
data: int 0
main: halt
`), vm.Width4)
	require.NoError(t, err)
	assert.NotEqual(t, 0, res.Entry)
	assert.Equal(t, res.Entry, res.Symbols["main"])
}

func TestAssembleEntryAlreadyAtZeroNeedsNoPrologue(t *testing.T) {
	res, err := Assemble("t.asm", strings.NewReader(`
#set ENTRY=main
main: halt
`), vm.Width4)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Entry)
}
