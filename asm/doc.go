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

// Package asm assembles SUBLEQ source into a binary image for the vm
// package.
//
// SUBLEQ itself has exactly one instruction:
//
//	subleq A B C	mem[B] -= mem[A]; if mem[B] <= 0 { goto C } else { goto next }
//
// Writing every program directly in terms of subleq is painful, so this
// assembler accepts a small set of macro mnemonics that expand to one or
// more subleq cells. None of them add expressive power; they only save
// typing:
//
//	mnemonic	operands	expands to
//	--------	--------	----------
//	noop				(nothing; 0 cells)
//	subleq		a, b, c		itself
//	add		a, b		b += mem[a]
//	sub		a, b		b -= mem[a]
//	zer		a		mem[a] = 0
//	mov		s, d		mem[d] = mem[s]
//	jmp		a		unconditional jump to a
//	beq		o, a		jump to a if mem[o] == 0
//	cmp		a, b, d		jump to d if mem[a] == mem[b]
//	in		a		read one byte of input into mem[a]
//	out		a		write mem[a] to output
//	halt				stop execution
//
//	int <value>			emit one raw cell containing value
//	bytes "text"			emit one raw cell per byte of text
//
// Operands:
//
// An operand is a bare integer or identifier, each naming a memory address
// (every operand in a subleq triple is an address, never an immediate
// value). The same forms may be wrapped in square brackets ([42], [label])
// and resolve to the same address; the brackets exist so "the address of
// this label" reads the same whether or not a macro dereferences it. An
// identifier operand may carry a constant offset, as in "buf+4".
//
// Labels:
//
// A label is an identifier followed by a colon, appearing on its own or in
// front of an instruction on the same line:
//
//	loop:	subleq ptr one done
//		jmp loop
//	done:	halt
//
// Every label must be defined exactly once; referencing an undefined label,
// or defining the same one twice, is an assembly error.
//
// Directives:
//
// The only directive is:
//
//	#set ENTRY=label
//
// which names the label execution should begin at. If that label does not
// already sit at address 0, the assembler prepends a three-cell jump to it
// and shifts every other address in the image accordingly.
package asm
