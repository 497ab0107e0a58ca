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

// Package vm implements a SUBLEQ one-instruction-set computer.
//
// A SUBLEQ machine has exactly one instruction, "subtract and branch if
// less than or equal to zero":
//
//	(A, B, C): mem[B] -= mem[A]; if mem[B] <= 0 { pc = C } else { pc += 3 }
//
// This package's Instance executes that cycle directly over a flat Image of
// signed Cells, with three traps layered on top of it via the sentinel
// operand -1:
//
//	A == -1 && B == -1	halt, with status mem[pc+2]
//	A == -1			read one input byte into mem[B]
//	B == -1			write mem[A] to output
//
// Cell width (1, 2, 4, or 8 bytes) is fixed for the lifetime of an Instance
// and governs both the on-disk encoding (see LoadImage/SaveImage) and the
// wraparound behaviour of the subtraction itself: values that overflow the
// configured width wrap modulo 2^(width*8) with sign reinterpretation.
//
// Reads and writes are bounds-checked against the image length; an
// out-of-range address produces a *SegFault rather than silently extending
// the image.
package vm
