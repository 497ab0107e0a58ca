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

import "fmt"

// SegFault is returned when a fetch or store addresses a cell outside
// [0, len(mem)).
type SegFault struct {
	PC   int
	Addr int
	Size int
}

func (e *SegFault) Error() string {
	return fmt.Sprintf("segfault: pc=%d addr=%d out of bounds [0,%d)", e.PC, e.Addr, e.Size)
}

// InputExhausted is returned when an "in" trap reads past the end of input
// and --null-terminate-input was not set, or its single null has already
// been consumed.
type InputExhausted struct {
	PC int
}

func (e *InputExhausted) Error() string {
	return fmt.Sprintf("input exhausted at pc=%d", e.PC)
}

// HaltError carries the status code from a normal "-1 -1 c" halt trap. Step
// and Run report a halt through their status return value, not through this
// type; the debugger uses it to format its halt message.
type HaltError struct {
	Status int
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("halted with status %d", e.Status)
}
