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

import "fmt"

// LexError is raised by the lexer on an unterminated string, malformed
// number, or unexpected character.
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }

// ParseError is raised by the parser on an unknown mnemonic, wrong operand
// count, or other syntactic error. It names the offending line.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }

// ResolveErrorKind discriminates the two ResolveError cases.
type ResolveErrorKind int

const (
	// UnknownLabel means an operand referenced a label that was never defined.
	UnknownLabel ResolveErrorKind = iota
	// DuplicateLabel means a label was defined more than once.
	DuplicateLabel
)

// ResolveError is raised during symbol resolution.
type ResolveError struct {
	Kind ResolveErrorKind
	Name string
	Pos  Position
	// Prev is set for DuplicateLabel: the position of the earlier definition.
	Prev Position
}

func (e *ResolveError) Error() string {
	switch e.Kind {
	case DuplicateLabel:
		return fmt.Sprintf("%s: label %q redefined (previously defined at %s)", e.Pos, e.Name, e.Prev)
	default:
		return fmt.Sprintf("%s: undefined label %q", e.Pos, e.Name)
	}
}

// RangeError is raised by the binary emitter when a resolved value does not
// fit in the configured cell width. Addr is the cell's address in the final
// image, since individual cells (particularly macro-generated ones) do not
// carry a source Position of their own.
type RangeError struct {
	Addr  int
	Value int64
	Width int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("address %d: value %d does not fit in a %d-bit cell", e.Addr, e.Value, e.Width*8)
}
