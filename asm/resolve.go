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

// resolver implements symbol resolution pass 2: turning OperandExpr values
// into final integers, given the address shift introduced (or not) by an
// ENTRY prologue.
type resolver struct {
	shift    int
	tempBase int // address of temporary 0
	symbols  map[string]int
}

func newResolver(l *lowered, shift int) *resolver {
	r := &resolver{shift: shift, tempBase: shift + l.userCells, symbols: make(map[string]int, len(l.labels))}
	for name, def := range l.labels {
		r.symbols[name] = def.addr + shift
	}
	return r
}

// Symbols returns the final (post-shift) address of every label, for
// callers that want to emit a symbol table alongside the binary.
func (r *resolver) Symbols() map[string]int {
	out := make(map[string]int, len(r.symbols))
	for k, v := range r.symbols {
		out[k] = v
	}
	return out
}

// Resolve evaluates expr to its final integer value.
func (r *resolver) Resolve(expr OperandExpr, pos Position) (int64, error) {
	switch v := expr.(type) {
	case Literal:
		return v.N, nil
	case LabelRef:
		addr, ok := r.symbols[v.Name]
		if !ok {
			return 0, &ResolveError{Kind: UnknownLabel, Name: v.Name, Pos: pos}
		}
		return int64(addr) + v.Offset, nil
	case LabelAddr:
		addr, ok := r.symbols[v.Name]
		if !ok {
			return 0, &ResolveError{Kind: UnknownLabel, Name: v.Name, Pos: pos}
		}
		return int64(addr), nil
	case Temp:
		return int64(r.tempBase + v.ID), nil
	case localAddr:
		return int64(v.Addr + r.shift), nil
	default:
		panic("resolve: unknown OperandExpr type")
	}
}
