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

// labelDef records where (in the unshifted numbering) a label was bound and
// where it was first defined, for duplicate-definition diagnostics.
type labelDef struct {
	addr int
	pos  Position
}

// lowered is the result of a single lowering pass over a Statement sequence,
// expressed in the "unshifted" cell numbering, i.e. as if no ENTRY prologue
// were ever prepended. asm.go adds the ENTRY prologue (if any) and applies a
// uniform address shift afterwards.
type lowered struct {
	cells      []Cell
	labels     map[string]labelDef
	userCells  int // len(cells) before temporaries were appended
	numTemps   int
	entryLabel string
	entryPos   Position
}

// newTempAllocator returns a function that hands out fresh, monotonically
// increasing temporary ids, starting at start.
func newTempAllocator(start int) (func() int, *int) {
	n := start
	return func() int {
		id := n
		n++
		return id
	}, &n
}

// lowerProgram expands every Statement into Cells, in source order, and
// assigns each label the address of the cell that follows it. Temporaries
// are appended after all user cells, in order of allocation.
func lowerProgram(stmts []Statement) (*lowered, error) {
	l := &lowered{labels: make(map[string]labelDef)}
	var pending []StmtLabel

	next, nTemps := newTempAllocator(0)

	bindPending := func(addr int) error {
		for _, lbl := range pending {
			if prev, ok := l.labels[lbl.Name]; ok {
				return &ResolveError{Kind: DuplicateLabel, Name: lbl.Name, Pos: lbl.Pos, Prev: prev.pos}
			}
			l.labels[lbl.Name] = labelDef{addr: addr, pos: lbl.Pos}
		}
		pending = pending[:0]
		return nil
	}

	for _, st := range stmts {
		switch s := st.(type) {
		case StmtLabel:
			pending = append(pending, s)
		case StmtDirective:
			if s.Key == "ENTRY" {
				l.entryLabel = s.Value
				l.entryPos = s.Pos
			}
			// other directives are silently ignored; ENTRY is the only one recognized.
		case StmtInstr:
			ip := len(l.cells)
			if err := bindPending(ip); err != nil {
				return nil, err
			}
			cells, err := lowerInstr(ip, s, next)
			if err != nil {
				return nil, err
			}
			l.cells = append(l.cells, cells...)
		case StmtRaw:
			ip := len(l.cells)
			if err := bindPending(ip); err != nil {
				return nil, err
			}
			switch s.Kind {
			case "int":
				l.cells = append(l.cells, CellExpr{Expr: s.Int, Pos: s.Pos})
			case "bytes":
				for _, b := range s.Bytes {
					l.cells = append(l.cells, CellByte{B: b})
				}
			}
		}
	}
	// labels after the last user cell (a trailing bare label is legal) bind
	// to the address one past it, where the temporaries begin.
	if err := bindPending(len(l.cells)); err != nil {
		return nil, err
	}

	l.userCells = len(l.cells)
	l.numTemps = *nTemps
	for i := 0; i < l.numTemps; i++ {
		l.cells = append(l.cells, CellInt{N: 0})
	}
	return l, nil
}

// lowerInstr expands one instruction at address ip into its primitive cells,
// per the macro lowering table.
func lowerInstr(ip int, s StmtInstr, next func() int) ([]Cell, error) {
	o := s.Operands
	pos := s.Pos
	switch s.Mnemonic {
	case "noop":
		return nil, nil
	case "subleq":
		return []Cell{e(o[0], pos), e(o[1], pos), e(o[2], pos)}, nil
	case "add":
		x := Temp{ID: next()}
		return []Cell{
			e(o[0], pos), e(x, pos), e(local(ip + 3), pos),
			e(x, pos), e(o[1], pos), e(local(ip + 6), pos),
			e(x, pos), e(x, pos), e(local(ip + 9), pos),
		}, nil
	case "sub":
		return lowerSub(ip, o[0], o[1], pos), nil
	case "zer":
		return []Cell{e(o[0], pos), e(o[0], pos), e(local(ip + 3), pos)}, nil
	case "mov":
		return lowerMov(ip, o[0], o[1], pos, next), nil
	case "jmp":
		x := Temp{ID: next()}
		return []Cell{e(x, pos), e(x, pos), e(o[0], pos)}, nil
	case "beq":
		return lowerBeq(ip, o[0], o[1], pos, next), nil
	case "cmp":
		return lowerCmp(ip, o[0], o[1], o[2], pos, next), nil
	case "in":
		return []Cell{CellExpr{Expr: Literal{N: -1}, Pos: pos}, e(o[0], pos), e(local(ip + 3), pos)}, nil
	case "out":
		return []Cell{e(o[0], pos), CellExpr{Expr: Literal{N: -1}, Pos: pos}, e(local(ip + 3), pos)}, nil
	case "halt":
		return []Cell{
			CellExpr{Expr: Literal{N: -1}, Pos: pos},
			CellExpr{Expr: Literal{N: -1}, Pos: pos},
			CellExpr{Expr: Literal{N: 0}, Pos: pos},
		}, nil
	default:
		panic("lowerInstr: unreachable mnemonic " + s.Mnemonic)
	}
}

// lowerMov expands "mov s d" starting at ip, without binding it to a
// StmtInstr, so that lowerCmp can reuse it as a sub-expansion.
func lowerMov(ip int, s, d OperandExpr, pos Position, next func() int) []Cell {
	x := Temp{ID: next()}
	return []Cell{
		e(d, pos), e(d, pos), e(local(ip + 3), pos),
		e(s, pos), e(x, pos), e(local(ip + 6), pos),
		e(x, pos), e(d, pos), e(local(ip + 9), pos),
		e(x, pos), e(x, pos), e(local(ip + 12), pos),
	}
}

// lowerSub expands "sub o1 o2" starting at ip.
func lowerSub(ip int, o1, o2 OperandExpr, pos Position) []Cell {
	return []Cell{e(o1, pos), e(o2, pos), e(local(ip + 3), pos)}
}

// lowerBeq expands "beq o a" starting at ip: jump to a iff mem[o] == 0.
// subleq only branches on "<= 0", so testing for exact equality takes two
// passes with a pair of temporaries: x = -o proves o >= 0 when x <= 0, and
// z = -x (= o) proves o <= 0 when z <= 0; only when both hold is o == 0.
// Every path resets whichever temporaries it touched back to 0 before
// falling through, since the same temps are reused on every loop iteration
// that re-executes this beq.
func lowerBeq(ip int, o, a OperandExpr, pos Position, next func() int) []Cell {
	x := Temp{ID: next()}
	z := Temp{ID: next()}
	return []Cell{
		e(o, pos), e(x, pos), e(local(ip + 6), pos), // x -= o        => x = -o; o>=0 iff x<=0
		e(x, pos), e(x, pos), e(local(ip + 18), pos), // o<0: reset x, done
		e(x, pos), e(z, pos), e(local(ip + 12), pos), // z -= x        => z = o;  o<=0 iff z<=0
		e(z, pos), e(z, pos), e(local(ip + 15), pos), // o>0: reset z, continue
		e(x, pos), e(x, pos), e(a, pos), // o==0: x is already 0, jump to a
		e(x, pos), e(x, pos), e(local(ip + 18), pos), // o>0: reset x, done
	}
}

// lowerCmp expands "cmp o1 o2 d" as "mov o1 $Y; sub o2 $Y; beq $Y d".
func lowerCmp(ip int, o1, o2, d OperandExpr, pos Position, next func() int) []Cell {
	y := Temp{ID: next()}
	cells := lowerMov(ip, o1, y, pos, next)
	ip += 12
	cells = append(cells, lowerSub(ip, o2, y, pos)...)
	ip += 3
	cells = append(cells, lowerBeq(ip, y, d, pos, next)...)
	return cells
}

func e(expr OperandExpr, pos Position) Cell { return CellExpr{Expr: expr, Pos: pos} }
func local(addr int) OperandExpr            { return localAddr{Addr: addr} }
