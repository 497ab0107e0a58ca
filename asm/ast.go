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

// OperandExpr is evaluated at resolution time to a signed integer.
type OperandExpr interface {
	isOperand()
}

// Literal is an integer used directly.
type Literal struct{ N int64 }

// LabelRef is the address of Name plus Offset, the assembled form of "name+k".
type LabelRef struct {
	Name   string
	Offset int64
}

// LabelAddr is the address of Name taken as an immediate, the assembled form
// of "[name]". [n] for an integer literal n degrades to Literal(n) instead.
type LabelAddr struct{ Name string }

// Temp is a fresh temporary slot created during lowering.
type Temp struct{ ID int }

// localAddr is an internal branch target computed during lowering, relative
// to the unshifted (pre-ENTRY-prologue) cell numbering. It is never produced
// by the parser; only the macro lowerer emits it.
type localAddr struct{ Addr int }

func (Literal) isOperand()   {}
func (LabelRef) isOperand()  {}
func (LabelAddr) isOperand() {}
func (Temp) isOperand()      {}
func (localAddr) isOperand() {}

// Statement is one parsed line-level construct.
type Statement interface {
	isStatement()
}

// StmtLabel binds Name to the address of the next emitted cell.
type StmtLabel struct {
	Name string
	Pos  Position
}

// StmtDirective is a "#set KEY=VALUE" line.
type StmtDirective struct {
	Key, Value string
	Pos        Position
}

// StmtInstr is a mnemonic with its operands in source order.
type StmtInstr struct {
	Mnemonic string
	Operands []OperandExpr
	Pos      Position
}

// StmtRaw is a "int N" or "bytes \"S\"" line.
type StmtRaw struct {
	Kind  string // "int" or "bytes"
	Int   OperandExpr
	Bytes []byte
	Pos   Position
}

func (StmtLabel) isStatement()     {}
func (StmtDirective) isStatement() {}
func (StmtInstr) isStatement()     {}
func (StmtRaw) isStatement()       {}

// Cell is one post-lowering, pre-resolution memory location.
type Cell interface {
	isCell()
}

// CellExpr holds an operand expression to be resolved in pass 2. Pos is the
// source statement that generated it, used for UnknownLabel diagnostics.
type CellExpr struct {
	Expr OperandExpr
	Pos  Position
}

// CellInt is a literal integer cell (e.g. a zero-initialized temporary).
type CellInt struct{ N int64 }

// CellByte is one byte of a "bytes" statement.
type CellByte struct{ B byte }

func (CellExpr) isCell() {}
func (CellInt) isCell()  {}
func (CellByte) isCell() {}
