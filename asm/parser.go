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
	"io"
)

// operandCounts lists the number of operands each instruction mnemonic
// requires. "int" and "bytes" are parsed separately into StmtRaw and are not
// listed here.
var operandCounts = map[string]int{
	"noop":   0,
	"subleq": 3,
	"add":    2,
	"sub":    2,
	"zer":    1,
	"mov":    2,
	"jmp":    1,
	"beq":    2,
	"cmp":    3,
	"in":     1,
	"out":    1,
	"halt":   0,
}

// parser reads a Token stream into a Statement sequence.
type parser struct {
	lex  *lexer
	name string
	tok  Token
}

func newParserFor(name string, r io.Reader) *parser {
	return &parser{lex: newLexer(name, r), name: name}
}

func (p *parser) advance() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// Parse consumes the entire source and returns its Statement sequence.
func (p *parser) Parse() ([]Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var stmts []Statement
	for p.tok.Kind != TokEOF {
		switch p.tok.Kind {
		case TokNewline:
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		case TokDirective:
			stmts = append(stmts, StmtDirective{Key: p.tok.Key, Value: p.tok.Val, Pos: p.tok.Pos})
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		line, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, line...)
	}
	return stmts, nil
}

// parseLine parses everything up to (but not consuming) the next Newline/EOF.
func (p *parser) parseLine() ([]Statement, error) {
	var out []Statement
	for {
		switch p.tok.Kind {
		case TokNewline, TokEOF:
			return out, nil
		case TokIdent:
			name := p.tok.Text
			la := p.tok.Pos
			save := p.tok
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.Kind == TokPunct && p.tok.Text == ":" {
				out = append(out, StmtLabel{Name: name, Pos: la})
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			// not a label: it was the mnemonic.
			stmt, err := p.parseInstrFrom(save)
			if err != nil {
				return nil, err
			}
			out = append(out, stmt)
			return p.finishLine(out)
		default:
			return nil, &ParseError{Pos: p.tok.Pos, Msg: "unexpected token " + p.tok.Kind.String()}
		}
	}
}

// finishLine expects the instruction just parsed to end its line: anything
// but a Newline/EOF after it, including a trailing label, is rejected.
// Labels before the instruction ("foo: bar: halt") are handled by parseLine.
func (p *parser) finishLine(out []Statement) ([]Statement, error) {
	switch p.tok.Kind {
	case TokNewline, TokEOF:
		return out, nil
	default:
		return nil, &ParseError{Pos: p.tok.Pos, Msg: "unexpected token after instruction"}
	}
}

// parseInstrFrom parses a mnemonic/operand list or a "int"/"bytes" raw
// statement. mnemonicTok has already been consumed; p.tok is the token that
// follows it.
func (p *parser) parseInstrFrom(mnemonicTok Token) (Statement, error) {
	mnemonic := mnemonicTok.Text
	pos := mnemonicTok.Pos

	switch mnemonic {
	case "int":
		expr, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		return StmtRaw{Kind: "int", Int: expr, Pos: pos}, nil
	case "bytes":
		if p.tok.Kind != TokString {
			return nil, &ParseError{Pos: p.tok.Pos, Msg: "bytes expects a string literal"}
		}
		s := p.tok.Str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return StmtRaw{Kind: "bytes", Bytes: s, Pos: pos}, nil
	}

	n, ok := operandCounts[mnemonic]
	if !ok {
		return nil, &ParseError{Pos: pos, Msg: "unknown mnemonic " + mnemonic}
	}
	operands := make([]OperandExpr, 0, n)
	for i := 0; i < n; i++ {
		expr, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		operands = append(operands, expr)
	}
	if p.tok.Kind == TokIdent || p.tok.Kind == TokInteger || (p.tok.Kind == TokPunct && p.tok.Text == "[") {
		return nil, &ParseError{Pos: p.tok.Pos, Msg: mnemonic + ": too many operands"}
	}
	return StmtInstr{Mnemonic: mnemonic, Operands: operands, Pos: pos}, nil
}

// parseOperand parses: '[' atom ']' | atom ('+' integer)?
func (p *parser) parseOperand() (OperandExpr, error) {
	if p.tok.Kind == TokPunct && p.tok.Text == "[" {
		pos := p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.tok.Kind {
		case TokInteger:
			n := p.tok.Int
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expectPunct("]"); err != nil {
				return nil, err
			}
			return Literal{N: n}, nil
		case TokIdent:
			name := p.tok.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expectPunct("]"); err != nil {
				return nil, err
			}
			return LabelAddr{Name: name}, nil
		default:
			return nil, &ParseError{Pos: pos, Msg: "expected identifier or integer inside [ ]"}
		}
	}

	switch p.tok.Kind {
	case TokInteger:
		n := p.tok.Int
		if err := p.advance(); err != nil {
			return nil, err
		}
		off, ok, err := p.maybeOffset()
		if err != nil {
			return nil, err
		}
		if ok {
			return Literal{N: n + off}, nil
		}
		return Literal{N: n}, nil
	case TokIdent:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		off, ok, err := p.maybeOffset()
		if err != nil {
			return nil, err
		}
		if ok {
			return LabelRef{Name: name, Offset: off}, nil
		}
		return LabelRef{Name: name, Offset: 0}, nil
	default:
		return nil, &ParseError{Pos: p.tok.Pos, Msg: "expected operand, got " + p.tok.Kind.String()}
	}
}

func (p *parser) maybeOffset() (int64, bool, error) {
	if p.tok.Kind != TokPunct || p.tok.Text != "+" {
		return 0, false, nil
	}
	if err := p.advance(); err != nil {
		return 0, false, err
	}
	if p.tok.Kind != TokInteger {
		return 0, false, &ParseError{Pos: p.tok.Pos, Msg: "expected integer after +"}
	}
	n := p.tok.Int
	if err := p.advance(); err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func (p *parser) expectPunct(s string) error {
	if p.tok.Kind != TokPunct || p.tok.Text != s {
		return &ParseError{Pos: p.tok.Pos, Msg: "expected '" + s + "'"}
	}
	return p.advance()
}
