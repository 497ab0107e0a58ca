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
	"bufio"
	"io"
	"strconv"
)

// lexer turns a source byte stream, read through a bufio.Reader, into a
// Token stream, one token per Next call. Parser consumes tokens one
// statement (line) at a time.
type lexer struct {
	r        *bufio.Reader
	name     string
	line     int
	col      int
	lastByte byte
	haveLast bool
}

func newLexer(name string, r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), name: name, line: 1, col: 0}
}

func (l *lexer) pos() Position {
	return Position{Filename: l.name, Line: l.line, Column: l.col + 1}
}

func (l *lexer) readByte() (byte, error) {
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, err
	}
	l.lastByte = b
	if b == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return b, nil
}

func (l *lexer) unreadByte() {
	_ = l.r.UnreadByte()
	if l.lastByte == '\n' {
		l.line--
	} else {
		l.col--
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Next returns the next token, or a *LexError.
func (l *lexer) Next() (Token, error) {
	for {
		pos := l.pos()
		b, err := l.readByte()
		if err == io.EOF {
			return Token{Kind: TokEOF, Pos: pos}, nil
		}
		if err != nil {
			return Token{}, err
		}
		l.lastByte = b

		switch {
		case b == '\n':
			return Token{Kind: TokNewline, Pos: pos}, nil
		case b == ' ' || b == '\t' || b == '\r':
			continue
		case b == ';':
			// comment to end of line
			for {
				c, err := l.readByte()
				if err == io.EOF || c == '\n' {
					if c == '\n' {
						return Token{Kind: TokNewline, Pos: pos}, nil
					}
					return Token{Kind: TokEOF, Pos: l.pos()}, nil
				}
				if err != nil {
					return Token{}, err
				}
			}
		case b == '#':
			return l.lexDirective(pos)
		case b == '"':
			return l.lexString(pos)
		case b == ':' || b == '+' || b == '[' || b == ']':
			return Token{Kind: TokPunct, Pos: pos, Text: string(b)}, nil
		case b == '-' || isDigit(b):
			l.unreadByte()
			return l.lexNumber(pos)
		case isIdentStart(b):
			l.unreadByte()
			return l.lexIdent(pos)
		default:
			return Token{}, &LexError{Pos: pos, Msg: "unexpected character " + strconv.QuoteRune(rune(b))}
		}
	}
}

func (l *lexer) lexIdent(pos Position) (Token, error) {
	var buf []byte
	for {
		b, err := l.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isIdentCont(b) {
			l.unreadByte()
			break
		}
		buf = append(buf, b)
	}
	return Token{Kind: TokIdent, Pos: pos, Text: string(buf)}, nil
}

func (l *lexer) lexNumber(pos Position) (Token, error) {
	var buf []byte
	b, err := l.readByte()
	if err != nil {
		return Token{}, err
	}
	if b == '-' {
		buf = append(buf, b)
		b, err = l.readByte()
		if err != nil {
			return Token{}, &LexError{Pos: pos, Msg: "malformed number"}
		}
	}
	if !isDigit(b) {
		return Token{}, &LexError{Pos: pos, Msg: "malformed number"}
	}
	buf = append(buf, b)
	// hex / binary prefix
	if b == '0' {
		if nb, err := l.r.Peek(1); err == nil && len(nb) == 1 && (nb[0] == 'x' || nb[0] == 'X' || nb[0] == 'b' || nb[0] == 'B') {
			p, _ := l.readByte()
			buf = append(buf, p)
		}
	}
	for {
		c, err := l.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !(isIdentCont(c)) {
			l.unreadByte()
			break
		}
		buf = append(buf, c)
	}
	s := string(buf)
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return Token{}, &LexError{Pos: pos, Msg: "malformed number " + strconv.Quote(s)}
	}
	return Token{Kind: TokInteger, Pos: pos, Int: n}, nil
}

func (l *lexer) lexString(pos Position) (Token, error) {
	var buf []byte
	for {
		b, err := l.readByte()
		if err == io.EOF {
			return Token{}, &LexError{Pos: pos, Msg: "unterminated string literal"}
		}
		if err != nil {
			return Token{}, err
		}
		if b == '"' {
			return Token{Kind: TokString, Pos: pos, Str: buf}, nil
		}
		if b == '\\' {
			e, err := l.readByte()
			if err != nil {
				return Token{}, &LexError{Pos: pos, Msg: "unterminated string literal"}
			}
			switch e {
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case '0':
				buf = append(buf, 0)
			default:
				return Token{}, &LexError{Pos: pos, Msg: "invalid escape sequence \\" + string(e)}
			}
			continue
		}
		if b == '\n' {
			return Token{}, &LexError{Pos: pos, Msg: "unterminated string literal"}
		}
		buf = append(buf, b)
	}
}

// lexDirective scans "#set KEY=VALUE" to end of line.
func (l *lexer) lexDirective(pos Position) (Token, error) {
	var kw []byte
	for {
		b, err := l.readByte()
		if err == io.EOF || b == '\n' || b == ' ' || b == '\t' {
			if b == '\n' {
				return Token{}, &LexError{Pos: pos, Msg: "malformed directive"}
			}
			break
		}
		if err != nil {
			return Token{}, err
		}
		kw = append(kw, b)
	}
	if string(kw) != "set" {
		return Token{}, &LexError{Pos: pos, Msg: "unknown directive #" + string(kw)}
	}
	// skip spaces
	for {
		b, err := l.readByte()
		if err != nil {
			return Token{}, &LexError{Pos: pos, Msg: "malformed directive"}
		}
		if b != ' ' && b != '\t' {
			l.unreadByte()
			break
		}
	}
	var rest []byte
	for {
		b, err := l.readByte()
		if err == io.EOF || b == '\n' {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if b == ';' {
			// trailing comment
			for {
				c, err := l.readByte()
				if err == io.EOF || c == '\n' {
					break
				}
				if err != nil {
					return Token{}, err
				}
			}
			break
		}
		rest = append(rest, b)
	}
	eq := -1
	for i, c := range rest {
		if c == '=' {
			eq = i
			break
		}
	}
	if eq < 0 {
		return Token{}, &LexError{Pos: pos, Msg: "malformed directive, expected KEY=VALUE"}
	}
	key := string(rest[:eq])
	val := string(rest[eq+1:])
	return Token{Kind: TokDirective, Pos: pos, Key: key, Val: val}, nil
}
