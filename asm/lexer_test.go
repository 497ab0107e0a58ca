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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	l := newLexer("t.asm", strings.NewReader(src))
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks
		}
	}
}

func TestLexInstructionLine(t *testing.T) {
	toks := lexAll(t, "loop: subleq ptr one+4 [done]\n")
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokIdent, TokPunct, TokIdent, TokIdent, TokIdent, TokPunct, TokInteger,
		TokPunct, TokIdent, TokPunct, TokNewline, TokEOF,
	}, kinds)
}

func TestLexComment(t *testing.T) {
	toks := lexAll(t, "halt ; this is ignored\n")
	assert.Equal(t, TokIdent, toks[0].Kind)
	assert.Equal(t, TokNewline, toks[1].Kind)
}

func TestLexHexAndNegativeIntegers(t *testing.T) {
	toks := lexAll(t, "0x2A -17\n")
	require.Equal(t, TokInteger, toks[0].Kind)
	assert.EqualValues(t, 42, toks[0].Int)
	require.Equal(t, TokInteger, toks[1].Kind)
	assert.EqualValues(t, -17, toks[1].Int)
}

func TestLexStringEscape(t *testing.T) {
	toks := lexAll(t, `bytes "Hi\n\0"`+"\n")
	require.Equal(t, TokString, toks[1].Kind)
	assert.Equal(t, []byte("Hi\n\x00"), toks[1].Str)
}

func TestLexDirective(t *testing.T) {
	toks := lexAll(t, "#set ENTRY=main\n")
	require.Equal(t, TokDirective, toks[0].Kind)
	assert.Equal(t, "ENTRY", toks[0].Key)
	assert.Equal(t, "main", toks[0].Val)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	l := newLexer("t.asm", strings.NewReader("@\n"))
	_, err := l.Next()
	assert.IsType(t, &LexError{}, err)
}

func TestLexUnterminatedString(t *testing.T) {
	l := newLexer("t.asm", strings.NewReader(`"unterminated`))
	_, err := l.Next()
	assert.IsType(t, &LexError{}, err)
}
