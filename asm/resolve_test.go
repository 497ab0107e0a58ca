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

	"github.com/hughcoleman/subleq/vm"
)

func TestAssembleUnknownLabelFails(t *testing.T) {
	_, err := Assemble("t.asm", strings.NewReader("out missing\nhalt\n"), vm.Width4)
	require.Error(t, err)
	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, UnknownLabel, re.Kind)
	assert.Equal(t, "missing", re.Name)
}

func TestAssembleDuplicateLabelFails(t *testing.T) {
	_, err := Assemble("t.asm", strings.NewReader("a: halt\na: halt\n"), vm.Width4)
	require.Error(t, err)
	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, DuplicateLabel, re.Kind)
}

func TestAssembleRangeErrorOnOversizedLiteral(t *testing.T) {
	_, err := Assemble("t.asm", strings.NewReader("int 1000\n"), vm.Width1)
	require.Error(t, err)
	var rngErr *RangeError
	require.ErrorAs(t, err, &rngErr)
	assert.Equal(t, 0, rngErr.Addr)
}

func TestAssembleUnknownEntryLabelFails(t *testing.T) {
	_, err := Assemble("t.asm", strings.NewReader("#set ENTRY=nope\nhalt\n"), vm.Width4)
	require.Error(t, err)
	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, UnknownLabel, re.Kind)
	assert.Equal(t, "nope", re.Name)
}

func TestAssembleSymbolTableCoversEveryLabel(t *testing.T) {
	res, err := Assemble("t.asm", strings.NewReader("a: halt\nb: int 0\n"), vm.Width4)
	require.NoError(t, err)
	assert.Contains(t, res.Symbols, "a")
	assert.Contains(t, res.Symbols, "b")
	assert.Equal(t, 0, res.Symbols["a"])
	assert.Equal(t, 3, res.Symbols["b"])
}
