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

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadImageRoundTrip(t *testing.T) {
	mem := Image{-1, -1, 0, 42, -42, 1000}
	path := filepath.Join(t.TempDir(), "img.bin")

	require.NoError(t, SaveImage(path, mem, Width4))
	got, err := LoadImage(path, Width4)
	require.NoError(t, err)
	assert.Equal(t, mem, got)
}

func TestLoadImageRejectsMisalignedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, SaveImage(path, Image{1, 2, 3}, Width1))
	_, err := LoadImage(path, Width4)
	assert.Error(t, err)
}

func TestImageDisassemble(t *testing.T) {
	img := Image{
		5, 6, 9, // subleq 5 6 9
		-1, 3, 12, // in 3
		7, -1, 15, // out 7
		-1, -1, 4, // halt 4
	}
	assert.Equal(t, "subleq 5 6 9", img.Disassemble(0))
	assert.Equal(t, "in 3", img.Disassemble(3))
	assert.Equal(t, "out 7", img.Disassemble(6))
	assert.Equal(t, "halt 4", img.Disassemble(9))
	assert.Equal(t, "???", img.Disassemble(-1))
	assert.Equal(t, "???", img.Disassemble(10))
}
