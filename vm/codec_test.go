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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringCodecRoundTrip(t *testing.T) {
	mem := make([]Cell, 8)
	StringCodec.Encode(mem, 1, []byte("Hi"))
	assert.Equal(t, []byte("Hi"), StringCodec.Decode(mem, 1))
	assert.Equal(t, Cell(0), mem[3])
}

func TestStringCodecEncodeTruncatesSafely(t *testing.T) {
	mem := make([]Cell, 3)
	StringCodec.Encode(mem, 1, []byte("Hello"))
	assert.Equal(t, Cell('H'), mem[1])
	assert.Equal(t, Cell('e'), mem[2])
}

func TestStringCodecDecodeOutOfRange(t *testing.T) {
	mem := make([]Cell, 4)
	assert.Nil(t, StringCodec.Decode(mem, -1))
	assert.Nil(t, StringCodec.Decode(mem, 10))
}
