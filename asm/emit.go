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

import "github.com/hughcoleman/subleq/vm"

// emit resolves every Cell against r and encodes the result as a w-byte
// little-endian two's complement image.
func emit(cells []Cell, r *resolver, w vm.Width) ([]byte, error) {
	buf := make([]byte, 0, len(cells)*int(w))
	for addr, c := range cells {
		var v int64
		switch cc := c.(type) {
		case CellExpr:
			var err error
			v, err = r.Resolve(cc.Expr, cc.Pos)
			if err != nil {
				return nil, err
			}
		case CellInt:
			v = cc.N
		case CellByte:
			v = int64(cc.B)
		default:
			panic("emit: unknown Cell type")
		}
		if !w.Fits(vm.Cell(v)) {
			return nil, &RangeError{Addr: addr, Value: v, Width: int(w)}
		}
		buf = append(buf, w.Encode(vm.Cell(v))...)
	}
	return buf, nil
}
