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

package debugger

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadSymbols reads a "<address> <name>" sidecar file as written by
// subleq-asm's --emit-symbols flag, and indexes it by address for the
// debugger's disassembly view.
func (d *Debugger) LoadSymbols(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "load symbols")
	}
	defer f.Close()

	d.Symbols = make(map[int]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		addr, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		d.Symbols[addr] = fields[1]
	}
	return sc.Err()
}
