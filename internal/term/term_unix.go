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

//go:build !windows

// Package term puts standard input into raw mode for the emulator's byte
// I/O, so that "in" traps observe one keystroke at a time instead of
// waiting for a line to be buffered by the terminal driver.
package term

import (
	"golang.org/x/sys/unix"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

// SetRaw switches fd 0 (standard input) to raw mode and returns a function
// that restores it to its original settings.
func SetRaw() (restore func(), err error) {
	var tios unix.Termios
	if err := termios.Tcgetattr(0, &tios); err != nil {
		return nil, errors.Wrap(err, "tcgetattr failed")
	}
	raw := tios
	raw.Iflag &^= unix.BRKINT | unix.ISTRIP | unix.IXON | unix.IXOFF
	raw.Iflag |= unix.IGNBRK | unix.IGNPAR
	raw.Lflag &^= unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(0, termios.TCSANOW, &raw); err != nil {
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
		return nil, errors.Wrap(err, "tcsetattr failed")
	}
	return func() { termios.Tcsetattr(0, termios.TCSANOW, &tios) }, nil
}
