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

// Package config loads default flag values for the assembler and emulator
// CLIs from an optional TOML file, so that common settings (cell width,
// input policy) don't need to be repeated on every invocation.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds defaults shared by cmd/subleq-asm and cmd/subleq-vm.
type Config struct {
	Assembler struct {
		Width int `toml:"width"`
	} `toml:"assembler"`

	Emulator struct {
		Width           int  `toml:"width"`
		NullTerminateIn bool `toml:"null_terminate_input"`
		ASCIIOut        bool `toml:"ascii_output"`
	} `toml:"emulator"`
}

// Default returns a Config with the documented default cell width.
func Default() *Config {
	cfg := &Config{}
	cfg.Assembler.Width = 4
	cfg.Emulator.Width = 4
	cfg.Emulator.NullTerminateIn = false
	cfg.Emulator.ASCIIOut = false
	return cfg
}

// LoadFrom reads a Config from path, starting from Default() values so that
// a config file only needs to set the keys it wants to override. A missing
// file is not an error; it yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}
	return cfg, nil
}

// DefaultPath returns the per-user config file path, used when --config is
// not given explicitly. It never creates the directory; callers treat a
// missing file as "use built-in defaults".
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "subleq", "config.toml")
}
