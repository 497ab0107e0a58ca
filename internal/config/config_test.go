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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 4, cfg.Assembler.Width)
	assert.Equal(t, 4, cfg.Emulator.Width)
	assert.False(t, cfg.Emulator.NullTerminateIn)
	assert.False(t, cfg.Emulator.ASCIIOut)
}

func TestLoadFromEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromOverlaysOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[assembler]
width = 8

[emulator]
ascii_output = true
`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Assembler.Width)
	assert.Equal(t, 4, cfg.Emulator.Width) // untouched key keeps its default
	assert.True(t, cfg.Emulator.ASCIIOut)
	assert.False(t, cfg.Emulator.NullTerminateIn)
}

func TestLoadFromRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml {{{"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
}

func TestDefaultPathIsUnderAPerUserConfigDir(t *testing.T) {
	path := DefaultPath()
	require.NotEmpty(t, path)
	assert.True(t, strings.HasSuffix(path, filepath.Join("subleq", "config.toml")))
}

// TestDefaultPathFallbackIsHonoredWhenFlagIsUnset exercises the fallback the
// CLIs are responsible for: when --config isn't given, they must pass
// DefaultPath() to LoadFrom rather than the empty string, or the per-user
// config file is silently skipped. LoadFrom itself has no opinion on what
// path it's given, so this models the caller-side substitution directly:
// writing a config file at DefaultPath() and loading it from there must
// observe the file, the same way it would if read from an explicit path.
func TestDefaultPathFallbackIsHonoredWhenFlagIsUnset(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := DefaultPath()
	require.NotEmpty(t, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`
[assembler]
width = 2
`), 0644))

	flagValue := "" // what c.String("config") yields when --config is omitted
	resolved := flagValue
	if resolved == "" {
		resolved = DefaultPath()
	}

	cfg, err := LoadFrom(resolved)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Assembler.Width)
}
