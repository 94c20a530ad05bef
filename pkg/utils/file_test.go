// Copyright (C) 2023, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExists(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "present")
	assert.NoError(os.WriteFile(file, []byte("x"), 0o644))

	assert.True(FileExists(file))
	assert.False(FileExists(filepath.Join(dir, "absent")))
	// a directory is not a file
	assert.False(FileExists(dir))
}

func TestDirectoryExists(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	assert.True(DirectoryExists(dir))
	assert.False(DirectoryExists(filepath.Join(dir, "absent")))
}

func TestExpandHome(t *testing.T) {
	assert := assert.New(t)

	home, err := os.UserHomeDir()
	assert.NoError(err)

	assert.Equal(filepath.Join(home, "work"), ExpandHome("~/work"))
	assert.Equal(home, ExpandHome(""))
	assert.Equal("/usr/local/bin", ExpandHome("/usr/local/bin"))
}

func TestIsExecutable(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	bin := filepath.Join(dir, "bin")
	assert.NoError(os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))
	plain := filepath.Join(dir, "plain")
	assert.NoError(os.WriteFile(plain, []byte("data"), 0o644))

	assert.True(IsExecutable(bin))
	assert.False(IsExecutable(plain))
	assert.False(IsExecutable(filepath.Join(dir, "absent")))
}
