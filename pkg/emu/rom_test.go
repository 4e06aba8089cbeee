package emu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadROM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x3E, 0x42, 0x76}, 0o644))

	image, err := ReadROM(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x3E, 0x42, 0x76}, image)
}

func TestReadROMNotFound(t *testing.T) {
	_, err := ReadROM(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, ErrROMNotFound)
}

func TestReadROMTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 1<<16+1), 0o644))

	_, err := ReadROM(path)
	require.ErrorIs(t, err, ErrROMTooLarge)
}

func TestReadROMFullSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "full.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 1<<16), 0o644))

	image, err := ReadROM(path)
	require.NoError(t, err)
	require.Len(t, image, 1<<16)
}
