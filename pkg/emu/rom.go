package emu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oisee/i8080/pkg/cpu"
)

// Sentinel errors for ROM loading. The interpreter core itself cannot
// fail; everything that can go wrong happens here, before execution.
var (
	ErrROMNotFound = errors.New("rom file not found")
	ErrROMTooLarge = errors.New("rom image exceeds the 64 KiB address space")
)

// ReadROM reads a flat binary image from disk and validates its size.
func ReadROM(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", path, ErrROMNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read rom %q: %w", path, err)
	}
	if len(data) > cpu.MemSize {
		return nil, fmt.Errorf("%q is %d bytes: %w", path, len(data), ErrROMTooLarge)
	}
	return data, nil
}
