package emu

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk run configuration. All fields are optional;
// command-line flags override whatever the file sets.
type Config struct {
	Trace     bool   `toml:"trace"`
	MaxSteps  uint64 `toml:"max_steps"`
	DumpState bool   `toml:"dump_state"`
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	return c, nil
}
