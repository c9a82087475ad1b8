// Package config loads the shell's startup configuration: default shell
// options, startup aliases, and suffix aliases. It implements the
// ConfigLoader collaborator the executor expects, without knowing anything
// about shell execution itself.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrNotFound is returned when the configured path does not exist.
var ErrNotFound = errors.New("config file not found")

// Config holds startup shell state loaded from a TOML file.
type Config struct {
	Path string `toml:"-"`

	// Options are shell option names to enable at startup, e.g. "errexit",
	// "pipefail", "nounset".
	Options []string `toml:"options"`

	// Aliases maps alias name to expansion, applied before the first prompt.
	Aliases map[string]string `toml:"aliases"`

	// SuffixAliases maps a file extension (without the dot) to the command
	// that should run files with that extension.
	SuffixAliases map[string]string `toml:"suffix_aliases"`
}

// Load reads and parses a TOML config file at path. A missing file is not
// an error callers must treat as fatal; they can check errors.Is(err,
// ErrNotFound) and fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := &Config{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Default returns an empty configuration, used when no config file is given
// or none is found at the default location.
func Default() *Config {
	return &Config{
		Aliases:       map[string]string{},
		SuffixAliases: map[string]string{},
	}
}
