package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls how results are displayed.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string `toml:"format" yaml:"format"`
	// ErrorText is printed in place of the result when evaluation fails.
	ErrorText string `toml:"error_text" yaml:"error_text"`
	// Percent divides every result by 100.
	Percent bool `toml:"percent" yaml:"percent"`
	// Color enables colored output on terminals.
	Color bool `toml:"color" yaml:"color"`
	// Echo prints each expression's postfix form before its result.
	Echo bool `toml:"echo" yaml:"echo"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Format:    "%g",
		ErrorText: "Error",
		Color:     true,
	}
}

// LoadConfig reads a TOML or YAML config file, chosen by extension. Keys
// missing from the file keep their default values. An empty path gives the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "reading config %s", path)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "reading config %s", path)
		}
	default:
		return cfg, errors.Errorf("config %s: unknown format %q", path, ext)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the format prints exactly one float.
func (c Config) Validate() error {
	if c.Format == "" {
		return errors.New("empty result format")
	}
	if s := fmt.Sprintf(c.Format, 1.5); strings.Contains(s, "%!") {
		return errors.Errorf("bad result format %q: %s", c.Format, s)
	}
	return nil
}
