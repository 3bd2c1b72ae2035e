// Package config holds the settings of the calc command line tool. Settings
// are read from a TOML or YAML file, and flags override them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the command line tool settings.
type Config struct {
	// Format is the fmt format used to print each result. It must hold a
	// single float verb. When empty, results are printed the way the scanner
	// reads them back: NaN, Infinity, or the shortest decimal.
	Format string `toml:"format" yaml:"format"`
	// Prompt is printed before each line read by the REPL.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// Echo prints each source before its result.
	Echo bool `toml:"echo" yaml:"echo"`
	// All evaluates every statement of a source instead of only the first.
	All   bool `toml:"all" yaml:"all"`
	Color bool `toml:"color" yaml:"color"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Prompt: "> ",
		Color:  true,
	}
}

// Load reads the settings from a TOML or YAML file, chosen from the file
// extension. Settings missing from the file keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: %s", ext, path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for settings left empty
func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = Default().Prompt
	}
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Format == "" {
		return nil
	}
	if n := countFloatVerbs(c.Format); n != 1 {
		return fmt.Errorf("invalid format %q: want exactly one float verb, found %d", c.Format, n)
	}
	return nil
}

// countFloatVerbs counts the verbs of a fmt format, returning -1 if one of
// them does not format a float64.
func countFloatVerbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		// flags, width, and precision
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			return -1
		}
		switch format[i] {
		case '%':
		case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'v':
			n++
		default:
			return -1
		}
	}
	return n
}

// Sprint formats a value with the configured format. stringify is used when
// no format is set.
func (c *Config) Sprint(v float64, stringify func(float64) string) string {
	if c.Format == "" {
		return stringify(v)
	}
	return fmt.Sprintf(c.Format, v)
}
