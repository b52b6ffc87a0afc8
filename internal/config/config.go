// Package config handles the funlint.yaml configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level funlint.yaml configuration.
type Config struct {
	// MaxDiagnostics caps the number of findings printed per run.
	// 0 means unlimited.
	MaxDiagnostics int `yaml:"max_diagnostics,omitempty"`

	// Color selects colored output: "auto" (default, on when stdout is
	// a terminal), "on", or "off".
	Color string `yaml:"color,omitempty"`

	// Disabled lists diagnostic codes to suppress (e.g. "U002").
	Disabled []string `yaml:"disabled,omitempty"`

	// Extensions overrides the recognized source file extensions.
	Extensions []string `yaml:"extensions,omitempty"`
}

// Default returns the configuration used when no funlint.yaml exists.
func Default() *Config {
	return &Config{
		MaxDiagnostics: 100,
		Color:          "auto",
		Extensions:     SourceFileExtensions,
	}
}

// Load reads and validates a configuration file. Missing fields keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on or off, got %q", c.Color)
	}
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must not be negative, got %d", c.MaxDiagnostics)
	}
	return nil
}

// CodeEnabled reports whether findings with the given code should be
// emitted.
func (c *Config) CodeEnabled(code string) bool {
	for _, d := range c.Disabled {
		if d == code {
			return false
		}
	}
	return true
}

// IsSourceFile reports whether a path has a recognized source extension.
func (c *Config) IsSourceFile(path string) bool {
	for _, ext := range c.Extensions {
		if filepath.Ext(path) == ext {
			return true
		}
	}
	return false
}

// Discover walks from dir towards the filesystem root looking for the
// default configuration file. It returns Default() when none exists.
func Discover(dir string) (*Config, error) {
	for {
		candidate := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
