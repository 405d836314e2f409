// Package config loads the optional YAML file the CLI reads its defaults
// from. Flags always win over the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
)

// Config holds CLI defaults.
type Config struct {
	Difficulty  string `yaml:"difficulty,omitempty"`
	MaxAttempts int    `yaml:"max_attempts,omitempty"`
	DataDir     string `yaml:"data_dir,omitempty"`
}

// Default returns the built-in defaults used when no file is present.
func Default() *Config {
	return &Config{
		Difficulty:  domain.Medium.String(),
		MaxAttempts: generator.DefaultMaxAttempts,
		DataDir:     "./data",
	}
}

// Load reads path, layering the file's values over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the field values without touching the filesystem.
func (c *Config) Validate() error {
	if _, err := domain.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}
