// Package config loads optional CLI settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable CLI settings. Zero values fall back to the
// defaults applied by ApplyDefaults.
type Config struct {
	// DBPath is where saved plan documents live.
	DBPath string `yaml:"db_path"`
	// SchemaPath points at the event-type catalog JSON file.
	SchemaPath string `yaml:"schema_path"`
	// HistoryCap bounds the undo history.
	HistoryCap int `yaml:"history_cap"`
	// DefaultZoom is the timeline zoom used when none is given.
	DefaultZoom float64 `yaml:"default_zoom"`
	// NoColor disables styled output even on a terminal.
	NoColor bool `yaml:"no_color"`
}

// DefaultPath returns ~/.lifearc/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".lifearc", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error;
// it yields a zero Config for ApplyDefaults to fill in.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields. Env vars LIFEARC_DB and
// LIFEARC_SCHEMA take precedence over the file.
func (c *Config) ApplyDefaults() error {
	if env := os.Getenv("LIFEARC_DB"); env != "" {
		c.DBPath = env
	}
	if env := os.Getenv("LIFEARC_SCHEMA"); env != "" {
		c.SchemaPath = env
	}
	if c.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		c.DBPath = filepath.Join(home, ".lifearc", "lifearc.db")
	}
	if c.SchemaPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		c.SchemaPath = filepath.Join(home, ".lifearc", "schema.json")
	}
	if c.HistoryCap <= 0 {
		c.HistoryCap = 100
	}
	if c.DefaultZoom <= 0 {
		c.DefaultZoom = 4
	}
	return nil
}
