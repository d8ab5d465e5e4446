// Package config provides configuration for the tabledef command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the tabledef command.
type Config struct {
	// SchemaPath is the path to the schema document (YAML or JSON)
	SchemaPath string `json:"schema_path" yaml:"schema_path"`

	// DatabasePath is the SQLite database the statements are applied to;
	// empty means print-only
	DatabasePath string `json:"database_path" yaml:"database_path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SchemaPath: "schema.yaml",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.SchemaPath == "" {
		return fmt.Errorf("schema_path is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the TABLEDEF_ prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("TABLEDEF_SCHEMA"); v != "" {
		cfg.SchemaPath = v
	}
	if v := os.Getenv("TABLEDEF_DB"); v != "" {
		cfg.DatabasePath = v
	}
}
