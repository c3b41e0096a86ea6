package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/varunriyer/ozark-app/internal/categorize"
)

// DefaultPath is where ozark looks for its configuration.
const DefaultPath = "ozark.yaml"

// Config represents the top-level ozark.yaml configuration.
type Config struct {
	Oracle OracleConfig `yaml:"oracle"`
	Memory MemoryConfig `yaml:"memory"`
	Serve  ServeConfig  `yaml:"serve"`
}

// OracleConfig selects the categorization model and taxonomy.
type OracleConfig struct {
	Model      string   `yaml:"model"`
	Categories []string `yaml:"categories,omitempty"`
}

// MemoryConfig locates the durable merchant memory file.
type MemoryConfig struct {
	Path string `yaml:"path"`
}

// ServeConfig controls the HTTP surface.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads an ozark.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadOrDefault reads the config at path, falling back to defaults when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Oracle: OracleConfig{
			Model:      categorize.DefaultModelName,
			Categories: categorize.DefaultCategories,
		},
		Memory: MemoryConfig{
			Path: "memory.csv",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}
