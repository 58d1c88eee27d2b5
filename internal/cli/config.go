package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when --config is not
// given and the file exists.
const DefaultConfigFile = ".myunit.yaml"

// Config holds settings from the YAML config file. Flags override it.
//
//	groups: [passing_tests]
//	color: auto
//	verbose: false
type Config struct {
	// Groups selects which registered groups run. Groups always run in
	// suite order, whatever the order listed here.
	Groups []string `yaml:"groups,omitempty"`

	// Color is one of auto, on, off. Empty means auto.
	Color string `yaml:"color,omitempty"`

	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose,omitempty"`
}

// LoadConfig reads and parses a config file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or holds invalid values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Strict field validation catches typos like "group:" vs "groups:"
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Color != "" && !isValidColorMode(cfg.Color) {
		return fmt.Errorf("color %q: must be one of %v", cfg.Color, ValidColorModes)
	}
	seen := make(map[string]bool, len(cfg.Groups))
	for i, name := range cfg.Groups {
		if name == "" {
			return fmt.Errorf("groups[%d]: empty group name", i)
		}
		if seen[name] {
			return fmt.Errorf("groups[%d]: duplicate group %q", i, name)
		}
		seen[name] = true
	}
	return nil
}
