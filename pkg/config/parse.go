package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse parses a Config from YAML bytes, fills defaults, and validates it.
// Unlike Load it consults neither the filesystem nor the environment.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	setDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// ParseString parses a Config from a YAML string and validates it.
func ParseString(yamlText string) (*Config, error) {
	return Parse([]byte(yamlText))
}
