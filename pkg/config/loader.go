package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load loads a configuration file. A .env file is loaded first if present,
// and LOG_LEVEL / LOG_FORMAT environment variables override the file's log
// section. The file contents go through Parse, so missing fields fall back
// to defaults and the file values are validated.
func Load(path string) (*Config, error) {
	// Load .env if present (silently skipped when there is no file)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	// env values are not covered by Parse's validation
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides overrides log settings from the environment when set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults fills in the defaults for any field left unset.
func setDefaults(cfg *Config) {
	if cfg.Simulations == 0 {
		cfg.Simulations = DefaultSimulations
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	if cfg.Simulations <= 0 {
		return fmt.Errorf("simulations must be positive, got %d", cfg.Simulations)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[cfg.Log.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
