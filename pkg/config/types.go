package config

// DefaultSimulations is the number of trials per batch when nothing else
// is configured.
const DefaultSimulations = 10000

// Config represents the simulator configuration
type Config struct {
	// Simulations is the number of trials per batch. Zero or omitted falls
	// back to DefaultSimulations; negative values are rejected.
	Simulations int          `yaml:"simulations"`
	Seed        int64        `yaml:"seed,omitempty"`
	Log         LogConfig    `yaml:"log"`
	Report      ReportConfig `yaml:"report"`
}

// LogConfig controls log verbosity and output format
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// ReportConfig controls the always-on console report
type ReportConfig struct {
	Table bool `yaml:"table"`
}

// Default returns the configuration used when no config file is given:
// 10000 trials per batch, clock-seeded randomness, info-level text logging,
// no comparison table.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}
