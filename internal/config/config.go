package config

import (
	"path/filepath"
)

// Config represents the complete ordmap tool configuration
type Config struct {
	// 1. Benchmark workloads
	Bench BenchConfig `toml:"bench" mapstructure:"bench"`

	// 2. Randomized differential check
	Check CheckConfig `toml:"check" mapstructure:"check"`

	// 3. Diagnostics
	Log LogConfig `toml:"log" mapstructure:"log"`

	// Internal fields for configuration management
	configPath string `toml:"-" mapstructure:"-"`
}

// DefaultConfigPath returns the configuration file looked up when none is given
func DefaultConfigPath() string {
	return "ordmap.toml"
}

// ConfigPathFromDir returns the configuration path for a specific directory
func ConfigPathFromDir(configDir string) string {
	return filepath.Join(configDir, DefaultConfigPath())
}

// GetConfigPath returns the path to the configuration file, empty when only
// defaults and environment variables were used
func (c *Config) GetConfigPath() string {
	return c.configPath
}
