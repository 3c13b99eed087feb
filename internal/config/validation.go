package config

import "fmt"

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := config.Bench.Validate(); err != nil {
		return fmt.Errorf("bench validation failed: %w", err)
	}

	if err := config.Check.Validate(); err != nil {
		return fmt.Errorf("check validation failed: %w", err)
	}

	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log validation failed: %w", err)
	}

	return nil
}
