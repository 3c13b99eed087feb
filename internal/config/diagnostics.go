package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LogConfig represents the [log] section
// Configuration of the structured logger
type LogConfig struct {
	Level       string `toml:"level" mapstructure:"level"`
	Encoding    string `toml:"encoding" mapstructure:"encoding"`
	Development bool   `toml:"development" mapstructure:"development"`
}

// Validate performs validation on the log configuration
func (l *LogConfig) Validate() error {
	if _, err := l.ParsedLevel(); err != nil {
		return err
	}

	switch l.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log encoding: %s (valid options: console, json)", l.Encoding)
	}

	return nil
}

// ParsedLevel returns the configured level as a zap level
func (l *LogConfig) ParsedLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}
