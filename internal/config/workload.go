package config

import (
	"fmt"
	"strings"

	"github.com/LeJamon/ordmap/internal/workload"
)

// BenchConfig represents the [bench] section
// Sizes × orders × rounds jobs are built, each on its own map
type BenchConfig struct {
	Sizes        []int    `toml:"sizes" mapstructure:"sizes"`
	Orders       []string `toml:"orders" mapstructure:"orders"`
	Rounds       int      `toml:"rounds" mapstructure:"rounds"`
	Seed         int64    `toml:"seed" mapstructure:"seed"`
	Workers      int      `toml:"workers" mapstructure:"workers"` // 0 means one per CPU
	ValidateTree bool     `toml:"validate" mapstructure:"validate"`
	Format       string   `toml:"format" mapstructure:"format"`
	KeyCacheSize int      `toml:"key_cache_size" mapstructure:"key_cache_size"`
}

// CheckConfig represents the [check] section
type CheckConfig struct {
	Operations    int   `toml:"operations" mapstructure:"operations"`
	KeySpace      int   `toml:"key_space" mapstructure:"key_space"`
	Seed          int64 `toml:"seed" mapstructure:"seed"`
	ValidateEvery int   `toml:"validate_every" mapstructure:"validate_every"` // 0 validates only at the end
}

// Validate performs validation on the bench configuration
func (b *BenchConfig) Validate() error {
	if len(b.Sizes) == 0 {
		return fmt.Errorf("at least one size must be specified in bench.sizes")
	}
	for i, size := range b.Sizes {
		if size <= 0 {
			return fmt.Errorf("size at index %d must be positive, got %d", i, size)
		}
	}

	if len(b.Orders) == 0 {
		return fmt.Errorf("at least one order must be specified in bench.orders")
	}
	if _, err := b.ParsedOrders(); err != nil {
		return err
	}

	if b.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", b.Rounds)
	}
	if b.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", b.Workers)
	}
	if b.KeyCacheSize < 0 {
		return fmt.Errorf("key_cache_size must be non-negative, got %d", b.KeyCacheSize)
	}

	switch strings.ToLower(b.Format) {
	case workload.FormatText, workload.FormatJSON:
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", b.Format)
	}

	return nil
}

// ParsedOrders converts the configured order names
func (b *BenchConfig) ParsedOrders() ([]workload.Order, error) {
	orders := make([]workload.Order, 0, len(b.Orders))
	for _, name := range b.Orders {
		order, err := workload.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Validate performs validation on the check configuration
func (c *CheckConfig) Validate() error {
	if c.Operations <= 0 {
		return fmt.Errorf("operations must be positive, got %d", c.Operations)
	}
	if c.KeySpace <= 0 {
		return fmt.Errorf("key_space must be positive, got %d", c.KeySpace)
	}
	if c.ValidateEvery < 0 {
		return fmt.Errorf("validate_every must be non-negative, got %d", c.ValidateEvery)
	}
	return nil
}
