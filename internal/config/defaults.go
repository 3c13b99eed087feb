package config

import "github.com/spf13/viper"

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	// 1. Benchmark defaults
	v.SetDefault("bench.sizes", []int{1000, 10000, 100000})
	v.SetDefault("bench.orders", []string{"ascending", "descending", "random", "zigzag"})
	v.SetDefault("bench.rounds", 3)
	v.SetDefault("bench.seed", 1)
	v.SetDefault("bench.workers", 0) // 0 means one per CPU
	v.SetDefault("bench.validate", true)
	v.SetDefault("bench.format", "text")
	v.SetDefault("bench.key_cache_size", 16)

	// 2. Check defaults
	v.SetDefault("check.operations", 100000)
	v.SetDefault("check.key_space", 4096)
	v.SetDefault("check.seed", 1)
	v.SetDefault("check.validate_every", 1000)

	// 3. Diagnostics defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)
}
