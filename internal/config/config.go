// Package config loads TOML configuration for the ecsreg CLI, following
// rdtc8822-debug-L1JGO-Whale's own internal/config: a single Config struct
// with toml tags, a Load(path) that fills in defaults() before unmarshaling
// over them, and a small set of leaf config groups.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full set of knobs the ecsreg CLI accepts, split into the
// groups its subcommands care about.
type Config struct {
	World   WorldConfig   `toml:"world"`
	Bench   BenchConfig   `toml:"bench"`
	Logging LoggingConfig `toml:"logging"`
}

// WorldConfig holds demo-world settings. The run and bench subcommands read
// only Seed from it; the entity count and component mix they build come
// from the scenario, not from EntityCount or the fraction fields.
type WorldConfig struct {
	EntityCount      int     `toml:"entity_count"`
	PositionFraction float64 `toml:"position_fraction"` // share of entities given a position component
	VelocityFraction float64 `toml:"velocity_fraction"` // share given a velocity component
	HealthFraction   float64 `toml:"health_fraction"`   // share given a health component
	Seed             int64   `toml:"seed"`
}

// BenchConfig controls the bench subcommand's workload.
type BenchConfig struct {
	Ticks              int           `toml:"ticks"`
	ParallelRegistries int           `toml:"parallel_registries"`
	TickBudget         time.Duration `toml:"tick_budget"`
}

// LoggingConfig controls the zap logger built at startup.
type LoggingConfig struct {
	Level  string `toml:"level"`  // zap level name: debug, info, warn, error
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path, unmarshaling its TOML contents over a defaulted Config
// so any field the file omits keeps its default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			EntityCount:      10_000,
			PositionFraction: 1.0,
			VelocityFraction: 0.5,
			HealthFraction:   0.25,
			Seed:             1,
		},
		Bench: BenchConfig{
			Ticks:              1000,
			ParallelRegistries: 1,
			TickBudget:         16 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
