package config

import (
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging  LogConfig
	Numerics NumericsConfig
	Sampling SamplingConfig
	Gendata  GendataConfig
	Metrics  MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// NumericsConfig holds iteration limits for the incomplete gamma routines.
type NumericsConfig struct {
	MaxIterations int     `envconfig:"NUMERICS_ITMAX" default:"100"`
	Epsilon       float64 `envconfig:"NUMERICS_MAX_ERROR" default:"5e-9"`
}

// SamplingConfig holds resampling configuration. A zero seed seeds from
// the clock.
type SamplingConfig struct {
	Seed uint64 `envconfig:"NORMALIZE_SEED" default:"0"`
}

// GendataConfig holds test data generator configuration.
type GendataConfig struct {
	Count    int     `envconfig:"GENDATA_COUNT" default:"10000000"`
	MaxValue float64 `envconfig:"GENDATA_MAXVAL" default:"100"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `envconfig:"METRICS_TEXTFILE" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Numerics: NumericsConfig{
			MaxIterations: 100,
			Epsilon:       5e-9,
		},
		Sampling: SamplingConfig{
			Seed: 0,
		},
		Gendata: GendataConfig{
			Count:    10000000,
			MaxValue: 100,
		},
	}
}

// Validate rejects values the numerics and generator cannot run with.
func (c *Config) Validate() error {
	if c.Numerics.MaxIterations <= 0 {
		return fmt.Errorf("invalid config: NUMERICS_ITMAX must be positive, got %d", c.Numerics.MaxIterations)
	}
	if !(c.Numerics.Epsilon > 0) || math.IsInf(c.Numerics.Epsilon, 1) {
		return fmt.Errorf("invalid config: NUMERICS_MAX_ERROR must be positive, got %g", c.Numerics.Epsilon)
	}
	if c.Gendata.Count < 0 {
		return fmt.Errorf("invalid config: GENDATA_COUNT must not be negative, got %d", c.Gendata.Count)
	}
	if math.IsNaN(c.Gendata.MaxValue) || math.IsInf(c.Gendata.MaxValue, 0) {
		return fmt.Errorf("invalid config: GENDATA_MAXVAL must be finite, got %g", c.Gendata.MaxValue)
	}
	return nil
}
