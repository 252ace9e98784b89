// Package config provides 12-factor configuration management for the zstat tools.
//
// Configuration is loaded from environment variables with sensible defaults.
// Command-line arguments keep their positional meaning and are never
// replaced by configuration.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Numerics: Iteration limit and convergence threshold for the gamma routines
//   - Sampling: Seed for the normalize filter
//   - Gendata: Record count and value range for the data generator
//   - Metrics: Optional Prometheus textfile destination
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	eval := numerics.NewEvaluator(numerics.Config{
//		MaxIterations: cfg.Numerics.MaxIterations,
//		Epsilon:       cfg.Numerics.Epsilon,
//	}, logger)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - NUMERICS_ITMAX, NUMERICS_MAX_ERROR
//   - NORMALIZE_SEED
//   - GENDATA_COUNT, GENDATA_MAXVAL
//   - METRICS_TEXTFILE
package config
