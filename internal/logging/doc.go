// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Log Levels:
//   - Debug: Verbose debugging information
//   - Info: General informational messages
//   - Warn: Numerics errors and skipped records
//   - Error: Error messages
//
// All output goes to stderr unless a writer or output paths are given.
// stdout is reserved for command results.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	logger.Warn("Numerics error", zap.String("routine", "gcf"))
package logging
