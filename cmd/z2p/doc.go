// Package main is the z2p command.
//
// z2p converts a Z-score into the 1-tailed probability of obtaining that
// score or greater by chance.
//
// Usage:
//
//	z2p 1.96
//	0.0249979
//
// Configuration:
//   - LOG_LEVEL, LOG_DEV
//   - NUMERICS_ITMAX, NUMERICS_MAX_ERROR
//   - METRICS_TEXTFILE
package main
