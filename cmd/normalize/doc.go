// Package main is the normalize command.
//
// normalize reads records, one per line, and writes the subset whose
// values approximate a normal distribution with the given mean and
// standard deviation. Input may be plain, gzip or zstd.
//
// Usage:
//
//	normalize 50 10 in.dat out.dat
//	gendata | normalize 50 10 > out.dat
//
// Configuration:
//   - NORMALIZE_SEED (0 seeds from the clock)
//   - LOG_LEVEL, LOG_DEV, METRICS_TEXTFILE
package main
