// Package cli implements the z2p, normalize and gendata commands.
//
// Commands take positional arguments only. A malformed command line
// prints a usage banner to stdout and exits 0. Runtime failures print
// "Error: <message>" to stderr and exit 1. Structured logs go to stderr.
package cli
