// Package random provides seedable uniform random streams.
package random

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// New returns a PCG-backed generator. A zero seed draws the seed from the
// wall clock so successive runs differ; any other seed is reproducible.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
