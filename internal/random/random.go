package random

import (
	mrand "math/rand/v2"
)

// Source is the randomness the unlock engine draws from.
// *math/rand/v2.Rand satisfies it, and tests can substitute a scripted
// sequence to make selection deterministic.
type Source interface {
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// New returns a source backed by the shared, automatically seeded
// math/rand/v2 generator. Safe for concurrent use.
func New() Source {
	return globalSource{}
}

// NewSeeded returns a deterministic PCG-backed source.
// Not safe for concurrent use; give each engine its own.
func NewSeeded(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed))
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return mrand.IntN(n) }
