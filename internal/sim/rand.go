package sim

import "math/rand/v2"

// Rand is the random source used for the left/right tie-break.
// *rand.Rand satisfies it; tests supply scripted sequences.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic PCG source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
