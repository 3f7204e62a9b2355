package adaptive

import "math/rand/v2"

// Random is the source of every random draw the engine makes. *rand.Rand
// from math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns an independently seeded PCG source. A single Random is
// not safe for concurrent use, so the engine draws a fresh one per call.
func NewRandom() Random {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRandom returns a reproducible source, used by previews and tests.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
