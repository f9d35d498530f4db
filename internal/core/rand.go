package core

import "math/rand"

// Rand is the random source games draw from.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// IntRange returns a uniform draw in [lo, hi]. It returns lo when hi < lo.
func IntRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
