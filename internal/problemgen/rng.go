package problemgen

import (
	"math/rand"
	"time"
)

// Rand is the uniform random source threaded through every generator and
// the distractor synthesizer. *math/rand.Rand satisfies it; tests supply
// seeded instances for determinism.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a Rand seeded with the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeRand returns a Rand seeded from the wall clock.
func NewTimeRand() Rand {
	return NewRand(time.Now().UnixNano())
}

// pick returns a uniformly chosen element of vals.
func pick[T any](rng Rand, vals []T) T {
	return vals[rng.Intn(len(vals))]
}
