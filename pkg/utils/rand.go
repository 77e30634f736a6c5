package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seeded pseudo-random source shared by all trial logic.
// It is not safe for concurrent use; the simulator runs single-threaded and
// passes one instance explicitly through the call chain.
type RandSource struct {
	seed int64
	rng  *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed takes the current nanosecond clock, making the run
// non-deterministic between invocations.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the effective seed the source was created with.
func (r *RandSource) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}
