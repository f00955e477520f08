// Package rng wraps math/rand/v2 with deterministic seeding so simulation
// randomness stays reproducible and injectable.
package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed resets the generator to the start of the stream for the given seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool { return r.r.IntN(2) == 1 }

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *RNG, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
