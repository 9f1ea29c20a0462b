package core

import "math/rand/v2"

// Streams used by the fire simulation. Each consumer draws from its own PCG
// stream so adding draws to one never shifts the sequence seen by another.
const (
	StreamTerrain uint64 = iota + 1
	StreamSpread
	StreamWeather
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewRNGStream(seed, 0)
}

// NewRNGStream creates a deterministic RNG on an independent stream of seed.
func NewRNGStream(seed int64, stream uint64) *RNG {
	src := rand.NewPCG(uint64(seed), stream)
	return &RNG{src: src, r: rand.New(src)}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Src exposes the raw PCG source, which is what gonum distributions expect.
func (r *RNG) Src() rand.Source { return r.src }
