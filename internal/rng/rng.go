// Package rng holds the single random source every game component draws from.
package rng

import (
	"time"

	"github.com/valyala/fastrand"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// New returns a seeded xorshift source. A zero seed picks one from the clock.
func New(seed uint32) Source {
	if seed == 0 {
		seed = uint32(time.Now().UnixNano()) | 1
	}

	r := &fastRNG{}
	r.rng.Seed(seed)
	return r
}

type fastRNG struct {
	rng fastrand.RNG
}

func (r *fastRNG) Float64() float64 {
	return float64(r.rng.Uint32()) / (1 << 32)
}

// Intn maps a uniform draw to [0, n). n must be positive.
func Intn(src Source, n int) int {
	idx := int(src.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}

	return idx
}

// Chance reports whether a draw falls under p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
