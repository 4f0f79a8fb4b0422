package core

import "math/rand"

// Sampler is the source of randomness for one render worker. Every stochastic
// decision in the integrator and camera goes through a Sampler instead of
// touching math/rand directly, so a fixed seed and a fixed band assignment
// reproduce byte-identical images regardless of goroutine scheduling.
type Sampler interface {
	// Get1D returns a uniform random float64 in [0, 1).
	Get1D() float64
	// Get2D returns two independent uniform random float64s in [0, 1).
	Get2D() Vec2
	// Get3D returns three independent uniform random float64s in [0, 1).
	Get3D() Vec3
}

// RandSampler is a Sampler backed by math/rand.Rand. It is not safe for
// concurrent use; each worker owns its own instance.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler seeded deterministically.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// NewBandSampler derives a per-band seed from a global seed and a band index
// only, so a band's pixels do not depend on which goroutine renders it or in
// what order; a different band size gives different seeds, and so different
// pixels.
func NewBandSampler(globalSeed int64, bandID int) *RandSampler {
	// Large odd multiplier decorrelates adjacent band seeds under a linear
	// congruential RNG without needing a cryptographic hash.
	// The bit pattern is 0x9E3779B97F4A7C15, written as a signed int64.
	const bandMix int64 = -0x61C8864680B583EB
	return NewRandSampler(globalSeed + int64(bandID)*bandMix)
}

func (s *RandSampler) Get1D() float64 {
	return s.rng.Float64()
}

func (s *RandSampler) Get2D() Vec2 {
	return Vec2{X: s.rng.Float64(), Y: s.rng.Float64()}
}

func (s *RandSampler) Get3D() Vec3 {
	return Vec3{X: s.rng.Float64(), Y: s.rng.Float64(), Z: s.rng.Float64()}
}

// Float64Range returns a uniform float64 in [min, max) drawn from s.
func Float64Range(s Sampler, min, max float64) float64 {
	return min + (max-min)*s.Get1D()
}
