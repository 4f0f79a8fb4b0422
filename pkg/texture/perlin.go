package texture

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Perlin is classic 3-D gradient noise with turbulence. It wires
// github.com/aquilax/go-perlin rather than hand-rolling a permutation
// table; the octave/turbulence structure below follows the classic
// Perlin-noise formulation directly.
type Perlin struct {
	noise  *perlin.Perlin
	Scale  float64
	Octaves int32
}

// NewPerlin builds a noise texture at the given spatial scale. seed makes
// the pattern reproducible across runs with the same scene.
func NewPerlin(scale float64, seed int64) *Perlin {
	const alpha = 2.0
	const beta = 2.0
	octaves := int32(7)
	return &Perlin{
		noise:   perlin.NewPerlin(alpha, beta, octaves, seed),
		Scale:   scale,
		Octaves: octaves,
	}
}

// turbulence sums noise at successively doubled frequencies with halving
// weights and returns the absolute value of the sum, the standard fBm
// construction used by both Perlin and Marble below.
func (pn *Perlin) turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pn.noise.Noise3D(temp.X, temp.Y, temp.Z)
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return math.Abs(accum)
}

// Value maps turbulence at the scaled point into [0,1] gray, per the
// original texture.h's noise texture.
func (pn *Perlin) Value(u, v float64, p core.Vec3) core.Color {
	scaled := p.Multiply(pn.Scale)
	n := pn.turbulence(scaled, 7)
	return core.NewVec3(n, n, n)
}

// Marble adds sine-modulated turbulence to the noise field so bands follow a
// distorted sine wave along Z, matching the original texture.h marble
// variant.
type Marble struct {
	*Perlin
	Color core.Color
}

// NewMarble builds a marble texture tinted by color, at the given scale.
func NewMarble(color core.Color, scale float64, seed int64) *Marble {
	return &Marble{Perlin: NewPerlin(scale, seed), Color: color}
}

// Value computes color * 0.5 * (1 + sin(scale*z + 10*turbulence)).
func (m *Marble) Value(u, v float64, p core.Vec3) core.Color {
	scaled := p.Multiply(m.Scale)
	modulation := math.Sin(scaled.Z+10*m.turbulence(p, 7)) + 1
	return m.Color.Multiply(0.5 * modulation)
}
