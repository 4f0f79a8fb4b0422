// Package pdf implements the core.PDF variants this renderer samples from:
// a cosine-weighted hemisphere, a uniform sphere, a hittable-rooted
// next-event-estimation distribution, a two-term mixture, and the
// two-lobe Ashikhmin-Shirley distribution the anisotropic material samples.
package pdf

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Cosine is a cosine-weighted hemisphere distribution about a surface
// normal: density = max(0, cosTheta/pi), sampled via Malley's method.
type Cosine struct {
	basis core.ONB
}

// NewCosine builds a cosine-weighted PDF around the given (unit) normal.
func NewCosine(normal core.Vec3) *Cosine {
	return &Cosine{basis: core.NewONB(normal)}
}

// Value returns cosTheta/pi for dir, clamped to zero below the horizon.
func (c *Cosine) Value(dir core.Vec3) float64 {
	cosTheta := dir.Normalize().Dot(c.basis.W)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Generate draws a cosine-weighted direction in the hemisphere around the
// normal via Malley's method.
func (c *Cosine) Generate(sampler core.Sampler) core.Vec3 {
	return c.basis.Transform(core.RandomCosineDirection(sampler))
}
