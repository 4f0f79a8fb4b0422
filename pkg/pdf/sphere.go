package pdf

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Sphere is a uniform distribution over the unit sphere of directions;
// density = 1/(4*pi) everywhere, used by isotropic scattering.
type Sphere struct{}

// NewSphere builds a uniform-sphere PDF.
func NewSphere() *Sphere { return &Sphere{} }

// Value is the constant uniform-sphere density.
func (Sphere) Value(dir core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform random direction on the unit sphere.
func (Sphere) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomUnitVector(sampler)
}
