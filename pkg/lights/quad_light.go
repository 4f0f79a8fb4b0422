// Package lights provides area-light wrappers over pkg/geometry primitives:
// a light is a Hittable whose material is expected to be an emitter, plus
// the extra Sample/PDF/Emit surface core.Light needs for next-event
// estimation.
package lights

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/geometry"
)

// QuadLight is a rectangular area light.
type QuadLight struct {
	*geometry.Quad
	area float64
}

// NewQuadLight builds a quad light from a corner and two edge vectors, with
// mat expected to be an emissive material (e.g. material.DiffuseLight).
func NewQuadLight(corner, u, v core.Vec3, mat core.Material) *QuadLight {
	return &QuadLight{Quad: geometry.NewQuad(corner, u, v, mat), area: u.Cross(v).Length()}
}

func (ql *QuadLight) Type() core.LightType { return core.LightTypeArea }

// Sample draws a uniformly random point on the quad and returns the
// next-event-estimation sample toward it, with PDF expressed in solid angle.
func (ql *QuadLight) Sample(point core.Vec3, sampler core.Sampler) core.LightSample {
	samplePoint := ql.Corner.Add(ql.U.Multiply(sampler.Get1D())).Add(ql.V.Multiply(sampler.Get1D()))
	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-8 {
		return core.LightSample{}
	}
	direction := toLight.Multiply(1.0 / distance)

	cosTheta := math.Abs(ql.Normal.Dot(direction.Negate()))
	if cosTheta < 1e-8 {
		return core.LightSample{Direction: direction, Distance: distance}
	}

	return core.LightSample{
		Direction: direction,
		Distance:  distance,
		PDF:       distance * distance / (cosTheta * ql.area),
		Emitted:   ql.Emit(0, 0, samplePoint),
	}
}

// PDF reuses the quad's own Hittable solid-angle density.
func (ql *QuadLight) PDF(point, direction core.Vec3) float64 {
	return ql.Quad.PDFValue(point, direction)
}

// Emit asks the quad's material for its emitted radiance at p, treating p as
// seen from the front face (lights only emit outward).
func (ql *QuadLight) Emit(u, v float64, p core.Vec3) core.Color {
	hit := &core.HitRecord{Point: p, Normal: ql.Normal, FrontFace: true}
	color, _ := ql.Material.Emitted(core.Ray{}, hit, u, v, p)
	return color
}
