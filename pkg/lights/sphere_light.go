package lights

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/geometry"
)

// SphereLight is a spherical area light.
type SphereLight struct {
	*geometry.Sphere
}

// NewSphereLight builds a sphere light, with mat expected to be an emissive
// material.
func NewSphereLight(center core.Vec3, radius float64, mat core.Material) *SphereLight {
	return &SphereLight{Sphere: geometry.NewSphere(center, radius, mat)}
}

func (sl *SphereLight) Type() core.LightType { return core.LightTypeArea }

// Sample draws a direction within the cone the sphere subtends from point,
// matching the Hittable's own cone-sampling SampleDirection, and resolves
// the hit to get a distance and emission.
func (sl *SphereLight) Sample(point core.Vec3, sampler core.Sampler) core.LightSample {
	direction := sl.SampleDirection(point, sampler).Normalize()
	hit, ok := sl.Hit(core.NewRay(point, direction), core.ShadowAcneEpsilon, math.Inf(1))
	if !ok {
		return core.LightSample{}
	}

	return core.LightSample{
		Direction: direction,
		Distance:  hit.T,
		PDF:       sl.Sphere.PDFValue(point, direction),
		Emitted:   sl.Emit(hit.U, hit.V, hit.Point),
	}
}

// PDF reuses the sphere's own Hittable solid-angle density.
func (sl *SphereLight) PDF(point, direction core.Vec3) float64 {
	return sl.Sphere.PDFValue(point, direction)
}

// Emit asks the sphere's material for its emitted radiance at p.
func (sl *SphereLight) Emit(u, v float64, p core.Vec3) core.Color {
	normal := p.Subtract(sl.CenterAt(0)).Normalize()
	hit := &core.HitRecord{Point: p, Normal: normal, FrontFace: true}
	color, _ := sl.Material.Emitted(core.Ray{}, hit, u, v, p)
	return color
}
