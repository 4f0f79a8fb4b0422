package material

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Dielectric is a clear refractive material (glass, water): Snell's law
// refraction with Schlick's approximation deciding reflect-vs-refract,
// flipping the refraction ratio on the backface. Always
// SkipPDF, since the outgoing ray is a deterministic function of the
// incoming direction and a single reflect/refract coin flip.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric builds a dielectric with the given index of refraction
// (e.g. 1.5 for glass, 1.33 for water).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter always transmits attenuation 1 (clear glass absorbs nothing) and
// picks between reflection and refraction via Schlick's approximation.
func (d *Dielectric) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	ri := d.RefractionIndex
	if hit.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlick(cosTheta, ri) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, ri)
	}

	return core.ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		SkipPDF:     true,
		SkipPDFRay:  core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF is unused for a specular material.
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always black: dielectric is not an emitter.
func (d *Dielectric) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	return core.Color{}, 1
}

// schlick approximates Fresnel reflectance for a dielectric interface.
func schlick(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
