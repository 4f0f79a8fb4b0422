package material

import "github.com/kesseloak/lumenforge/pkg/core"

// Metal mirrors the incident direction about the normal and perturbs it by
// Fuzz*randomUnitSphere. SkipPDF is set whenever Fuzz is zero so the
// integrator follows the deterministic mirror ray without sampling; a
// fuzzy metal still reports SkipPDF (the perturbed ray is a deterministic
// function of the RNG draw taken during Scatter, not a density the
// integrator can re-evaluate), treating fuzzed reflection as specular.
type Metal struct {
	Texture core.Texture
	Fuzz    float64
}

// NewMetal builds a metal material; fuzz is clamped to [0,1].
func NewMetal(texture core.Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Texture: texture, Fuzz: fuzz}
}

// NewMetalColor is a convenience constructor over a solid color.
func NewMetalColor(albedo core.Color, fuzz float64) *Metal {
	return NewMetal(solidTexture{albedo}, fuzz)
}

// Scatter reflects rayIn about the normal, fuzzes it, and reports the
// result as a skip-pdf (specular) ray. Scattering below the surface due to
// fuzz absorbs the ray entirely.
func (m *Metal) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz)).Normalize()
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	attenuation := m.Texture.Value(hit.U, hit.V, hit.Point)
	return core.ScatterRecord{
		Attenuation:   attenuation,
		SkipPDF:       true,
		SkipPDFRay:    core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
		SpecularColor: attenuation,
	}, true
}

// ScatteringPDF is unused for a specular material (SkipPDF is always set).
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always black: metal is not an emitter.
func (m *Metal) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	return core.Color{}, 1
}
