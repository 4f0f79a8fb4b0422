package material

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/pdf"
)

// Anisotropic is the two-lobe Ashikhmin-Shirley model: a diffuse lobe
// (DiffuseColor) plus a specular lobe (SpecularColor) with
// independent tangent/bitangent exponents Nu, Nv that let the specular
// highlight stretch along one direction (e.g. brushed metal). Sampling
// delegates to pdf.AnisotropicPhong, which splits the sampling quadrants
// per direction and either reflects specularly off a sampled micronormal
// or falls back to a cosine-weighted diffuse bounce.
type Anisotropic struct {
	DiffuseColor, SpecularColor core.Color
	Nu, Nv                      float64
}

// NewAnisotropic builds an anisotropic material with the given diffuse/
// specular colors and tangent/bitangent Phong exponents.
func NewAnisotropic(diffuse, specular core.Color, nu, nv float64) *Anisotropic {
	return &Anisotropic{DiffuseColor: diffuse, SpecularColor: specular, Nu: nu, Nv: nv}
}

// specularWeight is the probability of sampling the specular lobe, derived
// from the relative luminance of the two lobes' colors.
func (a *Anisotropic) specularWeight() float64 {
	ds, dd := a.SpecularColor.Luminance(), a.DiffuseColor.Luminance()
	if ds+dd <= 0 {
		return 0.5
	}
	return ds / (ds + dd)
}

// tangentFrame picks an arbitrary but stable tangent perpendicular to the
// normal. HitRecord does not carry a true UV-derived tangent, so the
// anisotropic highlight's orientation follows this per-hit-normal frame
// rather than a texture-space direction.
func tangentFrame(normal core.Vec3) core.Vec3 {
	return core.NewONB(normal).U
}

// Scatter builds the Ashikhmin-Shirley mixture PDF for this hit and samples
// a direction from it, evaluating the diffuse+specular BRDF at that
// direction for the attenuation.
func (a *Anisotropic) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	tangent := tangentFrame(hit.Normal)
	p := pdf.NewAnisotropicPhong(hit.Normal, tangent, rayIn.Direction, a.Nu, a.Nv, a.specularWeight())
	scattered := p.Generate(sampler)

	if scattered.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	attenuation := a.brdf(rayIn.Direction.Negate().Normalize(), scattered.Normalize(), hit.Normal, tangent)
	return core.ScatterRecord{
		Attenuation:   attenuation,
		PDF:           p,
		DiffuseColor:  a.DiffuseColor,
		SpecularColor: a.SpecularColor,
	}, true
}

// brdf evaluates the Ashikhmin-Shirley diffuse+specular sum for view
// direction v and light direction l around normal n / tangent t.
func (a *Anisotropic) brdf(v, l, n, t core.Vec3) core.Vec3 {
	cosThetaI := l.Dot(n)
	cosThetaO := v.Dot(n)
	if cosThetaI <= 0 || cosThetaO <= 0 {
		return core.Vec3{}
	}

	diffuse := a.diffuseTerm(cosThetaI, cosThetaO)
	specular := a.specularTerm(v, l, n, t)
	return diffuse.Add(specular)
}

func (a *Anisotropic) diffuseTerm(cosThetaI, cosThetaO float64) core.Vec3 {
	oneMinusSpec := core.NewVec3(1, 1, 1).Subtract(a.SpecularColor)
	fresnelI := 1 - math.Pow(1-cosThetaI/2, 5)
	fresnelO := 1 - math.Pow(1-cosThetaO/2, 5)
	coeff := 28.0 / (23.0 * math.Pi) * fresnelI * fresnelO
	return a.DiffuseColor.MultiplyVec(oneMinusSpec).Multiply(coeff)
}

func (a *Anisotropic) specularTerm(v, l, n, t core.Vec3) core.Vec3 {
	half := v.Add(l).Normalize()
	cosThetaH := half.Dot(n)
	if cosThetaH <= 0 {
		return core.Vec3{}
	}
	hDotV := half.Dot(v)
	if hDotV <= 0 {
		return core.Vec3{}
	}

	bitangent := n.Cross(t).Normalize()
	hu := half.Dot(t)
	hv := half.Dot(bitangent)
	sinThetaH2 := math.Max(0, 1-cosThetaH*cosThetaH)

	exponent := a.Nu + a.Nv
	if sinThetaH2 > 1e-12 {
		exponent = (a.Nu*hu*hu + a.Nv*hv*hv) / sinThetaH2
	}

	norm := math.Sqrt((a.Nu + 1) * (a.Nv + 1))
	distribution := norm / (8 * math.Pi) * math.Pow(cosThetaH, exponent) / (hDotV * math.Max(cosThetaH, 0.01))

	fresnel := a.SpecularColor.Add(
		core.NewVec3(1, 1, 1).Subtract(a.SpecularColor).Multiply(math.Pow(1-hDotV, 5)),
	)

	return fresnel.Multiply(distribution)
}

// ScatteringPDF delegates to the same Ashikhmin-Shirley mixture used for
// sampling, rebuilt for this (rayIn, hit, scattered) triple.
func (a *Anisotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	tangent := tangentFrame(hit.Normal)
	p := pdf.NewAnisotropicPhong(hit.Normal, tangent, rayIn.Direction, a.Nu, a.Nv, a.specularWeight())
	return p.Value(scattered.Direction)
}

// Emitted is always black: Anisotropic is not an emitter.
func (a *Anisotropic) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	return core.Color{}, 1
}
