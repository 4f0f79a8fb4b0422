package pdf

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// AnisotropicPhong is the two-lobe Ashikhmin-Shirley distribution sampled by
// the anisotropic material. It mixes a cosine-weighted
// diffuse lobe with a specular lobe whose half-vector is drawn from the
// anisotropic Phong microfacet distribution with independent exponents
// Nu (tangent) and Nv (bitangent).
type AnisotropicPhong struct {
	basis         core.ONB // W = shading normal, U = tangent, V = bitangent
	incoming      core.Vec3
	Nu, Nv        float64
	specularProb  float64 // probability of sampling the specular lobe
}

// NewAnisotropicPhong builds the mixture PDF for a hit with the given
// shading normal/tangent frame, incoming ray direction (pointing at the
// surface), anisotropic exponents, and specular-lobe selection probability
// (e.g. derived from the specular-to-diffuse reflectance ratio).
func NewAnisotropicPhong(normal, tangent core.Vec3, incoming core.Vec3, nu, nv, specularProb float64) *AnisotropicPhong {
	bitangent := normal.Cross(tangent).Normalize()
	return &AnisotropicPhong{
		basis:        core.ONB{U: tangent, V: bitangent, W: normal},
		incoming:     incoming.Normalize(),
		Nu:           nu,
		Nv:           nv,
		specularProb: specularProb,
	}
}

// Value combines the diffuse cosine density and the specular half-vector
// density (converted to an outgoing-direction density via the standard
// 1/(4*dot(out,half)) Jacobian), weighted by specularProb.
func (a *AnisotropicPhong) Value(dir core.Vec3) float64 {
	dir = dir.Normalize()
	cosTheta := dir.Dot(a.basis.W)
	if cosTheta <= 0 {
		return 0
	}
	diffusePDF := cosTheta / math.Pi

	half := a.incoming.Negate().Add(dir).Normalize()
	hDotOut := half.Dot(dir)
	specPDF := 0.0
	if hDotOut > 1e-8 {
		specPDF = a.halfVectorDensity(half) / (4 * hDotOut)
	}

	return (1-a.specularProb)*diffusePDF + a.specularProb*specPDF
}

// halfVectorDensity is the Ashikhmin-Shirley microfacet distribution
// density for the half-vector h expressed in the local (tangent, bitangent,
// normal) frame.
func (a *AnisotropicPhong) halfVectorDensity(h core.Vec3) float64 {
	cosThetaH := h.Dot(a.basis.W)
	if cosThetaH <= 0 {
		return 0
	}
	hu := h.Dot(a.basis.U)
	hv := h.Dot(a.basis.V)
	sinThetaH2 := 1 - cosThetaH*cosThetaH
	if sinThetaH2 <= 1e-12 {
		norm := math.Sqrt((a.Nu + 1) * (a.Nv + 1))
		return norm / (2 * math.Pi) * math.Pow(cosThetaH, a.Nu)
	}

	cosPhi2 := hu * hu / sinThetaH2
	sinPhi2 := hv * hv / sinThetaH2
	exponent := (a.Nu*cosPhi2 + a.Nv*sinPhi2)

	norm := math.Sqrt((a.Nu + 1) * (a.Nv + 1))
	return norm / (2 * math.Pi) * math.Pow(cosThetaH, exponent)
}

// Generate draws either the diffuse lobe (cosine-weighted hemisphere) or the
// specular lobe, per specularProb. The specular branch draws a micronormal
// by splitting [0,1) into the four phi quadrants of the anisotropic Phong
// distribution, then reflects the incoming direction about it.
func (a *AnisotropicPhong) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() >= a.specularProb {
		local := core.RandomCosineDirection(sampler)
		return a.basis.Transform(local)
	}

	half := a.sampleMicronormal(sampler)
	reflected := core.Reflect(a.incoming, half)
	return reflected
}

// sampleMicronormal implements the quadrant-split Ashikhmin-Shirley
// half-vector sampling: xi1 selects one of the four (phi) quadrants, then
// phi and cosTheta are solved from the remaining uniform variates.
func (a *AnisotropicPhong) sampleMicronormal(sampler core.Sampler) core.Vec3 {
	xi1, xi2 := sampler.Get1D(), sampler.Get1D()

	var phi float64
	quadrantSize := 0.25
	expRatio := math.Sqrt((a.Nu + 1) / (a.Nv + 1))

	switch {
	case xi1 < quadrantSize:
		t := xi1 / quadrantSize
		phi = math.Atan(expRatio * math.Tan(math.Pi/2*t))
	case xi1 < 2*quadrantSize:
		t := (xi1 - quadrantSize) / quadrantSize
		phi = math.Pi - math.Atan(expRatio*math.Tan(math.Pi/2*t))
	case xi1 < 3*quadrantSize:
		t := (xi1 - 2*quadrantSize) / quadrantSize
		phi = math.Pi + math.Atan(expRatio*math.Tan(math.Pi/2*t))
	default:
		t := (xi1 - 3*quadrantSize) / quadrantSize
		phi = 2*math.Pi - math.Atan(expRatio*math.Tan(math.Pi/2*t))
	}

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	exponent := a.Nu*cosPhi*cosPhi + a.Nv*sinPhi*sinPhi
	cosTheta := math.Pow(1-xi2, 1/(exponent+1))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	local := core.NewVec3(sinTheta*cosPhi, sinTheta*sinPhi, cosTheta)
	return a.basis.Transform(local)
}
