package material

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/pdf"
)

// OrenNayar is a microfacet-rough diffuse material: unlike Lambertian's
// constant BRDF, reflectance depends on the azimuthal and
// polar angle difference between the incoming and outgoing directions,
// growing rougher (flatter, more retroreflective) as Roughness increases.
type OrenNayar struct {
	Texture   core.Texture
	Roughness float64 // standard deviation of the microfacet angle, radians
}

// NewOrenNayar builds an Oren-Nayar material from a texture and roughness.
func NewOrenNayar(texture core.Texture, roughness float64) *OrenNayar {
	return &OrenNayar{Texture: texture, Roughness: roughness}
}

// NewOrenNayarColor is a convenience constructor over a solid color.
func NewOrenNayarColor(albedo core.Color, roughness float64) *OrenNayar {
	return &OrenNayar{Texture: solidTexture{albedo}, Roughness: roughness}
}

// Scatter samples a cosine-weighted hemisphere like Lambertian and folds the
// Oren-Nayar roughness term into Attenuation, multiplying the albedo by
// reflectance (below).
func (o *OrenNayar) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	basis := core.NewONB(hit.Normal)
	local := core.RandomCosineDirection(sampler)
	scattered := basis.Transform(local)

	albedo := o.Texture.Value(hit.U, hit.V, hit.Point)
	reflectance := o.reflectance(rayIn.Direction.Negate().Normalize(), scattered, hit.Normal)
	attenuation := albedo.Multiply(reflectance)

	return core.ScatterRecord{
		Attenuation:  attenuation,
		PDF:          pdf.NewCosine(hit.Normal),
		DiffuseColor: attenuation,
	}, true
}

// reflectance evaluates the Oren-Nayar BRDF factor (without the albedo/pi
// term, which Scatter applies separately) for view direction v and light
// direction l around normal n.
func (o *OrenNayar) reflectance(v, l, n core.Vec3) float64 {
	cosThetaI := l.Dot(n)
	cosThetaO := v.Dot(n)
	if cosThetaI <= 0 || cosThetaO <= 0 {
		return 0
	}

	sigma2 := o.Roughness * o.Roughness
	a := 1.0 - 0.5*sigma2/(sigma2+0.33)
	b := 0.45 * sigma2 / (sigma2 + 0.09)

	thetaI := math.Acos(core.Interval{Min: -1, Max: 1}.Clamp(cosThetaI))
	thetaO := math.Acos(core.Interval{Min: -1, Max: 1}.Clamp(cosThetaO))
	alpha := math.Max(thetaI, thetaO)
	beta := math.Min(thetaI, thetaO)

	// Project l and v onto the tangent plane to get the azimuthal angle
	// between them.
	lTangent := l.Subtract(n.Multiply(cosThetaI)).Normalize()
	vTangent := v.Subtract(n.Multiply(cosThetaO)).Normalize()
	cosPhiDiff := math.Max(0, lTangent.Dot(vTangent))

	return a + b*cosPhiDiff*math.Sin(alpha)*math.Tan(beta)
}

// ScatteringPDF is cosTheta/pi, matching the cosine-weighted sampling.
func (o *OrenNayar) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Emitted is always black: Oren-Nayar is not an emitter.
func (o *OrenNayar) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	return core.Color{}, 1
}
