package material

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/pdf"
)

// Phong is an ambient+diffuse+specular material shaded against a single
// chosen light, following the classic ambient/diffuse/specular split.
// Sampling
// is still importance-sampled via a cosine PDF rather than evaluated only
// toward the light, so Phong composes with the integrator's usual
// next-event-estimation/BSDF mixture.
type Phong struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// NewPhong builds a Phong material with the classic 0.1/0.1/0.9 ambient/
// diffuse/specular split used by the original's default constructor.
func NewPhong(color core.Color) *Phong {
	return &Phong{Color: color, Ambient: 0.1, Diffuse: 0.1, Specular: 0.9, Shininess: 32}
}

// NewPhongFull builds a Phong material with explicit coefficients.
func NewPhongFull(color core.Color, ambient, diffuse, specular, shininess float64) *Phong {
	return &Phong{Color: color, Ambient: ambient, Diffuse: diffuse, Specular: specular, Shininess: shininess}
}

// Scatter shades against the first available light (matching the original's
// "just take the first light for the moment"); with no light present, only
// the ambient term contributes.
func (p *Phong) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	attenuation := p.shade(rayIn, lights, hit, sampler)
	return core.ScatterRecord{
		Attenuation:  attenuation,
		PDF:          pdf.NewCosine(hit.Normal),
		DiffuseColor: attenuation,
	}, true
}

func (p *Phong) shade(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) core.Vec3 {
	if len(lights) == 0 {
		return p.Color.Multiply(p.Ambient)
	}
	light := lights[0]

	sample := light.Sample(hit.Point, sampler)
	effectiveColor := p.Color.MultiplyVec(sample.Emitted)
	ambient := effectiveColor.Multiply(p.Ambient)

	lightDotNormal := sample.Direction.Dot(hit.Normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(p.Diffuse * lightDotNormal)

	eye := rayIn.Direction.Negate().Normalize()
	reflectDir := core.Reflect(sample.Direction.Negate(), hit.Normal)
	reflectDotEye := reflectDir.Dot(eye)

	specular := core.Vec3{}
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, p.Shininess)
		specular = sample.Emitted.Multiply(p.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}

// ScatteringPDF is cosTheta/pi, matching the cosine PDF used for sampling.
func (p *Phong) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Emitted is always black: Phong is not an emitter.
func (p *Phong) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, pt core.Vec3) (core.Color, float64) {
	return core.Color{}, 1
}
