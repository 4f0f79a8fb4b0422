// Package material implements the core.Material BSDFs this renderer
// supports: lambertian, metal, dielectric, diffuse-light, isotropic,
// phong, oren-nayar, and the anisotropic Ashikhmin-Shirley model.
package material

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/pdf"
	"github.com/kesseloak/lumenforge/pkg/texture"
)

// Lambertian is a perfectly diffuse material: attenuation comes from a
// texture, and scattering is importance-sampled via a cosine-weighted PDF
// around the (optionally perturbed) surface normal.
type Lambertian struct {
	Texture core.Texture

	// NormalMap, when set, decodes a tangent-space normal per spec.md
	// §4.4 and replaces the geometric normal for shading.
	NormalMap *texture.Normal
	// BumpMap, when set, perturbs the geometric normal by its (du, dv)
	// height gradient instead of replacing it outright.
	BumpMap *texture.Bump
}

// NewLambertian builds a lambertian material from a texture.
func NewLambertian(texture core.Texture) *Lambertian {
	return &Lambertian{Texture: texture}
}

// NewLambertianColor is a convenience constructor over a solid color.
func NewLambertianColor(albedo core.Color) *Lambertian {
	return &Lambertian{Texture: solidTexture{albedo}}
}

// NewLambertianNormalMapped builds a lambertian material whose shading
// normal is replaced by a decoded tangent-space normal map.
func NewLambertianNormalMapped(tex core.Texture, normalMap *texture.Normal) *Lambertian {
	return &Lambertian{Texture: tex, NormalMap: normalMap}
}

// NewLambertianBumpMapped builds a lambertian material whose shading normal
// is perturbed by a bump map's height gradient.
func NewLambertianBumpMapped(tex core.Texture, bumpMap *texture.Bump) *Lambertian {
	return &Lambertian{Texture: tex, BumpMap: bumpMap}
}

// shadingNormal returns the normal to scatter about: the geometric normal,
// a decoded normal-map replacement, or a bump-perturbed variant of it.
func (l *Lambertian) shadingNormal(hit *core.HitRecord) core.Vec3 {
	switch {
	case l.NormalMap != nil:
		tangentNormal := l.NormalMap.Value(hit.U, hit.V, hit.Point)
		onb := core.NewONB(hit.Normal)
		return onb.Transform(tangentNormal).Normalize()
	case l.BumpMap != nil:
		du, dv := l.BumpMap.Gradient(hit.U, hit.V, hit.Point)
		onb := core.NewONB(hit.Normal)
		perturbed := hit.Normal.Subtract(onb.U.Multiply(du)).Subtract(onb.V.Multiply(dv))
		return perturbed.Normalize()
	default:
		return hit.Normal
	}
}

// Scatter returns a cosine PDF around the (possibly perturbed) normal with
// no skip; attenuation is the texture's color at the hit point.
func (l *Lambertian) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	attenuation := l.Texture.Value(hit.U, hit.V, hit.Point)
	return core.ScatterRecord{
		Attenuation:  attenuation,
		PDF:          pdf.NewCosine(l.shadingNormal(hit)),
		DiffuseColor: attenuation,
	}, true
}

// ScatteringPDF is cosTheta/pi against the shading normal, clamped to zero
// below the horizon.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosTheta := l.shadingNormal(hit).Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Emitted is always black: lambertian is not an emitter.
func (l *Lambertian) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	return core.Color{}, 1
}

// solidTexture is an unexported constant-color core.Texture, used by the
// *Color convenience constructors across this package so callers that only
// have a flat color never need to reach into pkg/texture directly.
type solidTexture struct {
	color core.Color
}

func (s solidTexture) Value(u, v float64, p core.Vec3) core.Color { return s.color }
