package material

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/pdf"
)

// Isotropic scatters uniformly over the full sphere of directions, used for
// volumetric fog/smoke.
type Isotropic struct {
	Texture core.Texture
}

// NewIsotropic builds an isotropic material from a texture.
func NewIsotropic(texture core.Texture) *Isotropic {
	return &Isotropic{Texture: texture}
}

// NewIsotropicColor is a convenience constructor over a solid color.
func NewIsotropicColor(albedo core.Color) *Isotropic {
	return &Isotropic{Texture: solidTexture{albedo}}
}

// Scatter samples uniformly over the sphere via pdf.Sphere.
func (i *Isotropic) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	attenuation := i.Texture.Value(hit.U, hit.V, hit.Point)
	return core.ScatterRecord{
		Attenuation: attenuation,
		PDF:         pdf.NewSphere(),
	}, true
}

// ScatteringPDF is the constant 1/(4*pi) uniform-sphere density.
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Emitted is always black: isotropic fog is not an emitter.
func (i *Isotropic) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	return core.Color{}, 1
}
