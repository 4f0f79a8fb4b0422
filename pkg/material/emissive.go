package material

import "github.com/kesseloak/lumenforge/pkg/core"

// DiffuseLight emits Texture scaled by Intensity and never scatters
// further. Directional restricts emission to the front face;
// InvisibleToPrimaryRays reports alpha=0 so the integrator treats a
// camera/specular ray hitting this surface as a pass-through while
// next-event estimation still samples it directly.
type DiffuseLight struct {
	Texture                 core.Texture
	Intensity               float64
	Directional             bool
	InvisibleToPrimaryRays  bool
}

// NewDiffuseLight builds a diffuse light from a texture and intensity.
func NewDiffuseLight(texture core.Texture, intensity float64) *DiffuseLight {
	return &DiffuseLight{Texture: texture, Intensity: intensity}
}

// NewDiffuseLightColor is a convenience constructor over a solid color.
func NewDiffuseLightColor(color core.Color, intensity float64) *DiffuseLight {
	return NewDiffuseLight(solidTexture{color}, intensity)
}

// Scatter never scatters: a pure emitter terminates the path here (besides
// whatever light Emitted already contributed).
func (d *DiffuseLight) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is unused: DiffuseLight never scatters.
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns Texture*Intensity, zeroed when Directional and the hit is
// on the back face, with alpha 0 when InvisibleToPrimaryRays is set.
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	alpha := 1.0
	if d.InvisibleToPrimaryRays {
		alpha = 0
	}

	if d.Directional && !hit.FrontFace {
		return core.Color{}, alpha
	}

	return d.Texture.Value(u, v, p).Multiply(d.Intensity), alpha
}
