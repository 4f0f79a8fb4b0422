package geometry

import "github.com/kesseloak/lumenforge/pkg/core"

// stubMaterial satisfies core.Material without scattering anything; it lets
// geometry tests focus purely on intersection math.
type stubMaterial struct{}

func (stubMaterial) Scatter(rayIn core.Ray, lights []core.Light, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (stubMaterial) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

func (stubMaterial) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) (core.Color, float64) {
	return core.Color{}, 0
}
