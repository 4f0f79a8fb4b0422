package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// stubLight is a minimal core.Light used to drive Phong's shading without
// pulling in the lights package.
type stubLight struct {
	direction core.Vec3
	emitted   core.Color
}

func (s stubLight) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) { return nil, false }
func (s stubLight) BoundingBox() core.AABB                                      { return core.AABB{} }
func (s stubLight) PDFValue(origin, dir core.Vec3) float64                      { return 0 }
func (s stubLight) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return s.direction
}
func (s stubLight) Type() core.LightType { return core.LightTypePoint }
func (s stubLight) Sample(point core.Vec3, sampler core.Sampler) core.LightSample {
	return core.LightSample{Direction: s.direction, Distance: 1, PDF: 1, Emitted: s.emitted}
}
func (s stubLight) PDF(point, direction core.Vec3) float64 { return 1 }
func (s stubLight) Emit(u, v float64, p core.Vec3) core.Color { return s.emitted }

func TestPhong_NoLightsIsAmbientOnly(t *testing.T) {
	p := NewPhong(core.NewVec3(1, 1, 1))
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	scatter, ok := p.Scatter(core.Ray{Direction: core.NewVec3(0, -1, 0)}, nil, hit, core.NewRandSampler(1))
	require.True(t, ok)
	assert.InDelta(t, p.Ambient, scatter.Attenuation.X, 1e-9)
}

func TestPhong_DiffuseAndSpecularContributeTowardLight(t *testing.T) {
	p := NewPhong(core.NewVec3(1, 1, 1))
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	light := stubLight{direction: core.NewVec3(0, 1, 0), emitted: core.NewVec3(1, 1, 1)}

	scatter, ok := p.Scatter(core.Ray{Direction: core.NewVec3(0, -1, 0)}, []core.Light{light}, hit, core.NewRandSampler(2))
	require.True(t, ok)
	// Straight-on light plus a mirror-reflected eye direction should push
	// the shaded color above the ambient-only floor.
	assert.Greater(t, scatter.Attenuation.X, p.Ambient)
}

func TestPhong_ScatteringPDFIsCosineWeighted(t *testing.T) {
	p := NewPhong(core.NewVec3(1, 1, 1))
	hit := &core.HitRecord{Normal: core.NewVec3(0, 0, 1)}
	assert.Greater(t, p.ScatteringPDF(core.Ray{}, hit, core.Ray{Direction: core.NewVec3(0, 0, 1)}), 0.0)
	assert.Zero(t, p.ScatteringPDF(core.Ray{}, hit, core.Ray{Direction: core.NewVec3(0, 0, -1)}))
}
