package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/geometry"
	"github.com/kesseloak/lumenforge/pkg/lights"
)

// stubEmitter is a minimal core.Material for the shapes and lights below;
// only their geometry matters to the PDFs under test.
type stubEmitter struct{}

func (stubEmitter) Scatter(core.Ray, []core.Light, *core.HitRecord, core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (stubEmitter) ScatteringPDF(core.Ray, *core.HitRecord, core.Ray) float64 { return 0 }

func (stubEmitter) Emitted(core.Ray, *core.HitRecord, float64, float64, core.Vec3) (core.Color, float64) {
	return core.NewVec3(1, 1, 1), 1
}

func TestCosine_ValueZeroBelowHorizon(t *testing.T) {
	c := NewCosine(core.NewVec3(0, 1, 0))
	assert.Zero(t, c.Value(core.NewVec3(0, -1, 0)))
	assert.Greater(t, c.Value(core.NewVec3(0, 1, 0)), 0.0)
}

func TestCosine_GenerateStaysInHemisphere(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	c := NewCosine(normal)
	sampler := core.NewRandSampler(7)

	for i := 0; i < 50; i++ {
		dir := c.Generate(sampler)
		assert.GreaterOrEqual(t, dir.Normalize().Dot(normal), 0.0)
	}
}

func TestSphere_ValueIsUniform(t *testing.T) {
	s := NewSphere()
	assert.InDelta(t, s.Value(core.NewVec3(1, 0, 0)), s.Value(core.NewVec3(0, 0, -1)), 1e-12)
}

func TestMixture_ValueBlendsBothBranches(t *testing.T) {
	a := NewCosine(core.NewVec3(0, 1, 0))
	b := NewSphere()
	m := NewMixture(a, b, 0.5)

	dir := core.NewVec3(0, 1, 0)
	want := 0.5*a.Value(dir) + 0.5*b.Value(dir)
	assert.InDelta(t, want, m.Value(dir), 1e-12)
}

func TestMixture_GenerateRespectsWeight(t *testing.T) {
	always := &constPDF{dir: core.NewVec3(1, 0, 0)}
	never := &constPDF{dir: core.NewVec3(0, 1, 0)}
	m := NewMixture(always, never, 1.0)

	sampler := core.NewRandSampler(3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, always.dir, m.Generate(sampler))
	}
}

func TestHittable_ValueDelegatesToObject(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 5, 0), 1, stubEmitter{})
	origin := core.NewVec3(0, 0, 0)
	h := NewHittable(sphere, origin)

	toward := core.NewVec3(0, 1, 0)
	assert.Greater(t, h.Value(toward), 0.0)

	away := core.NewVec3(0, -1, 0)
	assert.Zero(t, h.Value(away))
}

func TestHittableList_ValueAveragesAcrossObjects(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	mat := stubEmitter{}
	a := geometry.NewSphere(core.NewVec3(0, 5, 0), 1, mat)
	b := geometry.NewSphere(core.NewVec3(0, -5, 0), 1, mat)

	list := NewHittableList([]core.Hittable{a, b}, origin)
	up := core.NewVec3(0, 1, 0)
	want := 0.5 * a.PDFValue(origin, up)
	assert.InDelta(t, want, list.Value(up), 1e-12)
}

func TestHittableList_EmptyDegradesToZero(t *testing.T) {
	list := NewHittableList(nil, core.NewVec3(0, 0, 0))
	require.Zero(t, list.Value(core.NewVec3(0, 1, 0)))
	assert.Equal(t, core.NewVec3(0, 1, 0), list.Generate(core.NewRandSampler(1)))
}

func TestAnisotropicPhong_DiffuseOnlyMatchesCosine(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	tangent := core.NewVec3(1, 0, 0)
	incoming := core.NewVec3(0, -1, 0)
	ap := NewAnisotropicPhong(normal, tangent, incoming, 1, 1, 0)

	dir := core.NewVec3(0, 1, 0)
	cos := NewCosine(normal)
	assert.InDelta(t, cos.Value(dir), ap.Value(dir), 1e-9)
}

func TestAnisotropicPhong_GenerateReturnsUnitDirections(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	tangent := core.NewVec3(1, 0, 0)
	incoming := core.NewVec3(0.3, -1, 0.1)
	ap := NewAnisotropicPhong(normal, tangent, incoming, 20, 200, 0.6)
	sampler := core.NewRandSampler(11)

	for i := 0; i < 50; i++ {
		dir := ap.Generate(sampler)
		assert.InDelta(t, 1.0, dir.Length(), 1e-6)
	}
}

func TestWeightedLightList_ValueWeightsByProbability(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	mat := stubEmitter{}
	a := lights.NewSphereLight(core.NewVec3(0, 5, 0), 1, mat)
	b := lights.NewSphereLight(core.NewVec3(0, 5, 0), 1, mat)

	sampler := core.NewWeightedLightSampler([]core.Light{a, b}, []float64{3, 1}, 10)
	list := NewWeightedLightList(sampler, origin)

	up := core.NewVec3(0, 1, 0)
	want := 0.75*a.PDFValue(origin, up) + 0.25*b.PDFValue(origin, up)
	assert.InDelta(t, want, list.Value(up), 1e-12)
}

func TestWeightedLightList_GenerateFavorsHeavierLight(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	mat := stubEmitter{}
	a := lights.NewSphereLight(core.NewVec3(5, 0, 0), 1, mat)
	b := lights.NewSphereLight(core.NewVec3(-5, 0, 0), 1, mat)

	sampler := core.NewWeightedLightSampler([]core.Light{a, b}, []float64{1, 0}, 10)
	list := NewWeightedLightList(sampler, origin)

	dir := list.Generate(core.NewRandSampler(1))
	assert.Greater(t, dir.Dot(core.NewVec3(1, 0, 0)), 0.0)
}

func TestWeightedLightList_EmptyDegradesToZero(t *testing.T) {
	sampler := core.NewWeightedLightSampler(nil, nil, 10)
	list := NewWeightedLightList(sampler, core.NewVec3(0, 0, 0))

	assert.Zero(t, list.Value(core.NewVec3(0, 1, 0)))
	assert.Equal(t, core.NewVec3(0, 1, 0), list.Generate(core.NewRandSampler(1)))
}

type constPDF struct{ dir core.Vec3 }

func (c *constPDF) Value(core.Vec3) float64        { return 1 }
func (c *constPDF) Generate(core.Sampler) core.Vec3 { return c.dir }
