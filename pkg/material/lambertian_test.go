package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/texture"
)

// uFuncTexture returns a color whose luminance varies with u, used to give
// a Bump map a non-zero gradient to perturb against.
type uFuncTexture struct{}

func (uFuncTexture) Value(u, v float64, p core.Vec3) core.Color { return core.NewVec3(u, u, u) }

func TestLambertian_Scatter_CosineWeighted(t *testing.T) {
	l := NewLambertianColor(core.NewVec3(0.8, 0.2, 0.2))
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	sampler := core.NewRandSampler(7)

	scatter, ok := l.Scatter(core.Ray{}, nil, hit, sampler)
	require.True(t, ok)
	assert.False(t, scatter.SkipPDF)
	require.NotNil(t, scatter.PDF)

	dir := scatter.PDF.Generate(sampler)
	assert.Greater(t, dir.Dot(hit.Normal), 0.0)
	assert.Greater(t, scatter.PDF.Value(dir), 0.0)
}

func TestLambertian_ScatteringPDF_MatchesCosineLaw(t *testing.T) {
	l := NewLambertianColor(core.NewVec3(1, 1, 1))
	hit := &core.HitRecord{Normal: core.NewVec3(0, 0, 1)}

	straightUp := core.Ray{Direction: core.NewVec3(0, 0, 1)}
	assert.InDelta(t, 1.0/3.14159265, l.ScatteringPDF(core.Ray{}, hit, straightUp), 1e-3)

	belowSurface := core.Ray{Direction: core.NewVec3(0, 0, -1)}
	assert.Zero(t, l.ScatteringPDF(core.Ray{}, hit, belowSurface))
}

func TestLambertian_NormalMap_PerturbsShadingNormal(t *testing.T) {
	// Encodes tangent-space (1,0,0): perpendicular to the hit's geometric
	// normal, so the shading normal used for scattering must differ from it.
	encoded := texture.NewSolid(core.NewVec3(1, 0.5, 0.5))
	l := NewLambertianNormalMapped(solidTexture{core.NewVec3(1, 1, 1)}, texture.NewNormal(encoded))
	hit := &core.HitRecord{Normal: core.NewVec3(0, 0, 1)}

	shading := l.shadingNormal(hit)
	assert.InDelta(t, 1.0, shading.Length(), 1e-6)
	assert.Less(t, shading.Dot(hit.Normal), 1.0-1e-6)
}

func TestLambertian_BumpMap_PerturbsShadingNormal(t *testing.T) {
	l := NewLambertianBumpMapped(solidTexture{core.NewVec3(1, 1, 1)}, texture.NewBump(uFuncTexture{}, 5.0))
	hit := &core.HitRecord{Normal: core.NewVec3(0, 0, 1), U: 0.5, V: 0.5}

	shading := l.shadingNormal(hit)
	assert.InDelta(t, 1.0, shading.Length(), 1e-6)
	assert.NotEqual(t, hit.Normal, shading)
}

func TestLambertian_NoMaps_UsesGeometricNormal(t *testing.T) {
	l := NewLambertianColor(core.NewVec3(1, 1, 1))
	hit := &core.HitRecord{Normal: core.NewVec3(0, 1, 0)}
	assert.Equal(t, hit.Normal, l.shadingNormal(hit))
}

func TestLambertian_NotAnEmitter(t *testing.T) {
	l := NewLambertianColor(core.NewVec3(1, 1, 1))
	color, alpha := l.Emitted(core.Ray{}, &core.HitRecord{}, 0, 0, core.Vec3{})
	assert.True(t, color.IsZero())
	assert.Equal(t, 1.0, alpha)
}
