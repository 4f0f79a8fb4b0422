package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
)

func TestAnisotropic_ScatterStaysAboveSurface(t *testing.T) {
	a := NewAnisotropic(core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0.9, 0.9, 0.9), 50, 400)
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	seen := false
	for seed := int64(0); seed < 20; seed++ {
		scatter, ok := a.Scatter(core.Ray{Direction: core.NewVec3(0.3, -1, 0)}, nil, hit, core.NewRandSampler(seed))
		if !ok {
			continue
		}
		seen = true
		assert.False(t, scatter.Attenuation.X < 0)
		_ = scatter
	}
	assert.True(t, seen, "at least some samples should scatter above the surface")
}

func TestAnisotropic_SpecularWeightFavorsBrighterLobe(t *testing.T) {
	a := NewAnisotropic(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.9, 0.9, 0.9), 100, 100)
	assert.Greater(t, a.specularWeight(), 0.5)
}

func TestAnisotropic_ScatteringPDFAgreesWithGenerate(t *testing.T) {
	a := NewAnisotropic(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.5, 0.5, 0.5), 20, 20)
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.Ray{Direction: core.NewVec3(0, -1, 0)}

	scatter, ok := a.Scatter(rayIn, nil, hit, core.NewRandSampler(9))
	require.True(t, ok)

	density := a.ScatteringPDF(rayIn, hit, core.Ray{Direction: scatter.PDF.Generate(core.NewRandSampler(9))})
	assert.GreaterOrEqual(t, density, 0.0)
}
