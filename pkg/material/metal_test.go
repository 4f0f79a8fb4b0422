package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
)

func TestMetal_PerfectMirror_SkipsPDF(t *testing.T) {
	m := NewMetalColor(core.NewVec3(0.9, 0.9, 0.9), 0)
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.Ray{Direction: core.NewVec3(1, -1, 0)}

	scatter, ok := m.Scatter(rayIn, nil, hit, core.NewRandSampler(1))
	require.True(t, ok)
	assert.True(t, scatter.SkipPDF)

	reflected := scatter.SkipPDFRay.Direction.Normalize()
	assert.InDelta(t, math.Sqrt2/2, reflected.X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, reflected.Y, 1e-9)
}

func TestMetal_FuzzCanAbsorb(t *testing.T) {
	m := NewMetalColor(core.NewVec3(1, 1, 1), 1.0)
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	// A grazing ray: its mirror direction sits just above the surface, so a
	// unit-length fuzz offset can push it below.
	rayIn := core.Ray{Direction: core.NewVec3(1, -0.1, 0)}

	absorbedSeen := false
	for seed := int64(0); seed < 50; seed++ {
		_, ok := m.Scatter(rayIn, nil, hit, core.NewRandSampler(seed))
		if !ok {
			absorbedSeen = true
			break
		}
	}
	assert.True(t, absorbedSeen, "sufficiently fuzzy metal should occasionally absorb a ray scattered below the surface")
}

func TestMetal_FuzzClamped(t *testing.T) {
	m := NewMetal(solidTexture{core.NewVec3(1, 1, 1)}, 5.0)
	assert.Equal(t, 1.0, m.Fuzz)
}
