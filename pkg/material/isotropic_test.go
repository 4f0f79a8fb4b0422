package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
)

func TestIsotropic_ScattersUniformlyOverSphere(t *testing.T) {
	iso := NewIsotropicColor(core.NewVec3(0.5, 0.5, 0.5))
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0)}
	sampler := core.NewRandSampler(11)

	scatter, ok := iso.Scatter(core.Ray{}, nil, hit, sampler)
	require.True(t, ok)
	require.NotNil(t, scatter.PDF)

	dir := scatter.PDF.Generate(sampler)
	assert.InDelta(t, 1, dir.Length(), 1e-9)
}

func TestIsotropic_ScatteringPDFIsUniformConstant(t *testing.T) {
	iso := NewIsotropicColor(core.NewVec3(1, 1, 1))
	expected := 1.0 / (4.0 * math.Pi)
	assert.Equal(t, expected, iso.ScatteringPDF(core.Ray{}, &core.HitRecord{}, core.Ray{Direction: core.NewVec3(1, 0, 0)}))
	assert.Equal(t, expected, iso.ScatteringPDF(core.Ray{}, &core.HitRecord{}, core.Ray{Direction: core.NewVec3(0, -1, 0)}))
}

func TestIsotropic_NotAnEmitter(t *testing.T) {
	iso := NewIsotropicColor(core.NewVec3(1, 1, 1))
	color, alpha := iso.Emitted(core.Ray{}, &core.HitRecord{}, 0, 0, core.Vec3{})
	assert.True(t, color.IsZero())
	assert.Equal(t, 1.0, alpha)
}
