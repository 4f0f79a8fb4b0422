package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/material"
)

func TestQuadLight_SamplePointsLieOnSurface(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 4),
	)
	eye := core.NewVec3(0, 0, 0)
	sampler := core.NewRandSampler(3)

	sample := light.Sample(eye, sampler)
	require.Greater(t, sample.PDF, 0.0)
	assert.Greater(t, sample.Distance, 0.0)
	assert.True(t, sample.Emitted.X > 0)
}

func TestQuadLight_PDFAgreesWithHittable(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 4),
	)
	eye := core.NewVec3(0, 0, 0)
	toCenter := core.NewVec3(0, 5, 0).Subtract(eye)

	assert.Equal(t, light.Quad.PDFValue(eye, toCenter), light.PDF(eye, toCenter))
}

func TestQuadLight_IsAreaType(t *testing.T) {
	light := NewQuadLight(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 1))
	assert.Equal(t, core.LightTypeArea, light.Type())
}
