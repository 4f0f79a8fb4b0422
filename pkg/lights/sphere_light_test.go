package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/material"
)

func TestSphereLight_SampleHitsTheSphere(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 5, 0), 1, material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 10))
	eye := core.NewVec3(0, 0, 0)
	sampler := core.NewRandSampler(1)

	sample := light.Sample(eye, sampler)
	require.Greater(t, sample.PDF, 0.0)
	assert.Greater(t, sample.Distance, 3.0)
}

func TestSphereLight_PDFMatchesConeSampling(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 5, 0), 1, material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 10))
	eye := core.NewVec3(0, 0, 0)
	direction := core.NewVec3(0, 5, 0).Subtract(eye).Normalize()

	assert.Equal(t, light.Sphere.PDFValue(eye, direction), light.PDF(eye, direction))
}

func TestSphereLight_IsAreaType(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 0, 0), 1, material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 1))
	assert.Equal(t, core.LightTypeArea, light.Type())
}
