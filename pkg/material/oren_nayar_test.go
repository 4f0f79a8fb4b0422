package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
)

func TestOrenNayar_ScatterStaysAboveSurface(t *testing.T) {
	o := NewOrenNayarColor(core.NewVec3(0.7, 0.7, 0.7), 0.5)
	hit := &core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	sampler := core.NewRandSampler(5)

	scatter, ok := o.Scatter(core.Ray{Direction: core.NewVec3(0.2, -1, 0)}, nil, hit, sampler)
	require.True(t, ok)
	dir := scatter.PDF.Generate(sampler)
	assert.Greater(t, dir.Dot(hit.Normal), 0.0)
}

func TestOrenNayar_FlatRoughnessApproachesLambertian(t *testing.T) {
	// At Roughness=0, the A/B coefficients reduce to A=1,B=0: reflectance is
	// just the Lambertian cosine-law, independent of view direction.
	o := NewOrenNayarColor(core.NewVec3(1, 1, 1), 0)
	n := core.NewVec3(0, 1, 0)
	l := core.NewVec3(0, 1, 0)
	v := core.NewVec3(0.3, 1, 0).Normalize()

	r := o.reflectance(v, l, n)
	assert.InDelta(t, 1.0, r, 1e-6)
}

func TestOrenNayar_ScatteringPDFMatchesCosineLaw(t *testing.T) {
	o := NewOrenNayarColor(core.NewVec3(1, 1, 1), 0.5)
	hit := &core.HitRecord{Normal: core.NewVec3(0, 0, 1)}
	assert.Greater(t, o.ScatteringPDF(core.Ray{}, hit, core.Ray{Direction: core.NewVec3(0, 0, 1)}), 0.0)
	assert.Zero(t, o.ScatteringPDF(core.Ray{}, hit, core.Ray{Direction: core.NewVec3(0, 0, -1)}))
}
