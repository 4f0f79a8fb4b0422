package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
)

func TestCamera_StratifiedSampleCountIsPerfectSquare(t *testing.T) {
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, 1, 100, 0, 10, 100, 10)
	n := c.SqrtSamplesPerPixel()
	assert.Equal(t, n*n <= 100, true)
	assert.Greater(t, n, 0)
}

func TestCamera_GetRayStaysWithinPixel(t *testing.T) {
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, 1, 100, 0, 10, 4, 10)
	sampler := core.NewRandSampler(1)

	ray := c.GetRay(50, 50, 0, 0, sampler)
	assert.Equal(t, 50, ray.PixelX)
	assert.Equal(t, 50, ray.PixelY)
	assert.True(t, ray.Direction.Length() > 0)
}

func TestCamera_DefocusDiskMovesOrigin(t *testing.T) {
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, 1, 100, 10, 3, 4, 10)
	sampler := core.NewRandSampler(2)

	ray := c.GetRay(50, 50, 0, 0, sampler)
	require.NotEqual(t, c.LookFrom, ray.Origin)
}

func TestCamera_ShutterAssignsTimeWithinWindow(t *testing.T) {
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, 1, 100, 0, 10, 4, 10)
	c.WithShutter(0, 1)
	sampler := core.NewRandSampler(3)

	ray := c.GetRay(10, 10, 0, 0, sampler)
	assert.GreaterOrEqual(t, ray.Time, 0.0)
	assert.LessOrEqual(t, ray.Time, 1.0)
}
