package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
)

func TestNewAxisAlignedBox(t *testing.T) {
	center := core.NewVec3(0, 0, 0)
	size := core.NewVec3(1, 1, 1)

	box := NewAxisAlignedBox(center, size, stubMaterial{})

	assert.Equal(t, center, box.Center)
	assert.Equal(t, size, box.Size)
	assert.Equal(t, core.NewVec3(0, 0, 0), box.Rotation)
}

func TestNewBox_WithRotation(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	size := core.NewVec3(0.5, 1, 1.5)
	rotation := core.NewVec3(math.Pi/4, math.Pi/6, math.Pi/3)

	box := NewBox(center, size, rotation, stubMaterial{})

	assert.Equal(t, center, box.Center)
	assert.Equal(t, size, box.Size)
	assert.Equal(t, rotation, box.Rotation)
}

func TestBox_Hit_AxisAligned(t *testing.T) {
	box := NewAxisAlignedBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), stubMaterial{})

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits front face",
			ray:       core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1)),
			tMin:      0.001, tMax: 10.0, shouldHit: true, expectedT: 2.0,
		},
		{
			name:      "Ray hits right face",
			ray:       core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0)),
			tMin:      0.001, tMax: 10.0, shouldHit: true, expectedT: 2.0,
		},
		{
			name:      "Ray misses box",
			ray:       core.NewRay(core.NewVec3(0, 3, -3), core.NewVec3(0, 0, 1)),
			tMin:      0.001, tMax: 10.0, shouldHit: false,
		},
		{
			name:      "Ray inside box",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			tMin:      0.001, tMax: 10.0, shouldHit: true, expectedT: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, tt.tMin, tt.tMax)
			require.Equal(t, tt.shouldHit, isHit)

			if !tt.shouldHit {
				return
			}
			require.NotNil(t, hit)
			assert.InDelta(t, tt.expectedT, hit.T, 1e-6)

			expectedPoint := tt.ray.At(hit.T)
			assert.Less(t, expectedPoint.Subtract(hit.Point).Length(), 1e-6)
		})
	}
}

func TestBox_BoundingBox_AxisAligned(t *testing.T) {
	center := core.NewVec3(2, 3, 4)
	size := core.NewVec3(1, 2, 1.5)
	box := NewAxisAlignedBox(center, size, stubMaterial{})

	bbox := box.BoundingBox()

	expectedMin := core.NewVec3(1, 1, 2.5)
	expectedMax := core.NewVec3(3, 5, 5.5)

	const tolerance = 1e-9
	assert.Less(t, bbox.Min.Subtract(expectedMin).Length(), tolerance)
	assert.Less(t, bbox.Max.Subtract(expectedMax).Length(), tolerance)
}

func TestBox_BoundingBox_Rotated(t *testing.T) {
	center := core.NewVec3(0, 0, 0)
	size := core.NewVec3(1, 1, 1)
	rotation := core.NewVec3(0, math.Pi/4, 0)
	box := NewBox(center, size, rotation, stubMaterial{})

	bbox := box.BoundingBox()

	expectedExtent := math.Sqrt(2)
	expectedMin := core.NewVec3(-expectedExtent, -1, -expectedExtent)
	expectedMax := core.NewVec3(expectedExtent, 1, expectedExtent)

	const tolerance = 1e-6
	assert.InDelta(t, expectedMin.X, bbox.Min.X, tolerance)
	assert.InDelta(t, expectedMin.Y, bbox.Min.Y, tolerance)
	assert.InDelta(t, expectedMin.Z, bbox.Min.Z, tolerance)
	assert.InDelta(t, expectedMax.X, bbox.Max.X, tolerance)
	assert.InDelta(t, expectedMax.Y, bbox.Max.Y, tolerance)
	assert.InDelta(t, expectedMax.Z, bbox.Max.Z, tolerance)
}

func TestBox_Hit_Rotated(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(0, math.Pi/4, 0), stubMaterial{})

	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))

	hit, isHit := box.Hit(ray, 0.001, 10.0)
	require.True(t, isHit)
	require.NotNil(t, hit)

	assert.Greater(t, hit.T, 0.0)
	assert.Less(t, hit.T, 10.0)

	expectedPoint := ray.At(hit.T)
	assert.Less(t, expectedPoint.Subtract(hit.Point).Length(), 1e-6)
}
