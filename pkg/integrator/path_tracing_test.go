package integrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/geometry"
	"github.com/kesseloak/lumenforge/pkg/lights"
	"github.com/kesseloak/lumenforge/pkg/material"
)

// sphereScene wraps a single shape as a scene root, matching the minimal
// scene shape these tests need.
func sphereScene(mat core.Material, background core.Background) *core.Scene {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	return &core.Scene{Root: sphere, Background: background}
}

func TestRayColor_ZeroDepthIsBlack(t *testing.T) {
	pt := New(nil)
	scene := sphereScene(material.NewLambertianColor(core.NewVec3(1, 0, 0)), core.SolidBackground{Color: core.NewVec3(1, 1, 1)})
	ray := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1)}

	color := pt.RayColor(ray, scene, 0, core.NewRandSampler(1))
	assert.True(t, color.IsZero())
}

func TestRayColor_MissReturnsBackground(t *testing.T) {
	pt := New(nil)
	bg := core.SolidBackground{Color: core.NewVec3(0.2, 0.4, 0.8)}
	scene := sphereScene(material.NewLambertianColor(core.NewVec3(1, 0, 0)), bg)
	ray := core.Ray{Origin: core.NewVec3(0, 10, 0), Direction: core.NewVec3(0, 1, 0)}

	color := pt.RayColor(ray, scene, 5, core.NewRandSampler(1))
	assert.Equal(t, bg.Color, color)
}

func TestRayColor_EmitterReturnsOwnRadianceWithNoFurtherBounce(t *testing.T) {
	pt := New(nil)
	light := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 4)
	scene := sphereScene(light, core.SolidBackground{})
	ray := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1)}

	color := pt.RayColor(ray, scene, 5, core.NewRandSampler(1))
	assert.Greater(t, color.X, 0.0)
}

func TestRayColor_MetalSkipPDFStaysFinite(t *testing.T) {
	pt := New(nil)
	scene := sphereScene(material.NewMetalColor(core.NewVec3(0.8, 0.8, 0.8), 0), core.SolidBackground{Color: core.NewVec3(0.5, 0.5, 0.5)})
	ray := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1)}

	color := pt.RayColor(ray, scene, 5, core.NewRandSampler(1))
	require.True(t, color.IsFinite())
}

func TestRayColor_WeightedLightSamplerStaysFinite(t *testing.T) {
	pt := New(nil)
	ground := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	light := lights.NewSphereLight(core.NewVec3(0, 3, -1), 1, material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 8))

	scene := &core.Scene{
		Root:         ground,
		Emissive:     []core.Hittable{light},
		Lights:       []core.Light{light},
		Background:   core.SolidBackground{},
		LightSampler: core.NewWeightedLightSampler([]core.Light{light}, []float64{1}, 10),
	}
	ray := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1)}

	color := pt.RayColor(ray, scene, 5, core.NewRandSampler(3))
	require.True(t, color.IsFinite())
	assert.GreaterOrEqual(t, color.X, 0.0)
}

func TestRayColor_DiffuseSphereStaysFiniteAndNonNegative(t *testing.T) {
	pt := New(nil)
	scene := sphereScene(material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)), core.SolidBackground{Color: core.NewVec3(0.7, 0.8, 1.0)})
	ray := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1)}

	color := pt.RayColor(ray, scene, 10, core.NewRandSampler(7))
	require.True(t, color.IsFinite())
	assert.GreaterOrEqual(t, color.X, 0.0)
	assert.GreaterOrEqual(t, color.Y, 0.0)
	assert.GreaterOrEqual(t, color.Z, 0.0)
}
