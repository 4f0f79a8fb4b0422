// Package scene provides example scene constructors used by tests, the
// demo binary, and as scaffolding a real scene-description loader would
// imitate. It is the one place in this module that builds a core.Scene
// end to end: root BVH, emissive-objects list, lights, and background.
package scene

import (
	"github.com/kesseloak/lumenforge/pkg/camera"
	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/geometry"
	"github.com/kesseloak/lumenforge/pkg/lights"
	"github.com/kesseloak/lumenforge/pkg/material"
)

// Builder accumulates shapes and lights before Build assembles the
// BVH-rooted core.Scene.
type Builder struct {
	Shapes         []core.Hittable
	Lights         []core.Light
	Background     core.Background
	SamplingConfig core.SamplingConfig

	// Logger receives a warning for every degenerate primitive the BVH
	// build excludes (spec.md §7). Defaults to a no-op logger.
	Logger core.Logger

	// LightWeights, if set, must have one entry per light added so far
	// (matching Lights order). Build then wires a core.WeightedLightSampler
	// biasing next-event estimation toward heavier-weighted lights, instead
	// of the default uniform selection over Emissive.
	LightWeights []float64
}

// UseWeightedLights sets per-light selection weights for next-event
// estimation, biasing sampling toward whichever lights matter most instead
// of treating every emitter as equally likely. weights must have one entry
// per light already added via AddQuadLight/AddSphereLight.
func (b *Builder) UseWeightedLights(weights []float64) {
	b.LightWeights = weights
}

// NewBuilder starts an empty scene with a black background and the given
// sampling defaults.
func NewBuilder(config core.SamplingConfig) *Builder {
	return &Builder{
		Background:     core.SolidBackground{Color: core.Color{}},
		SamplingConfig: config,
	}
}

// Add appends one or more non-light shapes to the scene.
func (b *Builder) Add(shapes ...core.Hittable) {
	b.Shapes = append(b.Shapes, shapes...)
}

// AddQuadLight adds a rectangular area light, wiring it into both the
// shape list (so it can be hit directly) and the light list (so it is
// sampled for next-event estimation).
func (b *Builder) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3, intensity float64) *lights.QuadLight {
	light := lights.NewQuadLight(corner, u, v, material.NewDiffuseLightColor(emission, intensity))
	b.Lights = append(b.Lights, light)
	b.Shapes = append(b.Shapes, light)
	return light
}

// AddSphereLight adds a spherical area light, wired the same way as
// AddQuadLight.
func (b *Builder) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3, intensity float64) *lights.SphereLight {
	light := lights.NewSphereLight(center, radius, material.NewDiffuseLightColor(emission, intensity))
	b.Lights = append(b.Lights, light)
	b.Shapes = append(b.Shapes, light)
	return light
}

// Build assembles the accumulated shapes into a BVH root, derives the
// emissive-objects list from the lights that were added, and returns the
// finished, read-only core.Scene: once construction completes, the scene
// graph is immutable.
func (b *Builder) Build() *core.Scene {
	emissive := make([]core.Hittable, len(b.Lights))
	for i, light := range b.Lights {
		emissive[i] = light
	}

	bvh := core.NewBVH(b.Shapes, b.Logger)

	scn := &core.Scene{
		Root:               bvh,
		Emissive:           emissive,
		Lights:             b.Lights,
		Background:         b.Background,
		SamplingConfig:     b.SamplingConfig,
		ExcludedPrimitives: int64(bvh.ExcludedCount),
	}

	if len(b.LightWeights) > 0 && len(b.Lights) > 0 {
		scn.LightSampler = core.NewWeightedLightSampler(b.Lights, b.LightWeights, bvh.FiniteWorldRadius)
	}

	return scn
}

// GroundQuad returns a large, finite quad standing in for an infinite
// ground plane (bounded primitives keep the BVH's world bounds finite),
// centered at center with the given side length.
func GroundQuad(center core.Vec3, size float64, mat core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, size)
	return geometry.NewQuad(corner, u, v, mat)
}

// DefaultCamera returns the perspective camera shared by NewDefaultScene,
// overridable by the caller before rendering.
func DefaultCamera(imageWidth int, aspectRatio float64) *camera.Camera {
	return camera.New(
		core.NewVec3(0, 0.75, 2), core.NewVec3(0, 0.5, -1), core.NewVec3(0, 1, 0),
		40, aspectRatio, imageWidth,
		0.05, 3.0,
		100, 50,
	)
}
