// Package geometry implements the primitive shapes and transform wrappers
// that satisfy core.Hittable: spheres, quads, boxes, discs, cones,
// cylinders, a torus, and triangle meshes.
package geometry

import "github.com/kesseloak/lumenforge/pkg/core"

// Preprocessor is implemented by primitives that need a pass over the
// finished scene bounds before rendering (e.g. an infinite plane clamped to
// the finite world radius for BVH purposes).
type Preprocessor interface {
	Preprocess(worldCenter core.Vec3, worldRadius float64) error
}

// zeroPDF and zeroSample back the PDFValue/SampleDirection pair for
// primitives that are never used as next-event-estimation targets (box,
// cone, cylinder, torus, triangle mesh): they still satisfy
// core.Hittable, but a light built on top of one of these would need its own
// sampling strategy.
func zeroPDF(core.Vec3, core.Vec3) float64 { return 0 }

func zeroSample(core.Vec3, core.Sampler) core.Vec3 { return core.Vec3{} }
