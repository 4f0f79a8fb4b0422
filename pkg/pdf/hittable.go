package pdf

import "github.com/kesseloak/lumenforge/pkg/core"

// Hittable delegates sampling to a core.Hittable's own PDFValue/
// SampleDirection, rooted at a fixed origin. The integrator uses this to
// build a mixture term that samples directly toward an emitter for
// next-event estimation.
type Hittable struct {
	Object core.Hittable
	Origin core.Vec3
}

// NewHittable builds a PDF that samples toward object as seen from origin.
func NewHittable(object core.Hittable, origin core.Vec3) *Hittable {
	return &Hittable{Object: object, Origin: origin}
}

// Value returns the object's own PDFValue for dir from Origin.
func (h *Hittable) Value(dir core.Vec3) float64 {
	return h.Object.PDFValue(h.Origin, dir)
}

// Generate returns a direction from Origin toward a random point on the
// object's surface.
func (h *Hittable) Generate(sampler core.Sampler) core.Vec3 {
	return h.Object.SampleDirection(h.Origin, sampler)
}
