package pdf

import "github.com/kesseloak/lumenforge/pkg/core"

// Mixture linearly blends two PDFs with proportion p weighting A:
// Value = p*A + (1-p)*B; Generate picks a branch by a uniform variate
// before delegating.
type Mixture struct {
	A, B core.PDF
	P    float64
}

// NewMixture builds a mixture PDF weighting a at proportion p and b at 1-p.
func NewMixture(a, b core.PDF, p float64) *Mixture {
	return &Mixture{A: a, B: b, P: p}
}

// Value returns the weighted sum of both branches' densities.
func (m *Mixture) Value(dir core.Vec3) float64 {
	return m.P*m.A.Value(dir) + (1-m.P)*m.B.Value(dir)
}

// Generate selects branch A with probability P, else branch B.
func (m *Mixture) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < m.P {
		return m.A.Generate(sampler)
	}
	return m.B.Generate(sampler)
}

// HittableList is a Hittable-rooted PDF over several emissive objects,
// uniformly selected per sample: a hittable PDF over the emissive-objects
// list. Value averages every object's density so it stays consistent
// regardless of which object Generate happened to pick.
type HittableList struct {
	Objects []core.Hittable
	Origin  core.Vec3
}

// NewHittableList builds a PDF over multiple emissive objects seen from
// origin. Objects may be empty; Value and Generate degrade to zero/a zero
// direction in that case (the caller is expected to skip an empty light
// list before reaching for this PDF).
func NewHittableList(objects []core.Hittable, origin core.Vec3) *HittableList {
	return &HittableList{Objects: objects, Origin: origin}
}

// Value returns the uniformly-averaged density across every object.
func (h *HittableList) Value(dir core.Vec3) float64 {
	if len(h.Objects) == 0 {
		return 0
	}
	sum := 0.0
	for _, obj := range h.Objects {
		sum += obj.PDFValue(h.Origin, dir)
	}
	return sum / float64(len(h.Objects))
}

// Generate picks one object uniformly at random and samples toward it.
func (h *HittableList) Generate(sampler core.Sampler) core.Vec3 {
	if len(h.Objects) == 0 {
		return core.Vec3{X: 0, Y: 1, Z: 0}
	}
	idx := int(sampler.Get1D() * float64(len(h.Objects)))
	if idx >= len(h.Objects) {
		idx = len(h.Objects) - 1
	}
	return h.Objects[idx].SampleDirection(h.Origin, sampler)
}
