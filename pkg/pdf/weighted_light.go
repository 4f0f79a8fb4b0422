package pdf

import "github.com/kesseloak/lumenforge/pkg/core"

// WeightedLightList is a Hittable-rooted PDF over a core.WeightedLightSampler's
// lights, selected by the sampler's fixed per-light weights rather than
// HittableList's uniform selection. The integrator substitutes this for
// HittableList when a scene supplies a LightSampler, e.g. to bias
// next-event estimation toward a scene's dominant emitter.
type WeightedLightList struct {
	Sampler *core.WeightedLightSampler
	Origin  core.Vec3
}

// NewWeightedLightList builds a PDF over sampler's lights as seen from
// origin.
func NewWeightedLightList(sampler *core.WeightedLightSampler, origin core.Vec3) *WeightedLightList {
	return &WeightedLightList{Sampler: sampler, Origin: origin}
}

// Value sums each light's density weighted by its fixed selection
// probability, so it stays consistent regardless of which light Generate
// happened to pick.
func (w *WeightedLightList) Value(dir core.Vec3) float64 {
	lights := w.Sampler.Lights()
	if len(lights) == 0 {
		return 0
	}
	sum := 0.0
	for i, light := range lights {
		prob := w.Sampler.GetLightProbability(i, w.Origin, core.Vec3{})
		if prob <= 0 {
			continue
		}
		sum += prob * light.PDFValue(w.Origin, dir)
	}
	return sum
}

// Generate selects a light by the sampler's fixed weights and samples
// toward a point on it.
func (w *WeightedLightList) Generate(sampler core.Sampler) core.Vec3 {
	lights := w.Sampler.Lights()
	if len(lights) == 0 {
		return core.Vec3{X: 0, Y: 1, Z: 0}
	}
	light, _, _ := w.Sampler.SampleLight(w.Origin, core.Vec3{}, sampler.Get1D())
	if light == nil {
		light = lights[len(lights)-1]
	}
	return light.SampleDirection(w.Origin, sampler)
}
