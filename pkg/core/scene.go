package core

// Scene is the fully-built world the renderer consumes: a root hittable
// (normally a BVH), a separate non-owning list of emissive objects used for
// next-event estimation, the scene's lights, and a background. Once built, a
// Scene is never mutated again, so concurrent workers can read it without
// locking.
type Scene struct {
	Root       Hittable
	Emissive   []Hittable
	Lights     []Light
	Background Background

	// SamplingConfig is the scene's recommended sampling configuration; a
	// caller may override any field before rendering.
	SamplingConfig SamplingConfig

	// ExcludedPrimitives is the number of degenerate primitives dropped
	// while building Root (spec.md §7's build-time exclusion policy);
	// Render folds this into the Stats it returns.
	ExcludedPrimitives int64

	// LightSampler, when set, biases next-event-estimation light selection
	// by its fixed per-light weights instead of the uniform selection a
	// bare Emissive list gets. Nil means every emissive object is equally
	// likely to be chosen.
	LightSampler *WeightedLightSampler
}

// SamplingConfig controls how many paths are traced and how deep they go.
type SamplingConfig struct {
	SamplesPerPixel           int
	MaxDepth                  int
	RussianRouletteMinBounces int
	RussianRouletteMinSamples int
}

// SamplingConfigProvider lets a scene constructor recommend sampling
// defaults tuned to its own geometry (e.g. more samples for a noisy Cornell
// box) without the core depending on scene construction.
type SamplingConfigProvider interface {
	RecommendedSamplingConfig() SamplingConfig
}

// RecommendedSamplingConfig satisfies SamplingConfigProvider using the
// scene's own stored config, so any Scene can be passed where a provider is
// expected.
func (s *Scene) RecommendedSamplingConfig() SamplingConfig {
	return s.SamplingConfig
}
