// Package integrator implements the recursive Monte-Carlo ray_color
// estimator: next-event estimation mixed with the material's own BSDF
// sampling via a mixture PDF, with an optional nested skybox-importance
// term.
package integrator

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/pdf"
)

// PathTracer is the scene-agnostic ray_color estimator. It is safe to share
// across worker goroutines: all mutable state lives in the RenderContext's
// atomic Stats counters and the caller-supplied per-call Sampler.
type PathTracer struct {
	Ctx *core.RenderContext

	// LightMixtureWeight is the proportion given to the next-event
	// (hittable-over-emissive-objects) term in the inner mixture PDF;
	// defaults to 0.5.
	LightMixtureWeight float64

	// ImportanceSampleSkybox nests an outer mixture weighting a skybox PDF
	// at SkyboxMixtureWeight when the scene's background is a skybox. Off
	// by default: most scenes have no skybox.
	ImportanceSampleSkybox bool
	SkyboxMixtureWeight    float64
}

// New builds a PathTracer with the default mixture proportions (0.5 inner
// light/material, 0.8 outer skybox when enabled).
func New(ctx *core.RenderContext) *PathTracer {
	if ctx == nil {
		ctx = core.NewRenderContext(nil)
	}
	return &PathTracer{Ctx: ctx, LightMixtureWeight: 0.5, SkyboxMixtureWeight: 0.8}
}

// RayColor estimates the radiance arriving along ray, recursing up to depth
// bounces deep.
func (pt *PathTracer) RayColor(ray core.Ray, scene *core.Scene, depth int, sampler core.Sampler) core.Color {
	return pt.rayColor(ray, scene, depth, sampler, false)
}

func (pt *PathTracer) rayColor(ray core.Ray, scene *core.Scene, depth int, sampler core.Sampler, passedThrough bool) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, ok := scene.Root.Hit(ray, core.ShadowAcneEpsilon, math.Inf(1))
	if !ok {
		if scene.Background != nil {
			return scene.Background.Emit(ray)
		}
		return core.Color{}
	}

	emitted, alpha := hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.Point)
	if alpha == 0 && !passedThrough {
		// Invisible-to-primary-rays emitter: advance past this hit and
		// keep going, with a guard against recursing through more than
		// one such surface per bounce.
		passThroughRay := core.NewRayAtTime(hit.Point, ray.Direction, ray.Time)
		pt.Ctx.Stats.AddPassThroughBounce()
		return pt.rayColor(passThroughRay, scene, depth, sampler, true)
	}

	scatter, scattered := hit.Material.Scatter(ray, scene.Lights, hit, sampler)
	if !scattered {
		return emitted
	}

	if scatter.SkipPDF {
		indirect := pt.rayColor(scatter.SkipPDFRay, scene, depth-1, sampler, false)
		return emitted.Add(scatter.Attenuation.MultiplyVec(indirect))
	}

	mixture := pt.buildMixturePDF(scene, hit, scatter)
	scatteredDir := mixture.Generate(sampler)
	scatteredRay := core.NewRayAtTime(hit.Point, scatteredDir, ray.Time)

	pdfVal := mixture.Value(scatteredDir)
	scatteringPdf := hit.Material.ScatteringPDF(ray, hit, scatteredRay)

	if pdfVal <= 1e-8 || !isFinite(scatteringPdf) {
		pt.Ctx.Stats.AddSuppressedSample()
		return emitted
	}

	indirect := pt.rayColor(scatteredRay, scene, depth-1, sampler, false)
	contribution := scatter.Attenuation.Multiply(scatteringPdf / pdfVal).MultiplyVec(indirect)
	result := emitted.Add(contribution)

	if !result.IsFinite() {
		pt.Ctx.Stats.AddSuppressedSample()
		return emitted
	}

	// Alpha-texture transparency: a material whose Scatter set an Alpha in
	// (0,1) is partially see-through. Alpha's zero value means "no alpha
	// texture configured", so only this open interval triggers a blend.
	if scatter.Alpha > 0 && scatter.Alpha < 1 {
		continuationRay := core.NewRayAtTime(hit.Point, ray.Direction, ray.Time)
		continuation := pt.rayColor(continuationRay, scene, depth-1, sampler, true)
		return result.Multiply(scatter.Alpha).Add(continuation.Multiply(1 - scatter.Alpha))
	}

	return result
}

// buildMixturePDF assembles the next-event-estimation mixture: a hittable
// PDF over the emissive-objects list blended with the material's own
// sampling PDF, optionally nested under an outer skybox mixture.
func (pt *PathTracer) buildMixturePDF(scene *core.Scene, hit *core.HitRecord, scatter core.ScatterRecord) core.PDF {
	weight := pt.LightMixtureWeight
	if weight <= 0 {
		weight = 0.5
	}

	var inner core.PDF = scatter.PDF
	var lightPDF core.PDF
	switch {
	case scene.LightSampler != nil && scene.LightSampler.GetLightCount() > 0:
		lightPDF = pdf.NewWeightedLightList(scene.LightSampler, hit.Point)
	case len(scene.Emissive) > 0:
		lightPDF = pdf.NewHittableList(scene.Emissive, hit.Point)
	}
	if lightPDF != nil {
		inner = pdf.NewMixture(lightPDF, scatter.PDF, weight)
	}

	if pt.ImportanceSampleSkybox {
		if _, isSkybox := scene.Background.(core.SkyboxBackground); isSkybox {
			skyWeight := pt.SkyboxMixtureWeight
			if skyWeight <= 0 {
				skyWeight = 0.8
			}
			// The pack has no luminance-weighted environment-map sampler;
			// a uniform sphere PDF still importance-samples "somewhere in
			// the environment" and composes correctly in the mixture.
			return pdf.NewMixture(pdf.NewSphere(), inner, skyWeight)
		}
	}

	return inner
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
