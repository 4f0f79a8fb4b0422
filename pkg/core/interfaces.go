package core

// Logger is the minimal structured-logging capability the core needs from
// its caller. RenderContext wraps a real logger (zap, in cmd/demo) behind
// this so the core itself stays decoupled from a concrete logging library.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// HitRecord describes where a ray intersected some hittable, and everything
// a material needs to shade that point.
type HitRecord struct {
	T         float64 // ray parameter at the hit
	Point     Vec3
	Normal    Vec3 // unit length, always against the incoming ray direction
	FrontFace bool // whether Normal matches the geometric outward normal
	U, V      float64
	Material  Material
	Object    string // name of the hittable that produced this record
	Bbox      AABB
}

// SetFaceNormal orients Normal against the ray direction and records whether
// that matched the geometric outward normal, per the hit record invariant.
func (hr *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	hr.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if hr.FrontFace {
		hr.Normal = outwardNormal
	} else {
		hr.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is what a material's Scatter call produces: either an
// importance-sampling PDF to let the integrator build a mixture, or a
// deterministic (specular) continuation ray when SkipPDF is set.
type ScatterRecord struct {
	Attenuation   Color
	PDF           PDF
	SkipPDF       bool
	SkipPDFRay    Ray
	Alpha         float64 // transparency mask; 1 = fully opaque
	DiffuseColor  Color
	SpecularColor Color
}

// Hittable is the common intersection capability shared by every scene
// object: primitives, transform wrappers, the BVH, and lights (which are
// hittable so they can be sampled via the Hittable PDF for next-event
// estimation).
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax], if any.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	// BoundingBox returns a box stable for the object's lifetime.
	BoundingBox() AABB
	// PDFValue returns the probability density of Sample() producing dir
	// from origin, with respect to solid angle. Zero if dir can't hit this
	// object.
	PDFValue(origin, dir Vec3) float64
	// SampleDirection returns a direction from origin toward a random point
	// on this object's surface, for use as a next-event-estimation target.
	// Named distinctly from Light.Sample: a Light's Sample returns the
	// richer LightSample (distance, pdf, emission) that next-event
	// estimation actually consumes.
	SampleDirection(origin Vec3, sampler Sampler) Vec3
}

// Shape is an alias kept for source compatibility with code that still
// spells the hittable capability "Shape"; both names mean the same
// interface.
type Shape = Hittable

// Validatable is an optional capability a Hittable can implement to
// self-report degenerate construction (a zero-area quad, a NaN vertex)
// that wouldn't otherwise show up as a non-finite bounding box. BVH
// construction checks for it and excludes anything that reports true,
// per spec.md §7's "degenerate geometry: logged, primitive excluded,
// build continues" policy.
type Validatable interface {
	Degenerate() bool
}

// Material implements a BSDF: a way of turning an incoming ray and a hit
// into a scattered ray plus its importance-sampling weight, and (for
// emitters) a radiance contribution of its own.
type Material interface {
	// Scatter produces an outgoing direction/PDF (or a deterministic ray),
	// or false if the material is a pure emitter with no further bounce.
	Scatter(rayIn Ray, lights []Light, hit *HitRecord, sampler Sampler) (ScatterRecord, bool)
	// ScatteringPDF is the density of scattered under this material's own
	// sampling distribution, used to weight the mixture PDF via MIS.
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
	// Emitted returns the radiance this material emits at (u,v,p) along the
	// incoming ray, and an alpha: alpha=0 marks an emitter invisible to
	// primary rays (camera/specular continuation), still visible via NEE.
	Emitted(rayIn Ray, hit *HitRecord, u, v float64, p Vec3) (Color, float64)
}

// Texture evaluates a color at a surface point.
type Texture interface {
	Value(u, v float64, p Vec3) Color
}

// PDF is a sampleable probability distribution over directions, used both
// by materials (Lambertian's cosine lobe) and by the integrator's
// next-event-estimation mixture.
type PDF interface {
	// Value returns the density of sampling direction dir.
	Value(dir Vec3) float64
	// Generate draws a direction from the distribution.
	Generate(sampler Sampler) Vec3
}

// LightType distinguishes the emitter shapes a LightSampler must weigh.
type LightType int

const (
	LightTypeArea LightType = iota
	LightTypePoint
	LightTypeInfinite
)

func (t LightType) String() string {
	switch t {
	case LightTypeArea:
		return "area"
	case LightTypePoint:
		return "point"
	case LightTypeInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// LightSample is a single next-event-estimation sample toward a light:
// a direction, the distance to the sampled point, and the solid-angle PDF
// of having sampled it.
type LightSample struct {
	Direction Vec3
	Distance  float64
	PDF       float64
	Emitted   Color
}

// Light is an emitter that can be selected and importance-sampled for
// next-event estimation. Every Light is also a Hittable so it can sit in a
// scene's emissive-objects list and be sampled via the Hittable PDF.
type Light interface {
	Hittable

	Type() LightType
	// Sample draws a next-event-estimation sample seen from point.
	Sample(point Vec3, sampler Sampler) LightSample
	// PDF returns the solid-angle density, from point toward direction, of
	// this light having produced that sample.
	PDF(point Vec3, direction Vec3) float64
	// Emit returns this light's emitted radiance at surface point p / (u,v).
	Emit(u, v float64, p Vec3) Color
}

// LightSampler selects which light to sample toward at a bounce.
type LightSampler interface {
	SampleLight(point, normal Vec3, u float64) (light Light, probability float64, index int)
	GetLightProbability(lightIndex int, point, normal Vec3) float64
	GetLightCount() int
}

// Background supplies radiance for rays that escape the scene entirely.
type Background interface {
	Emit(ray Ray) Color
}

// SolidBackground is a constant-color background.
type SolidBackground struct {
	Color Color
}

func (b SolidBackground) Emit(ray Ray) Color { return b.Color }

// SkyboxBackground samples an equirectangular environment texture by ray
// direction.
type SkyboxBackground struct {
	Texture Texture
}

func (b SkyboxBackground) Emit(ray Ray) Color {
	u, v := EquirectangularUV(ray.Direction.Normalize())
	return b.Texture.Value(u, v, ray.Direction)
}
