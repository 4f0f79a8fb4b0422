package core

import "math"

// RandomInUnitDisk returns a uniform random point in the unit disk, used for
// defocus-disk depth of field sampling.
func RandomInUnitDisk(s Sampler) Vec2 {
	for {
		p := Vec2{X: 2*s.Get1D() - 1, Y: 2*s.Get1D() - 1}
		if p.X*p.X+p.Y*p.Y < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniform random unit vector, used for the
// "true Lambertian" diffuse bounce and fuzzy-metal perturbation.
func RandomUnitVector(s Sampler) Vec3 {
	for {
		v := Vec3{
			X: 2*s.Get1D() - 1,
			Y: 2*s.Get1D() - 1,
			Z: 2*s.Get1D() - 1,
		}
		lenSq := v.LengthSquared()
		if lenSq > 1e-160 && lenSq <= 1 {
			return v.Multiply(1 / math.Sqrt(lenSq))
		}
	}
}

// RandomInHemisphere returns a uniform random unit vector in the hemisphere
// around the given normal.
func RandomInHemisphere(s Sampler, normal Vec3) Vec3 {
	v := RandomUnitVector(s)
	if v.Dot(normal) < 0 {
		return v.Negate()
	}
	return v
}

// RandomCosineDirection returns a cosine-weighted random direction in the
// local frame where Z is "up", via Malley's method.
func RandomCosineDirection(s Sampler) Vec3 {
	r1, r2 := s.Get1D(), s.Get1D()

	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)

	x := math.Cos(phi) * sqrtR2
	y := math.Sin(phi) * sqrtR2
	z := math.Sqrt(1 - r2)

	return Vec3{X: x, Y: y, Z: z}
}

// SampleCosineHemisphere returns a cosine-weighted random direction in world
// space around the given unit normal, and its PDF (cosTheta/pi).
func SampleCosineHemisphere(s Sampler, normal Vec3) (Vec3, float64) {
	local := RandomCosineDirection(s)
	dir := NewONB(normal).Transform(local)
	pdf := local.Z / math.Pi
	return dir, pdf
}

// CosineHemispherePDF returns the PDF of sampling direction dir with
// SampleCosineHemisphere around normal.
func CosineHemispherePDF(normal, dir Vec3) float64 {
	cosTheta := normal.Dot(dir.Normalize())
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// PowerHeuristic implements the power-2 multiple importance sampling
// heuristic, balancing a light-sampling strategy against a BSDF-sampling one.
func PowerHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	if fPdf == 0 {
		return 0
	}

	f := float64(nf) * fPdf
	g := float64(ng) * gPdf

	return (f * f) / (f*f + g*g)
}

// BalanceHeuristic implements the balance multiple importance sampling
// heuristic.
func BalanceHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	if fPdf == 0 {
		return 0
	}

	f := float64(nf) * fPdf
	g := float64(ng) * gPdf

	return f / (f + g)
}

// CombinePDFs returns the MIS weight for the light sample, combining a light
// PDF and a material PDF with either the power or balance heuristic.
func CombinePDFs(lightPdf, materialPdf float64, usePowerHeuristic bool) float64 {
	if lightPdf == 0 {
		return 0
	}

	if usePowerHeuristic {
		return PowerHeuristic(1, lightPdf, 1, materialPdf)
	}
	return BalanceHeuristic(1, lightPdf, 1, materialPdf)
}

// SphereUniformPDF returns the PDF of uniformly sampling the full surface of
// a sphere of the given radius, expressed as a solid angle density.
func SphereUniformPDF(radius float64) float64 {
	return 1.0 / (4.0 * math.Pi * radius * radius)
}

// SphereConePDF returns the solid-angle PDF of sampling a sphere of the given
// radius, seen from the given distance, by sampling the cone it subtends.
func SphereConePDF(distance, radius float64) float64 {
	if distance <= radius {
		return SphereUniformPDF(radius)
	}

	sinThetaMax := radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}

// CalculateLightPDF returns the combined solid-angle PDF, from point toward
// direction, of the weighted light-sampling strategy over every light in the
// scene (uniform selection among lights).
func CalculateLightPDF(lights []Light, point Vec3, direction Vec3) float64 {
	if len(lights) == 0 {
		return 0.0
	}

	totalPDF := 0.0
	for _, light := range lights {
		totalPDF += light.PDF(point, direction) / float64(len(lights))
	}

	return totalPDF
}

// SampleLight uniformly selects one light and samples it.
func SampleLight(lights []Light, point Vec3, sampler Sampler) (LightSample, bool) {
	if len(lights) == 0 {
		return LightSample{}, false
	}

	idx := int(sampler.Get1D() * float64(len(lights)))
	if idx >= len(lights) {
		idx = len(lights) - 1
	}

	sample := lights[idx].Sample(point, sampler)
	sample.PDF *= 1.0 / float64(len(lights))

	return sample, true
}
