package geometry

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Torus is a ring torus with its axis fixed along world Y; compose with a
// Rotate wrapper (transform.go) for an arbitrary orientation.
type Torus struct {
	Center      core.Vec3
	MajorRadius float64 // distance from the center to the tube's centerline
	MinorRadius float64 // tube radius
	Material    core.Material
}

// NewTorus creates a torus. MajorRadius must exceed MinorRadius, otherwise
// the tube would self-intersect through the center.
func NewTorus(center core.Vec3, majorRadius, minorRadius float64, material core.Material) (*Torus, error) {
	if minorRadius <= 0 {
		return nil, fmt.Errorf("minor radius must be positive, got %f", minorRadius)
	}
	if majorRadius <= minorRadius {
		return nil, fmt.Errorf("major radius must exceed minor radius (got major=%f, minor=%f)", majorRadius, minorRadius)
	}
	return &Torus{Center: center, MajorRadius: majorRadius, MinorRadius: minorRadius, Material: material}, nil
}

// BoundingBox returns a box enclosing the ring, axis-aligned to world Y.
func (t *Torus) BoundingBox() core.AABB {
	outer := t.MajorRadius + t.MinorRadius
	return core.NewAABB(
		core.NewVec3(t.Center.X-outer, t.Center.Y-t.MinorRadius, t.Center.Z-outer),
		core.NewVec3(t.Center.X+outer, t.Center.Y+t.MinorRadius, t.Center.Z+outer),
	)
}

// Hit solves the torus's quartic implicit equation via the Durand-Kerner
// simultaneous iteration method and keeps the closest real root in range.
func (t *Torus) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	o := ray.Origin.Subtract(t.Center)
	d := ray.Direction

	R, r := t.MajorRadius, t.MinorRadius

	g := d.LengthSquared()
	h := 2.0 * o.Dot(d)
	k := o.LengthSquared()
	i := k + R*R - r*r

	gxz := d.X*d.X + d.Z*d.Z
	hxz := 2.0 * (o.X*d.X + o.Z*d.Z)
	kxz := o.X*o.X + o.Z*o.Z

	a := g * g
	if a < 1e-12 {
		return nil, false
	}
	b := 2 * g * h
	c := h*h + 2*g*i - 4*R*R*gxz
	dd := 2*h*i - 4*R*R*hxz
	e := i*i - 4*R*R*kxz

	roots := solveQuarticDurandKerner(b/a, c/a, dd/a, e/a)

	const imagTolerance = 1e-6
	bestT := math.Inf(1)
	found := false
	for _, root := range roots {
		if math.Abs(imag(root)) > imagTolerance {
			continue
		}
		candidate := real(root)
		if candidate < tMin || candidate > tMax {
			continue
		}
		if candidate < bestT {
			bestT, found = candidate, true
		}
	}
	if !found {
		return nil, false
	}

	localPoint := o.Add(d.Multiply(bestT))
	point := localPoint.Add(t.Center)

	u2 := localPoint.X*localPoint.X + localPoint.Y*localPoint.Y + localPoint.Z*localPoint.Z + R*R - r*r
	gradient := core.NewVec3(
		4*localPoint.X*(u2-2*R*R),
		4*localPoint.Y*u2,
		4*localPoint.Z*(u2-2*R*R),
	)
	outwardNormal := gradient.Normalize()

	ringAngle := math.Atan2(localPoint.Z, localPoint.X)
	tubeRadial := math.Sqrt(localPoint.X*localPoint.X+localPoint.Z*localPoint.Z) - R
	tubeAngle := math.Atan2(localPoint.Y, tubeRadial)

	uCoord := (ringAngle + math.Pi) / (2 * math.Pi)
	vCoord := (tubeAngle + math.Pi) / (2 * math.Pi)

	hit := &core.HitRecord{T: bestT, Point: point, U: uCoord, V: vCoord, Material: t.Material, Object: "torus"}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// PDFValue is zero: a torus is never used directly as a next-event-estimation
// target.
func (t *Torus) PDFValue(origin, dir core.Vec3) float64 { return zeroPDF(origin, dir) }

// SampleDirection is unused; see PDFValue.
func (t *Torus) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return zeroSample(origin, sampler)
}

// solveQuarticDurandKerner finds all four (possibly complex) roots of the
// monic quartic x^4 + b*x^3 + c*x^2 + d*x + e via simultaneous iteration.
func solveQuarticDurandKerner(b, c, d, e float64) [4]complex128 {
	evaluate := func(x complex128) complex128 {
		return x*x*x*x + complex(b, 0)*x*x*x + complex(c, 0)*x*x + complex(d, 0)*x + complex(e, 0)
	}

	base := complex(0.4, 0.9)
	var roots [4]complex128
	roots[0] = 1
	for i := 1; i < 4; i++ {
		roots[i] = roots[i-1] * base
	}

	const iterations = 60
	for iter := 0; iter < iterations; iter++ {
		var next [4]complex128
		for i := range roots {
			denom := complex128(1)
			for j := range roots {
				if j != i {
					denom *= roots[i] - roots[j]
				}
			}
			if cmplx.Abs(denom) < 1e-18 {
				next[i] = roots[i]
				continue
			}
			next[i] = roots[i] - evaluate(roots[i])/denom
		}
		roots = next
	}

	return roots
}
