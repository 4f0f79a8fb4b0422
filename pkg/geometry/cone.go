package geometry

import (
	"fmt"
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Cone is a finite cone or frustum: BaseRadius at BaseCenter tapering to
// TopRadius (0 for a pointed cone, >0 for a frustum) at TopCenter.
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64
	Capped     bool
	Material   core.Material

	axis     core.Vec3
	height   float64
	tanAngle float64
	apex     core.Vec3
}

// NewCone creates a cone or frustum.
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, capped bool, mat core.Material) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must exceed top radius (got base=%f, top=%f); use Cylinder for equal radii", baseRadius, topRadius)
	}

	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive: base and top centers cannot coincide")
	}

	axis := axisVector.Normalize()
	tanAngle := (baseRadius - topRadius) / height

	var apex core.Vec3
	if topRadius == 0 {
		apex = topCenter
	} else {
		dFromTop := topRadius * height / (baseRadius - topRadius)
		apex = topCenter.Add(axis.Multiply(dFromTop))
	}

	return &Cone{
		BaseCenter: baseCenter, BaseRadius: baseRadius, TopCenter: topCenter, TopRadius: topRadius,
		Capped: capped, Material: mat, axis: axis, height: height, tanAngle: tanAngle, apex: apex,
	}, nil
}

// BoundingBox returns a box enclosing the base-to-top segment padded by the
// base radius (conservative; tight only when the axis is coordinate-aligned).
func (c *Cone) BoundingBox() core.AABB {
	minCorner := core.NewVec3(
		math.Min(c.BaseCenter.X, c.TopCenter.X), math.Min(c.BaseCenter.Y, c.TopCenter.Y), math.Min(c.BaseCenter.Z, c.TopCenter.Z))
	maxCorner := core.NewVec3(
		math.Max(c.BaseCenter.X, c.TopCenter.X), math.Max(c.BaseCenter.Y, c.TopCenter.Y), math.Max(c.BaseCenter.Z, c.TopCenter.Z))

	const parallelThreshold = 0.9999
	extentX, extentY, extentZ := c.BaseRadius, c.BaseRadius, c.BaseRadius
	switch {
	case math.Abs(c.axis.X) > parallelThreshold:
		extentX = 0
	case math.Abs(c.axis.Y) > parallelThreshold:
		extentY = 0
	case math.Abs(c.axis.Z) > parallelThreshold:
		extentZ = 0
	}

	return core.NewAABB(
		core.NewVec3(minCorner.X-extentX, minCorner.Y-extentY, minCorner.Z-extentZ),
		core.NewVec3(maxCorner.X+extentX, maxCorner.Y+extentY, maxCorner.Z+extentZ),
	)
}

// Hit tests the cone's curved body and, if capped, its end disc(s).
func (c *Cone) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	if bodyHit := c.hitBody(ray, tMin, closestT); bodyHit != nil {
		closest, closestT = bodyHit, bodyHit.T
	}

	if c.Capped {
		if baseHit := c.hitCap(ray, c.BaseCenter, c.axis.Negate(), c.BaseRadius, tMin, closestT); baseHit != nil {
			closest, closestT = baseHit, baseHit.T
		}
		if c.TopRadius > 0 {
			if topHit := c.hitCap(ray, c.TopCenter, c.axis, c.TopRadius, tMin, closestT); topHit != nil {
				closest, closestT = topHit, topHit.T
			}
		}
	}

	return closest, closest != nil
}

func (c *Cone) hitBody(ray core.Ray, tMin, tMax float64) *core.HitRecord {
	co := ray.Origin.Subtract(c.apex)

	ddotV := ray.Direction.Dot(c.axis)
	codotV := co.Dot(c.axis)
	k := c.tanAngle * c.tanAngle

	a := ray.Direction.LengthSquared() - (1+k)*ddotV*ddotV
	b := 2.0 * (ray.Direction.Dot(co) - (1+k)*ddotV*codotV)
	cc := co.LengthSquared() - (1+k)*codotV*codotV

	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return nil
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	t := (-b - sqrtD) / (2 * a)
	if !c.validIntersection(ray, t, tMin, tMax) {
		t = (-b + sqrtD) / (2 * a)
		if !c.validIntersection(ray, t, tMin, tMax) {
			return nil
		}
	}

	point := ray.At(t)
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	centerPoint := c.BaseCenter.Add(c.axis.Multiply(h))
	radial := point.Subtract(centerPoint)

	normalScale := (c.BaseRadius - c.TopRadius) / c.height
	outwardNormal := radial.Add(c.axis.Multiply(normalScale)).Normalize()

	hit := &core.HitRecord{T: t, Point: point, V: h / c.height, Material: c.Material, Object: "cone"}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

func (c *Cone) validIntersection(ray core.Ray, t, tMin, tMax float64) bool {
	const epsilon = 1e-8
	if t < tMin || t > tMax {
		return false
	}

	point := ray.At(t)
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	if h < -epsilon || h > c.height+epsilon {
		return false
	}

	apexToPoint := point.Subtract(c.apex)
	return apexToPoint.Dot(c.axis) <= epsilon
}

func (c *Cone) hitCap(ray core.Ray, center, normal core.Vec3, radius, tMin, tMax float64) *core.HitRecord {
	const epsilon = 1e-8
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < epsilon {
		return nil
	}

	t := center.Subtract(ray.Origin).Dot(normal) / denom
	if t < tMin || t > tMax {
		return nil
	}

	point := ray.At(t)
	if point.Subtract(center).Length() > radius {
		return nil
	}

	hit := &core.HitRecord{T: t, Point: point, Material: c.Material, Object: "cone_cap"}
	hit.SetFaceNormal(ray, normal)
	return hit
}

// PDFValue is zero: cones are not used directly as next-event-estimation
// targets.
func (c *Cone) PDFValue(origin, dir core.Vec3) float64 { return zeroPDF(origin, dir) }

// SampleDirection is unused; see PDFValue.
func (c *Cone) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return zeroSample(origin, sampler)
}
