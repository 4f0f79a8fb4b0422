package geometry

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Cylinder is a finite cylinder, optionally capped at both ends.
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
	Capped     bool
	Material   core.Material

	axis   core.Vec3
	height float64
}

// NewCylinder creates a cylinder between baseCenter and topCenter.
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, capped bool, mat core.Material) *Cylinder {
	axisVector := topCenter.Subtract(baseCenter)
	return &Cylinder{
		BaseCenter: baseCenter, TopCenter: topCenter, Radius: radius, Capped: capped, Material: mat,
		axis: axisVector.Normalize(), height: axisVector.Length(),
	}
}

// BoundingBox returns a box enclosing the base-to-top segment padded by the
// radius on non-axis-aligned directions.
func (c *Cylinder) BoundingBox() core.AABB {
	minCorner := core.NewVec3(
		math.Min(c.BaseCenter.X, c.TopCenter.X), math.Min(c.BaseCenter.Y, c.TopCenter.Y), math.Min(c.BaseCenter.Z, c.TopCenter.Z))
	maxCorner := core.NewVec3(
		math.Max(c.BaseCenter.X, c.TopCenter.X), math.Max(c.BaseCenter.Y, c.TopCenter.Y), math.Max(c.BaseCenter.Z, c.TopCenter.Z))

	const parallelThreshold = 0.9999
	extentX, extentY, extentZ := c.Radius, c.Radius, c.Radius
	if math.Abs(c.axis.X) > parallelThreshold {
		extentX = 0
	}
	if math.Abs(c.axis.Y) > parallelThreshold {
		extentY = 0
	}
	if math.Abs(c.axis.Z) > parallelThreshold {
		extentZ = 0
	}

	return core.NewAABB(
		core.NewVec3(minCorner.X-extentX, minCorner.Y-extentY, minCorner.Z-extentZ),
		core.NewVec3(maxCorner.X+extentX, maxCorner.Y+extentY, maxCorner.Z+extentZ),
	)
}

// Hit tests the cylinder's curved body and, if capped, both end discs.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	if bodyHit := c.hitBody(ray, tMin, closestT); bodyHit != nil {
		closest, closestT = bodyHit, bodyHit.T
	}

	if c.Capped {
		if baseHit := c.hitCap(ray, c.BaseCenter, c.axis.Negate(), tMin, closestT); baseHit != nil {
			closest, closestT = baseHit, baseHit.T
		}
		if topHit := c.hitCap(ray, c.TopCenter, c.axis, tMin, closestT); topHit != nil {
			closest, closestT = topHit, topHit.T
		}
	}

	return closest, closest != nil
}

func (c *Cylinder) hitBody(ray core.Ray, tMin, tMax float64) *core.HitRecord {
	delta := ray.Origin.Subtract(c.BaseCenter)

	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	a := ray.Direction.LengthSquared() - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return nil
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	tryT := func(t float64) (core.Vec3, float64, bool) {
		if t < tMin || t > tMax {
			return core.Vec3{}, 0, false
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			return core.Vec3{}, 0, false
		}
		return point, h, true
	}

	t := (-b - sqrtD) / (2 * a)
	point, h, ok := tryT(t)
	if !ok {
		t = (-b + sqrtD) / (2 * a)
		point, h, ok = tryT(t)
		if !ok {
			return nil
		}
	}

	axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
	outwardNormal := point.Subtract(axisPoint).Normalize()
	u, v := c.bodyUV(point, axisPoint, h)
	_ = v

	hit := &core.HitRecord{T: t, Point: point, U: u, V: h / c.height, Material: c.Material, Object: "cylinder"}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

func (c *Cylinder) bodyUV(point, axisPoint core.Vec3, h float64) (u, v float64) {
	radial := point.Subtract(axisPoint)

	var refVector core.Vec3
	if math.Abs(c.axis.Y) < 0.9 {
		refVector = core.NewVec3(0, 1, 0)
	} else {
		refVector = core.NewVec3(1, 0, 0)
	}
	tangent := c.axis.Cross(refVector).Normalize()
	bitangent := c.axis.Cross(tangent)

	angle := math.Atan2(radial.Dot(bitangent), radial.Dot(tangent))
	u = (angle + math.Pi) / (2.0 * math.Pi)
	return u, h / c.height
}

func (c *Cylinder) hitCap(ray core.Ray, center, normal core.Vec3, tMin, tMax float64) *core.HitRecord {
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
	if point.Subtract(center).Length() > c.Radius {
		return nil
	}

	localPoint := point.Subtract(center)
	var refVector core.Vec3
	if math.Abs(normal.Y) < 0.9 {
		refVector = core.NewVec3(0, 1, 0)
	} else {
		refVector = core.NewVec3(1, 0, 0)
	}
	tangent := normal.Cross(refVector).Normalize()
	bitangent := normal.Cross(tangent)

	u := (localPoint.Dot(tangent)/c.Radius + 1.0) / 2.0
	v := (localPoint.Dot(bitangent)/c.Radius + 1.0) / 2.0

	hit := &core.HitRecord{T: t, Point: point, U: u, V: v, Material: c.Material, Object: "cylinder_cap"}
	hit.SetFaceNormal(ray, normal)
	return hit
}

// PDFValue is zero: cylinders are not used directly as next-event-estimation
// targets.
func (c *Cylinder) PDFValue(origin, dir core.Vec3) float64 { return zeroPDF(origin, dir) }

// SampleDirection is unused; see PDFValue.
func (c *Cylinder) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return zeroSample(origin, sampler)
}
