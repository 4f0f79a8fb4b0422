package geometry

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Translate offsets a child hittable by a fixed vector.
type Translate struct {
	Child  core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps child so it appears offset by offset in world space.
func NewTranslate(child core.Hittable, offset core.Vec3) *Translate {
	childBox := child.BoundingBox()
	bbox := core.NewAABB(childBox.Min.Add(offset), childBox.Max.Add(offset))
	return &Translate{Child: child, Offset: offset, bbox: bbox}
}

// Hit rewrites the ray into the child's local space, delegates, then
// rewrites the hit point back into world space.
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	localRay := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, isHit := tr.Child.Hit(localRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the cached, offset bounding box.
func (tr *Translate) BoundingBox() core.AABB { return tr.bbox }

// PDFValue delegates to the child after shifting origin into local space;
// directions are unaffected by a pure translation.
func (tr *Translate) PDFValue(origin, dir core.Vec3) float64 {
	return tr.Child.PDFValue(origin.Subtract(tr.Offset), dir)
}

// SampleDirection delegates to the child after shifting origin into local
// space; the returned direction needs no correction.
func (tr *Translate) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return tr.Child.SampleDirection(origin.Subtract(tr.Offset), sampler)
}

// rotationAxis identifies which single axis a Rotate wrapper turns around.
type rotationAxis int

const (
	axisX rotationAxis = iota
	axisY
	axisZ
)

// Rotate turns a child hittable about a single world axis, passing through
// the origin. Build one with RotateX, RotateY, or RotateZ.
type Rotate struct {
	Child core.Hittable
	axis  rotationAxis
	sin   float64
	cos   float64
	bbox  core.AABB
}

func newRotate(child core.Hittable, axis rotationAxis, angleRadians float64) *Rotate {
	r := &Rotate{Child: child, axis: axis, sin: math.Sin(angleRadians), cos: math.Cos(angleRadians)}
	r.bbox = r.computeBoundingBox(child.BoundingBox())
	return r
}

// RotateX rotates the child about the world X axis by angleRadians.
func RotateX(child core.Hittable, angleRadians float64) *Rotate {
	return newRotate(child, axisX, angleRadians)
}

// RotateY rotates the child about the world Y axis by angleRadians.
func RotateY(child core.Hittable, angleRadians float64) *Rotate {
	return newRotate(child, axisY, angleRadians)
}

// RotateZ rotates the child about the world Z axis by angleRadians.
func RotateZ(child core.Hittable, angleRadians float64) *Rotate {
	return newRotate(child, axisZ, angleRadians)
}

func (r *Rotate) forward(v core.Vec3) core.Vec3 {
	switch r.axis {
	case axisX:
		return core.NewVec3(v.X, v.Y*r.cos-v.Z*r.sin, v.Y*r.sin+v.Z*r.cos)
	case axisY:
		return core.NewVec3(v.X*r.cos+v.Z*r.sin, v.Y, -v.X*r.sin+v.Z*r.cos)
	default:
		return core.NewVec3(v.X*r.cos-v.Y*r.sin, v.X*r.sin+v.Y*r.cos, v.Z)
	}
}

func (r *Rotate) inverse(v core.Vec3) core.Vec3 {
	switch r.axis {
	case axisX:
		return core.NewVec3(v.X, v.Y*r.cos+v.Z*r.sin, -v.Y*r.sin+v.Z*r.cos)
	case axisY:
		return core.NewVec3(v.X*r.cos-v.Z*r.sin, v.Y, v.X*r.sin+v.Z*r.cos)
	default:
		return core.NewVec3(v.X*r.cos+v.Y*r.sin, -v.X*r.sin+v.Y*r.cos, v.Z)
	}
}

func (r *Rotate) computeBoundingBox(childBox core.AABB) core.AABB {
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		x := childBox.Min.X
		if i&1 != 0 {
			x = childBox.Max.X
		}
		y := childBox.Min.Y
		if i&2 != 0 {
			y = childBox.Max.Y
		}
		z := childBox.Min.Z
		if i&4 != 0 {
			z = childBox.Max.Z
		}
		corners = append(corners, r.forward(core.NewVec3(x, y, z)))
	}
	return core.NewAABBFromPoints(corners...)
}

// Hit rotates the ray into the child's local space, delegates, then rotates
// the hit point and normal back into world space.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	localOrigin := r.inverse(ray.Origin)
	localDirection := r.inverse(ray.Direction)
	localRay := core.NewRayAtTime(localOrigin, localDirection, ray.Time)

	hit, isHit := r.Child.Hit(localRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Point = r.forward(hit.Point)
	hit.Normal = r.forward(hit.Normal)
	return hit, true
}

// BoundingBox returns the cached bounding box of the eight rotated corners.
func (r *Rotate) BoundingBox() core.AABB { return r.bbox }

// PDFValue rotates origin and direction into local space before delegating.
func (r *Rotate) PDFValue(origin, dir core.Vec3) float64 {
	return r.Child.PDFValue(r.inverse(origin), r.inverse(dir))
}

// SampleDirection rotates origin into local space, delegates, then rotates
// the sampled direction back into world space.
func (r *Rotate) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	localDir := r.Child.SampleDirection(r.inverse(origin), sampler)
	return r.forward(localDir)
}

// Scale stretches a child hittable by independent per-axis factors about the
// world origin.
type Scale struct {
	Child  core.Hittable
	Factor core.Vec3
	bbox   core.AABB
}

// NewScale wraps child, scaling it by factor (all components must be nonzero).
func NewScale(child core.Hittable, factor core.Vec3) *Scale {
	s := &Scale{Child: child, Factor: factor}
	s.bbox = s.computeBoundingBox(child.BoundingBox())
	return s
}

func (s *Scale) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(v.X/s.Factor.X, v.Y/s.Factor.Y, v.Z/s.Factor.Z)
}

func (s *Scale) toWorldPoint(v core.Vec3) core.Vec3 {
	return core.NewVec3(v.X*s.Factor.X, v.Y*s.Factor.Y, v.Z*s.Factor.Z)
}

func (s *Scale) computeBoundingBox(childBox core.AABB) core.AABB {
	return core.NewAABBFromPoints(s.toWorldPoint(childBox.Min), s.toWorldPoint(childBox.Max))
}

// Hit scales the ray into the child's local space (the ray parameter t is
// preserved since direction is scaled, not renormalized), then scales the
// hit point and corrects the normal by the inverse-transpose.
func (s *Scale) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	localRay := core.NewRayAtTime(s.toLocal(ray.Origin), s.toLocal(ray.Direction), ray.Time)

	hit, isHit := s.Child.Hit(localRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Point = s.toWorldPoint(hit.Point)
	hit.Normal = core.NewVec3(
		hit.Normal.X/s.Factor.X, hit.Normal.Y/s.Factor.Y, hit.Normal.Z/s.Factor.Z,
	).Normalize()
	return hit, true
}

// BoundingBox returns the cached, scaled bounding box.
func (s *Scale) BoundingBox() core.AABB { return s.bbox }

// PDFValue is zero: scaled emitters would need an area-correction factor
// this wrapper does not track, so scaled shapes are not used as lights.
func (s *Scale) PDFValue(origin, dir core.Vec3) float64 { return zeroPDF(origin, dir) }

// SampleDirection is unused; see PDFValue.
func (s *Scale) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return zeroSample(origin, sampler)
}
