package geometry

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Sphere is a stationary or moving sphere (Center1 == Center2 for a
// stationary one); CenterAt(time) linearly interpolates between the two by
// ray time, giving motion blur when the camera shutter samples multiple
// times.
type Sphere struct {
	Center1, Center2 core.Vec3
	Radius           float64
	Material         core.Material
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center1: center, Center2: center, Radius: radius, Material: material}
}

// NewMovingSphere creates a sphere whose center moves linearly from center1
// at ray time 0 to center2 at ray time 1.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center1: center1, Center2: center2, Radius: radius, Material: material}
}

// CenterAt returns the sphere's center at the given ray time.
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	if s.Center1 == s.Center2 {
		return s.Center1
	}
	return s.Center1.Add(s.Center2.Subtract(s.Center1).Multiply(time))
}

// Hit tests if a ray intersects with the sphere via the analytic quadratic
// solve, picking the smaller root in range, else the larger.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := core.EquirectangularUV(outwardNormal)

	hit := &core.HitRecord{T: root, Point: point, U: u, V: v, Material: s.Material, Object: "sphere"}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns a box enclosing the sphere across its full motion
// range (stationary spheres collapse to a single-center box).
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box1 := core.NewAABB(s.Center1.Subtract(r), s.Center1.Add(r))
	if s.Center1 == s.Center2 {
		return box1
	}
	box2 := core.NewAABB(s.Center2.Subtract(r), s.Center2.Add(r))
	return box1.Union(box2)
}

// PDFValue returns the solid-angle density of sampling this sphere as a
// next-event-estimation target from origin toward dir, using cone sampling.
func (s *Sphere) PDFValue(origin, dir core.Vec3) float64 {
	if _, isHit := s.Hit(core.NewRay(origin, dir), core.ShadowAcneEpsilon, math.Inf(1)); !isHit {
		return 0
	}
	distanceSquared := s.CenterAt(0).Subtract(origin).LengthSquared()
	return core.SphereConePDF(math.Sqrt(distanceSquared), s.Radius)
}

// SampleDirection returns a direction from origin toward a uniformly random
// point within the cone subtended by the sphere, for next-event estimation.
func (s *Sphere) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	center := s.CenterAt(0)
	direction := center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	basis := core.NewONB(direction.Normalize())
	return basis.Transform(randomToSphere(s.Radius, distanceSquared, sampler))
}

// randomToSphere samples a direction, in the local frame whose Z axis points
// at the sphere's center, uniformly within the cone the sphere subtends.
func randomToSphere(radius, distanceSquared float64, sampler core.Sampler) core.Vec3 {
	r1, r2 := sampler.Get1D(), sampler.Get1D()
	cosThetaMax := math.Sqrt(1 - radius*radius/distanceSquared)
	z := 1 + r2*(cosThetaMax-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return core.NewVec3(x, y, z)
}
