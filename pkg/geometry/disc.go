package geometry

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Disc is a circular disc, used for spotlight-style emitters and lens caps.
type Disc struct {
	Center   core.Vec3
	Normal   core.Vec3
	Radius   float64
	Material core.Material
	Right    core.Vec3
	Up       core.Vec3
}

// NewDisc creates a disc from a center, normal, and radius.
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Disc {
	n := normal.Normalize()

	var helper core.Vec3
	if math.Abs(n.X) > 0.1 {
		helper = core.NewVec3(0, 1, 0)
	} else {
		helper = core.NewVec3(1, 0, 0)
	}

	right := helper.Cross(n).Normalize()
	up := n.Cross(right).Normalize()

	return &Disc{Center: center, Normal: n, Radius: radius, Material: material, Right: right, Up: up}
}

// Hit intersects the disc's plane, then tests the hit point against the
// disc's radius.
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	local := core.NewVec2(centerToHit.Dot(d.Right), centerToHit.Dot(d.Up))
	u := (local.X/d.Radius + 1) / 2
	v := (local.Y/d.Radius + 1) / 2

	hit := &core.HitRecord{T: t, Point: hitPoint, U: u, V: v, Material: d.Material, Object: "disc"}
	hit.SetFaceNormal(ray, d.Normal)
	return hit, true
}

// BoundingBox returns a box enclosing the disc's footprint.
func (d *Disc) BoundingBox() core.AABB {
	rightExtent := d.Right.Multiply(d.Radius)
	upExtent := d.Up.Multiply(d.Radius)

	return core.NewAABBFromPoints(
		d.Center.Add(rightExtent).Add(upExtent),
		d.Center.Add(rightExtent).Subtract(upExtent),
		d.Center.Subtract(rightExtent).Add(upExtent),
		d.Center.Subtract(rightExtent).Subtract(upExtent),
	)
}

// PDFValue returns the solid-angle density of sampling this disc uniformly
// by area.
func (d *Disc) PDFValue(origin, dir core.Vec3) float64 {
	hit, isHit := d.Hit(core.NewRay(origin, dir), core.ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return 0
	}
	distanceSquared := hit.T * hit.T * dir.LengthSquared()
	cosine := math.Abs(dir.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	area := math.Pi * d.Radius * d.Radius
	return distanceSquared / (cosine * area)
}

// SampleDirection returns a direction from origin toward a uniformly random
// point on the disc.
func (d *Disc) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	r := math.Sqrt(sampler.Get1D()) * d.Radius
	theta := 2 * math.Pi * sampler.Get1D()
	point := d.Center.Add(d.Right.Multiply(r * math.Cos(theta))).Add(d.Up.Multiply(r * math.Sin(theta)))
	return point.Subtract(origin)
}
