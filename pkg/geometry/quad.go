package geometry

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// axisAlignment records which coordinate axis a quad's normal points along,
// so its bounding box can be padded to a thin slab instead of the full
// diagonal box.
type axisAlignment int

const (
	notAxisAligned axisAlignment = iota
	xAxisAligned
	yAxisAligned
	zAxisAligned
)

func getAxisAlignment(normal core.Vec3) axisAlignment {
	const threshold = 0.9999
	const tolerance = 0.0001

	switch {
	case math.Abs(normal.X) > threshold && math.Abs(normal.Y) < tolerance && math.Abs(normal.Z) < tolerance:
		return xAxisAligned
	case math.Abs(normal.Y) > threshold && math.Abs(normal.X) < tolerance && math.Abs(normal.Z) < tolerance:
		return yAxisAligned
	case math.Abs(normal.Z) > threshold && math.Abs(normal.X) < tolerance && math.Abs(normal.Y) < tolerance:
		return zAxisAligned
	default:
		return notAxisAligned
	}
}

func findMinMax(corners []core.Vec3, accessor func(core.Vec3) float64) (float64, float64) {
	min := accessor(corners[0])
	max := min
	for _, c := range corners[1:] {
		v := accessor(c)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func createAxisAlignedAABB(corners []core.Vec3, alignment axisAlignment, fixedCoord float64) core.AABB {
	const epsilon = 0.001
	switch alignment {
	case xAxisAligned:
		minY, maxY := findMinMax(corners, func(v core.Vec3) float64 { return v.Y })
		minZ, maxZ := findMinMax(corners, func(v core.Vec3) float64 { return v.Z })
		return core.NewAABB(core.NewVec3(fixedCoord-epsilon, minY, minZ), core.NewVec3(fixedCoord+epsilon, maxY, maxZ))
	case yAxisAligned:
		minX, maxX := findMinMax(corners, func(v core.Vec3) float64 { return v.X })
		minZ, maxZ := findMinMax(corners, func(v core.Vec3) float64 { return v.Z })
		return core.NewAABB(core.NewVec3(minX, fixedCoord-epsilon, minZ), core.NewVec3(maxX, fixedCoord+epsilon, maxZ))
	case zAxisAligned:
		minX, maxX := findMinMax(corners, func(v core.Vec3) float64 { return v.X })
		minY, maxY := findMinMax(corners, func(v core.Vec3) float64 { return v.Y })
		return core.NewAABB(core.NewVec3(minX, minY, fixedCoord-epsilon), core.NewVec3(maxX, maxY, fixedCoord+epsilon))
	default:
		return core.NewAABBFromPoints(corners...)
	}
}

// Quad is a rectangular surface defined by a corner and two edge vectors.
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3
	V        core.Vec3
	Normal   core.Vec3
	Material core.Material
	D        float64   // plane equation constant: normal . p = D
	W        core.Vec3 // cached vector for barycentric coordinates
	area     float64
}

// minQuadArea is the smallest cross-product length NewQuad accepts before
// treating the quad as degenerate: below this, u and v are parallel (or one
// is zero-length) and the barycentric W vector becomes NaN-bearing.
const minQuadArea = 1e-10

// NewQuad creates a quad from a corner point and two edge vectors. If u and
// v are parallel (or degenerate), the resulting Quad reports Degenerate()
// true instead of carrying a NaN-bearing W vector into the scene.
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	area := cross.Length()

	if area < minQuadArea {
		return &Quad{Corner: corner, U: u, V: v, Material: material, area: area}
	}

	normal := cross.Normalize()
	d := normal.Dot(corner)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner: corner, U: u, V: v, Normal: normal,
		Material: material, D: d, W: w, area: area,
	}
}

// Degenerate reports whether this quad's two edge vectors are (nearly)
// parallel, satisfying core.Validatable so the BVH build's exclusion pass
// can drop it instead of inserting a NaN-bearing primitive.
func (q *Quad) Degenerate() bool {
	return q.area < minQuadArea
}

// Hit intersects the quad's plane, then tests the barycentric coordinates
// alpha, beta against [0,1].
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := ray.Direction.Dot(q.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{T: t, Point: hitPoint, U: alpha, V: beta, Material: q.Material, Object: "quad"}
	hit.SetFaceNormal(ray, q.Normal)
	return hit, true
}

// BoundingBox returns a (possibly axis-padded) box enclosing the quad.
func (q *Quad) BoundingBox() core.AABB {
	corners := []core.Vec3{q.Corner, q.Corner.Add(q.U), q.Corner.Add(q.V), q.Corner.Add(q.U).Add(q.V)}

	if alignment := getAxisAlignment(q.Normal); alignment != notAxisAligned {
		var fixedCoord float64
		switch alignment {
		case xAxisAligned:
			fixedCoord = corners[0].X
		case yAxisAligned:
			fixedCoord = corners[0].Y
		case zAxisAligned:
			fixedCoord = corners[0].Z
		}
		return createAxisAlignedAABB(corners, alignment, fixedCoord)
	}

	return core.NewAABBFromPoints(corners...)
}

// PDFValue converts the quad's uniform-area sampling density into a
// solid-angle density as seen from origin: areaPDF * distance^2 / cosTheta.
func (q *Quad) PDFValue(origin, dir core.Vec3) float64 {
	hit, isHit := q.Hit(core.NewRay(origin, dir), core.ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return 0
	}

	distanceSquared := hit.T * hit.T * dir.LengthSquared()
	cosine := math.Abs(dir.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * q.area)
}

// SampleDirection returns a direction from origin toward a uniformly random
// point on the quad's surface.
func (q *Quad) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	p := q.Corner.Add(q.U.Multiply(sampler.Get1D())).Add(q.V.Multiply(sampler.Get1D()))
	return p.Subtract(origin)
}
