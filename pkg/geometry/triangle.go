package geometry

import "github.com/kesseloak/lumenforge/pkg/core"

// Triangle is a single triangle defined by three vertices, with optional
// per-vertex UVs and a custom (e.g. interpolated-from-mesh) normal.
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	Material      core.Material
	normal        core.Vec3
	bbox          core.AABB
}

// NewTriangle creates a triangle from three vertices with a flat, computed normal.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormal creates a triangle from three vertices with a custom normal.
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material, normal: normal.Normalize()}
	t.computeBoundingBox()
	return t
}

// NewTriangleWithUVs creates a triangle with per-vertex UV coordinates.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: material}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormalAndUVs creates a triangle with a custom normal and per-vertex UVs.
func NewTriangleWithNormalAndUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, normal core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true,
		Material: material, normal: normal.Normalize(),
	}
	t.computeBoundingBox()
	return t
}

func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

func (t *Triangle) computeBoundingBox() {
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit tests the triangle using the Moller-Trumbore algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitPoint := ray.At(tParam)

	var uvU, uvV float64
	if t.hasUVs {
		w := 1.0 - u - v
		uv := t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
		uvU, uvV = uv.X, uv.Y
	} else {
		uvU, uvV = u, v
	}

	hit := &core.HitRecord{T: tParam, Point: hitPoint, U: uvU, V: uvV, Material: t.Material, Object: "triangle"}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

// BoundingBox returns the triangle's cached bounds.
func (t *Triangle) BoundingBox() core.AABB { return t.bbox }

// GetNormal returns the triangle's normal vector.
func (t *Triangle) GetNormal() core.Vec3 { return t.normal }

// PDFValue is zero: individual mesh triangles are never used directly as
// next-event-estimation targets.
func (t *Triangle) PDFValue(origin, dir core.Vec3) float64 { return zeroPDF(origin, dir) }

// SampleDirection is unused; see PDFValue.
func (t *Triangle) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return zeroSample(origin, sampler)
}
