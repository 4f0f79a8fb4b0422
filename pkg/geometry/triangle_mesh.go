package geometry

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// TriangleMesh is a collection of triangles backed by an internal BVH for
// fast intersection.
type TriangleMesh struct {
	triangles []core.Hittable
	bvh       *core.BVH
	bbox      core.AABB
	material  core.Material
}

// TriangleMeshOptions holds optional per-mesh construction parameters.
type TriangleMeshOptions struct {
	Normals   []core.Vec3
	Materials []core.Material
	Rotation  *core.Vec3
	Center    *core.Vec3
	VertexUVs []core.Vec2
}

// NewTriangleMesh builds a mesh from vertices and a flattened face-index
// list (every 3 indices form one triangle).
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3

	if options != nil {
		if options.Normals != nil && len(options.Normals) != numTriangles {
			panic("number of normals must match number of triangles")
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			panic("number of materials must match number of triangles")
		}
		if options.VertexUVs != nil && len(options.VertexUVs) != len(vertices) {
			panic("number of vertex UVs must match number of vertices")
		}
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = rotateVertex(vertex, *options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	triangles := make([]core.Hittable, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0 := faces[i*3]
		i1 := faces[i*3+1]
		i2 := faces[i*3+2]

		if i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			panic("face index out of bounds")
		}

		triangleMaterial := material
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		v0 := workingVertices[i0]
		v1 := workingVertices[i1]
		v2 := workingVertices[i2]

		hasUVs := options != nil && options.VertexUVs != nil
		hasNormals := options != nil && options.Normals != nil

		var triangle *Triangle
		switch {
		case hasUVs && hasNormals:
			uv0, uv1, uv2 := options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2]
			triangle = NewTriangleWithNormalAndUVs(v0, v1, v2, uv0, uv1, uv2, options.Normals[i], triangleMaterial)
		case hasUVs:
			uv0, uv1, uv2 := options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2]
			triangle = NewTriangleWithUVs(v0, v1, v2, uv0, uv1, uv2, triangleMaterial)
		case hasNormals:
			triangle = NewTriangleWithNormal(v0, v1, v2, options.Normals[i], triangleMaterial)
		default:
			triangle = NewTriangle(v0, v1, v2, triangleMaterial)
		}
		triangles[i] = triangle
	}

	bvh := core.NewBVH(triangles, nil)

	var bbox core.AABB
	if len(triangles) > 0 {
		bbox = triangles[0].BoundingBox()
		for i := 1; i < len(triangles); i++ {
			bbox = bbox.Union(triangles[i].BoundingBox())
		}
	}

	defaultMaterial := material
	if options != nil && len(options.Materials) > 0 {
		defaultMaterial = options.Materials[0]
	}

	return &TriangleMesh{triangles: triangles, bvh: bvh, bbox: bbox, material: defaultMaterial}
}

// Hit delegates to the mesh's internal BVH.
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return tm.bvh.Hit(ray, tMin, tMax)
}

// BoundingBox returns the bounds of the entire mesh.
func (tm *TriangleMesh) BoundingBox() core.AABB { return tm.bbox }

// GetTriangleCount returns the number of triangles in the mesh.
func (tm *TriangleMesh) GetTriangleCount() int { return len(tm.triangles) }

// GetTriangles returns the individual triangles.
func (tm *TriangleMesh) GetTriangles() []core.Hittable { return tm.triangles }

// PDFValue is zero: meshes are never used directly as next-event-estimation
// targets.
func (tm *TriangleMesh) PDFValue(origin, dir core.Vec3) float64 { return zeroPDF(origin, dir) }

// SampleDirection is unused; see PDFValue.
func (tm *TriangleMesh) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return zeroSample(origin, sampler)
}

func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		cos := math.Cos(rotation.X)
		sin := math.Sin(rotation.X)
		y := vertex.Y*cos - vertex.Z*sin
		z := vertex.Y*sin + vertex.Z*cos
		vertex = core.NewVec3(vertex.X, y, z)
	}

	if rotation.Y != 0 {
		cos := math.Cos(rotation.Y)
		sin := math.Sin(rotation.Y)
		x := vertex.X*cos + vertex.Z*sin
		z := -vertex.X*sin + vertex.Z*cos
		vertex = core.NewVec3(x, vertex.Y, z)
	}

	if rotation.Z != 0 {
		cos := math.Cos(rotation.Z)
		sin := math.Sin(rotation.Z)
		x := vertex.X*cos - vertex.Y*sin
		y := vertex.X*sin + vertex.Y*cos
		vertex = core.NewVec3(x, y, vertex.Z)
	}

	return vertex
}
