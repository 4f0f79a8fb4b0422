package geometry

import "github.com/kesseloak/lumenforge/pkg/core"

// Box is a rectangular box made of 6 quads, with optional rotation.
type Box struct {
	Center   core.Vec3
	Size     core.Vec3 // half-extents: (1,1,1) makes a 2x2x2 box
	Rotation core.Vec3 // radians around X, Y, Z, applied in that order
	Material core.Material
	faces    [6]*Quad
	bbox     core.AABB
}

// NewBox creates a box with the given center, half-extent size, rotation,
// and material.
func NewBox(center, size, rotation core.Vec3, material core.Material) *Box {
	b := &Box{Center: center, Size: size, Rotation: rotation, Material: material}
	b.generateFaces()
	return b
}

// NewAxisAlignedBox creates a box with no rotation.
func NewAxisAlignedBox(center, size core.Vec3, material core.Material) *Box {
	return NewBox(center, size, core.NewVec3(0, 0, 0), material)
}

func (b *Box) generateFaces() {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), core.NewVec3(1, -1, -1),
		core.NewVec3(1, 1, -1), core.NewVec3(-1, 1, -1),
		core.NewVec3(-1, -1, 1), core.NewVec3(1, -1, 1),
		core.NewVec3(1, 1, 1), core.NewVec3(-1, 1, 1),
	}

	for i := range corners {
		corners[i] = core.NewVec3(corners[i].X*b.Size.X, corners[i].Y*b.Size.Y, corners[i].Z*b.Size.Z)
		corners[i] = corners[i].Rotate(b.Rotation).Add(b.Center)
	}

	b.faces[0] = NewQuad(corners[4], corners[5].Subtract(corners[4]), corners[7].Subtract(corners[4]), b.Material) // +Z
	b.faces[1] = NewQuad(corners[1], corners[0].Subtract(corners[1]), corners[2].Subtract(corners[1]), b.Material) // -Z
	b.faces[2] = NewQuad(corners[5], corners[1].Subtract(corners[5]), corners[6].Subtract(corners[5]), b.Material) // +X
	b.faces[3] = NewQuad(corners[0], corners[4].Subtract(corners[0]), corners[3].Subtract(corners[0]), b.Material) // -X
	b.faces[4] = NewQuad(corners[3], corners[7].Subtract(corners[3]), corners[2].Subtract(corners[3]), b.Material) // +Y
	b.faces[5] = NewQuad(corners[4], corners[0].Subtract(corners[4]), corners[5].Subtract(corners[4]), b.Material) // -Y

	b.bbox = core.NewAABBFromPoints(corners[:]...)
}

// Hit tests all 6 faces and keeps the closest.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	for _, face := range b.faces {
		if hit, isHit := face.Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closest = hit
			closest.Object = "box"
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the box's cached bounds.
func (b *Box) BoundingBox() core.AABB { return b.bbox }

// PDFValue is zero: a Box is never used directly as a next-event-estimation
// target (light variants wrap a single Quad face instead).
func (b *Box) PDFValue(origin, dir core.Vec3) float64 { return zeroPDF(origin, dir) }

// SampleDirection is unused; see PDFValue.
func (b *Box) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return zeroSample(origin, sampler)
}
