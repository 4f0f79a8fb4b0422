package core

import "math"

// aabbMinWidth is the minimum extent enforced per axis so a perfectly flat
// box (an axis-aligned quad, for instance) still has a finite slab to test
// against instead of producing a zero-width interval.
const aabbMinWidth = 1e-4

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points, padding any
// near-zero-width axis to aabbMinWidth.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}.pad()
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{Min: min, Max: max}.pad()
}

// pad widens any axis narrower than aabbMinWidth so the slab test in Hit
// never degenerates into testing against an exactly-zero extent.
func (aabb AABB) pad() AABB {
	for axis := 0; axis < 3; axis++ {
		if aabb.AxisInterval(axis).Size() < aabbMinWidth {
			mid := aabb.axisMid(axis)
			aabb = aabb.setAxis(axis, mid-aabbMinWidth/2, mid+aabbMinWidth/2)
		}
	}
	return aabb
}

func (aabb AABB) axisMid(axis int) float64 {
	return (aabb.Min.Axis(axis) + aabb.Max.Axis(axis)) / 2
}

func (aabb AABB) setAxis(axis int, lo, hi float64) AABB {
	switch axis {
	case 0:
		aabb.Min.X, aabb.Max.X = lo, hi
	case 1:
		aabb.Min.Y, aabb.Max.Y = lo, hi
	default:
		aabb.Min.Z, aabb.Max.Z = lo, hi
	}
	return aabb
}

// AxisInterval returns the extent of the box along the given axis.
func (aabb AABB) AxisInterval(axis int) Interval {
	return Interval{Min: aabb.Min.Axis(axis), Max: aabb.Max.Axis(axis)}
}

// Hit tests if a ray intersects with this AABB using the slab method, within
// the t-interval [tMin, tMax].
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		ivl := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-8 {
			if origin < ivl.Min || origin > ivl.Max {
				return false // Ray origin outside slab
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (ivl.Min - origin) * invDirection
		t2 := (ivl.Max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Center returns the center point of the AABB.
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis.
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB.
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes).
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X && aabb.Min.Y <= aabb.Max.Y && aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions.
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{Min: aabb.Min.Subtract(expansion), Max: aabb.Max.Add(expansion)}
}
