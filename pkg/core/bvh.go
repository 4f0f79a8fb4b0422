package core

import "sort"

// BVHNode is a node in the bounding volume hierarchy: either an internal
// node with two children, or a leaf holding one or two shapes (the base
// case spec.md §4.3 calls out: "leaves hold one primitive; two-object
// nodes store both with the comparator imposing a stable left/right
// order").
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // non-nil only on a leaf
}

// BVH is a binary tree over Hittables, built by recursively partitioning
// on the lower bound of a chosen axis and split at the median (spec.md
// §4.3), used as a scene's spatially-accelerated root.
type BVH struct {
	Root              *BVHNode
	FiniteWorldCenter Vec3    // finite-geometry scene center, for infinite-light PDFs
	FiniteWorldRadius float64 // finite-geometry scene radius, for infinite-light PDFs

	// ExcludedCount is the number of shapes dropped during construction
	// because BoundingBox() reported a non-finite box or the shape
	// self-reported degenerate via Validatable (spec.md §7: "degenerate
	// geometry ... logged, primitive excluded, build continues").
	ExcludedCount int
}

// NewBVH constructs a BVH from shapes, logging and excluding any
// degenerate shape (a NaN-bearing bounding box, or one that self-reports
// via Validatable) instead of inserting it into the tree. A nil logger
// disables the log call; exclusion still happens either way.
func NewBVH(shapes []Shape, logger Logger) *BVH {
	if logger == nil {
		logger = NopLogger{}
	}

	valid, excluded := excludeDegenerate(shapes, logger)
	if len(valid) == 0 {
		return &BVH{ExcludedCount: excluded}
	}

	shapesCopy := make([]Shape, len(valid))
	copy(shapesCopy, valid)

	center, radius := calculateFiniteWorldBounds(shapesCopy)

	return &BVH{
		Root:              buildBVH(shapesCopy, 0),
		FiniteWorldCenter: center,
		FiniteWorldRadius: radius,
		ExcludedCount:     excluded,
	}
}

// excludeDegenerate filters out shapes whose bounding box is not finite
// (invariant violated: Min <= Max on every axis fails under NaN) or that
// implement Validatable and report themselves degenerate.
func excludeDegenerate(shapes []Shape, logger Logger) (valid []Shape, excludedCount int) {
	valid = make([]Shape, 0, len(shapes))
	for _, shape := range shapes {
		if !shape.BoundingBox().IsValid() {
			logger.Warnw("excluding degenerate primitive: non-finite bounding box", "shape", shape)
			excludedCount++
			continue
		}
		if v, ok := shape.(Validatable); ok && v.Degenerate() {
			logger.Warnw("excluding degenerate primitive", "shape", shape)
			excludedCount++
			continue
		}
		valid = append(valid, shape)
	}
	return valid, excludedCount
}

// leafThreshold bounds how deep the median split recurses before falling
// back to a multi-shape leaf; kept small (spec.md's own base case is one
// or two shapes) but nonzero so near-coincident bounding boxes can't drive
// the recursion arbitrarily deep.
const leafThreshold = 2

// buildBVH partitions shapes by choosing a split axis round-robin on tree
// depth, sorting by the lower bound of that axis, and splitting at the
// median index, per spec.md §4.3. Ties break by original order (a stable
// sort), which is what keeps a fixed input order reproducible.
func buildBVH(shapes []Shape, depth int) *BVHNode {
	box := unionBoxes(shapes)

	if len(shapes) <= leafThreshold {
		ordered := append([]Shape(nil), shapes...)
		sortByAxisLowerBound(ordered, depth%3)
		return &BVHNode{BoundingBox: box, Shapes: ordered}
	}

	ordered := append([]Shape(nil), shapes...)
	sortByAxisLowerBound(ordered, depth%3)

	mid := len(ordered) / 2
	left := buildBVH(ordered[:mid], depth+1)
	right := buildBVH(ordered[mid:], depth+1)

	return &BVHNode{BoundingBox: box, Left: left, Right: right}
}

// sortByAxisLowerBound orders shapes by the lower bound of their bounding
// box along axis, the comparator spec.md §4.3 names ("sort children by the
// lower bound of that axis"). SliceStable keeps equal keys in their
// original relative order, so a fixed input list always builds the same
// tree.
func sortByAxisLowerBound(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Min.Axis(axis) < shapes[j].BoundingBox().Min.Axis(axis)
	})
}

func unionBoxes(shapes []Shape) AABB {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}
	return box
}

// Hit tests ray against the BVH, returning the nearest intersection.
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

// hitNode implements the ordered-traversal pruning spec.md §4.3 mandates:
// reject nodes the ray misses, then constrain the right child's tMax to
// whatever t the left child hit (if it hit) before descending into it.
func hitNode(node *BVHNode, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Shapes != nil {
		var closest *HitRecord
		closestT := tMax
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestT); ok {
				closest = hit
				closestT = hit.T
			}
		}
		return closest, closest != nil
	}

	leftHit, leftOK := hitNode(node.Left, ray, tMin, tMax)
	rightMax := tMax
	if leftOK {
		rightMax = leftHit.T
	}
	rightHit, rightOK := hitNode(node.Right, ray, tMin, rightMax)

	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// BoundingBox returns the BVH's overall bounds, so a BVH can itself serve
// as a Hittable (a sub-scene's acceleration structure nested under another
// BVH, as TriangleMesh does internally).
func (bvh *BVH) BoundingBox() AABB {
	if bvh.Root == nil {
		return AABB{}
	}
	return bvh.Root.BoundingBox
}

// PDFValue is zero: a BVH is a scene's acceleration root, not a
// next-event-estimation target.
func (bvh *BVH) PDFValue(origin, dir Vec3) float64 { return 0 }

// SampleDirection is unused; see PDFValue.
func (bvh *BVH) SampleDirection(origin Vec3, sampler Sampler) Vec3 { return Vec3{} }

// bvhStats summarizes a BVH's shape for tests and diagnostic logging.
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	avgDepth    float64
	totalShapes int
}

// getStats walks the tree once, accumulating node/leaf/depth counts.
func (bvh *BVH) getStats() bvhStats {
	var stats bvhStats
	if bvh.Root == nil {
		return stats
	}

	var depthSum int
	var walk func(node *BVHNode, depth int)
	walk = func(node *BVHNode, depth int) {
		stats.totalNodes++
		if depth > stats.maxDepth {
			stats.maxDepth = depth
		}
		if node.Shapes != nil {
			stats.leafNodes++
			stats.totalShapes += len(node.Shapes)
			depthSum += depth
			return
		}
		walk(node.Left, depth+1)
		walk(node.Right, depth+1)
	}
	walk(bvh.Root, 0)

	if stats.leafNodes > 0 {
		stats.avgDepth = float64(depthSum) / float64(stats.leafNodes)
	}
	return stats
}

// calculateFiniteWorldBounds unions the bounding boxes of shapes whose
// extent looks finite (skipping very large stand-ins for an infinite
// plane), for use by infinite-light PDF calculations that need a world
// radius.
func calculateFiniteWorldBounds(shapes []Shape) (Vec3, float64) {
	var bounds AABB
	found := false

	for _, shape := range shapes {
		box := shape.BoundingBox()
		if box.Size().X > 1e5 || box.Size().Y > 1e5 || box.Size().Z > 1e5 {
			continue
		}
		if !found {
			bounds, found = box, true
			continue
		}
		bounds = bounds.Union(box)
	}

	if !found {
		return Vec3{}, 0
	}

	center := bounds.Center()
	return center, bounds.Max.Subtract(center).Length()
}
