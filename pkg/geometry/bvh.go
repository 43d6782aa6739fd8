package geometry

import (
	"sort"

	"github.com/cwallin/lumentrace/pkg/core"
)

// leafThreshold is the shape count at or below which buildBVH stops
// splitting and creates a leaf.
const leafThreshold = 2

// BVHNode is either a leaf holding up to leafThreshold shapes, or an
// internal node with two children. Every node's bounding box is the union
// of every shape transitively beneath it.
type BVHNode struct {
	BoundingBox core.AABB
	Left, Right *BVHNode
	Shapes      []Shape // non-nil only for leaves
}

// BVH is a bounding volume hierarchy over a fixed shape set, built once and
// read concurrently by every render worker thereafter.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a BVH over shapes. The input slice is copied before
// partitioning so the caller's slice (owned by the Scene) is left
// untouched.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)
	return &BVH{Root: buildBVH(shapesCopy)}
}

func buildBVH(shapes []Shape) *BVHNode {
	bounds := shapes[0].BoundingVolume()
	for _, s := range shapes[1:] {
		bounds = core.Combine(bounds, s.BoundingVolume())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: bounds, Shapes: shapes}
	}

	axis := bounds.LargestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].Centroid().At(axis) < shapes[j].Centroid().At(axis)
	})

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: bounds,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// Intersect returns the nearest intersection across the entire shape set,
// or NoHit if nothing was hit.
func (b *BVH) Intersect(ray core.Ray) Intersection {
	if b.Root == nil {
		return NoHit
	}
	return b.intersectNode(b.Root, ray, core.EPSILON, float32(1e8))
}

func (b *BVH) intersectNode(node *BVHNode, ray core.Ray, tMin, tMax float32) Intersection {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return NoHit
	}

	if node.Shapes != nil {
		best := NoHit
		closest := tMax
		for _, s := range node.Shapes {
			if hit := s.Intersect(ray); hit.Hit && hit.T >= tMin && hit.T < closest {
				best = hit
				closest = hit.T
			}
		}
		return best
	}

	best := NoHit
	closest := tMax
	if node.Left != nil {
		if hit := b.intersectNode(node.Left, ray, tMin, closest); hit.Hit {
			best = hit
			closest = hit.T
		}
	}
	if node.Right != nil {
		if hit := b.intersectNode(node.Right, ray, tMin, closest); hit.Hit {
			best = hit
			closest = hit.T
		}
	}
	return best
}
