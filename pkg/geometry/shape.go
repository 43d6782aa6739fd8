// Package geometry holds the renderer's closed set of primitive shapes
// (Sphere, Cylinder, Triangle), their ray/intersection/UV/bounding
// contracts, and the BVH built over them.
package geometry

import (
	"math"

	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/material"
)

// Intersection describes where a ray met a shape. T carries +Inf when no
// hit was found. An intersection is valid iff Hit && T >= core.EPSILON.
type Intersection struct {
	Hit    bool
	T      float32
	Point  core.Vec3
	Normal core.Vec3 // outward surface normal; for a triangle, the side facing the ray
	Shape  Shape      // back-reference for material/UV lookup
}

// NoHit is the canonical miss result.
var NoHit = Intersection{Hit: false, T: float32(math.Inf(1))}

// Shape is the closed tagged variant of primitive kinds the renderer knows
// about: Sphere, Cylinder, Triangle. No open-world dispatch is required
// because every kind is statically known.
type Shape interface {
	Intersect(ray core.Ray) Intersection
	NormalAt(point core.Vec3) core.Vec3
	UVAt(point core.Vec3) (u, v float32)
	BoundingVolume() core.AABB
	Centroid() core.Vec3
	Material() material.Material
}
