package core

import "github.com/chewxy/math32"

// AABB is an axis-aligned bounding box defined by its min and max corners.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from explicit corners.
func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// NewAABBFromPoints returns the smallest AABB covering every given point.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return AABB{Min: min, Max: max}
}

// Expand grows the box, in place semantics via return value, to also cover
// other.
func (b AABB) Expand(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Combine returns the union of two AABBs.
func Combine(a, b AABB) AABB {
	return a.Expand(b)
}

// Contains reports whether p lies within the box (inclusive).
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the box's midpoint.
func (b AABB) Center() Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Size returns the box's extent along each axis.
func (b AABB) Size() Vec3 { return b.Max.Sub(b.Min) }

// LargestAxis returns the index (0=X,1=Y,2=Z) of the box's longest extent.
func (b AABB) LargestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Hit tests ray-box intersection via the slab method, tracking the overall
// tMin/tMax across all three axes.
func (b AABB) Hit(ray Ray, tMin, tMax float32) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.At(axis)
		dir := ray.Direction.At(axis)
		min := b.Min.At(axis)
		max := b.Max.At(axis)

		if math32.Abs(dir) < EPSILON {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (min - origin) * invDir
		t2 := (max - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
