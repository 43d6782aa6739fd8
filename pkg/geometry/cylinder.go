package geometry

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/material"
)

// Cylinder is a finite, capped cylinder: it extends from -HalfHeight to
// +HalfHeight along Axis, measured from Center, and is closed by two end
// caps.
type Cylinder struct {
	Center     core.Vec3
	Axis       core.Vec3 // normalised
	Radius     float32
	HalfHeight float32
	Mat        material.Material

	tangent, bitangent core.Vec3 // cached cross-section basis for UV
	bbox               core.AABB
}

// NewCylinder builds a cylinder. A zero-length axis or non-positive radius
// is a numerical degeneracy: Intersect always reports a miss for it.
func NewCylinder(center, axis core.Vec3, radius, halfHeight float32, mat material.Material) *Cylinder {
	c := &Cylinder{Center: center, Axis: axis.Normalize(), Radius: radius, HalfHeight: halfHeight, Mat: mat}
	c.tangent, c.bitangent = core.TangentBasis(c.Axis)
	c.bbox = c.computeBoundingVolume()
	return c
}

func (c *Cylinder) degenerate() bool {
	return c.Axis.LengthSquared() < core.EPSILON || c.Radius <= core.EPSILON
}

func (c *Cylinder) perp(v core.Vec3) core.Vec3 {
	return v.Sub(c.Axis.Mul(v.Dot(c.Axis)))
}

// Intersect combines the infinite side surface quadratic with the two cap
// plane tests and returns the closest valid hit.
func (c *Cylinder) Intersect(ray core.Ray) Intersection {
	if c.degenerate() {
		return NoHit
	}

	best := NoHit

	if hit, ok := c.intersectSide(ray); ok && hit.T < best.T {
		best = hit
	}
	if hit, ok := c.intersectCap(ray, c.HalfHeight); ok && hit.T < best.T {
		best = hit
	}
	if hit, ok := c.intersectCap(ray, -c.HalfHeight); ok && hit.T < best.T {
		best = hit
	}

	return best
}

func (c *Cylinder) intersectSide(ray core.Ray) (Intersection, bool) {
	oc := ray.Origin.Sub(c.Center)
	dPerp := c.perp(ray.Direction)
	ocPerp := c.perp(oc)

	a := dPerp.Dot(dPerp)
	if a < core.EPSILON {
		return NoHit, false // ray parallel to the axis, side surface can't be hit
	}
	b := 2 * ocPerp.Dot(dPerp)
	cc := ocPerp.Dot(ocPerp) - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return NoHit, false
	}
	sqrtD := math32.Sqrt(discriminant)

	for _, t := range [2]float32{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t < core.EPSILON {
			continue
		}
		point := ray.At(t)
		h := point.Sub(c.Center).Dot(c.Axis)
		if h < -c.HalfHeight || h > c.HalfHeight {
			continue
		}
		axisPoint := c.Center.Add(c.Axis.Mul(h))
		normal := point.Sub(axisPoint).Normalize()
		return Intersection{Hit: true, T: t, Point: point, Normal: normal, Shape: c}, true
	}
	return NoHit, false
}

func (c *Cylinder) intersectCap(ray core.Ray, signedHalfHeight float32) (Intersection, bool) {
	denom := ray.Direction.Dot(c.Axis)
	if denom > -core.EPSILON && denom < core.EPSILON {
		return NoHit, false // ray parallel to the cap plane
	}

	capCenter := c.Center.Add(c.Axis.Mul(signedHalfHeight))
	t := capCenter.Sub(ray.Origin).Dot(c.Axis) / denom
	if t < core.EPSILON {
		return NoHit, false
	}

	point := ray.At(t)
	if point.Sub(capCenter).LengthSquared() > c.Radius*c.Radius {
		return NoHit, false
	}

	normal := c.Axis
	if signedHalfHeight < 0 {
		normal = normal.Negate()
	}
	return Intersection{Hit: true, T: t, Point: point, Normal: normal, Shape: c}, true
}

// NormalAt recomputes the outward normal for an arbitrary point assumed to
// lie on the cylinder's surface: radial on the side band, axial on a cap.
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	h := point.Sub(c.Center).Dot(c.Axis)
	if h >= c.HalfHeight-1e-4 {
		return c.Axis
	}
	if h <= -c.HalfHeight+1e-4 {
		return c.Axis.Negate()
	}
	axisPoint := c.Center.Add(c.Axis.Mul(h))
	return point.Sub(axisPoint).Normalize()
}

// UVAt maps a surface point to UV: polar angle for u everywhere, and a
// v-band split into bottom cap [0,0.25], side [0.25,0.75], top cap
// [0.75,1.0].
func (c *Cylinder) UVAt(point core.Vec3) (u, v float32) {
	rel := point.Sub(c.Center)
	h := rel.Dot(c.Axis)

	px := rel.Dot(c.tangent)
	pz := rel.Dot(c.bitangent)
	angle := math32.Atan2(pz, px) / (2 * math32.Pi)
	if angle < 0 {
		angle++
	}
	u = angle

	switch {
	case h >= c.HalfHeight-1e-4:
		radial := c.perp(rel).Length() / c.Radius
		v = 0.75 + 0.25*radial
	case h <= -c.HalfHeight+1e-4:
		radial := c.perp(rel).Length() / c.Radius
		v = 0.25 * radial
	default:
		v = 0.25 + 0.5*((h+c.HalfHeight)/(2*c.HalfHeight))
	}
	return
}

func (c *Cylinder) computeBoundingVolume() core.AABB {
	base := c.Center.Sub(c.Axis.Mul(c.HalfHeight))
	top := c.Center.Add(c.Axis.Mul(c.HalfHeight))
	r := core.NewVec3(c.Radius, c.Radius, c.Radius)
	return core.NewAABBFromPoints(base.Sub(r), base.Add(r), top.Sub(r), top.Add(r))
}

func (c *Cylinder) BoundingVolume() core.AABB { return c.bbox }

func (c *Cylinder) Centroid() core.Vec3 { return c.Center }

func (c *Cylinder) Material() material.Material { return c.Mat }
