package geometry

import (
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/material"
)

// UV2 is a 2-D texture coordinate.
type UV2 struct{ U, V float32 }

// Triangle is a flat triangle with per-vertex UVs, interpolated
// barycentrically at each hit.
type Triangle struct {
	V0, V1, V2     core.Vec3
	UV0, UV1, UV2  UV2
	Mat            material.Material
	normal         core.Vec3
	bbox           core.AABB
}

// NewTriangle builds a triangle from three vertices and their UVs.
func NewTriangle(v0, v1, v2 core.Vec3, uv0, uv1, uv2 UV2, mat material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, Mat: mat}
	t.normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// Intersect implements the Möller-Trumbore algorithm, rejecting near-parallel
// rays, out-of-range barycentric coordinates, and hits at or before EPSILON.
func (t *Triangle) Intersect(ray core.Ray) Intersection {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -core.EPSILON && a < core.EPSILON {
		return NoHit // ray parallel to triangle plane, or zero-area triangle
	}

	f := 1.0 / a
	s := ray.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return NoHit
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return NoHit
	}

	tParam := f * edge2.Dot(q)
	if tParam <= core.EPSILON {
		return NoHit
	}

	point := ray.At(tParam)
	normal := t.normal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	return Intersection{Hit: true, T: tParam, Point: point, Normal: normal, Shape: t}
}

// NormalAt returns the triangle's flat geometric normal everywhere on its
// surface (a triangle has no curvature).
func (t *Triangle) NormalAt(core.Vec3) core.Vec3 { return t.normal }

// UVAt interpolates the per-vertex UVs at point using barycentric weights.
func (t *Triangle) UVAt(point core.Vec3) (u, v float32) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	vp := point.Sub(t.V0)

	d00 := edge1.Dot(edge1)
	d01 := edge1.Dot(edge2)
	d11 := edge2.Dot(edge2)
	d20 := vp.Dot(edge1)
	d21 := vp.Dot(edge2)

	denom := d00*d11 - d01*d01
	if denom > -core.EPSILON && denom < core.EPSILON {
		return t.UV0.U, t.UV0.V // zero-area triangle, degenerate denominator guard
	}

	beta := (d11*d20 - d01*d21) / denom
	gamma := (d00*d21 - d01*d20) / denom
	alpha := 1 - beta - gamma

	u = alpha*t.UV0.U + beta*t.UV1.U + gamma*t.UV2.U
	v = alpha*t.UV0.V + beta*t.UV1.V + gamma*t.UV2.V
	return
}

func (t *Triangle) BoundingVolume() core.AABB { return t.bbox }

func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Div(3)
}

func (t *Triangle) Material() material.Material { return t.Mat }
