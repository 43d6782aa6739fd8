package geometry

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/material"
)

// Sphere is a centre + radius primitive.
type Sphere struct {
	Center core.Vec3
	Radius float32
	Mat    material.Material
}

// NewSphere builds a sphere. A zero (or negative) radius is a numerical
// degeneracy: Intersect always reports a miss for it.
func NewSphere(center core.Vec3, radius float32, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

func (s *Sphere) degenerate() bool { return s.Radius <= core.EPSILON }

// Intersect solves |o + t*d - c|^2 = r^2, taking the smaller positive root
// above EPSILON when available, else the larger.
func (s *Sphere) Intersect(ray core.Ray) Intersection {
	if s.degenerate() {
		return NoHit
	}

	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return NoHit
	}

	sqrtD := math32.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < core.EPSILON {
		root = (-halfB + sqrtD) / a
		if root < core.EPSILON {
			return NoHit
		}
	}

	point := ray.At(root)
	return Intersection{
		Hit:    true,
		T:      root,
		Point:  point,
		Normal: s.NormalAt(point),
		Shape:  s,
	}
}

// NormalAt returns the outward normal at a point on the sphere's surface.
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Sub(s.Center).Div(s.Radius)
}

// UVAt maps a surface point to equirectangular UV coordinates.
func (s *Sphere) UVAt(point core.Vec3) (u, v float32) {
	p := point.Sub(s.Center)
	u = 0.5 + math32.Atan2(p.Z, p.X)/(2*math32.Pi)
	v = 0.5 - math32.Asin(clampUnit(p.Y/s.Radius))/math32.Pi
	return
}

func (s *Sphere) BoundingVolume() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

func (s *Sphere) Centroid() core.Vec3 { return s.Center }

func (s *Sphere) Material() material.Material { return s.Mat }

func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
