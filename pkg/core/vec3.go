// Package core holds the math primitives shared by every other package:
// vectors, colour, rays, bounding boxes and the error categories used
// throughout the renderer.
package core

import "github.com/chewxy/math32"

// EPSILON is the small positive threshold used to avoid self-intersection
// and degenerate denominators across the renderer.
const EPSILON = 1e-8

// Vec3 is a three-component single-precision vector, used interchangeably
// for points, directions and normals.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 builds a vector from its three components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3   { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Div(s float32) Vec3   { return Vec3{v.X / s, v.Y / s, v.Z / s} }
func (v Vec3) Negate() Vec3         { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) MulVec(o Vec3) Vec3   { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float32 { return v.Dot(v) }
func (v Vec3) Length() float32        { return math32.Sqrt(v.LengthSquared()) }

// Normalize returns a unit vector in the same direction. A zero vector
// normalises to the zero vector rather than erroring or producing NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Div(l)
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{minf(v.X, o.X), minf(v.Y, o.Y), minf(v.Z, o.Z)}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{maxf(v.X, o.X), maxf(v.Y, o.Y), maxf(v.Z, o.Z)}
}

// At returns the component at the given index (0=X, 1=Y, 2=Z). An index
// outside [0,2] is a runtime impossibility and panics, per the error
// handling design's "index out of range on a Vec3" category.
func (v Vec3) At(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(RuntimeError{Op: "Vec3.At", Detail: "axis out of range"})
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
