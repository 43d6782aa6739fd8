// Package camera holds the renderer's closed set of camera kinds: a
// pinhole camera and a thin-lens aperture variant for depth of field.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/core"
)

// Camera is the tagged variant of {Pinhole, Aperture}. GenerateRay returns
// the full ray (origin+direction) because the aperture variant's origin
// moves per sample: callers must never assume Origin == camera position.
type Camera interface {
	GenerateRay(px, py float32, rng *core.RNG) core.Ray
}

// basis is the shared right-handed frame every camera variant builds once
// at construction: forward = normalise(lookAt-position), right =
// normalise(up x forward), camUp = forward x right.
type basis struct {
	position core.Vec3
	forward  core.Vec3
	right    core.Vec3
	camUp    core.Vec3

	width, height int
	tanHalfFov    float32
	aspect        float32
}

func newBasis(position, lookAt, up core.Vec3, width, height int, fovDegrees float32) basis {
	forward := lookAt.Sub(position).Normalize()
	right := up.Cross(forward).Normalize()
	camUp := forward.Cross(right)

	return basis{
		position:   position,
		forward:    forward,
		right:      right,
		camUp:      camUp,
		width:      width,
		height:     height,
		tanHalfFov: math32.Tan(fovDegrees * math32.Pi / 180 / 2),
		aspect:     float32(width) / float32(height),
	}
}

// ndc maps fractional pixel coordinates to normalised device coordinates.
func (b basis) ndc(px, py float32) (x, y float32) {
	x = (2*(px+0.5)/float32(b.width) - 1) * b.aspect * b.tanHalfFov
	y = (1 - 2*(py+0.5)/float32(b.height)) * b.tanHalfFov
	return
}

// Pinhole is a standard perspective camera with no depth of field.
type Pinhole struct {
	basis
}

// NewPinhole builds a pinhole camera.
func NewPinhole(position, lookAt, up core.Vec3, width, height int, fovDegrees float32) *Pinhole {
	return &Pinhole{basis: newBasis(position, lookAt, up, width, height, fovDegrees)}
}

func (c *Pinhole) GenerateRay(px, py float32, rng *core.RNG) core.Ray {
	ndcX, ndcY := c.ndc(px, py)
	dir := c.forward.Add(c.right.Mul(ndcX)).Add(c.camUp.Mul(ndcY)).Normalize()
	return core.NewRay(c.position, dir)
}

// Aperture adds thin-lens depth-of-field to the pinhole model: rays
// originate from a jittered point on a lens disk rather than a single
// point, converging on a shared focal point.
type Aperture struct {
	basis
	ApertureSize   float32
	FocalDistance  float32
}

// NewAperture builds a thin-lens camera.
func NewAperture(position, lookAt, up core.Vec3, width, height int, fovDegrees, apertureSize, focalDistance float32) *Aperture {
	return &Aperture{
		basis:         newBasis(position, lookAt, up, width, height, fovDegrees),
		ApertureSize:  apertureSize,
		FocalDistance: focalDistance,
	}
}

func (c *Aperture) GenerateRay(px, py float32, rng *core.RNG) core.Ray {
	ndcX, ndcY := c.ndc(px, py)
	pinholeDir := c.forward.Add(c.right.Mul(ndcX)).Add(c.camUp.Mul(ndcY)).Normalize()

	focalPoint := c.position.Add(pinholeDir.Mul(c.FocalDistance))

	lensX, lensY := rng.UnitDisk()
	lensRadius := c.ApertureSize / 2
	lensOffset := c.right.Mul(lensX * lensRadius).Add(c.camUp.Mul(lensY * lensRadius))
	lensPoint := c.position.Add(lensOffset)

	return core.NewRay(lensPoint, focalPoint.Sub(lensPoint))
}
