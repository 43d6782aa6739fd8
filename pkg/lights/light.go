// Package lights holds the renderer's closed set of light kinds: point
// lights (shadow-ray only, no area) and rectangular area lights (sampled by
// the path tracer for direct lighting and emission).
package lights

import (
	"github.com/chewxy/math32"
	"github.com/golang/glog"

	"github.com/cwallin/lumentrace/pkg/core"
)

// Light is the tagged variant of {PointLight, AreaLight}.
type Light interface {
	Position() core.Vec3
	Intensity() core.Colour
	SamplePoint(rng *core.RNG) core.Vec3
	PDF() float32
}

// PointLight has no area: SamplePoint always returns its fixed position and
// PDF is 1.
type PointLight struct {
	Pos   core.Vec3
	Inten core.Colour
}

func NewPointLight(pos core.Vec3, intensity core.Colour) *PointLight {
	return &PointLight{Pos: pos, Inten: intensity}
}

func (l *PointLight) Position() core.Vec3             { return l.Pos }
func (l *PointLight) Intensity() core.Colour           { return l.Inten }
func (l *PointLight) SamplePoint(*core.RNG) core.Vec3  { return l.Pos }
func (l *PointLight) PDF() float32                     { return 1 }

// AreaLight is a rectangular light spanning two orthogonal in-plane tangent
// vectors u,v, each scaled by a width/height.
type AreaLight struct {
	Center core.Vec3
	U, V   core.Vec3 // orthogonal in-plane tangent vectors
	Width  float32
	Height float32
	Inten  core.Colour
}

func NewAreaLight(center, u, v core.Vec3, width, height float32, intensity core.Colour) *AreaLight {
	return &AreaLight{Center: center, U: u, V: v, Width: width, Height: height, Inten: intensity}
}

func (l *AreaLight) Position() core.Vec3   { return l.Center }
func (l *AreaLight) Intensity() core.Colour { return l.Inten }

// SamplePoint draws uniform xi1,xi2 in [0,1) and returns a point on the
// light's rectangle.
func (l *AreaLight) SamplePoint(rng *core.RNG) core.Vec3 {
	xi1, xi2 := rng.Vec2()
	return l.Center.
		Add(l.U.Mul((xi1 - 0.5) * l.Width)).
		Add(l.V.Mul((xi2 - 0.5) * l.Height))
}

// PDF returns the uniform area-sampling probability density, 1/(width*height).
func (l *AreaLight) PDF() float32 {
	return 1 / (l.Width * l.Height)
}

// GetNormal returns the unit vector orthogonal to U and V, normalise(U x V).
// When U and V are not orthogonal it logs a warning and still returns the
// normalised cross product.
func (l *AreaLight) GetNormal() core.Vec3 {
	n := l.U.Cross(l.V)
	if math32.Abs(l.U.Dot(l.V)) > 1e-3 {
		glog.Warningf("area light U,V are not orthogonal (dot=%v); normal still computed from U x V", l.U.Dot(l.V))
	}
	return n.Normalize()
}

// Area returns the light's surface area, used by the path tracer to
// normalise the direct-lighting estimator.
func (l *AreaLight) Area() float32 { return l.Width * l.Height }
