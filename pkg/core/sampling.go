package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// RNG is the per-worker source of randomness. Each render worker owns one,
// seeded independently, so the stream consumed per pixel is reentrant and
// reproducible given the seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG builds an RNG from a seed. Workers derive their seed from a global
// seed plus their row index, per the concurrency model.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float32 returns a uniform random value in [0,1).
func (g *RNG) Float32() float32 { return g.r.Float32() }

// Float32Range returns a uniform random value in [lo,hi).
func (g *RNG) Float32Range(lo, hi float32) float32 { return lo + (hi-lo)*g.Float32() }

// Vec2 returns two independent uniform samples in [0,1).
func (g *RNG) Vec2() (float32, float32) { return g.Float32(), g.Float32() }

// UnitDisk returns a uniformly sampled point within the unit disk, used by
// the aperture camera for lens-point sampling.
func (g *RNG) UnitDisk() (x, y float32) {
	for {
		x = 2*g.Float32() - 1
		y = 2*g.Float32() - 1
		if x*x+y*y <= 1 {
			return
		}
	}
}

// CosineHemisphere samples a cosine-weighted random direction in the
// hemisphere around normal, building a tangent basis perpendicular to
// normal the same way for every caller in the renderer.
func (g *RNG) CosineHemisphere(normal Vec3) Vec3 {
	xi1, xi2 := g.Vec2()
	r := math32.Sqrt(xi1)
	theta := 2 * math32.Pi * xi2
	x := r * math32.Cos(theta)
	y := r * math32.Sin(theta)
	z := math32.Sqrt(maxf(0, 1-xi1))

	t, b := TangentBasis(normal)
	return t.Mul(x).Add(b.Mul(y)).Add(normal.Mul(z))
}

// TangentBasis returns two vectors orthogonal to each other and to normal,
// forming a right-handed basis (tangent, bitangent, normal). The tangent is
// built from the X axis, or from the Y axis when |normal.X| > 0.99, the same
// guard used throughout the renderer's local-frame constructions.
func TangentBasis(normal Vec3) (tangent, bitangent Vec3) {
	var helper Vec3
	if math32.Abs(normal.X) > 0.99 {
		helper = Vec3{0, 1, 0}
	} else {
		helper = Vec3{1, 0, 0}
	}
	tangent = normal.Cross(helper).Normalize()
	bitangent = normal.Cross(tangent)
	return
}
