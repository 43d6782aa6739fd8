package render

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/core"
)

// schlickReflectance approximates the Fresnel reflectance at an interface
// between two media of refractive index n1 (incident side) and n2
// (transmission side), given the cosine of the incident angle.
func schlickReflectance(cosi, n1, n2 float32) float32 {
	r0 := (n1 - n2) / (n1 + n2)
	r0 *= r0
	x := 1 - cosi
	x5 := x * x * x * x * x
	return r0 + (1-r0)*x5
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// reflect mirrors d about n: r = d - 2*(d.n)*n.
func reflect(d, n core.Vec3) core.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

// refract implements Snell's law for a normalised incident direction d and
// a normal n oriented against d (i.e. n.Dot(d) < 0), reporting total
// internal reflection via the second return value.
func refract(d, n core.Vec3, eta float32) (core.Vec3, bool) {
	cosi := clampf(-d.Dot(n), -1, 1)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}
	return d.Mul(eta).Add(n.Mul(eta*cosi - math32.Sqrt(k))).Normalize(), true
}
