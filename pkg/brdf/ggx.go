// Package brdf implements the Cook-Torrance microfacet BRDF with a GGX
// normal distribution, Schlick Fresnel, and Smith-Schlick geometry term,
// plus GGX half-vector importance sampling and its PDF.
package brdf

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/core"
)

// minRoughness floors the roughness parameter so alpha never collapses to
// a singular mirror distribution.
const minRoughness = 0.05

// Alpha converts a roughness in [0,1] to the GGX alpha parameter,
// alpha = roughness^2, flooring roughness at minRoughness first.
func Alpha(roughness float32) float32 {
	if roughness < minRoughness {
		roughness = minRoughness
	}
	return roughness * roughness
}

// D evaluates the GGX normal distribution term, clamped to [0,1].
func D(nDotH, alpha float32) float32 {
	a2 := alpha * alpha
	denom := nDotH*nDotH*(a2-1) + 1
	d := a2 / (math32.Pi * denom * denom)
	return clamp01(d)
}

// F evaluates Schlick's Fresnel approximation.
func F(hDotV float32, f0 core.Colour) core.Colour {
	hv := hDotV
	if hv < 0 {
		hv = 0
	}
	pow5 := (1 - hv)
	pow5 = pow5 * pow5 * pow5 * pow5 * pow5
	return f0.Add(core.Colour{R: 1, G: 1, B: 1}.Sub(f0).Mul(pow5))
}

// g1 evaluates the Smith-Schlick geometry term for a single direction.
func g1(nDotX, k float32) float32 {
	return nDotX / (nDotX*(1-k) + k)
}

// G evaluates the combined Smith-Schlick geometry term G1(N,V)*G1(N,L).
func G(nDotV, nDotL, roughness float32) float32 {
	k := (roughness + 1) * (roughness + 1) / 8
	return g1(nDotV, k) * g1(nDotL, k)
}

// Evaluate computes the full Cook-Torrance f_r = diffuse + specular for the
// given normal, view, and light directions and a base (diffuse) colour.
func Evaluate(n, v, l core.Vec3, base core.Colour, roughness float32, f0 core.Colour) core.Colour {
	nDotL := n.Dot(l)
	nDotV := n.Dot(v)
	if nDotL <= 0 || nDotV <= 0 {
		return core.Black
	}

	h := l.Add(v).Normalize()
	nDotH := clamp01(n.Dot(h))
	hDotV := h.Dot(v)

	alpha := Alpha(roughness)
	d := D(nDotH, alpha)
	f := F(hDotV, f0)
	g := G(nDotV, nDotL, roughness)

	specDenom := maxf(4*nDotL*nDotV, 1e-7)
	specular := f.Mul(d * g / specDenom)
	diffuse := base.Mul(nDotL / math32.Pi)

	return diffuse.Add(specular)
}

// SampleHalfVector importance-samples a GGX half-vector around normal n
// via a spherical-coordinate construction, transformed into world space
// via a tangent basis built from n.
func SampleHalfVector(n core.Vec3, roughness float32, rng *core.RNG) core.Vec3 {
	alpha := Alpha(roughness)
	xi1, xi2 := rng.Vec2()

	cosTheta := math32.Sqrt((1 - xi1) / (1 + (alpha*alpha-1)*xi1))
	sinTheta := math32.Sqrt(maxf(0, 1-cosTheta*cosTheta))
	phi := 2 * math32.Pi * xi2

	hLocalX := sinTheta * math32.Cos(phi)
	hLocalY := sinTheta * math32.Sin(phi)
	hLocalZ := cosTheta

	tangent, bitangent := core.TangentBasis(n)
	return tangent.Mul(hLocalX).Add(bitangent.Mul(hLocalY)).Add(n.Mul(hLocalZ))
}

// PDF returns the GGX half-vector sampling PDF, clamped to [0,1].
func PDF(n, h core.Vec3, roughness float32) float32 {
	nDotH := n.Dot(h)
	alpha := Alpha(roughness)
	d := D(clamp01(nDotH), alpha)
	pdf := d * nDotH / maxf(4*absf(nDotH), 1e-7)
	return clamp01(pdf)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
