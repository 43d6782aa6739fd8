package render

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/geometry"
	"github.com/cwallin/lumentrace/pkg/lights"
	"github.com/cwallin/lumentrace/pkg/material"
	"github.com/cwallin/lumentrace/pkg/scene"
)

// shadowBias offsets shadow and secondary rays along the surface normal to
// avoid immediate self-intersection.
const shadowBias = 1e-5

// ambientOnlyShadowFactor is the flat ambient-only term applied when a
// shadow ray is occluded.
const ambientOnlyShadowFactor = 0.05

// tracePhong recursively shades a Whitted-style ray. depth counts the
// primary ray as 0; recursion stops once depth exceeds the scene's bounce
// budget.
func tracePhong(s *scene.Scene, ray core.Ray, depth int) core.Colour {
	if depth > s.NBounces {
		return s.Background
	}

	hit := s.Intersect(ray)
	if !hit.Hit {
		return s.Background
	}

	mat := hit.Shape.Material()
	u, v := hit.Shape.UVAt(hit.Point)
	base := mat.DiffuseAt(u, v)

	n := hit.Normal
	viewDir := ray.Direction.Negate()

	colour := base.Mul(0.25) // ambient term

	for _, light := range s.Lights {
		colour = colour.Add(phongDirect(s, hit.Point, n, viewDir, base, mat, light))
	}

	if mat.IsReflective || mat.IsRefractive {
		colour = colour.Add(phongSpecularTransport(s, ray, hit, mat, n, depth))
	}

	return colour
}

// phongDirect evaluates one light's diffuse+specular contribution at a hit
// point, including the shadow test.
func phongDirect(s *scene.Scene, point, n, viewDir core.Vec3, base core.Colour, mat material.Material, light lights.Light) core.Colour {
	toLight := light.Position().Sub(point)
	dist := toLight.Length()
	if dist < core.EPSILON {
		return core.Black
	}
	l := toLight.Div(dist)

	shadowOrigin := point.Add(n.Mul(shadowBias))
	shadowHit := s.Intersect(core.NewRay(shadowOrigin, l))
	if shadowHit.Hit && shadowHit.T < dist-core.EPSILON {
		return base.Mul(ambientOnlyShadowFactor)
	}

	nDotL := maxf32(n.Dot(l), 0)
	h := l.Add(viewDir).Normalize()
	nDotH := maxf32(n.Dot(h), 0)

	factor := clampColour01(light.Intensity())

	diffuse := base.MulVec(factor).Mul(nDotL * mat.Kd)
	specular := mat.SpecularColor.MulVec(factor).Mul(math32.Pow(nDotH, float32(mat.SpecularExponent)) * mat.Ks * 0.4)
	return diffuse.Add(specular)
}

// phongSpecularTransport handles the reflective/refractive bounce at a
// hit, blending by Schlick Fresnel when both are present.
func phongSpecularTransport(s *scene.Scene, ray core.Ray, hit geometry.Intersection, mat material.Material, n core.Vec3, depth int) core.Colour {
	entering := ray.Direction.Dot(n) < 0
	normal := n
	n1, n2 := float32(1), mat.RefractiveIndex
	if !entering {
		normal = n.Negate()
		n1, n2 = mat.RefractiveIndex, 1
	}
	cosi := clampf(-ray.Direction.Dot(normal), 0, 1)
	fresnel := schlickReflectance(cosi, n1, n2)

	var reflColour, refrColour core.Colour
	tir := false

	if mat.IsReflective || mat.IsRefractive {
		reflDir := reflect(ray.Direction, normal)
		reflOrigin := hit.Point.Add(normal.Mul(shadowBias))
		reflColour = tracePhong(s, core.NewRay(reflOrigin, reflDir), depth+1)
	}

	if mat.IsRefractive {
		eta := n1 / n2
		refrDir, ok := refract(ray.Direction, normal, eta)
		if !ok {
			tir = true
		} else {
			refrOrigin := hit.Point.Sub(normal.Mul(shadowBias))
			transmitted := tracePhong(s, core.NewRay(refrOrigin, refrDir), depth+1)
			refrColour = transmitted.MulVec(mat.DiffuseColor.Div(255))
		}
	}

	// Fresnel only blends reflection and refraction when both are present;
	// a purely reflective or purely refractive material uses its own
	// coefficient (or full transmission) directly.
	switch {
	case mat.IsReflective && mat.IsRefractive:
		if tir {
			return reflColour
		}
		return reflColour.Mul(fresnel).Add(refrColour.Mul(1 - fresnel))
	case mat.IsReflective:
		return reflColour.Mul(mat.Reflectivity)
	case mat.IsRefractive:
		if tir {
			return reflColour
		}
		return refrColour
	default:
		return core.Black
	}
}

func clampColour01(c core.Colour) core.Colour {
	return core.Colour{
		R: clampf(c.R/255, 0, 1),
		G: clampf(c.G/255, 0, 1),
		B: clampf(c.B/255, 0, 1),
	}
}
