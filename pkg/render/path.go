// Package render implements the three selectable renderers (Binary, Phong,
// Path) and the row-parallel rendering driver that dispatches pixels to
// them.
package render

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/brdf"
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/geometry"
	"github.com/cwallin/lumentrace/pkg/lights"
	"github.com/cwallin/lumentrace/pkg/material"
	"github.com/cwallin/lumentrace/pkg/photonmap"
	"github.com/cwallin/lumentrace/pkg/scene"
)

// photonGatherRadius bounds the photon-map query used for indirect
// illumination gathering.
const photonGatherRadius = 0.1

// indirectCap scales the photon-gather estimate down to a small, plausible
// fraction of a pixel's radiance.
const indirectCap = 0.01

// BuildPhotonMap runs the emission pass for every area light in the scene
// and returns the k-d tree built over the deposited photons. Run once per
// render, before the row-parallel primary pass starts.
func BuildPhotonMap(s *scene.Scene, rng *core.RNG) *photonmap.PhotonMap {
	var photons []photonmap.Photon
	for _, light := range s.AreaLights() {
		for i := 0; i < s.PhotonCount; i++ {
			emitPhoton(s, light, rng, &photons)
		}
	}
	return photonmap.NewPhotonMap(photons)
}

func emitPhoton(s *scene.Scene, light *lights.AreaLight, rng *core.RNG, photons *[]photonmap.Photon) {
	origin := light.SamplePoint(rng)
	normal := light.GetNormal()
	dir := rng.CosineHemisphere(normal)
	ray := core.NewRay(origin.Add(normal.Mul(shadowBias)), dir)
	depositPhoton(s, ray, light.Intensity(), 0, photons)
}

// depositPhoton traces a single photon through the scene, storing it at
// the first diffuse surface it reaches. Reflective surfaces continue the
// photon scaled by reflectivity; refractive surfaces continue it scaled by
// (1-reflectivity), or reflect on total internal reflection.
func depositPhoton(s *scene.Scene, ray core.Ray, energy core.Colour, bounce int, photons *[]photonmap.Photon) {
	if bounce > s.NBounces || energy.BelowThreshold() {
		return
	}

	hit := s.Intersect(ray)
	if !hit.Hit {
		return
	}

	mat := hit.Shape.Material()
	n := hit.Normal

	if !mat.IsReflective && !mat.IsRefractive {
		*photons = append(*photons, photonmap.Photon{Position: hit.Point, Incoming: ray.Direction, Energy: energy})
		return
	}

	if mat.IsReflective {
		reflDir := reflect(ray.Direction, n)
		origin := hit.Point.Add(n.Mul(shadowBias))
		depositPhoton(s, core.NewRay(origin, reflDir), energy.Mul(mat.Reflectivity), bounce+1, photons)
		return
	}

	entering := ray.Direction.Dot(n) < 0
	normal := n
	n1, n2 := float32(1), mat.RefractiveIndex
	if !entering {
		normal = n.Negate()
		n1, n2 = mat.RefractiveIndex, 1
	}
	refrDir, ok := refract(ray.Direction, normal, n1/n2)
	if !ok {
		reflDir := reflect(ray.Direction, normal)
		origin := hit.Point.Add(normal.Mul(shadowBias))
		depositPhoton(s, core.NewRay(origin, reflDir), energy, bounce+1, photons)
		return
	}
	origin := hit.Point.Sub(normal.Mul(shadowBias))
	depositPhoton(s, core.NewRay(origin, refrDir), energy.Mul(1-mat.Reflectivity), bounce+1, photons)
}

// tracePath recursively evaluates the Monte-Carlo path tracer's radiance
// estimate along ray.
func tracePath(s *scene.Scene, pm *photonmap.PhotonMap, ray core.Ray, depth int, rng *core.RNG) core.Colour {
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

	colour := directAreaLighting(s, hit.Point, n, viewDir, base, mat, rng)

	if !mat.IsReflective && !mat.IsRefractive {
		colour = colour.Add(indirectFromPhotons(pm, hit.Point))
	}

	if depth > 2 {
		p := clampf(maxf32(mat.Reflectivity, mat.Kd), 0.1, 0.95)
		if rng.Float32() > p {
			return colour
		}
		colour = colour.Div(p)
	}

	if mat.IsReflective || mat.IsRefractive {
		colour = colour.Add(pathSpecularTransport(s, pm, ray, hit, mat, n, depth, rng))
	}

	return colour
}

// directAreaLighting estimates the direct-lighting integral over every
// area light via LightSamples sub-samples per light.
func directAreaLighting(s *scene.Scene, point, n, viewDir core.Vec3, base core.Colour, mat material.Material, rng *core.RNG) core.Colour {
	var total core.Colour
	for _, light := range s.AreaLights() {
		var sum core.Colour
		for i := 0; i < s.LightSamples; i++ {
			lp := light.SamplePoint(rng)
			toLight := lp.Sub(point)
			dist := toLight.Length()
			if dist < core.EPSILON {
				continue
			}
			l := toLight.Div(dist)

			shadowOrigin := point.Add(n.Mul(shadowBias))
			shadowHit := s.Intersect(core.NewRay(shadowOrigin, l))
			if shadowHit.Hit && shadowHit.T < dist-core.EPSILON {
				continue
			}

			nDotL := maxf32(n.Dot(l), 0)
			if nDotL <= 0 {
				continue
			}
			r := n.Mul(2 * n.Dot(l)).Sub(l)
			vDotR := maxf32(viewDir.Dot(r), 0)

			intensity := light.Intensity()
			diffuse := base.Mul(nDotL).MulVec(intensity)
			specular := mat.SpecularColor.Mul(math32.Pow(vDotR, float32(mat.SpecularExponent))).MulVec(intensity)
			sum = sum.Add(diffuse).Add(specular)
		}
		area := light.Area()
		if area > core.EPSILON && s.LightSamples > 0 {
			total = total.Add(sum.Div(area * float32(s.LightSamples)))
		}
	}
	return total
}

// indirectFromPhotons gathers a radius-bounded photon-map estimate of
// indirect illumination at point.
func indirectFromPhotons(pm *photonmap.PhotonMap, point core.Vec3) core.Colour {
	photons := pm.RangeQuery(point, photonGatherRadius)
	if len(photons) == 0 {
		return core.Black
	}

	var sum core.Colour
	rSq := float32(photonGatherRadius * photonGatherRadius)
	for _, p := range photons {
		d2 := p.Position.Sub(point).LengthSquared()
		weight := 1 - d2/rSq
		if weight <= 0 {
			continue
		}
		sum = sum.Add(p.Energy.Mul(weight))
	}

	indirect := sum.Mul(1 / (math32.Pi * rSq)).Clamp()
	return indirect.Mul(indirectCap)
}

// pathSpecularTransport handles the GGX-sampled reflective/refractive
// bounce at a hit, blending by Schlick Fresnel when both are present.
func pathSpecularTransport(s *scene.Scene, pm *photonmap.PhotonMap, ray core.Ray, hit geometry.Intersection, mat material.Material, n core.Vec3, depth int, rng *core.RNG) core.Colour {
	viewDir := ray.Direction.Negate()
	entering := ray.Direction.Dot(n) < 0
	normal := n
	n1, n2 := float32(1), mat.RefractiveIndex
	if !entering {
		normal = n.Negate()
		n1, n2 = mat.RefractiveIndex, 1
	}
	cosi := clampf(-ray.Direction.Dot(normal), 0, 1)
	fresnel := schlickReflectance(cosi, n1, n2)

	var reflColour core.Colour
	if mat.IsReflective || mat.IsRefractive {
		reflColour = ggxReflection(s, pm, hit, mat, normal, viewDir, depth, rng)
	}

	var refrColour core.Colour
	tir := false
	if mat.IsRefractive {
		refrDir, ok := refract(ray.Direction, normal, n1/n2)
		if !ok {
			tir = true
		} else {
			refrOrigin := hit.Point.Sub(normal.Mul(shadowBias))
			transmitted := tracePath(s, pm, core.NewRay(refrOrigin, refrDir), depth+1, rng)
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

// ggxReflection importance-samples BRDFSamples half-vectors around normal
// and averages the Cook-Torrance-weighted incoming radiance.
func ggxReflection(s *scene.Scene, pm *photonmap.PhotonMap, hit geometry.Intersection, mat material.Material, normal, viewDir core.Vec3, depth int, rng *core.RNG) core.Colour {
	samples := s.BRDFSamples
	if samples <= 0 {
		return core.Black
	}
	roughness := roughnessFromMaterial(mat)
	f0 := mat.SpecularColor.Div(255)

	var sum core.Colour
	origin := hit.Point.Add(normal.Mul(shadowBias))
	for i := 0; i < samples; i++ {
		h := brdf.SampleHalfVector(normal, roughness, rng)
		l := h.Mul(2 * viewDir.Dot(h)).Sub(viewDir)
		nDotL := normal.Dot(l)
		if nDotL <= 0 {
			continue
		}
		pdf := brdf.PDF(normal, h, roughness)
		if pdf <= 1e-7 {
			continue
		}
		f := brdf.Evaluate(normal, viewDir, l, core.Black, roughness, f0)
		weight := f.Mul(nDotL / pdf)

		incoming := tracePath(s, pm, core.NewRay(origin, l), depth+1, rng)
		sum = sum.Add(incoming.MulVec(weight))
	}
	return sum.Div(float32(samples))
}

// roughnessFromMaterial derives a GGX roughness from the material's
// Blinn-Phong specular exponent via the standard Phong-to-Beckmann
// conversion, floored by brdf.Alpha's own minimum.
func roughnessFromMaterial(mat material.Material) float32 {
	n := float32(mat.SpecularExponent)
	return clampf(math32.Sqrt(2/(n+2)), 0.05, 1)
}
