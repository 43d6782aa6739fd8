// Package material holds the renderer's material and texture model: a
// single immutable coefficient bundle shared by every shape that
// references it, plus bilinearly-sampled textures.
package material

import "github.com/cwallin/lumentrace/pkg/core"

// Material bundles the Blinn-Phong/Cook-Torrance coefficients a shape shades
// with. Materials are built once during scene load and never mutated.
type Material struct {
	Kd               float32
	Ks               float32
	SpecularExponent int
	DiffuseColor     core.Colour
	SpecularColor    core.Colour
	IsReflective     bool
	Reflectivity     float32
	IsRefractive     bool
	RefractiveIndex  float32
	Texture          *Texture // nil when the shape has no texture
}

// DefaultMaterial returns the material produced when a scene document omits
// the "material" object entirely, matching the JSON schema's defaults.
func DefaultMaterial() Material {
	return Material{
		Kd:               0.8,
		Ks:               0.2,
		SpecularExponent: 10,
		DiffuseColor:     core.NewColour(255, 255, 255),
		SpecularColor:    core.NewColour(255, 255, 255),
		IsReflective:     false,
		Reflectivity:     1.0,
		IsRefractive:     false,
		RefractiveIndex:  1.0,
	}
}

// DiffuseAt returns the diffuse colour to shade with at a given UV: the
// texture sample when present, otherwise the material's flat diffuse
// colour.
func (m Material) DiffuseAt(u, v float32) core.Colour {
	if m.Texture != nil {
		return m.Texture.Sample(u, v)
	}
	return m.DiffuseColor
}
