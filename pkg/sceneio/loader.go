package sceneio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/cwallin/lumentrace/pkg/camera"
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/geometry"
	"github.com/cwallin/lumentrace/pkg/lights"
	"github.com/cwallin/lumentrace/pkg/material"
	"github.com/cwallin/lumentrace/pkg/ppmio"
	"github.com/cwallin/lumentrace/pkg/scene"
)

// textureCache avoids re-decoding the same PPM texture when several
// materials reference it. Textures are loaded once and shared immutably.
type textureCache struct {
	textureDir string
	loaded     map[string]*material.Texture
}

// LoadFile reads and parses path as a scene JSON document, resolving
// textures relative to textureDir (conventionally "textures/").
func LoadFile(path, textureDir string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.InputError{Op: "LoadFile", Detail: err.Error()}
	}
	return Load(data, textureDir)
}

// Load parses a scene JSON document into a fully built scene.Scene,
// including the BVH.
func Load(data []byte, textureDir string) (*scene.Scene, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, core.InputError{Op: "Load", Detail: "malformed JSON: " + err.Error()}
	}

	mode, err := parseRenderMode(doc.RenderMode)
	if err != nil {
		return nil, err
	}

	nbounces := 1
	if doc.NBounces != nil {
		nbounces = *doc.NBounces
	}

	cam, err := buildCamera(doc.Camera, mode)
	if err != nil {
		return nil, err
	}

	cache := &textureCache{textureDir: textureDir, loaded: map[string]*material.Texture{}}

	shapes, err := buildShapes(doc.Scene.Shapes, cache)
	if err != nil {
		return nil, err
	}

	lightList := buildLights(doc.Scene.LightSources)

	background := vecToColour(doc.Scene.BackgroundColor).Mul(255)

	glog.Infof("scene loaded: mode=%v shapes=%d lights=%d nbounces=%d", mode, len(shapes), len(lightList), nbounces)

	s := scene.New(mode, nbounces, background, cam, shapes, lightList, doc.Camera.Width, doc.Camera.Height, orDefault(doc.Camera.Exposure, 1.0))
	return s, nil
}

func parseRenderMode(s string) (scene.RenderMode, error) {
	switch s {
	case "binary":
		return scene.Binary, nil
	case "phong":
		return scene.Phong, nil
	case "pathtracer":
		return scene.Path, nil
	default:
		return 0, core.InputError{Op: "parseRenderMode", Detail: fmt.Sprintf("unknown render mode %q", s)}
	}
}

func buildCamera(doc cameraDoc, mode scene.RenderMode) (camera.Camera, error) {
	position := arrToVec(doc.Position)
	lookAt := arrToVec(doc.LookAt)
	up := arrToVec(doc.UpVector)

	cameraType := doc.Type
	if mode == scene.Path && cameraType == "" {
		cameraType = "aperture" // aperture implied for the path tracer
	}

	switch cameraType {
	case "", "pinhole":
		return camera.NewPinhole(position, lookAt, up, doc.Width, doc.Height, doc.FOV), nil
	case "aperture":
		aperture := orDefault(ptrOrZero(doc.ApertureSize), 0)
		focal := orDefault(ptrOrZero(doc.FocalDistance), 1)
		return camera.NewAperture(position, lookAt, up, doc.Width, doc.Height, doc.FOV, aperture, focal), nil
	default:
		return nil, core.InputError{Op: "buildCamera", Detail: fmt.Sprintf("unknown camera type %q", cameraType)}
	}
}

func buildLights(docs []lightDoc) []lights.Light {
	var out []lights.Light
	for _, d := range docs {
		intensity := vecToColour(d.Intensity)
		switch d.Type {
		case "pointlight":
			out = append(out, lights.NewPointLight(arrToVec(d.Position), intensity))
		case "arealight":
			out = append(out, lights.NewAreaLight(arrToVec(d.Position), arrToVec(d.U), arrToVec(d.V), d.Width, d.Height, intensity))
		default:
			glog.Warningf("buildLights: unknown light type %q, skipping", d.Type)
		}
	}
	return out
}

func buildShapes(docs []shapeDoc, cache *textureCache) ([]geometry.Shape, error) {
	shapes := make([]geometry.Shape, 0, len(docs))
	for _, d := range docs {
		mat, err := buildMaterial(d.Material, cache)
		if err != nil {
			return nil, err
		}

		switch d.Type {
		case "sphere":
			shapes = append(shapes, geometry.NewSphere(arrToVec(d.Center), d.Radius, mat))
		case "cylinder":
			shapes = append(shapes, geometry.NewCylinder(arrToVec(d.Center), arrToVec(d.Axis), d.Radius, d.Height, mat))
		case "triangle":
			v0, v1, v2 := arrToVec(d.V0), arrToVec(d.V1), arrToVec(d.V2)
			shapes = append(shapes, geometry.NewTriangle(v0, v1, v2, geometry.UV2{}, geometry.UV2{U: 1}, geometry.UV2{V: 1}, mat))
		default:
			return nil, core.InputError{Op: "buildShapes", Detail: fmt.Sprintf("unknown shape type %q", d.Type)}
		}
	}
	return shapes, nil
}

func buildMaterial(d materialDoc, cache *textureCache) (material.Material, error) {
	m := material.DefaultMaterial()

	if d.Kd != nil {
		m.Kd = *d.Kd
	}
	if d.Ks != nil {
		m.Ks = *d.Ks
	}
	if d.SpecularExponent != nil {
		m.SpecularExponent = *d.SpecularExponent
	}
	if d.DiffuseColor != nil {
		m.DiffuseColor = vecToColour(*d.DiffuseColor).Mul(255)
	}
	if d.SpecularColor != nil {
		m.SpecularColor = vecToColour(*d.SpecularColor).Mul(255)
	}
	if d.IsReflective != nil {
		m.IsReflective = *d.IsReflective
	}
	if d.Reflectivity != nil {
		m.Reflectivity = *d.Reflectivity
	}
	if d.IsRefractive != nil {
		m.IsRefractive = *d.IsRefractive
	}
	if d.RefractiveIndex != nil {
		m.RefractiveIndex = *d.RefractiveIndex
	}
	if d.Texture != nil && *d.Texture != "" {
		tex, err := cache.load(*d.Texture)
		if err != nil {
			return material.Material{}, err
		}
		m.Texture = tex
	}

	return m, nil
}

func (c *textureCache) load(stem string) (*material.Texture, error) {
	if tex, ok := c.loaded[stem]; ok {
		return tex, nil
	}

	path := filepath.Join(c.textureDir, stem+".ppm")
	width, height, pixels, err := ppmio.ReadPPMFile(path)
	if err != nil {
		return nil, core.InputError{Op: "textureCache.load", Detail: fmt.Sprintf("texture %q: %v", path, err)}
	}

	tex := material.NewTexture(width, height, pixels)
	c.loaded[stem] = tex
	return tex, nil
}

func arrToVec(a [3]float32) core.Vec3   { return core.NewVec3(a[0], a[1], a[2]) }
func vecToColour(a [3]float32) core.Colour { return core.NewColour(a[0], a[1], a[2]) }

func orDefault(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}

func ptrOrZero(p *float32) float32 {
	if p == nil {
		return 0
	}
	return *p
}
