// Package scene holds the renderer's fully-built Scene value: the typed,
// immutable result of loading a JSON document (see pkg/sceneio), ready for
// a renderer to trace against.
package scene

import (
	"github.com/cwallin/lumentrace/pkg/camera"
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/geometry"
	"github.com/cwallin/lumentrace/pkg/lights"
)

// RenderMode selects which of the three renderers a scene is traced with.
type RenderMode int

const (
	Binary RenderMode = iota
	Phong
	Path
)

// Scene is immutable after construction: every render worker reads it
// concurrently without synchronisation.
type Scene struct {
	Mode       RenderMode
	NBounces   int
	Background core.Colour
	Camera     camera.Camera
	Shapes     []geometry.Shape
	Lights     []lights.Light
	Width      int
	Height     int
	Exposure   float32

	// Path-tracer specific tuning, ignored by Binary and Phong.
	PhotonCount    int
	SamplesPerPixel int
	LightSamples   int
	BRDFSamples    int

	bvh *geometry.BVH
}

// New builds a scene and its BVH. The BVH is built once here and read
// concurrently by every render worker thereafter.
func New(mode RenderMode, nbounces int, background core.Colour, cam camera.Camera, shapes []geometry.Shape, lightList []lights.Light, width, height int, exposure float32) *Scene {
	return &Scene{
		Mode:            mode,
		NBounces:        nbounces,
		Background:      background,
		Camera:          cam,
		Shapes:          shapes,
		Lights:          lightList,
		Width:           width,
		Height:          height,
		Exposure:        exposure,
		PhotonCount:     100000,
		SamplesPerPixel: 16,
		LightSamples:    8,
		BRDFSamples:     4,
		bvh:             geometry.NewBVH(shapes),
	}
}

// Intersect delegates to the scene's BVH.
func (s *Scene) Intersect(ray core.Ray) geometry.Intersection {
	return s.bvh.Intersect(ray)
}

// AreaLights returns the subset of Lights that are area lights, used by
// the path tracer's direct-lighting estimator and photon emission pass.
func (s *Scene) AreaLights() []*lights.AreaLight {
	var out []*lights.AreaLight
	for _, l := range s.Lights {
		if al, ok := l.(*lights.AreaLight); ok {
			out = append(out, al)
		}
	}
	return out
}
