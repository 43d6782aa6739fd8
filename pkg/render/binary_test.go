package render

import (
	"testing"

	"github.com/cwallin/lumentrace/pkg/camera"
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/geometry"
	"github.com/cwallin/lumentrace/pkg/material"
	"github.com/cwallin/lumentrace/pkg/scene"
)

func buildBinaryScene(background core.Colour) *scene.Scene {
	mat := material.DefaultMaterial()
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, mat)
	cam := camera.NewPinhole(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 100, 100, 90)
	return scene.New(scene.Binary, 1, background, cam, []geometry.Shape{sphere}, nil, 100, 100, 1)
}

// TestBinarySingleSphere reproduces scenario 1: the centre pixel, which
// lies inside the sphere's silhouette, is pure red, and the far corner,
// which misses the sphere, is black (the background).
func TestBinarySingleSphere(t *testing.T) {
	s := buildBinaryScene(core.Black)
	pixels := Render(s, 0)

	at := func(x, y int) core.Colour { return pixels[y*s.Width+x] }

	centre := at(50, 50)
	if centre.R != 255 || centre.G != 0 || centre.B != 0 {
		t.Errorf("centre pixel = %+v, want pure red", centre)
	}

	corner := at(0, 0)
	if corner != core.Black {
		t.Errorf("corner pixel = %+v, want black", corner)
	}
}

// TestBinaryRayMisses reproduces scenario 2: a ray that misses all
// geometry reports the scene's background colour unchanged.
func TestBinaryRayMisses(t *testing.T) {
	background := core.NewColour(10, 20, 30)
	s := buildBinaryScene(background)
	pixels := Render(s, 0)

	corner := pixels[0]
	if corner != background {
		t.Errorf("corner pixel = %+v, want background %+v", corner, background)
	}
}
