package render

import (
	"testing"

	"github.com/cwallin/lumentrace/pkg/camera"
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/geometry"
	"github.com/cwallin/lumentrace/pkg/lights"
	"github.com/cwallin/lumentrace/pkg/material"
	"github.com/cwallin/lumentrace/pkg/scene"
)

// TestPhongReflection reproduces scenario 3: a primary ray that hits a
// perfectly reflective sphere comes back with the colour of whatever lies
// along the true mirrored direction, not black and not the background.
// The target is placed exactly along reflect()'s own output so the test
// exercises the renderer's real reflection geometry rather than a
// hand-derived angle.
func TestPhongReflection(t *testing.T) {
	hitPoint := core.NewVec3(0, 1, -3) // top of the mirror sphere below
	normal := core.NewVec3(0, 1, 0)
	incoming := core.NewVec3(1, -1, 0).Normalize()
	reflected := reflect(incoming, normal)

	mirrorMat := material.DefaultMaterial()
	mirrorMat.IsReflective = true
	mirrorMat.Reflectivity = 1.0
	mirror := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, mirrorMat)

	targetMat := material.DefaultMaterial()
	targetMat.DiffuseColor = core.NewColour(10, 200, 10)
	targetCenter := hitPoint.Add(reflected.Mul(5))
	target := geometry.NewSphere(targetCenter, 1, targetMat)

	background := core.NewColour(1, 1, 1)
	cam := camera.NewPinhole(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 10, 10, 60)
	s := scene.New(scene.Phong, 2, background, cam, []geometry.Shape{mirror, target}, nil, 10, 10, 1)

	rayOrigin := hitPoint.Sub(incoming.Mul(5))
	colour := tracePhong(s, core.NewRay(rayOrigin, incoming), 0)

	if colour == core.Black {
		t.Errorf("reflected colour is black, want the mirrored target's shading")
	}
	if colour == background {
		t.Errorf("reflected colour equals background, want the mirrored target's shading")
	}
	if colour.G <= colour.R && colour.G <= colour.B {
		t.Errorf("reflected colour = %+v, want the target's green tint to dominate", colour)
	}
}

// TestPhongRefractionSnell reproduces scenario 4: a glass sphere centred on
// the camera axis shows the back-wall's hue straight through (zero net
// deviation for a ray through the sphere's centre), while a ray well
// outside the sphere's silhouette shows the background untouched.
func TestPhongRefractionSnell(t *testing.T) {
	glass := material.DefaultMaterial()
	glass.IsRefractive = true
	glass.RefractiveIndex = 1.5
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, glass)

	wallMat := material.DefaultMaterial()
	wallMat.DiffuseColor = core.NewColour(200, 40, 40)
	wall := geometry.NewTriangle(
		core.NewVec3(-1.5, -1.5, -10), core.NewVec3(1.5, -1.5, -10), core.NewVec3(0, 1.5, -10),
		geometry.UV2{}, geometry.UV2{}, geometry.UV2{}, wallMat,
	)

	background := core.NewColour(1, 1, 1)
	cam := camera.NewPinhole(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 100, 100, 60)
	s := scene.New(scene.Phong, 3, background, cam, []geometry.Shape{sphere, wall}, []lights.Light{}, 100, 100, 1)

	pixels := Render(s, 0)

	throughSphere := pixels[50*s.Width+50]
	if throughSphere == background {
		t.Errorf("pixel through sphere centre equals background, want the attenuated wall colour")
	}

	outsideEdge := pixels[0]
	if outsideEdge != background {
		t.Errorf("pixel outside sphere edge = %+v, want background %+v", outsideEdge, background)
	}
}
