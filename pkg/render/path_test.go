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

// TestPhotonDeposition reproduces scenario 5: after a 10,000-photon
// emission pass from a small area light close above a diffuse floor, a
// radius-0.2 query directly below the light finds at least 100 photons.
func TestPhotonDeposition(t *testing.T) {
	floorMat := material.DefaultMaterial()
	var zero geometry.UV2
	floor := []geometry.Shape{
		geometry.NewTriangle(
			core.NewVec3(-20, 0, -20), core.NewVec3(20, 0, -20), core.NewVec3(20, 0, 20),
			zero, zero, zero, floorMat,
		),
		geometry.NewTriangle(
			core.NewVec3(-20, 0, -20), core.NewVec3(20, 0, 20), core.NewVec3(-20, 0, 20),
			zero, zero, zero, floorMat,
		),
	}

	light := lights.NewAreaLight(
		core.NewVec3(0, 0.5, -3),
		core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1),
		0.2, 0.2,
		core.NewColour(255, 255, 255),
	)

	cam := camera.NewPinhole(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -3), core.NewVec3(0, 1, 0), 10, 10, 60)
	s := scene.New(scene.Path, 2, core.Black, cam, floor, []lights.Light{light}, 10, 10, 1)
	s.PhotonCount = 10000

	pm := BuildPhotonMap(s, core.NewRNG(42))

	found := pm.RangeQuery(core.NewVec3(0, 0, -3), 0.2)
	if len(found) < 100 {
		t.Errorf("photon query found %d photons, want >= 100", len(found))
	}
}
