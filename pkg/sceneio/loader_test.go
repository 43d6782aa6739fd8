package sceneio

import (
	"path/filepath"
	"testing"

	"github.com/cwallin/lumentrace/pkg/camera"
	"github.com/cwallin/lumentrace/pkg/core"
	"github.com/cwallin/lumentrace/pkg/ppmio"
	"github.com/cwallin/lumentrace/pkg/scene"
)

const minimalSceneJSON = `{
	"rendermode": "phong",
	"nbounces": 4,
	"camera": {
		"type": "pinhole",
		"position": [0, 0, 0],
		"lookAt": [0, 0, -1],
		"upVector": [0, 1, 0],
		"width": 64,
		"height": 64,
		"fov": 60
	},
	"scene": {
		"backgroundcolor": [0.1, 0.1, 0.1],
		"lightsources": [
			{"type": "pointlight", "position": [0, 5, 0], "intensity": [1, 1, 1]},
			{"type": "arealight", "position": [0, 5, -3], "u": [1, 0, 0], "v": [0, 0, 1], "width": 1, "height": 1, "intensity": [1, 1, 1]}
		],
		"shapes": [
			{"type": "sphere", "center": [0, 0, -3], "radius": 1, "material": {"diffusecolor": [1, 0, 0]}},
			{"type": "cylinder", "center": [2, 0, -3], "axis": [0, 1, 0], "radius": 0.5, "height": 1},
			{"type": "triangle", "v0": [-5, -1, -5], "v1": [5, -1, -5], "v2": [0, 4, -5]}
		]
	}
}`

// TestLoadMinimalScene parses a document exercising every shape and light
// type and a mix of default and overridden material fields.
func TestLoadMinimalScene(t *testing.T) {
	s, err := Load([]byte(minimalSceneJSON), "")
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}

	if s.Mode != scene.Phong {
		t.Errorf("Mode = %v, want Phong", s.Mode)
	}
	if s.NBounces != 4 {
		t.Errorf("NBounces = %d, want 4", s.NBounces)
	}
	if s.Width != 64 || s.Height != 64 {
		t.Errorf("dimensions = %dx%d, want 64x64", s.Width, s.Height)
	}
	if len(s.Shapes) != 3 {
		t.Fatalf("len(Shapes) = %d, want 3", len(s.Shapes))
	}
	if len(s.Lights) != 2 {
		t.Fatalf("len(Lights) = %d, want 2", len(s.Lights))
	}
	if len(s.AreaLights()) != 1 {
		t.Errorf("len(AreaLights()) = %d, want 1", len(s.AreaLights()))
	}

	sphereMat := s.Shapes[0].Material()
	if sphereMat.DiffuseColor != core.NewColour(255, 0, 0) {
		t.Errorf("sphere diffuse colour = %+v, want red", sphereMat.DiffuseColor)
	}
	// Kd/Ks/reflectivity were omitted, so the sphere's material should fall
	// back to the document-wide defaults.
	if sphereMat.Kd != 0.8 || sphereMat.Ks != 0.2 {
		t.Errorf("sphere Kd/Ks = %v/%v, want defaults 0.8/0.2", sphereMat.Kd, sphereMat.Ks)
	}

	// The exposure key was omitted entirely, so it should resolve to 1.0 via
	// orDefault rather than the JSON zero value.
	if s.Exposure != 1.0 {
		t.Errorf("Exposure = %v, want default 1.0", s.Exposure)
	}
}

// TestLoadAperturePathTracer confirms that a pathtracer scene whose camera
// omits its type is given an aperture camera.
func TestLoadAperturePathTracer(t *testing.T) {
	doc := `{
		"rendermode": "pathtracer",
		"camera": {
			"position": [0, 0, 0], "lookAt": [0, 0, -1], "upVector": [0, 1, 0],
			"width": 32, "height": 32, "fov": 40,
			"apertureSize": 0.2, "focalDistance": 5
		},
		"scene": {"backgroundcolor": [0, 0, 0], "lightsources": [], "shapes": []}
	}`
	s, err := Load([]byte(doc), "")
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if _, ok := s.Camera.(*camera.Aperture); !ok {
		t.Fatalf("camera type = %T, want *camera.Aperture (implied by an omitted type on a pathtracer scene)", s.Camera)
	}
	if s.Mode != scene.Path {
		t.Errorf("Mode = %v, want Path", s.Mode)
	}
}

func TestLoadUnknownRenderMode(t *testing.T) {
	doc := `{"rendermode": "raycast", "camera": {}, "scene": {"shapes": [], "lightsources": []}}`
	if _, err := Load([]byte(doc), ""); err == nil {
		t.Fatal("Load with unknown render mode returned nil error")
	}
}

func TestLoadUnknownShapeType(t *testing.T) {
	doc := `{
		"rendermode": "binary",
		"camera": {"position": [0,0,0], "lookAt": [0,0,-1], "upVector": [0,1,0], "width": 10, "height": 10, "fov": 60},
		"scene": {"backgroundcolor": [0,0,0], "lightsources": [], "shapes": [{"type": "torus"}]}
	}`
	if _, err := Load([]byte(doc), ""); err == nil {
		t.Fatal("Load with unknown shape type returned nil error")
	}
}

func TestLoadUnknownCameraType(t *testing.T) {
	doc := `{
		"rendermode": "binary",
		"camera": {"type": "orthographic", "width": 10, "height": 10, "fov": 60},
		"scene": {"backgroundcolor": [0,0,0], "lightsources": [], "shapes": []}
	}`
	if _, err := Load([]byte(doc), ""); err == nil {
		t.Fatal("Load with unknown camera type returned nil error")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	if _, err := Load([]byte("{not json"), ""); err == nil {
		t.Fatal("Load with malformed JSON returned nil error")
	}
}

// TestLoadUnknownLightTypeSkipped confirms an unrecognised light type is
// dropped rather than aborting the whole load, matching buildLights'
// warn-and-skip behaviour.
func TestLoadUnknownLightTypeSkipped(t *testing.T) {
	doc := `{
		"rendermode": "binary",
		"camera": {"position": [0,0,0], "lookAt": [0,0,-1], "upVector": [0,1,0], "width": 10, "height": 10, "fov": 60},
		"scene": {
			"backgroundcolor": [0,0,0],
			"lightsources": [{"type": "spotlight", "position": [0,0,0], "intensity": [1,1,1]}],
			"shapes": []
		}
	}`
	s, err := Load([]byte(doc), "")
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if len(s.Lights) != 0 {
		t.Errorf("len(Lights) = %d, want 0", len(s.Lights))
	}
}

// TestLoadTexturedMaterial writes a tiny PPM texture to a temp directory and
// confirms a material referencing it resolves through textureCache.
func TestLoadTexturedMaterial(t *testing.T) {
	dir := t.TempDir()
	texPath := filepath.Join(dir, "checker.ppm")
	pixels := []core.Colour{
		core.NewColour(255, 0, 0), core.NewColour(0, 255, 0),
	}
	if err := ppmio.WritePPMFile(texPath, 2, 1, pixels); err != nil {
		t.Fatalf("WritePPMFile: %v", err)
	}

	doc := `{
		"rendermode": "binary",
		"camera": {"position": [0,0,0], "lookAt": [0,0,-1], "upVector": [0,1,0], "width": 10, "height": 10, "fov": 60},
		"scene": {
			"backgroundcolor": [0,0,0],
			"lightsources": [],
			"shapes": [{"type": "sphere", "center": [0,0,-3], "radius": 1, "material": {"texture": "checker"}}]
		}
	}`
	s, err := Load([]byte(doc), dir)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	mat := s.Shapes[0].Material()
	if mat.Texture == nil {
		t.Fatal("material.Texture is nil, want the loaded checker texture")
	}
}

func TestLoadMissingTexture(t *testing.T) {
	doc := `{
		"rendermode": "binary",
		"camera": {"position": [0,0,0], "lookAt": [0,0,-1], "upVector": [0,1,0], "width": 10, "height": 10, "fov": 60},
		"scene": {
			"backgroundcolor": [0,0,0],
			"lightsources": [],
			"shapes": [{"type": "sphere", "center": [0,0,-3], "radius": 1, "material": {"texture": "nosuchtexture"}}]
		}
	}`
	if _, err := Load([]byte(doc), t.TempDir()); err == nil {
		t.Fatal("Load with a missing texture file returned nil error")
	}
}
