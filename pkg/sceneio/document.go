// Package sceneio is the boundary between the JSON scene document format
// and the renderer's typed pkg/scene.Scene. Parsing uses the standard
// library encoding/json (the input is already JSON).
package sceneio

// document mirrors the top-level JSON scene document schema.
type document struct {
	RenderMode string        `json:"rendermode"`
	NBounces   *int          `json:"nbounces"`
	Camera     cameraDoc     `json:"camera"`
	Scene      sceneBodyDoc  `json:"scene"`
}

type cameraDoc struct {
	Type          string     `json:"type"`
	Position      [3]float32 `json:"position"`
	LookAt        [3]float32 `json:"lookAt"`
	UpVector      [3]float32 `json:"upVector"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	FOV           float32    `json:"fov"`
	Exposure      float32    `json:"exposure"`
	ApertureSize  *float32   `json:"apertureSize"`
	FocalDistance *float32   `json:"focalDistance"`
}

type sceneBodyDoc struct {
	BackgroundColor [3]float32  `json:"backgroundcolor"`
	LightSources    []lightDoc  `json:"lightsources"`
	Shapes          []shapeDoc  `json:"shapes"`
}

type lightDoc struct {
	Type      string     `json:"type"`
	Position  [3]float32 `json:"position"`
	Intensity [3]float32 `json:"intensity"`
	U         [3]float32 `json:"u"`
	V         [3]float32 `json:"v"`
	Width     float32    `json:"width"`
	Height    float32    `json:"height"`
}

type shapeDoc struct {
	Type     string       `json:"type"`
	Center   [3]float32   `json:"center"`
	Radius   float32      `json:"radius"`
	Axis     [3]float32   `json:"axis"`
	Height   float32      `json:"height"`
	V0       [3]float32   `json:"v0"`
	V1       [3]float32   `json:"v1"`
	V2       [3]float32   `json:"v2"`
	Material materialDoc  `json:"material"`
}

type materialDoc struct {
	Kd               *float32    `json:"kd"`
	Ks               *float32    `json:"ks"`
	SpecularExponent *int        `json:"specularexponent"`
	DiffuseColor     *[3]float32 `json:"diffusecolor"`
	SpecularColor    *[3]float32 `json:"specularcolor"`
	IsReflective     *bool       `json:"isreflective"`
	Reflectivity     *float32    `json:"reflectivity"`
	IsRefractive     *bool       `json:"isrefractive"`
	RefractiveIndex  *float32    `json:"refractiveindex"`
	Texture          *string     `json:"texture"`
}
