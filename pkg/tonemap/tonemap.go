// Package tonemap implements the post-processing operators applied to the
// accumulated HDR buffer before integer PPM output: linear exposure, the
// ACES fit, Reinhard, gamma, and luminance-histogram equalisation.
package tonemap

import (
	"github.com/chewxy/math32"

	"github.com/cwallin/lumentrace/pkg/core"
)

// Operator is a tone-mapping strategy over an entire HDR buffer, since
// Reinhard and histogram equalisation need whole-image statistics rather
// than a pure per-pixel function.
type Operator interface {
	Apply(buffer []core.Colour)
}

// Linear multiplies every channel by exposure and clamps to [0,255].
type Linear struct{ Exposure float32 }

func (op Linear) Apply(buffer []core.Colour) {
	for i, c := range buffer {
		buffer[i] = c.Mul(op.Exposure).Clamp()
	}
}

// ACESFit applies the ACES RRT/ODT rational curve fit
// (x(x+A)-B)/(x(xC+D)+E), operating in [0,1].
type ACESFit struct{}

const (
	acesA = 0.0245786
	acesB = 0.000090537
	acesC = 0.983729
	acesD = 0.432951
	acesE = 0.238081
)

func acesMap(x float32) float32 {
	v := (x*(x+acesA) - acesB) / (x*(x*acesC+acesD) + acesE)
	return clamp01(v)
}

func (op ACESFit) Apply(buffer []core.Colour) {
	for i, c := range buffer {
		r := c.R / 255
		g := c.G / 255
		b := c.B / 255
		buffer[i] = core.Colour{
			R: acesMap(r) * 255,
			G: acesMap(g) * 255,
			B: acesMap(b) * 255,
		}.Clamp()
	}
}

// Reinhard scales each pixel by Y'/Y where Y is Rec.709 luminance in [0,1]
// and Y' = Y*exposure / (1 + Y*exposure).
type Reinhard struct{ Exposure float32 }

func (op Reinhard) Apply(buffer []core.Colour) {
	for i, c := range buffer {
		y := c.Div(255).Luminance()
		if y <= 1e-7 {
			buffer[i] = c.Clamp()
			continue
		}
		yMapped := y * op.Exposure / (1 + y*op.Exposure)
		buffer[i] = c.Mul(yMapped / y).Clamp()
	}
}

// Gamma applies channel' = 255*(channel/255)^(1/gamma).
type Gamma struct{ Gamma float32 }

func DefaultGamma() Gamma { return Gamma{Gamma: 2.2} }

func (op Gamma) Apply(buffer []core.Colour) {
	invGamma := 1 / op.Gamma
	for i, c := range buffer {
		buffer[i] = core.Colour{
			R: 255 * math32.Pow(clamp01(c.R/255), invGamma),
			G: 255 * math32.Pow(clamp01(c.G/255), invGamma),
			B: 255 * math32.Pow(clamp01(c.B/255), invGamma),
		}.Clamp()
	}
}

// HistogramEqualize builds a 256-bin luminance histogram over the buffer,
// derives its CDF, and remaps each pixel's luminance through that CDF
// scaled by exposure.
type HistogramEqualize struct{ Exposure float32 }

func (op HistogramEqualize) Apply(buffer []core.Colour) {
	if len(buffer) == 0 {
		return
	}

	var hist [256]int
	lum := make([]float32, len(buffer))
	for i, c := range buffer {
		y := clamp01(c.Div(255).Luminance())
		lum[i] = y
		bin := int(y * 255)
		hist[bin]++
	}

	var cdf [256]float32
	var running float32
	for i, count := range hist {
		running += float32(count)
		cdf[i] = running / float32(len(buffer))
	}

	for i, c := range buffer {
		bin := int(lum[i] * 255)
		equalized := cdf[bin] * op.Exposure
		if lum[i] <= 1e-7 {
			buffer[i] = c.Clamp()
			continue
		}
		scale := equalized / lum[i]
		buffer[i] = c.Mul(scale).Clamp()
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
