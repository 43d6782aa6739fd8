package core

// Colour is a linear HDR radiance triple. Throughout the renderer channels
// are carried in the 0..255-referenced range; PPM output truncates to
// integers after tone mapping.
type Colour struct {
	R, G, B float32
}

func NewColour(r, g, b float32) Colour { return Colour{r, g, b} }

func (c Colour) Add(o Colour) Colour    { return Colour{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Colour) Sub(o Colour) Colour    { return Colour{c.R - o.R, c.G - o.G, c.B - o.B} }
func (c Colour) Mul(s float32) Colour   { return Colour{c.R * s, c.G * s, c.B * s} }
func (c Colour) Div(s float32) Colour   { return Colour{c.R / s, c.G / s, c.B / s} }
func (c Colour) MulVec(o Colour) Colour { return Colour{c.R * o.R, c.G * o.G, c.B * o.B} }

// Clamp returns c with every channel clamped to [0,255].
func (c Colour) Clamp() Colour {
	return Colour{
		R: clamp255(c.R),
		G: clamp255(c.G),
		B: clamp255(c.B),
	}
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// BelowThreshold reports whether every channel is at or below 0.1; used to
// terminate photon tracing once a photon's carried energy has decayed away.
func (c Colour) BelowThreshold() bool {
	return c.R <= 0.1 && c.G <= 0.1 && c.B <= 0.1
}

// Luminance returns the Rec. 709 relative luminance of c, assuming channels
// are referenced to [0,1] (callers divide by 255 first where needed).
func (c Colour) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

var Black = Colour{}
