package material

import "github.com/cwallin/lumentrace/pkg/core"

// Texture is a row-major pixel grid, loaded once from a P3 PPM file and
// shared immutably by every material that references it.
type Texture struct {
	Width, Height int
	Pixels        []core.Colour // row-major, length Width*Height
}

// NewTexture builds a texture from decoded PPM pixel data.
func NewTexture(width, height int, pixels []core.Colour) *Texture {
	return &Texture{Width: width, Height: height, Pixels: pixels}
}

// Sample performs bilinear interpolation over the four nearest texels,
// wrapping both u and v into [0,1) via their fractional part so that
// Sample(u,v) == Sample(u+1,v) == Sample(u,v+1) for all u,v.
func (t *Texture) Sample(u, v float32) core.Colour {
	u = wrap01(u)
	v = wrap01(v)

	// Texel-space coordinates, offset by -0.5 so texel centers line up with
	// integer indices.
	fx := u*float32(t.Width) - 0.5
	fy := v*float32(t.Height) - 0.5

	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.at(x0, y0)
	c10 := t.at(x0+1, y0)
	c01 := t.at(x0, y0+1)
	c11 := t.at(x0+1, y0+1)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}

// at returns the texel at (x,y), wrapping indices around the grid.
func (t *Texture) at(x, y int) core.Colour {
	x = wrapIndex(x, t.Width)
	y = wrapIndex(y, t.Height)
	return t.Pixels[y*t.Width+x]
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func wrap01(f float32) float32 {
	f -= floorFloat(f)
	if f < 0 {
		f++
	}
	return f
}

func floorInt(f float32) int {
	i := int(f)
	if f < float32(i) {
		i--
	}
	return i
}

func floorFloat(f float32) float32 {
	return float32(floorInt(f))
}
