package netpbm

import (
	"image"
	"image/color"
)

// Pixel is an opaque 8-bit per channel color. It implements color.Color.
type Pixel struct {
	R, G, B uint8
}

// Gray returns a monochrome pixel with every channel set to v.
func Gray(v uint8) Pixel {
	return Pixel{v, v, v}
}

// Packed returns the pixel as a 24-bit 0xRRGGBB value.
func (p Pixel) Packed() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R) * 0x101
	g = uint32(p.G) * 0x101
	b = uint32(p.B) * 0x101
	a = 0xffff
	return
}

// PixelModel converts any color to a Pixel, discarding alpha.
var PixelModel = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pixel{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// Grid is a decoded image held as a single row-major buffer. The pixel at
// column x of row y is Pix[y*Width+x]; row 0 is the first row of the file.
type Grid struct {
	Pix    []Pixel
	Width  int
	Height int
}

// NewGrid returns a zeroed (black) grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Pix:    make([]Pixel, width*height),
		Width:  width,
		Height: height,
	}
}

// PixelAt returns the pixel at column x of row y.
func (g *Grid) PixelAt(x, y int) Pixel {
	return g.Pix[y*g.Width+x]
}

// SetPixel sets the pixel at column x of row y.
func (g *Grid) SetPixel(x, y int, p Pixel) {
	g.Pix[y*g.Width+x] = p
}

// Row returns row y as a slice sharing the grid's buffer.
func (g *Grid) Row(y int) []Pixel {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

func (g *Grid) ColorModel() color.Model {
	return PixelModel
}

func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

func (g *Grid) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(g.Bounds())) {
		return Pixel{}
	}
	return g.PixelAt(x, y)
}
