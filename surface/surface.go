/*
Package surface turns a decoded grid into the magnified image handed to a
display.
*/
package surface

import (
	"context"
	"image"
	"image/color"

	"github.com/bodgit/ppmview/netpbm"
	"github.com/bodgit/ppmview/scale"
	"golang.org/x/image/draw"
)

// Display is something that can present an image until the user closes it.
type Display interface {
	// Show presents m, sized to its bounds, under the given title.
	Show(title string, m image.Image) error
	// Wait blocks until the display is closed or ctx is done.
	Wait(ctx context.Context) error
}

func unpack(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// Render returns g with each pixel drawn as a factor by factor square, the
// pixel at column x of row y covering (x*factor, y*factor).
func Render(g *netpbm.Grid, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.Width*factor, g.Height*factor))

	var src image.Uniform
	for y := 0; y < g.Height; y++ {
		for x, p := range g.Row(y) {
			src.C = unpack(p.Packed())
			r := image.Rect(x*factor, y*factor, (x+1)*factor, (y+1)*factor)
			draw.Draw(dst, r, &src, image.Point{}, draw.Src)
		}
	}
	return dst
}

// Show renders g at its ideal magnification, presents it on d and waits
// for d to be closed. It returns the magnification used.
func Show(ctx context.Context, d Display, title string, g *netpbm.Grid) (int, error) {
	factor := scale.IdealPixelSize(g.Width, g.Height)
	if err := d.Show(title, Render(g, factor)); err != nil {
		return factor, err
	}
	return factor, d.Wait(ctx)
}
