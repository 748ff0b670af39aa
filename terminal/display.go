package terminal

import (
	"context"
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

const halfBlock = '▀'

var titleStyle = tcell.StyleDefault.Reverse(true)

// Display shows a single image below a title line. The image is reduced to
// fit the screen when it is larger, keeping its aspect ratio.
type Display struct {
	t     *Terminal
	title string
	m     image.Image
}

// NewDisplay returns a display drawing on t.
func NewDisplay(t *Terminal) *Display {
	return &Display{t: t}
}

// fit returns the largest rectangle at the origin no bigger than b that
// fits within width by height while keeping b's aspect ratio.
func fit(b image.Rectangle, width, height int) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w <= width && h <= height {
		return image.Rect(0, 0, w, h)
	}
	if w*height > h*width {
		h = h * width / w
		w = width
	} else {
		w = w * height / h
		h = height
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Rect(0, 0, w, h)
}

func rgb(m *image.RGBA, x, y int) tcell.Color {
	c := m.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (d *Display) draw() {
	s := d.t.screen
	s.Clear()

	width, height := s.Size()
	fillRow(s, 0, width, titleStyle)
	drawText(s, 0, 0, width, d.title, titleStyle)

	rows := height - 1
	if d.m == nil || width < 1 || rows < 1 {
		s.Show()
		return
	}

	r := fit(d.m.Bounds(), width, rows*2)
	canvas := image.NewRGBA(r)
	draw.NearestNeighbor.Scale(canvas, r, d.m, d.m.Bounds(), draw.Src, nil)

	for y := 0; y < r.Dy(); y += 2 {
		for x := 0; x < r.Dx(); x++ {
			style := tcell.StyleDefault.Foreground(rgb(canvas, x, y))
			if y+1 < r.Dy() {
				style = style.Background(rgb(canvas, x, y+1))
			}
			s.SetContent(x, 1+y/2, halfBlock, nil, style)
		}
	}
	s.Show()
}

// Show draws m under title.
func (d *Display) Show(title string, m image.Image) error {
	d.title, d.m = title, m
	d.draw()
	return nil
}

// Wait redraws on resize and returns once the user quits with q, Esc or
// Ctrl-C, or the screen is finalized.
func (d *Display) Wait(ctx context.Context) error {
	events := d.t.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				d.t.screen.Sync()
				d.draw()
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			}
		}
	}
}
