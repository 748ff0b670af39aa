/*
Package terminal provides the interactive collaborators of the viewer on top
of a tcell screen: a file picker and a display that shows an image until it
is closed.

Pixels are drawn with the upper half block, the foreground carrying the
upper pixel and the background the lower, so each cell shows two pixels.
*/
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

const eventBuffer = 100

// Terminal owns a screen and the single goroutine reading its events. The
// picker and display built on it share that event stream.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	once   sync.Once
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
	}
}

// Open initializes the controlling terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen), nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Events returns the screen's event stream, closed once the screen is
// finalized.
func (t *Terminal) Events() <-chan tcell.Event {
	t.once.Do(func() {
		go func() {
			defer close(t.events)
			for {
				ev := t.screen.PollEvent()
				if ev == nil {
					return
				}
				t.events <- ev
			}
		}()
	})
	return t.events
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func fillRow(s tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
