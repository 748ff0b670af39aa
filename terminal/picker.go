package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/ppmview/netpbm"
	"github.com/gdamore/tcell/v2"
)

// ErrNoSelection is returned when the picker is cancelled or cannot list its
// starting directory.
var ErrNoSelection = errors.New("terminal: no file selected")

var cursorStyle = tcell.StyleDefault.Reverse(true)

// Selection is the single result delivered by a Picker.
type Selection struct {
	Path string
	Err  error
}

type entry struct {
	name string
	dir  bool
}

// Picker lets the user browse directories and choose an image file.
type Picker struct {
	t       *Terminal
	dir     string
	entries []entry
	cursor  int
	offset  int
}

// NewPicker returns a picker starting in dir.
func NewPicker(t *Terminal, dir string) *Picker {
	return &Picker{t: t, dir: dir}
}

func matches(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range netpbm.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (p *Picker) load(dir string) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var entries []entry
	for _, f := range files {
		// Ignore hidden files and directories
		if f.Name()[0] == '.' {
			continue
		}
		switch {
		case f.IsDir():
			entries = append(entries, entry{f.Name(), true})
		case f.Type().IsRegular() && matches(f.Name()):
			entries = append(entries, entry{f.Name(), false})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].dir != entries[j].dir {
			return entries[i].dir
		}
		return entries[i].name < entries[j].name
	})
	if parent := filepath.Dir(dir); parent != dir {
		entries = append([]entry{{"..", true}}, entries...)
	}

	p.dir, p.entries, p.cursor, p.offset = dir, entries, 0, 0
	return nil
}

func (p *Picker) draw() {
	s := p.t.screen
	s.Clear()

	width, height := s.Size()
	fillRow(s, 0, width, titleStyle)
	drawText(s, 0, 0, width, p.dir+string(os.PathSeparator), titleStyle)

	rows := height - 1
	if rows < 1 {
		s.Show()
		return
	}
	switch {
	case p.cursor < p.offset:
		p.offset = p.cursor
	case p.cursor >= p.offset+rows:
		p.offset = p.cursor - rows + 1
	}

	for i := p.offset; i < len(p.entries) && i < p.offset+rows; i++ {
		e := p.entries[i]
		name := e.name
		if e.dir {
			name += string(os.PathSeparator)
		}
		style := tcell.StyleDefault
		if i == p.cursor {
			style = cursorStyle
			fillRow(s, 1+i-p.offset, width, style)
		}
		drawText(s, 0, 1+i-p.offset, width, name, style)
	}
	s.Show()
}

func (p *Picker) move(n int) {
	p.cursor += n
	if p.cursor >= len(p.entries) {
		p.cursor = len(p.entries) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// choose acts on the entry under the cursor, returning the path when a file
// was chosen. A directory that cannot be listed leaves the current listing
// in place.
func (p *Picker) choose() string {
	if len(p.entries) == 0 {
		return ""
	}
	e := p.entries[p.cursor]
	path := filepath.Join(p.dir, e.name)
	if e.dir {
		p.load(path)
		return ""
	}
	return path
}

func (p *Picker) run(ctx context.Context) (string, error) {
	if err := p.load(p.dir); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoSelection, err)
	}
	p.draw()

	events := p.t.Events()
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", ErrNoSelection, ctx.Err())
		case ev, ok := <-events:
			if !ok {
				return "", ErrNoSelection
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				p.t.screen.Sync()
			case *tcell.EventKey:
				if isQuit(ev) {
					return "", ErrNoSelection
				}
				switch {
				case ev.Key() == tcell.KeyUp, ev.Key() == tcell.KeyRune && ev.Rune() == 'k':
					p.move(-1)
				case ev.Key() == tcell.KeyDown, ev.Key() == tcell.KeyRune && ev.Rune() == 'j':
					p.move(1)
				case ev.Key() == tcell.KeyPgUp:
					p.move(-10)
				case ev.Key() == tcell.KeyPgDn:
					p.move(10)
				case ev.Key() == tcell.KeyBackspace, ev.Key() == tcell.KeyBackspace2, ev.Key() == tcell.KeyLeft,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'h':
					p.load(filepath.Dir(p.dir))
				case ev.Key() == tcell.KeyEnter:
					if path := p.choose(); path != "" {
						return path, nil
					}
				}
			}
			p.draw()
		}
	}
}

// Pick runs the picker in its own goroutine. Exactly one Selection is sent
// on the returned channel, which is then closed. A cancelled picker
// delivers ErrNoSelection.
func (p *Picker) Pick(ctx context.Context) <-chan Selection {
	out := make(chan Selection, 1)
	go func() {
		defer close(out)
		path, err := p.run(ctx)
		out <- Selection{Path: path, Err: err}
	}()
	return out
}
