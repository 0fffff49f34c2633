package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Options configures the screen backend.
type Options struct {
	// Foreground is the color cells are drawn with, as a W3C color name
	// or #rrggbb. Empty keeps the terminal default.
	Foreground string
}

// screen implements Backend on a tcell.Screen. MoveTo and WriteRune keep
// an internal write position; tcell clips writes outside the screen and
// diffs frames on Flush.
type screen struct {
	ts    tcell.Screen
	style tcell.Style
	col   int
	row   int
}

// NewScreen returns a Backend drawing to the real terminal.
func NewScreen(opts Options) (Backend, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return newScreen(ts, opts)
}

// newScreen wires an existing tcell screen; tests inject a simulation
// screen here.
func newScreen(ts tcell.Screen, opts Options) (*screen, error) {
	style := tcell.StyleDefault
	if opts.Foreground != "" {
		c := tcell.GetColor(opts.Foreground)
		if c == tcell.ColorDefault {
			return nil, fmt.Errorf("terminal: unknown color %q", opts.Foreground)
		}
		style = style.Foreground(c)
	}
	return &screen{ts: ts, style: style}, nil
}

func (s *screen) Init() error {
	if err := s.ts.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	s.ts.HideCursor()
	s.ts.Clear()
	return nil
}

func (s *screen) Fini() {
	s.ts.Fini()
}

func (s *screen) Size() (int, int) {
	return s.ts.Size()
}

func (s *screen) MoveTo(col, row int) {
	s.col, s.row = col, row
}

func (s *screen) WriteRune(r rune) {
	s.ts.SetContent(s.col, s.row, r, nil, s.style)
	s.col++
}

func (s *screen) HideCursor() {
	s.ts.HideCursor()
}

func (s *screen) ShowCursor() {
	s.ts.ShowCursor(s.col, s.row)
}

func (s *screen) Flush() error {
	s.ts.Show()
	return nil
}

// PollEvent blocks for the next event the game cares about. Unmapped
// input (mouse, function keys) is swallowed here so callers only ever see
// the Event model.
func (s *screen) PollEvent() Event {
	for {
		switch tev := s.ts.PollEvent().(type) {
		case nil:
			return Event{Type: EventClosed}
		case *tcell.EventResize:
			w, h := tev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventError:
			return Event{Type: EventError}
		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyEscape:
				return Event{Type: EventKey, Key: KeyEscape}
			case tcell.KeyCtrlC:
				return Event{Type: EventKey, Key: KeyCtrlC}
			case tcell.KeyRune:
				return Event{Type: EventKey, Key: KeyRune, Rune: tev.Rune()}
			}
		}
	}
}
