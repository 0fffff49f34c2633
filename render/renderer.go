package render

import (
	"fmt"

	"github.com/maxcabrajac/game-of-life/life"
	"github.com/maxcabrajac/game-of-life/terminal"
)

// Renderer draws one generation to the terminal backend. GridSize reports
// the simulation dimensions needed to fill a cols×rows screen; Render
// walks display cells in row-major order, issuing one MoveTo per display
// row, one WriteRune per display column, and one Flush per frame.
// Renderers hold no state between frames.
type Renderer interface {
	GridSize(cols, rows int) (width, height int)
	Render(g *life.Grid) error
}

// Mode selects the cell-to-glyph mapping.
type Mode uint8

const (
	// ModeBlock draws one cell per character.
	ModeBlock Mode = iota
	// ModeBraille packs a 2×4 cell block into one braille glyph.
	ModeBraille
)

// ParseMode resolves a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "block":
		return ModeBlock, nil
	case "braille":
		return ModeBraille, nil
	}
	return ModeBlock, fmt.Errorf("unknown render mode %q (have block, braille)", s)
}

func (m Mode) String() string {
	switch m {
	case ModeBlock:
		return "block"
	case ModeBraille:
		return "braille"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// New builds the renderer for mode, drawing to backend. The mode is fixed
// for the life of the renderer; callers pick one at startup.
func New(mode Mode, backend terminal.Backend) Renderer {
	if mode == ModeBraille {
		return &brailleRenderer{backend: backend}
	}
	return &blockRenderer{backend: backend}
}
