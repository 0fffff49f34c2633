package render

import (
	"fmt"

	"github.com/maxcabrajac/game-of-life/life"
	"github.com/maxcabrajac/game-of-life/terminal"
)

// Cells covered by one braille glyph.
const (
	brailleCellsX = 2
	brailleCellsY = 4
)

// brailleBase is the origin of the Unicode Braille Patterns block; adding
// an 8-bit dot code selects the glyph.
const brailleBase = 0x2800

// brailleWeights maps (row, col) within one 2×4 block to the bit weight
// of its dot. Unicode numbers the dots 1,2,3,7 down the left column and
// 4,5,6,8 down the right, so the weights are not a plain bit ramp.
var brailleWeights = [brailleCellsY][brailleCellsX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleRenderer packs 2×4 cell blocks into single braille glyphs, four
// times the vertical and twice the horizontal resolution of block mode.
type brailleRenderer struct {
	backend terminal.Backend
}

func (r *brailleRenderer) GridSize(cols, rows int) (int, int) {
	return cols * brailleCellsX, rows * brailleCellsY
}

// Render requires grid dimensions that are exact multiples of the block
// size; anything else has slipped past configuration validation and is a
// caller bug, so it panics rather than reading out of bounds.
func (r *brailleRenderer) Render(g *life.Grid) error {
	w, h := g.Dimensions()
	if w%brailleCellsX != 0 || h%brailleCellsY != 0 {
		panic(fmt.Sprintf("render: %dx%d grid is not a multiple of the %dx%d braille block",
			w, h, brailleCellsX, brailleCellsY))
	}

	for row := 0; row < h/brailleCellsY; row++ {
		r.backend.MoveTo(0, row)
		for col := 0; col < w/brailleCellsX; col++ {
			r.backend.WriteRune(brailleBase + r.pack(g, row*brailleCellsY, col*brailleCellsX))
		}
	}
	return r.backend.Flush()
}

// pack folds the 2×4 block with its top-left corner at (row, col) into a
// braille dot code, one bit per live cell.
func (r *brailleRenderer) pack(g *life.Grid, row, col int) rune {
	var code rune
	for dy := 0; dy < brailleCellsY; dy++ {
		for dx := 0; dx < brailleCellsX; dx++ {
			if g.Get(row+dy, col+dx) == life.Alive {
				code |= brailleWeights[dy][dx]
			}
		}
	}
	return code
}
