package render

import (
	"github.com/maxcabrajac/game-of-life/life"
	"github.com/maxcabrajac/game-of-life/terminal"
)

const (
	blockAlive = '█'
	blockDead  = ' '
)

// blockRenderer maps one cell to one character.
type blockRenderer struct {
	backend terminal.Backend
}

func (r *blockRenderer) GridSize(cols, rows int) (int, int) {
	return cols, rows
}

func (r *blockRenderer) Render(g *life.Grid) error {
	w, h := g.Dimensions()
	for row := 0; row < h; row++ {
		r.backend.MoveTo(0, row)
		for col := 0; col < w; col++ {
			if g.Get(row, col) == life.Alive {
				r.backend.WriteRune(blockAlive)
			} else {
				r.backend.WriteRune(blockDead)
			}
		}
	}
	return r.backend.Flush()
}
