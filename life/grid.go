package life

import "fmt"

// Initializer produces the starting state for one cell. NewGrid calls it
// once per coordinate in row-major order.
type Initializer func(row, col int) Cell

// Grid is a dense toroidal field of cells. Storage is row-major with the
// origin at the top-left corner. A grid is never resized after creation;
// all mutation goes through Set.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid builds a width×height grid, asking init for the state of every
// cell. A nil init yields an all-dead grid. Zero-area dimensions are a
// caller bug and panic.
func NewGrid(width, height int, init Initializer) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: grid dimensions must be positive, got %dx%d", width, height))
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	if init != nil {
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				g.cells[row*width+col] = init(row, col)
			}
		}
	}
	return g
}

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// Get returns the cell at (row, col). Out-of-range coordinates are a
// caller bug and panic; flat indexing alone would alias some of them onto
// valid cells.
func (g *Grid) Get(row, col int) Cell {
	g.check(row, col)
	return g.cells[row*g.width+col]
}

// Set overwrites the cell at (row, col). Out-of-range coordinates panic.
func (g *Grid) Set(row, col int, c Cell) {
	g.check(row, col)
	g.cells[row*g.width+col] = c
}

func (g *Grid) check(row, col int) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", row, col, g.width, g.height))
	}
}

// Neighbor resolves the coordinate at offset (dRow, dCol) from (row, col)
// with toroidal wrap: stepping off any edge re-enters from the opposite
// one, so every cell has a full Moore neighborhood.
func (g *Grid) Neighbor(row, col, dRow, dCol int) (int, int) {
	return wrap(row+dRow, g.height), wrap(col+dCol, g.width)
}

// wrap is a true modulo, landing negative values in [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}
