package life

// neighborOffsets is the Moore neighborhood: the 8 offsets surrounding a
// cell, row delta first.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Engine advances a Game of Life field one generation at a time. It owns
// two same-sized grids and flips an index between them each Tick, so
// stepping never allocates or copies cells.
type Engine struct {
	bufs       [2]*Grid
	cur        int
	generation uint64
}

// NewEngine takes ownership of the starting grid and allocates the
// all-dead scratch buffer. A nil grid is a caller bug and panics.
func NewEngine(initial *Grid) *Engine {
	if initial == nil {
		panic("life: nil initial grid")
	}
	w, h := initial.Dimensions()
	return &Engine{
		bufs: [2]*Grid{initial, NewGrid(w, h, nil)},
	}
}

// Current returns the live generation. The grid is valid to read until
// the next Tick call and must not be written by callers.
func (e *Engine) Current() *Grid {
	return e.bufs[e.cur]
}

// Generation returns the number of completed ticks.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Tick computes the next generation into the scratch buffer and makes it
// current. Standard B3/S23 on the torus: birth on exactly 3 live
// neighbors, survival on 2 or 3, death otherwise.
func (e *Engine) Tick() {
	cur := e.bufs[e.cur]
	next := e.bufs[e.cur^1]
	w, h := cur.Dimensions()

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			next.Set(row, col, evolve(cur.Get(row, col), liveNeighbors(cur, row, col)))
		}
	}

	e.cur ^= 1
	e.generation++
}

// liveNeighbors counts live cells in the Moore neighborhood of (row, col),
// wrapping at the edges.
func liveNeighbors(g *Grid, row, col int) int {
	n := 0
	for _, d := range neighborOffsets {
		r, c := g.Neighbor(row, col, d[0], d[1])
		if g.Get(r, c) == Alive {
			n++
		}
	}
	return n
}

// evolve applies the transition rule to one cell.
func evolve(c Cell, neighbors int) Cell {
	if c == Alive {
		if neighbors == 2 || neighbors == 3 {
			return Alive
		}
		return Dead
	}
	if neighbors == 3 {
		return Alive
	}
	return Dead
}
