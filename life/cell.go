package life

// Cell is the state of one grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)
