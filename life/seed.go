package life

import "math/rand"

// AllDead leaves every cell dead.
func AllDead(row, col int) Cell {
	return Dead
}

// Random returns an initializer that sets each cell alive with probability
// aliveProb, drawing from rng. The caller owns the source, so a fixed seed
// reproduces the same field.
func Random(rng *rand.Rand, aliveProb float64) Initializer {
	return func(row, col int) Cell {
		if rng.Float64() < aliveProb {
			return Alive
		}
		return Dead
	}
}
