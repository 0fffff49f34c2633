package life

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// RandomPattern is the pattern name that scatters live cells instead of
// placing a fixed shape.
const RandomPattern = "random"

// patterns maps names to ASCII shapes: 'O' is alive, anything else dead.
var patterns = map[string][]string{
	"blinker": {
		"OOO",
	},
	"block": {
		"OO",
		"OO",
	},
	"glider": {
		".O.",
		"..O",
		"OOO",
	},
	"gosper": {
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	},
}

// SeedGrid builds the starting grid for a run. The name "random" scatters
// live cells with probability aliveProb using rng; any other name places
// that pattern centered on a dead field.
func SeedGrid(width, height int, name string, rng *rand.Rand, aliveProb float64) (*Grid, error) {
	if name == RandomPattern {
		return NewGrid(width, height, Random(rng, aliveProb)), nil
	}

	rows, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("life: unknown pattern %q (have %s)", name, strings.Join(PatternNames(), ", "))
	}

	pw, ph := patternSize(rows)
	if pw > width || ph > height {
		return nil, fmt.Errorf("life: pattern %q needs at least a %dx%d grid, got %dx%d", name, pw, ph, width, height)
	}

	g := NewGrid(width, height, nil)
	top := (height - ph) / 2
	left := (width - pw) / 2
	for r, line := range rows {
		for c, ch := range line {
			if ch == 'O' {
				g.Set(top+r, left+c, Alive)
			}
		}
	}
	return g, nil
}

// PatternNames lists the known pattern names, sorted, including "random".
func PatternNames() []string {
	names := make([]string, 0, len(patterns)+1)
	names = append(names, RandomPattern)
	for n := range patterns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// KnownPattern reports whether name resolves to a seedable pattern.
func KnownPattern(name string) bool {
	if name == RandomPattern {
		return true
	}
	_, ok := patterns[name]
	return ok
}

func patternSize(rows []string) (int, int) {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w, len(rows)
}
