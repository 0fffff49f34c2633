package life

import (
	"math/rand"
	"testing"
)

func TestNewGridDimensions(t *testing.T) {
	g := NewGrid(7, 3, nil)
	w, h := g.Dimensions()
	if w != 7 || h != 3 {
		t.Errorf("Expected dimensions 7x3, got %dx%d", w, h)
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g := NewGrid(4, 4, nil)
	if g.Population() != 0 {
		t.Errorf("Expected all-dead grid, got population %d", g.Population())
	}
}

func TestNewGridInitializerOrder(t *testing.T) {
	var calls [][2]int
	NewGrid(2, 2, func(row, col int) Cell {
		calls = append(calls, [2]int{row, col})
		return Dead
	})
	expected := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if len(calls) != len(expected) {
		t.Fatalf("Expected %d initializer calls, got %d", len(expected), len(calls))
	}
	for i, c := range expected {
		if calls[i] != c {
			t.Errorf("Expected call %d at (%d,%d), got (%d,%d)", i, c[0], c[1], calls[i][0], calls[i][1])
		}
	}
}

func TestNewGridAppliesInitializer(t *testing.T) {
	g := NewGrid(3, 3, func(row, col int) Cell {
		if row == col {
			return Alive
		}
		return Dead
	})
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := Dead
			if row == col {
				want = Alive
			}
			if g.Get(row, col) != want {
				t.Errorf("Expected cell (%d,%d) to be %d, got %d", row, col, want, g.Get(row, col))
			}
		}
	}
}

func TestNewGridZeroAreaPanics(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for %dx%d grid", tc.width, tc.height)
				}
			}()
			NewGrid(tc.width, tc.height, nil)
		})
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	g := NewGrid(5, 4, nil)
	g.Set(2, 3, Alive)
	if g.Get(2, 3) != Alive {
		t.Error("Expected cell (2,3) to be alive after Set")
	}
	g.Set(2, 3, Dead)
	if g.Get(2, 3) != Dead {
		t.Error("Expected cell (2,3) to be dead after Set")
	}
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	g := NewGrid(4, 3, nil)
	cases := []struct {
		name     string
		row, col int
	}{
		{"row past end", 3, 0},
		{"col past end", 0, 4},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		// Would silently alias onto (0,3) through flat indexing.
		{"negative col on inner row", 1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for access at (%d,%d)", tc.row, tc.col)
				}
			}()
			g.Get(tc.row, tc.col)
		})
	}
}

func TestNeighborWrapsAtEdges(t *testing.T) {
	g := NewGrid(8, 6, nil)
	cases := []struct {
		name                 string
		row, col, dRow, dCol int
		wantRow, wantCol     int
	}{
		{"top-left diagonal", 0, 0, -1, -1, 5, 7},
		{"bottom-right diagonal", 5, 7, 1, 1, 0, 0},
		{"interior", 2, 3, 1, 0, 3, 3},
		{"left edge", 3, 0, 0, -1, 3, 7},
		{"bottom edge", 5, 4, 1, 0, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, c := g.Neighbor(tc.row, tc.col, tc.dRow, tc.dCol)
			if r != tc.wantRow || c != tc.wantCol {
				t.Errorf("Expected neighbor (%d,%d), got (%d,%d)", tc.wantRow, tc.wantCol, r, c)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3, nil)
	g.Set(1, 1, Alive)
	c := g.Clone()
	c.Set(0, 0, Alive)
	if g.Get(0, 0) != Dead {
		t.Error("Expected original grid to be unaffected by writes to the clone")
	}
	if c.Get(1, 1) != Alive {
		t.Error("Expected clone to carry the original cell states")
	}
}

func TestPopulationMatchesCellScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewGrid(10, 10, Random(rng, 0.5))
	count := 0
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if g.Get(row, col) == Alive {
				count++
			}
		}
	}
	if g.Population() != count {
		t.Errorf("Expected population %d, got %d", count, g.Population())
	}
}
