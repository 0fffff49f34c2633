package life

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func TestSeedGridRandomIsReproducible(t *testing.T) {
	a, err := SeedGrid(20, 15, RandomPattern, rand.New(rand.NewSource(99)), 0.3)
	if err != nil {
		t.Fatalf("SeedGrid failed: %v", err)
	}
	b, err := SeedGrid(20, 15, RandomPattern, rand.New(rand.NewSource(99)), 0.3)
	if err != nil {
		t.Fatalf("SeedGrid failed: %v", err)
	}
	if !gridsEqual(a, b) {
		t.Error("Expected identical grids from the same seed")
	}
}

func TestSeedGridRandomProbabilityExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	empty, err := SeedGrid(8, 8, RandomPattern, rng, 0)
	if err != nil {
		t.Fatalf("SeedGrid failed: %v", err)
	}
	if empty.Population() != 0 {
		t.Errorf("Expected no live cells at probability 0, got %d", empty.Population())
	}

	full, err := SeedGrid(8, 8, RandomPattern, rng, 1)
	if err != nil {
		t.Fatalf("SeedGrid failed: %v", err)
	}
	if full.Population() != 64 {
		t.Errorf("Expected 64 live cells at probability 1, got %d", full.Population())
	}
}

func TestSeedGridRandomAliveFraction(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	g, err := SeedGrid(200, 200, RandomPattern, rng, 0.2)
	if err != nil {
		t.Fatalf("SeedGrid failed: %v", err)
	}
	frac := float64(g.Population()) / (200 * 200)
	if frac < 0.15 || frac > 0.25 {
		t.Errorf("Expected alive fraction near 0.2, got %g", frac)
	}
}

func TestSeedGridCentersPattern(t *testing.T) {
	g, err := SeedGrid(6, 6, "block", nil, 0)
	if err != nil {
		t.Fatalf("SeedGrid failed: %v", err)
	}
	want := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	if g.Population() != len(want) {
		t.Fatalf("Expected population %d, got %d", len(want), g.Population())
	}
	for _, cell := range want {
		if g.Get(cell[0], cell[1]) != Alive {
			t.Errorf("Expected cell (%d,%d) to be alive", cell[0], cell[1])
		}
	}
}

func TestSeedGridUnknownPattern(t *testing.T) {
	_, err := SeedGrid(10, 10, "toad", nil, 0)
	if err == nil {
		t.Fatal("Expected an error for an unknown pattern")
	}
	if !strings.Contains(err.Error(), "glider") {
		t.Errorf("Expected the error to list known patterns, got %q", err)
	}
}

func TestSeedGridPatternTooLarge(t *testing.T) {
	_, err := SeedGrid(10, 10, "gosper", nil, 0)
	if err == nil {
		t.Fatal("Expected an error for a pattern larger than the grid")
	}
}

func TestSeedGridGosperFits(t *testing.T) {
	g, err := SeedGrid(40, 12, "gosper", nil, 0)
	if err != nil {
		t.Fatalf("SeedGrid failed: %v", err)
	}
	if g.Population() != 36 {
		t.Errorf("Expected the gun to have 36 live cells, got %d", g.Population())
	}
}

func TestPatternNames(t *testing.T) {
	names := PatternNames()
	if !sort.StringsAreSorted(names) {
		t.Error("Expected pattern names to be sorted")
	}
	for _, want := range []string{"blinker", "block", "glider", "gosper", RandomPattern} {
		if !KnownPattern(want) {
			t.Errorf("Expected %q to be a known pattern", want)
		}
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected PatternNames to include %q", want)
		}
	}
	if KnownPattern("toad") {
		t.Error("Expected 'toad' to be unknown")
	}
}
