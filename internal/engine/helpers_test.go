package engine_test

import (
	"testing"

	"github.com/taKana671/CubicSameGame/internal/engine"
)

// buildGrid creates a grid and fills every cell with f(c).
func buildGrid(t *testing.T, size int, f func(c engine.Coord) engine.Color) *engine.Grid {
	t.Helper()
	g, err := engine.NewGrid(size)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", size, err)
	}
	for _, c := range g.Coords() {
		if err := g.Set(c, f(c)); err != nil {
			t.Fatalf("Set(%v): %v", c, err)
		}
	}
	return g
}

// checkerboard colors cells by coordinate parity, so no two neighbors match.
func checkerboard(a, b engine.Color) func(c engine.Coord) engine.Color {
	return func(c engine.Coord) engine.Color {
		if (c.X+c.Y+c.Z)%2 == 0 {
			return a
		}
		return b
	}
}

func solid(color engine.Color) func(c engine.Coord) engine.Color {
	return func(engine.Coord) engine.Color { return color }
}

func mustClear(t *testing.T, g *engine.Grid, coords ...engine.Coord) {
	t.Helper()
	for _, c := range coords {
		if err := g.Clear(c); err != nil {
			t.Fatalf("Clear(%v): %v", c, err)
		}
	}
}

func mustSet(t *testing.T, g *engine.Grid, color engine.Color, coords ...engine.Coord) {
	t.Helper()
	for _, c := range coords {
		if err := g.Set(c, color); err != nil {
			t.Fatalf("Set(%v): %v", c, err)
		}
	}
}

func isAdjacent(a, b engine.Coord) bool {
	d := abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
	return d == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
