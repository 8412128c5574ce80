package engine

// Move records one sphere relocating from one cell to an adjacent one.
type Move struct {
	From Coord
	To   Coord
}

// Settle consolidates the grid toward its center and returns the moves in
// the order they were applied.
//
// Each pass scans cells in enumeration order and stops at the first occupied
// cell that has an empty neighbor strictly closer to the center. The sphere
// moves to the closest such neighbor (ties broken by neighbor order) and the
// scan restarts from the beginning. Settling ends after a pass with no move.
// Every move strictly lowers the total distance of occupied cells, so the
// loop terminates.
func Settle(g *Grid) []Move {
	var moves []Move
	coords := g.Coords()

	for {
		move, ok := nextMove(g, coords)
		if !ok {
			return moves
		}
		g.cells[g.Tag(move.To)] = g.cell(move.From)
		g.cells[g.Tag(move.From)] = Cell{}
		moves = append(moves, move)
	}
}

// PlanSettle returns the moves Settle would make without modifying g.
func PlanSettle(g *Grid) []Move {
	return Settle(g.Clone())
}

// nextMove finds the first relocation of a pass, if any.
func nextMove(g *Grid, coords []Coord) (Move, bool) {
	for _, c := range coords {
		if !g.cell(c).Occupied {
			continue
		}
		best := g.distanceSq(c)
		var dest Coord
		found := false
		for _, n := range g.Neighbors(c) {
			if g.cell(n).Occupied {
				continue
			}
			if d := g.distanceSq(n); d < best {
				best = d
				dest = n
				found = true
			}
		}
		if found {
			return Move{From: c, To: dest}, true
		}
	}
	return Move{}, false
}
