package engine

import "sort"

// ConnectedGroup returns the maximal 6-connected set of cells sharing the
// color at start, sorted in enumeration order. It returns nil when start is
// out of bounds or empty; callers should only ask about occupied cells.
func ConnectedGroup(g *Grid, start Coord) []Coord {
	if !g.InBounds(start) {
		return nil
	}
	seed := g.cell(start)
	if !seed.Occupied {
		return nil
	}

	visited := make([]bool, g.Len())
	visited[g.Tag(start)] = true
	stack := []Coord{start}
	var group []Coord

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, c)

		for _, n := range g.Neighbors(c) {
			tag := g.Tag(n)
			if visited[tag] {
				continue
			}
			if cell := g.cell(n); cell.Occupied && cell.Color == seed.Color {
				visited[tag] = true
				stack = append(stack, n)
			}
		}
	}

	sort.Slice(group, func(i, j int) bool {
		return g.Tag(group[i]) < g.Tag(group[j])
	})
	return group
}

// IsDeletable reports whether c is occupied and has at least one
// same-colored neighbor, i.e. its connected group has two or more cells.
func IsDeletable(g *Grid, c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	cell := g.cell(c)
	if !cell.Occupied {
		return false
	}
	for _, n := range g.Neighbors(c) {
		if other := g.cell(n); other.Occupied && other.Color == cell.Color {
			return true
		}
	}
	return false
}

// HasAnyMove reports whether any occupied cell is deletable.
func HasAnyMove(g *Grid) bool {
	for _, c := range g.Coords() {
		if IsDeletable(g, c) {
			return true
		}
	}
	return false
}

// DeletableCells returns every deletable cell in enumeration order.
func DeletableCells(g *Grid) []Coord {
	var cells []Coord
	for _, c := range g.Coords() {
		if IsDeletable(g, c) {
			cells = append(cells, c)
		}
	}
	return cells
}
