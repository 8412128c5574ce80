// Package engine implements the Cubic SameGame puzzle: an N×N×N lattice of
// colored spheres, connected-group removal and center-ward consolidation.
// This package is UI-agnostic and deterministic for a given random source.
package engine

import (
	"fmt"
	"math"

	"github.com/taKana671/CubicSameGame/internal/dependencies/random"
)

// Coord addresses a cell of the lattice.
type Coord struct {
	X, Y, Z int
}

// C is shorthand for building a Coord.
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// String returns "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Cell is one lattice slot.
type Cell struct {
	Occupied bool  // Whether a sphere sits in the cell
	Color    Color // Valid only when Occupied is true
}

// neighborOffsets fixes the neighbor enumeration order: +x, -x, +y, -y, +z, -z.
// Consolidation breaks distance ties by this order.
var neighborOffsets = [6]Coord{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Grid is the size³ lattice. Cells are stored by tag:
// index = x*size² + y*size + z.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates an empty size×size×size grid.
// The size must allow one distinct palette color per layer.
func NewGrid(size int) (*Grid, error) {
	if size < 1 || size > PaletteSize {
		return nil, fmt.Errorf("%w: %d (grid supports 1..%d)", ErrInvalidSize, size, PaletteSize)
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size*size),
	}, nil
}

// Size returns the edge length.
func (g *Grid) Size() int {
	return g.size
}

// Len returns the total number of cells (size³).
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds returns true if every component lies in [0, size).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size &&
		c.Y >= 0 && c.Y < g.size &&
		c.Z >= 0 && c.Z < g.size
}

// Tag returns the stable integer identity of the cell at c.
// The caller must pass an in-bounds coordinate.
func (g *Grid) Tag(c Coord) int {
	return c.X*g.size*g.size + c.Y*g.size + c.Z
}

// CoordOf decodes a tag back to its coordinate.
func (g *Grid) CoordOf(tag int) (Coord, error) {
	if tag < 0 || tag >= len(g.cells) {
		return Coord{}, fmt.Errorf("%w: tag %d outside [0,%d)", ErrInvalidCoordinate, tag, len(g.cells))
	}
	return Coord{
		X: tag / (g.size * g.size),
		Y: (tag / g.size) % g.size,
		Z: tag % g.size,
	}, nil
}

// check returns a wrapped ErrInvalidCoordinate for out-of-bounds coordinates.
func (g *Grid) check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s outside [0,%d)", ErrInvalidCoordinate, c, g.size)
	}
	return nil
}

// At returns the occupant of c and whether the cell is occupied.
func (g *Grid) At(c Coord) (Color, bool, error) {
	if err := g.check(c); err != nil {
		return 0, false, err
	}
	cell := g.cells[g.Tag(c)]
	return cell.Color, cell.Occupied, nil
}

// Set places a sphere of the given color at c.
func (g *Grid) Set(c Coord, color Color) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[g.Tag(c)] = Cell{Occupied: true, Color: color}
	return nil
}

// Clear empties the cell at c.
func (g *Grid) Clear(c Coord) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[g.Tag(c)] = Cell{}
	return nil
}

// cell returns the cell at an in-bounds coordinate without checking.
func (g *Grid) cell(c Coord) Cell {
	return g.cells[g.Tag(c)]
}

// Populate fills every cell with a color drawn independently from colors.
func (g *Grid) Populate(rng random.Random, colors []Color) {
	for i := range g.cells {
		g.cells[i] = Cell{Occupied: true, Color: RandomColor(rng, colors)}
	}
}

// Neighbors returns the in-bounds axis-aligned neighbors of c in the order
// +x, -x, +y, -y, +z, -z.
func (g *Grid) Neighbors(c Coord) []Coord {
	result := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// position maps a lattice index to its spatial coordinate. Positions are
// spaced 2 apart and centered on the origin: 2*i - (size-1).
func (g *Grid) position(i int) int {
	return 2*i - (g.size - 1)
}

// distanceSq is the squared distance from the center. It orders cells
// exactly like DistanceToCenter without floating point.
func (g *Grid) distanceSq(c Coord) int {
	px, py, pz := g.position(c.X), g.position(c.Y), g.position(c.Z)
	return px*px + py*py + pz*pz
}

// DistanceToCenter returns the Euclidean distance from the cell's spatial
// position to the lattice center.
func (g *Grid) DistanceToCenter(c Coord) float64 {
	return math.Sqrt(float64(g.distanceSq(c)))
}

// Coords returns every coordinate in enumeration order:
// increasing x, then y, then z (which is also increasing tag order).
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			for z := 0; z < g.size; z++ {
				coords = append(coords, Coord{x, y, z})
			}
		}
	}
	return coords
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// IsFull returns true if every cell is occupied.
func (g *Grid) IsFull() bool {
	return g.OccupiedCount() == len(g.cells)
}

// IsEmpty returns true if no cell is occupied.
func (g *Grid) IsEmpty() bool {
	return g.OccupiedCount() == 0
}

// Snapshot returns the occupied cells keyed by coordinate.
func (g *Grid) Snapshot() map[Coord]Color {
	board := make(map[Coord]Color, len(g.cells))
	for _, c := range g.Coords() {
		if cell := g.cell(c); cell.Occupied {
			board[c] = cell.Color
		}
	}
	return board
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		size:  g.size,
		cells: cells,
	}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
