package layout

import (
	"errors"
	"fmt"

	"dimdungeons/pkg/engine/world"
)

// Size is the width and depth of a dungeon grid in cells
const Size = 8

// EntrancePosition is where every dungeon's entrance room sits (bottom row, centre)
var EntrancePosition = world.Coord{X: 4, Z: 7}

var (
	ErrOutOfBounds    = errors.New("layout: position outside grid")
	ErrCellOccupied   = errors.New("layout: cell already holds a room")
	ErrEmptyPlacement = errors.New("layout: cannot place an empty room")
)

// Grid is the fixed 8x8 dungeon layout stored as a dense array.
// The zero value is an empty grid ready for use.
type Grid struct {
	cells [Size * Size]Cell
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{}
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(pos world.Coord) bool {
	return pos.Within(Size)
}

// Cell returns the cell at pos. Positions outside the grid report false.
func (g *Grid) Cell(pos world.Coord) (Cell, bool) {
	if !g.IsValidPosition(pos) {
		return Cell{}, false
	}
	return g.cells[pos.Z*Size+pos.X], true
}

// Occupied returns true if pos is inside the grid and holds a room
func (g *Grid) Occupied(pos world.Coord) bool {
	c, ok := g.Cell(pos)
	return ok && c.Occupied()
}

// Neighbor returns the cell adjacent to pos in the given direction.
// The edge of the grid reports false.
func (g *Grid) Neighbor(pos world.Coord, dir world.Direction) (Cell, bool) {
	return g.Cell(pos.Step(dir))
}

// Place writes a room into an empty cell. Cells are write-once.
func (g *Grid) Place(pos world.Coord, structureID string, t RoomType, rot world.Rotation) error {
	if !g.IsValidPosition(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if t == Empty || structureID == "" {
		return fmt.Errorf("%w at %v", ErrEmptyPlacement, pos)
	}
	idx := pos.Z*Size + pos.X
	if g.cells[idx].Occupied() {
		return fmt.Errorf("%w at %v (%s)", ErrCellOccupied, pos, g.cells[idx].StructureID)
	}
	g.cells[idx] = Cell{StructureID: structureID, Type: t, Rotation: rot}
	return nil
}

// ForEachCell iterates over all cells in row-major order (z, then x)
func (g *Grid) ForEachCell(fn func(pos world.Coord, cell Cell)) {
	for z := 0; z < Size; z++ {
		for x := 0; x < Size; x++ {
			fn(world.Coord{X: x, Z: z}, g.cells[z*Size+x])
		}
	}
}

// RoomCount returns the number of occupied cells
func (g *Grid) RoomCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Occupied() {
			n++
		}
	}
	return n
}

// CountByType returns how many cells hold each room type
func (g *Grid) CountByType() map[RoomType]int {
	counts := make(map[RoomType]int)
	for _, c := range g.cells {
		if c.Occupied() {
			counts[c.Type]++
		}
	}
	return counts
}
