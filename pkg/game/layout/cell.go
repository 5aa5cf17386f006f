package layout

import "dimdungeons/pkg/engine/world"

// Cell is one position of the dungeon grid.
// A cell is Empty until a room is placed, after which it never changes.
type Cell struct {
	StructureID string
	Type        RoomType
	Rotation    world.Rotation
}

// Occupied returns true if a room has been placed in the cell
func (c Cell) Occupied() bool {
	return c.Type != Empty
}

// Doors returns the door mask of the placed room (none for an empty cell)
func (c Cell) Doors() world.Sides {
	return Doors(c.Type, c.Rotation)
}

// HasDoor reports whether the placed room has a door on the given side
func (c Cell) HasDoor(side world.Direction) bool {
	return c.Doors().Has(side)
}

// Shape returns the room type and rotation of the cell
func (c Cell) Shape() Shape {
	return Shape{Type: c.Type, Rotation: c.Rotation}
}
