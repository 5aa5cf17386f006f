// Package layout holds the dungeon grid: room types, the rotation-aware door
// table, write-once cells and the structural checks a finished layout must pass.
package layout

import (
	"github.com/zyedidia/generic/mapset"

	"dimdungeons/pkg/engine/world"
)

// RoomType classifies a room by its door arrangement
type RoomType int

// Room types. Empty is the zero value so a fresh cell is unoccupied.
const (
	Empty RoomType = iota
	Entrance
	End
	Corner
	Hallway
	Threeway
	Fourway
)

// String returns the name of the room type
func (t RoomType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Entrance:
		return "Entrance"
	case End:
		return "End"
	case Corner:
		return "Corner"
	case Hallway:
		return "Hallway"
	case Threeway:
		return "Threeway"
	case Fourway:
		return "Fourway"
	default:
		return "Unknown"
	}
}

// canonicalDoors is the door set of each room type at rotation 0
var canonicalDoors = map[RoomType]world.Sides{
	Empty:    0,
	Entrance: world.SidesOf(world.North, world.East, world.West),
	End:      world.SidesOf(world.South),
	Corner:   world.SidesOf(world.North, world.East),
	Hallway:  world.SidesOf(world.North, world.South),
	Threeway: world.SidesOf(world.East, world.South, world.West),
	Fourway:  world.AllSides,
}

// Doors returns the sides that carry a door for the type at the given rotation
func Doors(t RoomType, rot world.Rotation) world.Sides {
	return canonicalDoors[t].Rotate(rot)
}

// HasDoor reports whether a room of type t rotated by rot has a door on side
func HasDoor(t RoomType, rot world.Rotation, side world.Direction) bool {
	return Doors(t, rot).Has(side)
}

// DoorCount returns how many doors the room type has
func (t RoomType) DoorCount() int {
	return canonicalDoors[t].Count()
}

// Shape is a room type paired with a rotation
type Shape struct {
	Type     RoomType
	Rotation world.Rotation
}

// Doors returns the door mask of the shape
func (s Shape) Doors() world.Sides {
	return Doors(s.Type, s.Rotation)
}

// String returns e.g. "Corner@90°"
func (s Shape) String() string {
	return s.Type.String() + "@" + s.Rotation.String()
}

// distinctShapes lists every placeable (non-Entrance) shape once per distinct
// door mask, largest rooms first. The order is stable and is what the solver
// enumerates upgrade candidates in.
var distinctShapes = buildDistinctShapes()

func buildDistinctShapes() []Shape {
	var shapes []Shape
	seen := mapset.New[world.Sides]()
	for _, t := range []RoomType{Fourway, Threeway, Corner, Hallway, End} {
		for _, rot := range world.AllRotations() {
			doors := Doors(t, rot)
			if seen.Has(doors) {
				continue
			}
			seen.Put(doors)
			shapes = append(shapes, Shape{Type: t, Rotation: rot})
		}
	}
	return shapes
}

// Shapes returns every distinct placeable shape, largest first
func Shapes() []Shape {
	out := make([]Shape, len(distinctShapes))
	copy(out, distinctShapes)
	return out
}

// ShapeFor returns the shape whose doors are exactly the given mask.
// Every mask with at least one side maps to exactly one shape; the empty mask
// has none and reports false.
func ShapeFor(doors world.Sides) (Shape, bool) {
	for _, s := range distinctShapes {
		if s.Doors() == doors {
			return s, true
		}
	}
	return Shape{}, false
}
