package layout

import (
	"errors"
	"strings"
	"testing"

	"dimdungeons/pkg/engine/world"
)

const (
	n = world.North
	e = world.East
	s = world.South
	w = world.West
)

func TestDoors_Table(t *testing.T) {
	tests := []struct {
		typ  RoomType
		rot  world.Rotation
		want world.Sides
	}{
		{Entrance, world.Rotate0, world.SidesOf(n, e, w)},
		{Entrance, world.Rotate90, world.SidesOf(n, e, s)},
		{Entrance, world.Rotate180, world.SidesOf(e, s, w)},
		{Entrance, world.Rotate270, world.SidesOf(n, s, w)},
		{Threeway, world.Rotate0, world.SidesOf(e, s, w)},
		{Threeway, world.Rotate90, world.SidesOf(n, s, w)},
		{Threeway, world.Rotate180, world.SidesOf(n, e, w)},
		{Threeway, world.Rotate270, world.SidesOf(n, e, s)},
		{Corner, world.Rotate0, world.SidesOf(n, e)},
		{Corner, world.Rotate90, world.SidesOf(e, s)},
		{Corner, world.Rotate180, world.SidesOf(s, w)},
		{Corner, world.Rotate270, world.SidesOf(n, w)},
		{Hallway, world.Rotate0, world.SidesOf(n, s)},
		{Hallway, world.Rotate90, world.SidesOf(e, w)},
		{Hallway, world.Rotate180, world.SidesOf(n, s)},
		{Hallway, world.Rotate270, world.SidesOf(e, w)},
		{End, world.Rotate0, world.SidesOf(s)},
		{End, world.Rotate90, world.SidesOf(w)},
		{End, world.Rotate180, world.SidesOf(n)},
		{End, world.Rotate270, world.SidesOf(e)},
	}
	for _, tt := range tests {
		t.Run(Shape{tt.typ, tt.rot}.String(), func(t *testing.T) {
			if got := Doors(tt.typ, tt.rot); got != tt.want {
				t.Errorf("Doors(%v, %v) = %v, want %v", tt.typ, tt.rot, got, tt.want)
			}
			for _, dir := range world.AllDirections() {
				if got := HasDoor(tt.typ, tt.rot, dir); got != tt.want.Has(dir) {
					t.Errorf("HasDoor(%v, %v, %v) = %v, want %v", tt.typ, tt.rot, dir, got, tt.want.Has(dir))
				}
			}
		})
	}
}

func TestDoors_FourwayAndEmptyIgnoreRotation(t *testing.T) {
	for _, rot := range world.AllRotations() {
		if got := Doors(Fourway, rot); got != world.AllSides {
			t.Errorf("Doors(Fourway, %v) = %v, want all sides", rot, got)
		}
		if got := Doors(Empty, rot); got != 0 {
			t.Errorf("Doors(Empty, %v) = %v, want none", rot, got)
		}
	}
}

func TestDoorCount_Ordering(t *testing.T) {
	want := map[RoomType]int{Empty: 0, End: 1, Corner: 2, Hallway: 2, Threeway: 3, Fourway: 4, Entrance: 3}
	for typ, count := range want {
		if got := typ.DoorCount(); got != count {
			t.Errorf("%v.DoorCount() = %d, want %d", typ, got, count)
		}
	}
}

func TestShapeFor_EveryNonEmptyMask(t *testing.T) {
	for mask := world.Sides(1); mask <= world.AllSides; mask++ {
		shape, ok := ShapeFor(mask)
		if !ok {
			t.Errorf("ShapeFor(%v) found no shape", mask)
			continue
		}
		if shape.Doors() != mask {
			t.Errorf("ShapeFor(%v) = %v with doors %v", mask, shape, shape.Doors())
		}
		if shape.Type == Entrance {
			t.Errorf("ShapeFor(%v) returned the entrance", mask)
		}
	}
	if _, ok := ShapeFor(0); ok {
		t.Error("ShapeFor(none) should report false")
	}
	if got := len(Shapes()); got != 15 {
		t.Errorf("len(Shapes()) = %d, want 15 distinct door masks", got)
	}
}

func TestShapes_DistinctMasksLargestFirst(t *testing.T) {
	shapes := Shapes()
	masks := make(map[world.Sides]Shape)
	for i, shape := range shapes {
		if prev, dup := masks[shape.Doors()]; dup {
			t.Errorf("%v and %v share doors %v", prev, shape, shape.Doors())
		}
		masks[shape.Doors()] = shape
		if i > 0 && shape.Doors().Count() > shapes[i-1].Doors().Count() {
			t.Errorf("%v listed after smaller %v", shape, shapes[i-1])
		}
	}
	// the first rotation of each type wins its mask
	want := []Shape{
		{Fourway, world.Rotate0},
		{Threeway, world.Rotate0}, {Threeway, world.Rotate90}, {Threeway, world.Rotate180}, {Threeway, world.Rotate270},
		{Corner, world.Rotate0}, {Corner, world.Rotate90}, {Corner, world.Rotate180}, {Corner, world.Rotate270},
		{Hallway, world.Rotate0}, {Hallway, world.Rotate90},
		{End, world.Rotate0}, {End, world.Rotate90}, {End, world.Rotate180}, {End, world.Rotate270},
	}
	if len(shapes) != len(want) {
		t.Fatalf("got %d shapes, want %d", len(shapes), len(want))
	}
	for i := range want {
		if shapes[i] != want[i] {
			t.Errorf("shape %d = %v, want %v", i, shapes[i], want[i])
		}
	}

	shapes[0] = Shape{Type: End}
	if Shapes()[0].Type != Fourway {
		t.Error("Shapes returned the shared slice")
	}
}

func TestGridPlace_WriteOnce(t *testing.T) {
	g := NewGrid()
	pos := world.Coord{X: 2, Z: 3}
	if err := g.Place(pos, "corner_1", Corner, world.Rotate90); err != nil {
		t.Fatalf("Place: %v", err)
	}
	err := g.Place(pos, "corner_2", Corner, world.Rotate0)
	if !errors.Is(err, ErrCellOccupied) {
		t.Errorf("second Place error = %v, want ErrCellOccupied", err)
	}
	cell, _ := g.Cell(pos)
	if cell.StructureID != "corner_1" || cell.Rotation != world.Rotate90 {
		t.Errorf("cell changed after rejected placement: %+v", cell)
	}
	if err := g.Place(world.Coord{X: 8, Z: 0}, "end_1", End, world.Rotate0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds Place error = %v, want ErrOutOfBounds", err)
	}
	if err := g.Place(world.Coord{X: 1, Z: 1}, "", End, world.Rotate0); !errors.Is(err, ErrEmptyPlacement) {
		t.Errorf("Place without structure error = %v, want ErrEmptyPlacement", err)
	}
	if err := g.Place(world.Coord{X: 1, Z: 1}, "x", Empty, world.Rotate0); !errors.Is(err, ErrEmptyPlacement) {
		t.Errorf("Place of Empty error = %v, want ErrEmptyPlacement", err)
	}
	if got := g.RoomCount(); got != 1 {
		t.Errorf("RoomCount() = %d, want 1", got)
	}
}

func TestGridCell_OutOfBoundsIsSolidEdge(t *testing.T) {
	g := NewGrid()
	for _, pos := range []world.Coord{{X: -1, Z: 0}, {X: 0, Z: -1}, {X: 8, Z: 3}, {X: 3, Z: 8}} {
		if _, ok := g.Cell(pos); ok {
			t.Errorf("Cell(%v) reported inside the grid", pos)
		}
		if g.Occupied(pos) {
			t.Errorf("Occupied(%v) = true outside the grid", pos)
		}
	}
}

// placeMinimalDungeon builds the smallest valid layout: the entrance capped by three dead ends.
func placeMinimalDungeon(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid()
	mustPlace := func(pos world.Coord, id string, typ RoomType, rot world.Rotation) {
		if err := g.Place(pos, id, typ, rot); err != nil {
			t.Fatalf("Place(%v): %v", pos, err)
		}
	}
	mustPlace(EntrancePosition, "entrance_1", Entrance, world.Rotate0)
	mustPlace(world.Coord{X: 3, Z: 7}, "deadend_1", End, world.Rotate270)
	mustPlace(world.Coord{X: 5, Z: 7}, "deadend_2", End, world.Rotate90)
	mustPlace(world.Coord{X: 4, Z: 6}, "deadend_3", End, world.Rotate0)
	return g
}

func TestValidate_MinimalDungeon(t *testing.T) {
	g := placeMinimalDungeon(t)
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if got := len(g.Reachable(EntrancePosition)); got != 4 {
		t.Errorf("len(Reachable) = %d, want 4", got)
	}
}

func TestValidate_ReportsViolations(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *Grid)
		want  string
	}{
		{
			name: "mismatched neighbor",
			build: func(g *Grid) {
				_ = g.Place(world.Coord{X: 3, Z: 6}, "corner_1", Corner, world.Rotate0)
			},
			want: "disagree",
		},
		{
			name: "door to the edge",
			build: func(g *Grid) {
				_ = g.Place(world.Coord{X: 0, Z: 0}, "deadend_9", End, world.Rotate180)
			},
			want: "edge",
		},
		{
			name: "unreachable room",
			build: func(g *Grid) {
				_ = g.Place(world.Coord{X: 0, Z: 1}, "hallway_1", Hallway, world.Rotate0)
				_ = g.Place(world.Coord{X: 0, Z: 0}, "deadend_7", End, world.Rotate0)
				_ = g.Place(world.Coord{X: 0, Z: 2}, "deadend_8", End, world.Rotate180)
			},
			want: "reachable",
		},
		{
			name: "second entrance",
			build: func(g *Grid) {
				_ = g.Place(world.Coord{X: 0, Z: 3}, "entrance_2", Entrance, world.Rotate180)
			},
			want: "entrances",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := placeMinimalDungeon(t)
			tt.build(g)
			err := g.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_EmptyGridHasNoEntrance(t *testing.T) {
	err := NewGrid().Validate()
	if err == nil || !strings.Contains(err.Error(), "found 0 entrances") {
		t.Errorf("Validate() on empty grid = %v, want missing entrance", err)
	}
}
