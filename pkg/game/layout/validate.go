package layout

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dimdungeons/pkg/engine/world"
)

// Validate checks the finished-layout invariants and returns every violation
// found, joined, or nil for a sound layout:
//   - exactly one Entrance, at EntrancePosition
//   - no door faces the grid edge
//   - every door faces an occupied neighbor that has the matching door
//   - every room is reachable from the entrance through matching doors
func (g *Grid) Validate() error {
	var errs []error

	entrances := 0
	g.ForEachCell(func(pos world.Coord, cell Cell) {
		if !cell.Occupied() {
			return
		}
		if cell.Type == Entrance {
			entrances++
			if pos != EntrancePosition {
				errs = append(errs, fmt.Errorf("entrance at %v, want %v", pos, EntrancePosition))
			}
		}
		if cell.StructureID == "" {
			errs = append(errs, fmt.Errorf("room at %v has no structure", pos))
		}
		for _, dir := range world.AllDirections() {
			neighbor, inside := g.Neighbor(pos, dir)
			door := cell.HasDoor(dir)
			switch {
			case !inside:
				if door {
					errs = append(errs, fmt.Errorf("room at %v has a door facing the %v edge", pos, dir))
				}
			case !neighbor.Occupied():
				if door {
					errs = append(errs, fmt.Errorf("room at %v has a dangling door to the %v", pos, dir))
				}
			case neighbor.HasDoor(dir.Opposite()) != door:
				errs = append(errs, fmt.Errorf("rooms at %v and %v disagree on their shared %v side", pos, pos.Step(dir), dir))
			}
		}
	})
	if entrances != 1 {
		errs = append(errs, fmt.Errorf("found %d entrances, want 1", entrances))
	}

	if reached, total := len(g.Reachable(EntrancePosition)), g.RoomCount(); reached != total {
		errs = append(errs, fmt.Errorf("only %d of %d rooms reachable from the entrance", reached, total))
	}

	return errors.Join(errs...)
}

// Reachable returns every occupied position connected to start through
// matching doors on both sides, start included, in breadth-first order.
func (g *Grid) Reachable(start world.Coord) []world.Coord {
	if !g.Occupied(start) {
		return nil
	}

	visited := mapset.New[world.Coord]()
	pending := queue.New[world.Coord]()
	pending.Enqueue(start)
	visited.Put(start)

	var order []world.Coord
	for !pending.Empty() {
		current := pending.Dequeue()
		order = append(order, current)

		cell, _ := g.Cell(current)
		for _, dir := range cell.Doors().Directions() {
			next := current.Step(dir)
			neighbor, ok := g.Cell(next)
			if !ok || !neighbor.HasDoor(dir.Opposite()) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			pending.Enqueue(next)
		}
	}
	return order
}
