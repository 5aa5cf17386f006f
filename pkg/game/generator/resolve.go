package generator

import (
	"fmt"

	"dimdungeons/pkg/engine/world"
	"dimdungeons/pkg/game/layout"
)

// Mode is how much freedom the solver has left when filling a cell
type Mode int

const (
	ModeNormal     Mode = iota // meet the required doors, branch where possible
	ModeNoDeadEnds             // too early for dead ends; threeways may also grow
	ModeMustFinish             // budget reached; close every opening with the smallest room
)

func (m Mode) String() string {
	switch m {
	case ModeNoDeadEnds:
		return "no-dead-ends"
	case ModeMustFinish:
		return "must-finish"
	default:
		return "normal"
	}
}

// modeFor picks the placement mode from the rooms committed plus the openings
// still waiting for a room.
func modeFor(placed, pending, maxRooms int) Mode {
	switch total := placed + pending; {
	case total >= maxRooms:
		return ModeMustFinish
	case total < maxRooms/2:
		return ModeNoDeadEnds
	default:
		return ModeNormal
	}
}

// requirement is what the already-placed neighbors say about a cell's sides
type requirement struct {
	must world.Sides // neighbor has a door facing this cell
	cant world.Sides // neighbor has a wall facing this cell, or the grid ends
}

// requirementsAt inspects the four neighbors of pos
func requirementsAt(g *layout.Grid, pos world.Coord) requirement {
	var req requirement
	for _, dir := range world.AllDirections() {
		neighbor, inside := g.Neighbor(pos, dir)
		switch {
		case !inside:
			req.cant = req.cant.With(dir)
		case !neighbor.Occupied():
		case neighbor.HasDoor(dir.Opposite()):
			req.must = req.must.With(dir)
		default:
			req.cant = req.cant.With(dir)
		}
	}
	return req
}

// minimalShape is the smallest room whose doors are exactly the required ones.
// A cell with nothing required only happens if it was queued without a door
// leading to it; it gets a dead end facing its first open side.
func minimalShape(req requirement) layout.Shape {
	if req.must == 0 {
		for _, rot := range world.AllRotations() {
			if layout.Doors(layout.End, rot)&req.cant == 0 {
				return layout.Shape{Type: layout.End, Rotation: rot}
			}
		}
		return layout.Shape{Type: layout.End, Rotation: world.Rotate0}
	}
	shape, ok := layout.ShapeFor(req.must)
	if !ok {
		panic(fmt.Sprintf("generator: no room shape for doors %v", req.must))
	}
	return shape
}

// upgradeCandidates lists the rooms with strictly more doors than required
// whose extra doors all face cells nobody has walled off yet. Three required
// doors only grow into a fourway while dead ends are still being held back,
// unless growThreeways is set.
func upgradeCandidates(req requirement, m Mode, growThreeways bool) []layout.Shape {
	if m == ModeMustFinish {
		return nil
	}
	required := req.must.Count()
	if required == 3 && m != ModeNoDeadEnds && !growThreeways {
		return nil
	}
	var candidates []layout.Shape
	for _, shape := range layout.Shapes() {
		doors := shape.Doors()
		if doors.Count() <= required || !doors.Contains(req.must) {
			continue
		}
		if extra := doors &^ req.must; extra&req.cant != 0 {
			continue
		}
		candidates = append(candidates, shape)
	}
	return candidates
}
