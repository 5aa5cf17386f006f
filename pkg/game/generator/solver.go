package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"dimdungeons/pkg/engine/world"
	"dimdungeons/pkg/game/catalog"
	"dimdungeons/pkg/game/layout"
)

var (
	ErrInvalidRoomBudget = errors.New("generator: room budget must be at least 1")
	ErrAlreadySolved     = errors.New("generator: solver has already produced its dungeon")
)

// entranceOpenings is the order the entrance's neighbors are first queued in
var entranceOpenings = []world.Direction{world.West, world.East, world.North}

// expansionOrder is the order a new room's openings are queued in
var expansionOrder = []world.Direction{world.West, world.East, world.North, world.South}

// Placement records one committed room in the order the solver placed it
type Placement struct {
	Pos   world.Coord
	Shape layout.Shape
	Mode  Mode // ModeNormal for the entrance, which is fixed
}

// Dungeon is a finished layout together with everything needed to reproduce it
type Dungeon struct {
	WorldSeed int64
	QuadrantX int
	QuadrantZ int
	Seed      int64 // derived from WorldSeed and the quadrant
	MaxRooms  int

	Grid        *layout.Grid
	RoomsPlaced int

	// Variation1 and Variation2 are in [0,3) and are reserved for room content
	Variation1 int
	Variation2 int

	// Cursors is the next hand-out position of every catalog category
	Cursors map[layout.RoomType]int
	// Skipped counts frontier entries dropped because their cell was already filled
	Skipped int
	// Placements lists every room in placement order, entrance first
	Placements []Placement
}

// Solver grows one dungeon layout. It is built for a single dungeon, solved
// once, and must not be shared between goroutines while solving.
type Solver struct {
	worldSeed int64
	qx, qz    int
	seed      int64
	opts      Options
	catalog   *catalog.Catalog

	rng      *rand.Rand
	grid     *layout.Grid
	cursors  map[layout.RoomType]*catalog.Cursor
	frontier frontier
	log      []Placement
	placed   int
	skipped  int
	solved   bool

	variation1 int
	variation2 int
}

// NewSolver prepares a solver for the dungeon at quadrant (qx, qz) of the
// world. Configuration problems are reported here, before any solving.
// The random draws happen in a fixed order: the two variations, then one
// shuffle per catalog category.
func NewSolver(worldSeed int64, qx, qz int, opts *Options) (*Solver, error) {
	if opts == nil {
		opts = DefaultOptions(DefaultMaxRooms)
	}
	if opts.MaxRooms < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRoomBudget, opts.MaxRooms)
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	seed := DeriveSeed(worldSeed, qx, qz)
	s := &Solver{
		worldSeed: worldSeed,
		qx:        qx,
		qz:        qz,
		seed:      seed,
		opts:      *opts,
		catalog:   cat,
		rng:       rand.New(rand.NewSource(seed)),
		grid:      layout.NewGrid(),
		cursors:   make(map[layout.RoomType]*catalog.Cursor, len(catalog.Categories)),
	}

	s.variation1 = s.rng.Intn(3)
	s.variation2 = s.rng.Intn(3)

	for _, t := range catalog.Categories {
		s.cursors[t] = catalog.NewCursor(cat.List(t), s.rng)
	}

	return s, nil
}

// Seed returns the derived seed the solver's random source was built from
func (s *Solver) Seed() int64 {
	return s.seed
}

// Solve grows the layout from the entrance until no openings are left
func (s *Solver) Solve() (*Dungeon, error) {
	if s.solved {
		return nil, ErrAlreadySolved
	}
	s.solved = true

	if err := s.placeEntrance(); err != nil {
		return nil, err
	}

	for s.frontier.size() > 0 {
		pos := s.frontier.pop()
		if s.grid.Occupied(pos) {
			s.skipped++
			continue
		}

		req := requirementsAt(s.grid, pos)
		m := modeFor(s.placed, s.frontier.size(), s.opts.MaxRooms)
		shape := s.chooseShape(req, m)
		if err := s.place(pos, shape, m); err != nil {
			return nil, err
		}
		s.openFrom(pos, shape, expansionOrder)
	}

	return s.result(), nil
}

// placeEntrance commits the entrance room and queues its three openings
func (s *Solver) placeEntrance() error {
	shape := layout.Shape{Type: layout.Entrance, Rotation: world.Rotate0}
	if err := s.place(layout.EntrancePosition, shape, ModeNormal); err != nil {
		return err
	}
	s.openFrom(layout.EntrancePosition, shape, entranceOpenings)
	return nil
}

// chooseShape resolves the room for a cell: the minimal room for the required
// doors, or an upgrade with extra doors when the mode allows one.
func (s *Solver) chooseShape(req requirement, m Mode) layout.Shape {
	minimal := minimalShape(req)
	candidates := upgradeCandidates(req, m, s.opts.GrowThreeways)
	if len(candidates) == 0 {
		return minimal
	}
	if !s.opts.ShuffleUpgrades {
		return candidates[0]
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// place draws the next structure of the shape's category and commits it
func (s *Solver) place(pos world.Coord, shape layout.Shape, m Mode) error {
	id := s.catalog.Resolve(s.cursors[shape.Type].Next(), s.rng)
	if err := s.grid.Place(pos, id, shape.Type, shape.Rotation); err != nil {
		return fmt.Errorf("placing %v: %w", shape, err)
	}
	s.log = append(s.log, Placement{Pos: pos, Shape: shape, Mode: m})
	s.placed++
	return nil
}

// openFrom queues every empty in-grid neighbor the room at pos has a door
// towards, then reshuffles the queue.
func (s *Solver) openFrom(pos world.Coord, shape layout.Shape, order []world.Direction) {
	doors := shape.Doors()
	for _, dir := range order {
		next := pos.Step(dir)
		if doors.Has(dir) && s.grid.IsValidPosition(next) && !s.grid.Occupied(next) {
			s.frontier.push(next)
		}
	}
	if s.opts.ShuffleFrontier {
		s.frontier.shuffle(s.rng)
	}
}

// result snapshots the solver state into a Dungeon that owns its own grid
func (s *Solver) result() *Dungeon {
	grid := *s.grid
	cursors := make(map[layout.RoomType]int, len(s.cursors))
	for t, c := range s.cursors {
		cursors[t] = c.Index()
	}
	return &Dungeon{
		WorldSeed:   s.worldSeed,
		QuadrantX:   s.qx,
		QuadrantZ:   s.qz,
		Seed:        s.seed,
		MaxRooms:    s.opts.MaxRooms,
		Grid:        &grid,
		RoomsPlaced: s.placed,
		Variation1:  s.variation1,
		Variation2:  s.variation2,
		Cursors:     cursors,
		Skipped:     s.skipped,
		Placements:  append([]Placement(nil), s.log...),
	}
}

// Generate builds and solves the dungeon at quadrant (qx, qz) in one call
func Generate(worldSeed int64, qx, qz int, opts *Options) (*Dungeon, error) {
	s, err := NewSolver(worldSeed, qx, qz, opts)
	if err != nil {
		return nil, err
	}
	return s.Solve()
}
