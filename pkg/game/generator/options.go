package generator

import "dimdungeons/pkg/game/catalog"

// DefaultMaxRooms is the room budget used when none is given
const DefaultMaxRooms = 25

// Options configures dungeon generation
type Options struct {
	MaxRooms int              // Room budget; the finished layout may exceed it by the closing rooms
	Catalog  *catalog.Catalog // Structure catalog; nil means catalog.Default()

	// ShuffleFrontier reshuffles the pending cells after every placement.
	// When false cells are processed in the order their doors were opened.
	ShuffleFrontier bool
	// ShuffleUpgrades picks a random upgrade candidate instead of the first one.
	ShuffleUpgrades bool
	// GrowThreeways lets a cell that needs three doors become a fourway in
	// normal mode as well. Off, it only grows while dead ends are held back.
	GrowThreeways bool
}

// DefaultOptions returns standard generation options for the given budget
func DefaultOptions(maxRooms int) *Options {
	return &Options{
		MaxRooms:        maxRooms,
		Catalog:         nil, // nil → catalog.Default() inside NewSolver
		ShuffleFrontier: true,
		ShuffleUpgrades: true,
	}
}

// LegacyOptions returns options with both randomisations switched off, which
// processes the frontier in insertion order and always takes the first
// (largest) upgrade candidate. Layouts still depend on the seed through the
// catalog shuffle and variant draws.
func LegacyOptions(maxRooms int) *Options {
	opts := DefaultOptions(maxRooms)
	opts.ShuffleFrontier = false
	opts.ShuffleUpgrades = false
	return opts
}
