// Package catalog defines the structure templates a dungeon is built from:
// one identifier list per room category plus a side table of identifiers that
// stand for a family of content variants.
package catalog

import (
	"errors"
	"fmt"

	"dimdungeons/pkg/game/layout"
)

// ErrEmptyCategory is returned when a category has no identifiers to draw from
var ErrEmptyCategory = errors.New("catalog: empty category")

// Categories lists the room types that draw from the catalog, in the order
// their lists are shuffled when a solver is created.
var Categories = []layout.RoomType{
	layout.Entrance,
	layout.End,
	layout.Corner,
	layout.Hallway,
	layout.Threeway,
	layout.Fourway,
}

// Catalog holds the identifier lists and the variant side table.
// A Catalog is read-only once built; solvers copy the lists they shuffle.
type Catalog struct {
	Structures map[layout.RoomType][]string
	Variants   map[string]VariantRule
}

// New creates a catalog from per-category lists and a variant table
func New(structures map[layout.RoomType][]string, variants map[string]VariantRule) *Catalog {
	c := &Catalog{
		Structures: make(map[layout.RoomType][]string, len(structures)),
		Variants:   make(map[string]VariantRule, len(variants)),
	}
	for t, ids := range structures {
		c.Structures[t] = append([]string(nil), ids...)
	}
	for id, rule := range variants {
		c.Variants[id] = rule
	}
	return c
}

// Validate checks that every category can be drawn from and that every
// variant rule is usable. It must pass before a solver is built.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: no catalog", ErrEmptyCategory)
	}
	var errs []error
	for _, t := range Categories {
		if len(c.Structures[t]) == 0 {
			errs = append(errs, fmt.Errorf("%w: %v", ErrEmptyCategory, t))
		}
	}
	for id, rule := range c.Variants {
		if err := rule.validate(); err != nil {
			errs = append(errs, fmt.Errorf("variant %q: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// List returns a copy of the identifiers of one category
func (c *Catalog) List(t layout.RoomType) []string {
	return append([]string(nil), c.Structures[t]...)
}

// Default returns the built-in catalog
func Default() *Catalog {
	return New(map[layout.RoomType][]string{
		layout.Entrance: {"entrance_1", "entrance_2", "entrance_3", "entrance_4", "entrance_5", "entrance_6"},
		layout.End: {
			"deadend_1", "deadend_2", "deadend_3", "deadend_4", "deadend_5", "deadend_6", "deadend_7", "deadend_8",
			"coffin_1", "advice_room_1", "restroom_1", "shoutout_1", "spawner_1", "redspuzzle_1",
		},
		layout.Corner: {"corner_1", "corner_2", "corner_3", "corner_4", "corner_5", "corner_6", "corner_7", "corner_8", "redstrap_3"},
		layout.Hallway: {
			"hallway_1", "hallway_2", "hallway_3", "hallway_4", "hallway_5", "hallway_6",
			"advice_room_3", "tempt_1", "redstrap_2",
		},
		layout.Threeway: {"threeway_1", "threeway_2", "threeway_3", "threeway_4", "threeway_5", "advice_room_2", "redstrap_4"},
		// combat_1 is listed twice so it can show up twice per cycle
		layout.Fourway: {
			"fourway_1", "fourway_2", "fourway_3", "fourway_4", "fourway_5", "fourway_6", "fourway_7", "fourway_8", "fourway_9",
			"combat_1", "combat_1", "redstrap_1",
		},
	}, DefaultVariants())
}

// DefaultVariants returns the built-in variant side table
func DefaultVariants() map[string]VariantRule {
	return map[string]VariantRule{
		"combat_1":     {Count: 5},
		"tempt_1":      {Count: 4},
		"shoutout_1":   {Count: 2},
		"redspuzzle_1": {Count: 5},
		// spawner variant 6 is the common one
		"spawner_1": {Count: 6, Weights: []int{1, 1, 1, 1, 1, 3}},
		// only one coffin and one restroom layout are finished
		"coffin_1":   {Count: 5, Weights: []int{0, 1, 0, 0, 0}},
		"restroom_1": {Count: 5, Weights: []int{1, 0, 0, 0, 0}},
	}
}
