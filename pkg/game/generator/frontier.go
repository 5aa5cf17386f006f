package generator

import (
	"math/rand"

	"dimdungeons/pkg/engine/world"
)

// frontier is the queue of cells a placed room has opened a door towards.
// A position may be queued more than once; the solver skips it once filled.
type frontier struct {
	items []world.Coord
}

func (f *frontier) push(pos world.Coord) {
	f.items = append(f.items, pos)
}

// pop removes and returns the front entry. Callers check size first.
func (f *frontier) pop() world.Coord {
	pos := f.items[0]
	f.items = f.items[1:]
	if len(f.items) == 0 {
		f.items = nil
	}
	return pos
}

func (f *frontier) size() int {
	return len(f.items)
}

func (f *frontier) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(f.items), func(i, j int) {
		f.items[i], f.items[j] = f.items[j], f.items[i]
	})
}
