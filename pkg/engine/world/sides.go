package world

import "strings"

// Sides is a 4-bit mask of compass sides, one bit per Direction
type Sides uint8

// AllSides has every side set
const AllSides Sides = 0xF

// SidesOf builds a mask from the given directions
func SidesOf(dirs ...Direction) Sides {
	var s Sides
	for _, d := range dirs {
		s |= d.Side()
	}
	return s
}

// Has reports whether the side for dir is set
func (s Sides) Has(dir Direction) bool {
	return s&dir.Side() != 0
}

// With returns the mask with dir added
func (s Sides) With(dir Direction) Sides {
	return s | dir.Side()
}

// Count returns the number of sides set
func (s Sides) Count() int {
	n := 0
	for _, d := range AllDirections() {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Contains reports whether every side in other is also in s
func (s Sides) Contains(other Sides) bool {
	return s&other == other
}

// Rotate turns every side in the mask clockwise by r
func (s Sides) Rotate(r Rotation) Sides {
	s &= AllSides
	for i := 0; i < int(r.normalize()); i++ {
		s = ((s << 1) | (s >> 3)) & AllSides
	}
	return s
}

// Directions returns the set sides in clockwise order starting at North
func (s Sides) Directions() []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String lists the set sides, e.g. "N|E"
func (s Sides) String() string {
	if s&AllSides == 0 {
		return "none"
	}
	var parts []string
	for _, d := range s.Directions() {
		parts = append(parts, d.String()[:1])
	}
	return strings.Join(parts, "|")
}
