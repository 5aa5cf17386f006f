// Package world provides small grid primitives shared by the layout code:
// compass directions, quarter-turn rotations, side masks and coordinates.
package world

import "fmt"

// Coord is a cell position; X grows East and Z grows South
type Coord struct {
	X int
	Z int
}

// Step returns the coordinate one cell away in the given direction
func (c Coord) Step(dir Direction) Coord {
	dx, dz := dir.Delta()
	return Coord{X: c.X + dx, Z: c.Z + dz}
}

// Within reports whether the coordinate lies in [0,size) on both axes
func (c Coord) Within(size int) bool {
	return c.X >= 0 && c.X < size && c.Z >= 0 && c.Z < size
}

// String returns "(x,z)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}
