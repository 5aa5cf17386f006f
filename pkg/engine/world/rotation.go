package world

import "fmt"

// Rotation is a clockwise quarter-turn count applied to a room template
type Rotation int

// Rotation constants
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// AllRotations returns the four rotations in clockwise order
func AllRotations() []Rotation {
	return []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}
}

func (r Rotation) normalize() Rotation {
	return ((r % 4) + 4) % 4
}

// Add composes two rotations modulo a full turn
func (r Rotation) Add(other Rotation) Rotation {
	return (r + other).normalize()
}

// Degrees returns the clockwise angle of the rotation
func (r Rotation) Degrees() int {
	return int(r.normalize()) * 90
}

// String returns the rotation in degrees, e.g. "90°"
func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}
