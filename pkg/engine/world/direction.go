package world

// Direction represents a cardinal direction.
// Values are ordered clockwise so that rotating by one step is Direction+1.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Rotate turns the direction clockwise by the given rotation
func (d Direction) Rotate(r Rotation) Direction {
	if !d.IsValid() {
		return d
	}
	return Direction((int(d) + int(r.normalize())) % 4)
}

// Delta returns the x and z offsets for this direction.
// North is towards smaller z, West towards smaller x.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Side returns the single-bit side mask for this direction
func (d Direction) Side() Sides {
	if !d.IsValid() {
		return 0
	}
	return Sides(1) << uint(d)
}
