package generator

// LayoutGenerator is an interface for dungeon layout algorithms
type LayoutGenerator interface {
	Generate(worldSeed int64, qx, qz int) (*Dungeon, error)
	Name() string
}

// FrontierGenerator grows layouts room by room from the entrance
type FrontierGenerator struct {
	Options *Options // nil means DefaultOptions(DefaultMaxRooms)
	name    string
}

// Name returns the name of this generator
func (g *FrontierGenerator) Name() string {
	if g.name == "" {
		return "Frontier Growth"
	}
	return g.name
}

// Generate solves the dungeon at quadrant (qx, qz)
func (g *FrontierGenerator) Generate(worldSeed int64, qx, qz int) (*Dungeon, error) {
	return Generate(worldSeed, qx, qz, g.Options)
}

// Available generators
var (
	Frontier = &FrontierGenerator{}
	Legacy   = &FrontierGenerator{Options: LegacyOptions(DefaultMaxRooms), name: "Frontier Growth (insertion order)"}
)

// DefaultGenerator is the default layout generator
var DefaultGenerator LayoutGenerator = Frontier

// WithBudget returns a copy of g that uses the given room budget
func (g *FrontierGenerator) WithBudget(maxRooms int) *FrontierGenerator {
	opts := DefaultOptions(maxRooms)
	if g.Options != nil {
		copied := *g.Options
		copied.MaxRooms = maxRooms
		opts = &copied
	}
	return &FrontierGenerator{Options: opts, name: g.name}
}
