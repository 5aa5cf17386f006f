package generator

// Seed polynomial constants. These are the one bit-exact contract shared with
// the terrain side: changing them changes every dungeon in every world.
const (
	seedQX2 int64 = 4987142
	seedQX  int64 = 5947611
	seedQZ2 int64 = 4392871
	seedQZ  int64 = 389711
)

// DeriveSeed mixes the world seed with a dungeon's quadrant coordinates.
// All arithmetic is 64-bit and wraps on overflow.
func DeriveSeed(worldSeed int64, qx, qz int) int64 {
	x, z := int64(qx), int64(qz)
	return worldSeed ^ (worldSeed + x*x*seedQX2 + x*seedQX + z*z*seedQZ2 + z*seedQZ)
}
