package catalog

// Shuffler is the random source a Cursor shuffles with; *rand.Rand satisfies it
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Cursor hands out the identifiers of one category round-robin.
// The list is shuffled once when the cursor is created, so no identifier
// repeats before every other identifier of the category has been handed out.
type Cursor struct {
	ids   []string
	index int
}

// NewCursor copies ids and shuffles the copy with rng (Fisher-Yates)
func NewCursor(ids []string, rng Shuffler) *Cursor {
	c := &Cursor{ids: append([]string(nil), ids...)}
	rng.Shuffle(len(c.ids), func(i, j int) {
		c.ids[i], c.ids[j] = c.ids[j], c.ids[i]
	})
	return c
}

// Next returns the identifier under the cursor and advances it, wrapping to the start
func (c *Cursor) Next() string {
	id := c.ids[c.index]
	c.index++
	if c.index == len(c.ids) {
		c.index = 0
	}
	return id
}

// Index returns the position of the next identifier to be handed out
func (c *Cursor) Index() int {
	return c.index
}

// Order returns the shuffled identifiers in hand-out order
func (c *Cursor) Order() []string {
	return append([]string(nil), c.ids...)
}

// Len returns the number of identifiers in the category
func (c *Cursor) Len() int {
	return len(c.ids)
}
