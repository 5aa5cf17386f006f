package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dimdungeons/pkg/engine/world"
	"dimdungeons/pkg/game/layout"
)

// Icon constants for the layout map
const (
	IconWall     = "▒"
	IconVoid     = " "
	IconOpen     = " "
	IconEntrance = "⌂"
)

// BlockSize is the width and height of one rendered cell in the full view
const BlockSize = 3

// glyphs draws a room by its doors, indexed by the door mask
var glyphs = [16]string{
	0b0000: "·",
	0b0001: "╵",
	0b0010: "╶",
	0b0011: "└",
	0b0100: "╷",
	0b0101: "│",
	0b0110: "┌",
	0b0111: "├",
	0b1000: "╴",
	0b1001: "┘",
	0b1010: "─",
	0b1011: "┴",
	0b1100: "┐",
	0b1101: "┤",
	0b1110: "┬",
	0b1111: "┼",
}

var (
	ColorEntrance color.Style
	ColorEnd      color.Style
	ColorCorner   color.Style
	ColorHallway  color.Style
	ColorThreeway color.Style
	ColorFourway  color.Style
	ColorWall     color.Style
	ColorSubtle   color.Style
	ColorHeading  color.Style
)

// InitColors initializes the color styles
func InitColors() {
	ColorEntrance = color.Style{color.FgGreen, color.OpBold}
	ColorEnd = color.Style{color.FgRed}
	ColorCorner = color.Style{color.FgCyan}
	ColorHallway = color.Style{color.FgBlue}
	ColorThreeway = color.Style{color.FgMagenta}
	ColorFourway = color.Style{color.FgYellow, color.OpBold}
	ColorWall = color.Style{color.FgGray}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorHeading = color.Style{color.FgWhite, color.OpBold}
}

// StyleFor returns the style a room type is drawn in
func StyleFor(t layout.RoomType) color.Style {
	switch t {
	case layout.Entrance:
		return ColorEntrance
	case layout.End:
		return ColorEnd
	case layout.Corner:
		return ColorCorner
	case layout.Hallway:
		return ColorHallway
	case layout.Threeway:
		return ColorThreeway
	case layout.Fourway:
		return ColorFourway
	default:
		return ColorSubtle
	}
}

// Glyph returns the box-drawing character for a door mask
func Glyph(doors world.Sides) string {
	return glyphs[doors&world.AllSides]
}

// CellGlyph returns the uncoloured symbol for a cell
func CellGlyph(cell layout.Cell) string {
	switch {
	case !cell.Occupied():
		return IconVoid
	case cell.Type == layout.Entrance:
		return IconEntrance
	default:
		return Glyph(cell.Doors())
	}
}

// Options controls how a layout is drawn
type Options struct {
	Compact bool // one character per cell instead of a walled block
	Axes    bool // label columns with x and rows with z
	Indent  int  // spaces before every line
}

// RenderLayout draws the grid north-up, one row of cells per z
func RenderLayout(w io.Writer, g *layout.Grid, opts Options) error {
	var b strings.Builder
	pad := strings.Repeat(" ", opts.Indent)
	cellWidth := BlockSize
	if opts.Compact {
		cellWidth = 1
	}

	if opts.Axes {
		b.WriteString(pad + "   ")
		for x := 0; x < layout.Size; x++ {
			label := fmt.Sprintf("%d", x)
			b.WriteString(ColorSubtle.Sprint(centre(label, cellWidth)))
		}
		b.WriteString("\n")
	}

	lines := BlockSize
	if opts.Compact {
		lines = 1
	}
	for z := 0; z < layout.Size; z++ {
		for line := 0; line < lines; line++ {
			b.WriteString(pad)
			if opts.Axes {
				label := "  "
				if line == lines/2 {
					label = fmt.Sprintf("%2d", z)
				}
				b.WriteString(ColorSubtle.Sprint(label) + " ")
			}
			for x := 0; x < layout.Size; x++ {
				cell, _ := g.Cell(world.Coord{X: x, Z: z})
				if opts.Compact {
					b.WriteString(StyleFor(cell.Type).Sprint(CellGlyph(cell)))
					continue
				}
				b.WriteString(blockLine(cell, line))
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// blockLine renders one of the three text lines of a cell's block. Walls
// surround the room glyph with a gap wherever the room has a door.
func blockLine(cell layout.Cell, line int) string {
	if !cell.Occupied() {
		return strings.Repeat(IconVoid, BlockSize)
	}
	wall := ColorWall.Sprint(IconWall)
	side := func(dir world.Direction) string {
		if cell.HasDoor(dir) {
			return IconOpen
		}
		return wall
	}
	switch line {
	case 0:
		return wall + side(world.North) + wall
	case 1:
		return side(world.West) + StyleFor(cell.Type).Sprint(CellGlyph(cell)) + side(world.East)
	default:
		return wall + side(world.South) + wall
	}
}

func centre(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// Legend describes the room colours and symbols, translated when a locale
// has been configured.
func Legend() string {
	entries := []struct {
		t      layout.RoomType
		sample string
		label  string
	}{
		{layout.Entrance, IconEntrance, gotext.Get("Entrance")},
		{layout.End, Glyph(world.SidesOf(world.South)), gotext.Get("Dead end")},
		{layout.Corner, Glyph(world.SidesOf(world.North, world.East)), gotext.Get("Corner")},
		{layout.Hallway, Glyph(world.SidesOf(world.North, world.South)), gotext.Get("Hallway")},
		{layout.Threeway, Glyph(world.SidesOf(world.East, world.South, world.West)), gotext.Get("Three-way junction")},
		{layout.Fourway, Glyph(world.AllSides), gotext.Get("Four-way junction")},
	}
	parts := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		parts = append(parts, StyleFor(e.t).Sprint(e.sample)+" "+e.label)
	}
	parts = append(parts, ColorWall.Sprint(IconWall)+" "+gotext.Get("Wall"))
	return strings.Join(parts, "  ")
}

// Summary lists how many rooms of each type a grid holds
func Summary(g *layout.Grid) string {
	counts := g.CountByType()
	parts := []string{gotext.Get("%d rooms", g.RoomCount())}
	for _, t := range []layout.RoomType{layout.Entrance, layout.End, layout.Corner, layout.Hallway, layout.Threeway, layout.Fourway} {
		if counts[t] == 0 {
			continue
		}
		parts = append(parts, StyleFor(t).Sprintf("%s×%d", t, counts[t]))
	}
	return strings.Join(parts, ", ")
}
