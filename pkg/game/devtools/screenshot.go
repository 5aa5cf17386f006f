package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"

	"dimdungeons/pkg/engine/world"
	"dimdungeons/pkg/game/generator"
	"dimdungeons/pkg/game/layout"
	"dimdungeons/pkg/game/renderer"
)

// ScreenshotFilename returns the default file name for a dungeon's HTML view
func ScreenshotFilename(d *generator.Dungeon) string {
	return fmt.Sprintf("dungeon-%d-%d_%d.html", d.WorldSeed, d.QuadrantX, d.QuadrantZ)
}

// SaveScreenshotHTML saves the layout as a standalone HTML page. Hovering a
// room shows its position and structure.
func SaveScreenshotHTML(d *generator.Dungeon, path string) (string, error) {
	if path == "" {
		path = ScreenshotFilename(d)
	}
	if err := os.WriteFile(path, []byte(ScreenshotHTML(d)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ScreenshotHTML builds the page SaveScreenshotHTML writes
func ScreenshotHTML(d *generator.Dungeon) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon Layout</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .entrance { color: #00ff00; font-weight: bold; }
        .end { color: #ff4444; }
        .corner { color: #00ffff; }
        .hallway { color: #4444ff; }
        .threeway { color: #ff66ff; }
        .fourway { color: #ffff00; font-weight: bold; }
        .wall { color: #666; }
        .void { color: #1a1a2e; }
    </style>
</head>
<body>
`)

	b.WriteString(fmt.Sprintf(`    <div class="header">World %d, quadrant %d,%d</div>`+"\n", d.WorldSeed, d.QuadrantX, d.QuadrantZ))
	b.WriteString(fmt.Sprintf(`    <div class="meta">seed %d, %d rooms placed of %d budgeted</div>`+"\n", d.Seed, d.RoomsPlaced, d.MaxRooms))

	b.WriteString(`    <div class="map-container">` + "\n")
	for z := 0; z < layout.Size; z++ {
		for line := 0; line < renderer.BlockSize; line++ {
			b.WriteString(`        <div class="map-row">`)
			for x := 0; x < layout.Size; x++ {
				pos := world.Coord{X: x, Z: z}
				cell, _ := d.Grid.Cell(pos)
				b.WriteString(blockHTML(pos, cell, line))
			}
			b.WriteString("</div>\n")
		}
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(`</body>
</html>
`)
	return b.String()
}

// blockHTML renders one text line of a cell's block as spans
func blockHTML(pos world.Coord, cell layout.Cell, line int) string {
	if !cell.Occupied() {
		return `<span class="void">` + strings.Repeat(" ", renderer.BlockSize) + `</span>`
	}
	wall := `<span class="wall">` + renderer.IconWall + `</span>`
	side := func(dir world.Direction) string {
		if cell.HasDoor(dir) {
			return renderer.IconOpen
		}
		return wall
	}
	switch line {
	case 0:
		return wall + side(world.North) + wall
	case 1:
		title := html.EscapeString(fmt.Sprintf("%v %v %s", pos, cell.Shape(), cell.StructureID))
		room := fmt.Sprintf(`<span class="%s" title="%s">%s</span>`, cellClass(cell.Type), title, renderer.CellGlyph(cell))
		return side(world.West) + room + side(world.East)
	default:
		return wall + side(world.South) + wall
	}
}

// cellClass returns the CSS class for a room type
func cellClass(t layout.RoomType) string {
	switch t {
	case layout.Entrance:
		return "entrance"
	case layout.End:
		return "end"
	case layout.Corner:
		return "corner"
	case layout.Hallway:
		return "hallway"
	case layout.Threeway:
		return "threeway"
	case layout.Fourway:
		return "fourway"
	default:
		return "void"
	}
}
