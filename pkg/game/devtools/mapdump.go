// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gookit/color"

	"dimdungeons/pkg/engine/world"
	"dimdungeons/pkg/game/catalog"
	"dimdungeons/pkg/game/generator"
	"dimdungeons/pkg/game/layout"
	"dimdungeons/pkg/game/renderer"
)

// DefaultDumpFilename is used when no path is given
const DefaultDumpFilename = "layout.txt"

// DumpLayoutToFile writes a full debug dump of a dungeon: metadata, legend,
// the map in both views, the room list and the validation result.
// Format is human-readable (sections, key: value, consistent structure).
func DumpLayoutToFile(d *generator.Dungeon, path string) (string, error) {
	if d == nil || d.Grid == nil {
		return "", errors.New("no grid")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLayoutDump(f, d); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteLayoutDump writes the dump to w. Colour codes are stripped.
// Placement order lists each room with the mode the solver was in.
func WriteLayoutDump(w io.Writer, d *generator.Dungeon) error {
	ew := &errWriter{w: w}

	// --- Metadata (seed inputs, budget, counters) ---
	ew.println("=== DUNGEON LAYOUT DUMP ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("world_seed: %d\n", d.WorldSeed)
	ew.printf("quadrant: %d,%d\n", d.QuadrantX, d.QuadrantZ)
	ew.printf("derived_seed: %d\n", d.Seed)
	ew.printf("max_rooms: %d\n", d.MaxRooms)
	ew.printf("rooms_placed: %d\n", d.RoomsPlaced)
	ew.printf("frontier_skipped: %d\n", d.Skipped)
	ew.printf("variation1: %d\n", d.Variation1)
	ew.printf("variation2: %d\n", d.Variation2)
	ew.printf("grid_size: %d\n", layout.Size)
	ew.println("coordinate_system: x,z (0-based, x=east, z=south)")
	ew.printf("entrance: %d,%d\n", layout.EntrancePosition.X, layout.EntrancePosition.Z)
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend ---")
	ew.println(color.ClearCode(renderer.Legend()))
	ew.println("")

	// --- Maps ---
	ew.println("--- Map (compact) ---")
	ew.renderMap(d.Grid, renderer.Options{Compact: true, Axes: true})
	ew.println("")
	ew.println("--- Map (blocks) ---")
	ew.renderMap(d.Grid, renderer.Options{Axes: true})
	ew.println("")

	// --- Rooms ---
	ew.println("--- Rooms (x,z order by row) ---")
	d.Grid.ForEachCell(func(pos world.Coord, cell layout.Cell) {
		if !cell.Occupied() {
			return
		}
		ew.printf("  x: %d z: %d type: %s rotation: %d doors: %s structure: %q\n",
			pos.X, pos.Z, cell.Type, cell.Rotation.Degrees(), cell.Doors(), cell.StructureID)
	})
	ew.println("")

	// --- Placement order ---
	ew.println("--- Placement order ---")
	for i, p := range d.Placements {
		ew.printf("  #%d x: %d z: %d shape: %s mode: %s\n", i+1, p.Pos.X, p.Pos.Z, p.Shape, p.Mode)
	}
	ew.println("")

	// --- Counts ---
	ew.println("--- Counts ---")
	counts := d.Grid.CountByType()
	for _, t := range catalog.Categories {
		ew.printf("  %s: %d\n", t, counts[t])
	}
	ew.println("")

	// --- Catalog cursors ---
	ew.println("--- Catalog cursors ---")
	types := make([]layout.RoomType, 0, len(d.Cursors))
	for t := range d.Cursors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		ew.printf("  %s: %d\n", t, d.Cursors[t])
	}
	ew.println("")

	// --- Validation ---
	ew.println("--- Validation ---")
	if err := d.Grid.Validate(); err != nil {
		ew.printf("  FAILED: %v\n", err)
	} else {
		ew.println("  ok")
	}
	ew.println("")

	ew.println("=== END LAYOUT DUMP ===")
	return ew.err
}

// errWriter keeps the first write error so the dump reads as a straight list
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func (ew *errWriter) renderMap(g *layout.Grid, opts renderer.Options) {
	if ew.err != nil {
		return
	}
	ew.err = renderer.RenderLayout(colorStripper{ew.w}, g, opts)
}

// colorStripper removes colour codes from everything written through it
type colorStripper struct {
	w io.Writer
}

func (c colorStripper) Write(p []byte) (int, error) {
	if _, err := io.WriteString(c.w, color.ClearCode(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
