package devtools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"

	"dimdungeons/pkg/engine/world"
	"dimdungeons/pkg/game/generator"
	"dimdungeons/pkg/game/layout"
	"dimdungeons/pkg/game/renderer"
)

func testDungeon(t *testing.T) *generator.Dungeon {
	t.Helper()
	renderer.InitColors()
	d, err := generator.Generate(42, 1, 2, generator.DefaultOptions(12))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d
}

func TestDumpLayoutToFile(t *testing.T) {
	d := testDungeon(t)
	path := filepath.Join(t.TempDir(), "dump.txt")

	got, err := DumpLayoutToFile(d, path)
	if err != nil {
		t.Fatalf("DumpLayoutToFile: %v", err)
	}
	if got != path {
		t.Errorf("returned path %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}
	dump := string(data)

	for _, want := range []string{
		"world_seed: 42",
		"quadrant: 1,2",
		"derived_seed: 29285743",
		"max_rooms: 12",
		"--- Map (compact) ---",
		"--- Rooms (x,z order by row) ---",
		"x: 4 z: 7 type: Entrance rotation: 0 doors: N|E|W",
		"--- Placement order ---\n  #1 x: 4 z: 7 shape: Entrance@0° mode: normal\n",
		"--- Validation ---\n  ok",
		"=== END LAYOUT DUMP ===",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q", want)
		}
	}
	if strings.Contains(dump, "\x1b[") {
		t.Error("dump contains colour codes")
	}
	if n := strings.Count(dump, "structure: "); n != d.RoomsPlaced {
		t.Errorf("dump lists %d rooms, want %d", n, d.RoomsPlaced)
	}
	if n := strings.Count(dump, " mode: "); n != d.RoomsPlaced {
		t.Errorf("dump lists %d placements, want %d", n, d.RoomsPlaced)
	}
	if !strings.Contains(dump, "mode: no-dead-ends") {
		t.Error("dump has no early placements")
	}
}

func TestDumpLayoutToFile_NoGrid(t *testing.T) {
	if _, err := DumpLayoutToFile(&generator.Dungeon{}, filepath.Join(t.TempDir(), "x.txt")); err == nil {
		t.Error("expected an error for a dungeon without a grid")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	d := testDungeon(t)
	path := filepath.Join(t.TempDir(), "shot.html")

	if _, err := SaveScreenshotHTML(d, path); err != nil {
		t.Fatalf("SaveScreenshotHTML: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)
	if !strings.Contains(page, `class="entrance"`) {
		t.Error("page has no entrance")
	}
	if n := strings.Count(page, `class="map-row"`); n != layout.Size*renderer.BlockSize {
		t.Errorf("page has %d map rows, want %d", n, layout.Size*renderer.BlockSize)
	}
	if n := strings.Count(page, " title="); n != d.RoomsPlaced {
		t.Errorf("page has %d titled rooms, want %d", n, d.RoomsPlaced)
	}
	if ScreenshotFilename(d) != "dungeon-42-1_2.html" {
		t.Errorf("ScreenshotFilename = %q", ScreenshotFilename(d))
	}
}

func TestShapeGallery(t *testing.T) {
	g, err := ShapeGallery()
	if err != nil {
		t.Fatalf("ShapeGallery: %v", err)
	}
	if g.RoomCount() != len(galleryTypes)*4 {
		t.Errorf("gallery holds %d rooms, want %d", g.RoomCount(), len(galleryTypes)*4)
	}
	cell, _ := g.Cell(world.Coord{X: 2, Z: 2})
	if cell.Type != layout.Corner || cell.Rotation != world.Rotate90 {
		t.Errorf("cell (2,2) = %v, want Corner@90°", cell.Shape())
	}

	var b strings.Builder
	if err := WriteShapeGallery(&b, renderer.Options{Compact: true}); err != nil {
		t.Fatalf("WriteShapeGallery: %v", err)
	}
	out := color.ClearCode(b.String())
	if !strings.Contains(out, "┼ ┼ ┼ ┼") {
		t.Errorf("gallery missing the fourway row:\n%s", out)
	}
}
