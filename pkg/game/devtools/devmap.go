package devtools

import (
	"fmt"
	"io"

	"dimdungeons/pkg/engine/world"
	"dimdungeons/pkg/game/layout"
	"dimdungeons/pkg/game/renderer"
)

// galleryTypes are the room types shown by the shape gallery, one per row
var galleryTypes = []layout.RoomType{
	layout.Entrance,
	layout.End,
	layout.Corner,
	layout.Hallway,
	layout.Threeway,
	layout.Fourway,
}

// ShapeGallery builds a developer grid holding every room type at every
// rotation: one row per type, rotations 0 to 270 in columns 0, 2, 4 and 6.
// The grid is not a valid dungeon; it exists to eyeball the door table.
func ShapeGallery() (*layout.Grid, error) {
	g := layout.NewGrid()
	for z, t := range galleryTypes {
		for i, rot := range world.AllRotations() {
			pos := world.Coord{X: i * 2, Z: z}
			if err := g.Place(pos, fmt.Sprintf("%s_%d", t, rot.Degrees()), t, rot); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// WriteShapeGallery renders the gallery with a key naming each row
func WriteShapeGallery(w io.Writer, opts renderer.Options) error {
	g, err := ShapeGallery()
	if err != nil {
		return err
	}
	for z, t := range galleryTypes {
		row := fmt.Sprintf("z=%d %-9s", z, t)
		for _, rot := range world.AllRotations() {
			row += fmt.Sprintf(" %4s:%-7s", rot, layout.Doors(t, rot))
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return renderer.RenderLayout(w, g, opts)
}
