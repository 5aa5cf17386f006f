package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dimdungeons/pkg/engine/terminal"
	"dimdungeons/pkg/game/catalog"
	"dimdungeons/pkg/game/devtools"
	"dimdungeons/pkg/game/generator"
	"dimdungeons/pkg/game/layout"
	"dimdungeons/pkg/game/renderer"
)

type config struct {
	seed        int64
	qx, qz      int
	rooms       int
	catalogPath string
	legacy      bool
	grow3       bool
	dumpPath    string
	htmlPath    string
	noColor     bool
	compact     bool
	localesDir  string
	lang        string
	validate    bool
	shapes      bool
	survey      int
}

func parseFlags() config {
	var c config
	flag.Int64Var(&c.seed, "seed", 0, "world seed")
	flag.IntVar(&c.qx, "qx", 0, "dungeon quadrant x")
	flag.IntVar(&c.qz, "qz", 0, "dungeon quadrant z")
	flag.IntVar(&c.rooms, "rooms", generator.DefaultMaxRooms, "room budget before openings are capped")
	flag.StringVar(&c.catalogPath, "catalog", "", "YAML structure catalog (default: built-in catalog)")
	flag.BoolVar(&c.legacy, "legacy-order", false, "expand openings in insertion order and always take the largest upgrade")
	flag.BoolVar(&c.grow3, "grow-threeways", false, "let three-door cells become fourways after the early phase too")
	flag.StringVar(&c.dumpPath, "dump", "", "write a debug dump of the layout to this file")
	flag.StringVar(&c.htmlPath, "html", "", "write an HTML view of the layout to this file")
	flag.BoolVar(&c.noColor, "no-color", false, "disable coloured output")
	flag.BoolVar(&c.compact, "compact", false, "draw one character per room")
	flag.StringVar(&c.localesDir, "locales", "", "directory holding <lang>/LC_MESSAGES/default.po")
	flag.StringVar(&c.lang, "lang", "en_GB", "language for labels")
	flag.BoolVar(&c.validate, "validate", false, "check the layout and exit non-zero if it is broken")
	flag.BoolVar(&c.shapes, "shapes", false, "draw every room type at every rotation and exit")
	flag.IntVar(&c.survey, "survey", 0, "solve this many quadrants along the diagonal and report statistics")
	flag.Parse()
	return c
}

func initGettext(c config) {
	if c.localesDir == "" {
		return
	}
	gotext.Configure(c.localesDir, c.lang, "default")
}

func initColors(c config) {
	if c.noColor || !terminal.IsTerminal(os.Stdout) {
		color.Enable = false
	}
	renderer.InitColors()
}

func buildOptions(c config) (*generator.Options, error) {
	opts := generator.DefaultOptions(c.rooms)
	if c.legacy {
		opts = generator.LegacyOptions(c.rooms)
	}
	opts.GrowThreeways = c.grow3
	if c.catalogPath != "" {
		cat, err := catalog.Load(c.catalogPath)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded catalog %s", c.catalogPath)
		opts.Catalog = cat
	}
	return opts, nil
}

func main() {
	c := parseFlags()

	initGettext(c)
	initColors(c)

	if c.shapes {
		if err := devtools.WriteShapeGallery(os.Stdout, renderer.Options{Compact: c.compact, Axes: true}); err != nil {
			log.Fatalf("Failed to draw shapes: %v", err)
		}
		return
	}

	opts, err := buildOptions(c)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	if c.survey > 0 {
		runSurvey(c, opts)
		return
	}

	d, err := generator.Generate(c.seed, c.qx, c.qz, opts)
	if err != nil {
		log.Fatalf("Failed to generate dungeon: %v", err)
	}

	printDungeon(c, d)

	if c.dumpPath != "" {
		path, err := devtools.DumpLayoutToFile(d, c.dumpPath)
		if err != nil {
			log.Fatalf("Failed to write dump: %v", err)
		}
		log.Printf("Layout dump written to %s", path)
	}
	if c.htmlPath != "" {
		path, err := devtools.SaveScreenshotHTML(d, c.htmlPath)
		if err != nil {
			log.Fatalf("Failed to write HTML view: %v", err)
		}
		log.Printf("HTML view written to %s", path)
	}

	if c.validate {
		if err := d.Grid.Validate(); err != nil {
			log.Fatalf("Layout is invalid:\n%v", err)
		}
		log.Printf("Layout is valid")
	}
}

// printDungeon writes the header, map, legend and summary to stdout
func printDungeon(c config, d *generator.Dungeon) {
	width := layout.Size * renderer.BlockSize
	if c.compact {
		width = layout.Size
	}
	indent := terminal.Indent(width + 3)

	fmt.Println(renderer.ColorHeading.Sprint(gotext.Get("World %d, quadrant %d,%d (seed %d)", d.WorldSeed, d.QuadrantX, d.QuadrantZ, d.Seed)))
	fmt.Println()
	if err := renderer.RenderLayout(os.Stdout, d.Grid, renderer.Options{Compact: c.compact, Axes: true, Indent: indent}); err != nil {
		log.Fatalf("Failed to draw layout: %v", err)
	}
	fmt.Println()
	fmt.Println(renderer.Legend())
	fmt.Println(renderer.Summary(d.Grid))
	fmt.Println(renderer.ColorSubtle.Sprint(gotext.Get("Variations: %d, %d", d.Variation1, d.Variation2)))
}

// runSurvey solves a run of quadrants concurrently, one solver per goroutine,
// and reports the room counts and any invalid layouts.
func runSurvey(c config, opts *generator.Options) {
	results := make([]*generator.Dungeon, c.survey)
	errs := make([]error, c.survey)

	var wg sync.WaitGroup
	for i := 0; i < c.survey; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := generator.Generate(c.seed, c.qx+i, c.qz+i, opts)
			if err == nil {
				err = d.Grid.Validate()
			}
			results[i], errs[i] = d, err
		}(i)
	}
	wg.Wait()

	failed := 0
	minRooms, maxRooms, total := 0, 0, 0
	for i, d := range results {
		if errs[i] != nil {
			failed++
			log.Printf("Quadrant %d,%d failed: %v", c.qx+i, c.qz+i, errs[i])
			continue
		}
		if minRooms == 0 || d.RoomsPlaced < minRooms {
			minRooms = d.RoomsPlaced
		}
		if d.RoomsPlaced > maxRooms {
			maxRooms = d.RoomsPlaced
		}
		total += d.RoomsPlaced
	}

	ok := c.survey - failed
	avg := 0.0
	if ok > 0 {
		avg = float64(total) / float64(ok)
	}
	fmt.Println(gotext.Get("Solved %d dungeons, %d failed", ok, failed))
	fmt.Println(gotext.Get("Rooms: min %d, max %d, mean %.1f", minRooms, maxRooms, avg))
	if failed > 0 {
		os.Exit(1)
	}
}
