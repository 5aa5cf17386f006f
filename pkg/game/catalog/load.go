package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"

	"dimdungeons/pkg/game/layout"
)

// File is the YAML form of a catalog
type File struct {
	Structures StructureLists         `yaml:"structures"`
	Variants   map[string]VariantRule `yaml:"variants"`
	// UseDefaultVariants keeps the built-in side table for identifiers the file does not list
	UseDefaultVariants bool `yaml:"use_default_variants"`
}

// StructureLists holds one identifier list per category
type StructureLists struct {
	Entrance []string `yaml:"entrance"`
	End      []string `yaml:"end"`
	Corner   []string `yaml:"corner"`
	Hallway  []string `yaml:"hallway"`
	Threeway []string `yaml:"threeway"`
	Fourway  []string `yaml:"fourway"`
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds and validates a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	variants := make(map[string]VariantRule)
	if f.UseDefaultVariants {
		variants = DefaultVariants()
	}
	for id, rule := range f.Variants {
		variants[id] = rule
	}

	c := New(map[layout.RoomType][]string{
		layout.Entrance: cleanList(f.Structures.Entrance),
		layout.End:      cleanList(f.Structures.End),
		layout.Corner:   cleanList(f.Structures.Corner),
		layout.Hallway:  cleanList(f.Structures.Hallway),
		layout.Threeway: cleanList(f.Structures.Threeway),
		layout.Fourway:  cleanList(f.Structures.Fourway),
	}, variants)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkDisjoint(c); err != nil {
		return nil, err
	}
	return c, nil
}

// cleanList trims identifiers and drops blank entries
func cleanList(ids []string) []string {
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// checkDisjoint rejects an identifier that appears in more than one category.
// Repeats inside one category are allowed and make that room more frequent.
func checkDisjoint(c *Catalog) error {
	owner := make(map[string]layout.RoomType)
	for _, t := range Categories {
		seen := mapset.New[string]()
		for _, id := range c.Structures[t] {
			if seen.Has(id) {
				continue
			}
			seen.Put(id)
			if other, ok := owner[id]; ok {
				return fmt.Errorf("catalog: %q listed under both %v and %v", id, other, t)
			}
			owner[id] = t
		}
	}
	return nil
}
