package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Intn is the single random draw a variant selection needs; *rand.Rand satisfies it
type Intn interface {
	Intn(n int) int
}

// VariantRule describes an identifier that stands for Count numbered variants.
// With no Weights every variant is equally likely; otherwise Weights[i] is the
// relative weight of variant i+1 and a zero weight disables that variant.
type VariantRule struct {
	Count   int   `yaml:"count"`
	Weights []int `yaml:"weights,omitempty"`
}

func (r VariantRule) validate() error {
	if r.Count < 1 {
		return fmt.Errorf("count %d, want at least 1", r.Count)
	}
	if r.Weights == nil {
		return nil
	}
	if len(r.Weights) != r.Count {
		return fmt.Errorf("%d weights for %d variants", len(r.Weights), r.Count)
	}
	total := 0
	for _, wgt := range r.Weights {
		if wgt < 0 {
			return errors.New("negative weight")
		}
		total += wgt
	}
	if total == 0 {
		return errors.New("all weights are zero")
	}
	return nil
}

// Pick draws a 1-based variant number. It always consumes exactly one draw.
func (r VariantRule) Pick(rng Intn) int {
	if r.Weights == nil {
		return rng.Intn(r.Count) + 1
	}
	total := 0
	for _, wgt := range r.Weights {
		total += wgt
	}
	roll := rng.Intn(total)
	for i, wgt := range r.Weights {
		if roll < wgt {
			return i + 1
		}
		roll -= wgt
	}
	return r.Count
}

// WithVariant replaces the trailing number of an identifier, e.g.
// WithVariant("combat_1", 4) is "combat_4".
func WithVariant(id string, variant int) string {
	return strings.TrimRight(id, "0123456789") + strconv.Itoa(variant)
}

// Resolve returns the concrete identifier for id, drawing a variant when id
// has a rule in the side table. Identifiers without a rule cost no draw.
func (c *Catalog) Resolve(id string, rng Intn) string {
	rule, ok := c.Variants[id]
	if !ok {
		return id
	}
	return WithVariant(id, rule.Pick(rng))
}
