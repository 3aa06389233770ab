// Package mapdef loads map definitions: a name, shared cell defaults, and a
// list of cell definitions. It is the bulk-load path for scenario files and
// owns the YAML schema around grid.CellDefinition.
package mapdef

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/hexboard/grid"
)

// Defaults supplies values for fields a cell definition leaves unset.
// Custom entries are merged under each cell's own customProps, with the
// cell's entries winning on key collisions.
type Defaults struct {
	Elevation    float64        `yaml:"elevation"`
	MovementCost float64        `yaml:"movementCost"`
	Impassable   bool           `yaml:"isImpassable"`
	Custom       map[string]any `yaml:"customProps,omitempty"`
}

// MapDefinition describes a full board.
type MapDefinition struct {
	Name     string                `yaml:"name"`
	Defaults Defaults              `yaml:"defaults"`
	Cells    []grid.CellDefinition `yaml:"cells"`
}

// Load reads a map definition from a YAML file.
func Load(path string) (*MapDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a YAML map definition. A zero movement cost default is
// bumped to 1, matching the grid's own default.
func Parse(data []byte) (*MapDefinition, error) {
	var def MapDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse map definition: %w", err)
	}
	if def.Defaults.MovementCost == 0 {
		def.Defaults.MovementCost = 1
	}
	return &def, nil
}

// Build constructs a grid from the definition. The cells go in through one
// atomic AddCells call, so a bad definition yields an error and no grid
// rather than a partially populated one.
func (d *MapDefinition) Build() (*grid.Grid, error) {
	g := grid.New(
		grid.WithDefaultElevation(d.Defaults.Elevation),
		grid.WithDefaultMovementCost(d.Defaults.MovementCost),
		grid.WithDefaultImpassable(d.Defaults.Impassable),
	)
	defs := d.Cells
	if len(d.Defaults.Custom) > 0 {
		defs = make([]grid.CellDefinition, len(d.Cells))
		copy(defs, d.Cells)
		for i := range defs {
			merged := make(map[string]any, len(d.Defaults.Custom)+len(defs[i].Custom))
			for k, v := range d.Defaults.Custom {
				merged[k] = v
			}
			for k, v := range defs[i].Custom {
				merged[k] = v
			}
			defs[i].Custom = merged
		}
	}
	if _, err := g.AddCells(defs); err != nil {
		return nil, fmt.Errorf("failed to build map %q: %w", d.Name, err)
	}
	log.Printf("Built map %q with %d cells", d.Name, g.Size())
	return g, nil
}
