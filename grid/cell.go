// Package grid implements a sparse collection of hexagonal cells keyed by
// their cube coordinates. Cells are value snapshots: everything returned to
// a caller is a copy, and all mutation goes through the grid's own methods.
package grid

import (
	"fmt"

	"github.com/gravitas-015/hexboard/hex"
)

// Cell is a single hex cell. Two cells with the same (q,r,s) are the same
// cell; identity is the coordinate, encoded canonically in ID.
type Cell struct {
	Coord        hex.Cube
	ID           string
	Elevation    float64
	MovementCost float64
	Impassable   bool
	// Custom holds caller-defined properties. The grid never interprets
	// keys or values; it only copies the map on the way in and out.
	Custom map[string]any
}

// clone returns a copy safe to hand to callers (or to keep when handed a
// caller's cell). Custom is shallow-copied one level deep.
func (c Cell) clone() Cell {
	out := c
	if c.Custom != nil {
		out.Custom = make(map[string]any, len(c.Custom))
		for k, v := range c.Custom {
			out.Custom[k] = v
		}
	}
	return out
}

// CellDefinition describes a cell to insert. Only Q and R are required.
// Unset fields resolve against the grid defaults; S, when given, must
// satisfy q+r+s=0. The yaml tags make this the schema for map-definition
// files (see package mapdef).
type CellDefinition struct {
	Q            int            `yaml:"q"`
	R            int            `yaml:"r"`
	S            *int           `yaml:"s,omitempty"`
	Elevation    *float64       `yaml:"elevation,omitempty"`
	MovementCost *float64       `yaml:"movementCost,omitempty"`
	Impassable   *bool          `yaml:"isImpassable,omitempty"`
	Custom       map[string]any `yaml:"customProps,omitempty"`
}

// CellPatch carries field updates for UpdateCell. Nil fields keep the
// current value; a non-nil Custom replaces the cell's Custom map wholesale.
type CellPatch struct {
	Elevation    *float64
	MovementCost *float64
	Impassable   *bool
	Custom       map[string]any
}

// Bounds is the min/max extent of a grid across all three cube axes.
type Bounds struct {
	MinQ, MaxQ int
	MinR, MaxR int
	MinS, MaxS int
}

// CellID returns the canonical identity string for a coordinate. It is the
// sole key space of the grid: equal coordinates always produce equal ids.
func CellID(c hex.Cube) string {
	return fmt.Sprintf("%d,%d,%d", c.Q, c.R, c.S)
}

// CellIDAxial returns the identity string for axial coordinates, deriving s.
func CellIDAxial(a hex.Axial) string {
	return CellID(a.ToCube())
}
