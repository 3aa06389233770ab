package grid

import (
	"errors"
	"fmt"

	"github.com/gravitas-015/hexboard/hex"
)

var (
	// ErrInvalidCoordinate reports an explicit s component that breaks the
	// cube constraint q+r+s=0. Always a caller bug; never retried.
	ErrInvalidCoordinate = errors.New("invalid hex coordinate")
	// ErrDuplicateCell reports an insert at an already occupied identity.
	ErrDuplicateCell = errors.New("duplicate cell")
)

// Grid is a sparse hex-cell store keyed by canonical coordinate id. It is a
// single-threaded value structure: no internal locking, callers running
// concurrent mutation must serialize access externally.
type Grid struct {
	cells map[string]Cell

	defaultElevation    float64
	defaultMovementCost float64
	defaultImpassable   bool

	// Operation counters, exposed via Stats. Kept so callers can verify
	// query behavior (e.g. that an empty boundary selection touches the
	// grid zero times).
	lookups       uint64
	neighborCalls uint64
}

// Option configures grid construction.
type Option func(*Grid)

// WithDefaultElevation sets the elevation applied to cell definitions that
// leave it unset.
func WithDefaultElevation(e float64) Option {
	return func(g *Grid) { g.defaultElevation = e }
}

// WithDefaultMovementCost sets the movement cost applied to cell
// definitions that leave it unset.
func WithDefaultMovementCost(m float64) Option {
	return func(g *Grid) { g.defaultMovementCost = m }
}

// WithDefaultImpassable sets the passability applied to cell definitions
// that leave it unset.
func WithDefaultImpassable(v bool) Option {
	return func(g *Grid) { g.defaultImpassable = v }
}

// New creates an empty grid. Unless overridden, defaults are elevation 0,
// movement cost 1, passable.
func New(opts ...Option) *Grid {
	g := &Grid{
		cells:               make(map[string]Cell),
		defaultMovementCost: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// resolve turns a definition into a full cell, applying grid defaults to
// unset fields and validating an explicit s.
func (g *Grid) resolve(def CellDefinition) (Cell, error) {
	coord := hex.Axial{Q: def.Q, R: def.R}.ToCube()
	if def.S != nil && *def.S != coord.S {
		return Cell{}, fmt.Errorf("%w: s=%d does not satisfy q+r+s=0 for q=%d r=%d",
			ErrInvalidCoordinate, *def.S, def.Q, def.R)
	}
	cell := Cell{
		Coord:        coord,
		ID:           CellID(coord),
		Elevation:    g.defaultElevation,
		MovementCost: g.defaultMovementCost,
		Impassable:   g.defaultImpassable,
		Custom:       def.Custom,
	}
	if def.Elevation != nil {
		cell.Elevation = *def.Elevation
	}
	if def.MovementCost != nil {
		cell.MovementCost = *def.MovementCost
	}
	if def.Impassable != nil {
		cell.Impassable = *def.Impassable
	}
	// Detach from the caller's Custom map.
	return cell.clone(), nil
}

// AddCell validates def, fills unset fields from the grid defaults, and
// inserts the cell. It fails with ErrInvalidCoordinate on a bad explicit s
// and ErrDuplicateCell on an occupied identity; a failed add never mutates
// the grid.
func (g *Grid) AddCell(def CellDefinition) (Cell, error) {
	cell, err := g.resolve(def)
	if err != nil {
		return Cell{}, err
	}
	if _, ok := g.cells[cell.ID]; ok {
		return Cell{}, fmt.Errorf("%w: %s", ErrDuplicateCell, cell.ID)
	}
	g.cells[cell.ID] = cell
	return cell.clone(), nil
}

// AddCells inserts a batch of definitions in input order. The batch is
// all-or-nothing: every definition is validated against the grid and
// against the rest of the batch before the first insert, so a failing call
// leaves the grid exactly as it was.
func (g *Grid) AddCells(defs []CellDefinition) ([]Cell, error) {
	resolved := make([]Cell, 0, len(defs))
	batch := make(map[string]bool, len(defs))
	for i, def := range defs {
		cell, err := g.resolve(def)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if _, ok := g.cells[cell.ID]; ok {
			return nil, fmt.Errorf("cell %d: %w: %s", i, ErrDuplicateCell, cell.ID)
		}
		if batch[cell.ID] {
			return nil, fmt.Errorf("cell %d: %w: %s appears twice in batch", i, ErrDuplicateCell, cell.ID)
		}
		batch[cell.ID] = true
		resolved = append(resolved, cell)
	}
	out := make([]Cell, 0, len(resolved))
	for _, cell := range resolved {
		g.cells[cell.ID] = cell
		out = append(out, cell.clone())
	}
	return out, nil
}

// GetCell looks up the cell at axial coordinates, deriving s. Absence is a
// normal outcome, reported by the bool, never by an error.
func (g *Grid) GetCell(a hex.Axial) (Cell, bool) {
	return g.GetCellByID(CellIDAxial(a))
}

// GetCellAt looks up the cell at cube coordinates. An invalid cube simply
// matches nothing.
func (g *Grid) GetCellAt(c hex.Cube) (Cell, bool) {
	return g.GetCellByID(CellID(c))
}

// GetCellByID looks up a cell by its canonical id.
func (g *Grid) GetCellByID(id string) (Cell, bool) {
	g.lookups++
	cell, ok := g.cells[id]
	if !ok {
		return Cell{}, false
	}
	return cell.clone(), true
}

// HasCell reports whether a cell exists at axial coordinates.
func (g *Grid) HasCell(a hex.Axial) bool {
	return g.HasCellAt(a.ToCube())
}

// HasCellAt reports whether a cell exists at cube coordinates.
func (g *Grid) HasCellAt(c hex.Cube) bool {
	g.lookups++
	_, ok := g.cells[CellID(c)]
	return ok
}

// UpdateCell merges patch over the cell at a and reinserts it under the
// same identity (remove-then-insert; not observable in the single-threaded
// model). Fields the patch leaves nil keep their current values. Returns
// false when no cell exists there.
func (g *Grid) UpdateCell(a hex.Axial, patch CellPatch) (Cell, bool) {
	id := CellIDAxial(a)
	cur, ok := g.cells[id]
	if !ok {
		return Cell{}, false
	}
	next := cur.clone()
	if patch.Elevation != nil {
		next.Elevation = *patch.Elevation
	}
	if patch.MovementCost != nil {
		next.MovementCost = *patch.MovementCost
	}
	if patch.Impassable != nil {
		next.Impassable = *patch.Impassable
	}
	if patch.Custom != nil {
		next.Custom = patch.Custom
		next = next.clone()
	}
	delete(g.cells, id)
	g.cells[id] = next
	return next.clone(), true
}

// RemoveCell deletes the cell at axial coordinates. Returns true iff
// something was removed.
func (g *Grid) RemoveCell(a hex.Axial) bool {
	return g.RemoveCellAt(a.ToCube())
}

// RemoveCellAt deletes the cell at cube coordinates.
func (g *Grid) RemoveCellAt(c hex.Cube) bool {
	id := CellID(c)
	if _, ok := g.cells[id]; !ok {
		return false
	}
	delete(g.cells, id)
	return true
}

// Cells returns a snapshot of all cells in unspecified order. Mutating the
// returned slice or cells does not affect the grid.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for _, cell := range g.cells {
		out = append(out, cell.clone())
	}
	return out
}

// CellIDs returns a snapshot of all cell ids in unspecified order.
func (g *Grid) CellIDs() []string {
	out := make([]string, 0, len(g.cells))
	for id := range g.cells {
		out = append(out, id)
	}
	return out
}

// CellsWhere returns the cells matching pred, as snapshots.
func (g *Grid) CellsWhere(pred func(Cell) bool) []Cell {
	out := make([]Cell, 0)
	for _, cell := range g.cells {
		if pred(cell) {
			out = append(out, cell.clone())
		}
	}
	return out
}

// Clear removes every cell.
func (g *Grid) Clear() {
	g.cells = make(map[string]Cell)
}

// Size returns the number of stored cells.
func (g *Grid) Size() int { return len(g.cells) }

// IsEmpty reports whether the grid holds no cells.
func (g *Grid) IsEmpty() bool { return len(g.cells) == 0 }

// GetBounds returns the min/max extent across all three cube axes, or
// false for an empty grid.
func (g *Grid) GetBounds() (Bounds, bool) {
	if len(g.cells) == 0 {
		return Bounds{}, false
	}
	first := true
	var b Bounds
	for _, cell := range g.cells {
		c := cell.Coord
		if first {
			b = Bounds{MinQ: c.Q, MaxQ: c.Q, MinR: c.R, MaxR: c.R, MinS: c.S, MaxS: c.S}
			first = false
			continue
		}
		b.MinQ = min(b.MinQ, c.Q)
		b.MaxQ = max(b.MaxQ, c.Q)
		b.MinR = min(b.MinR, c.R)
		b.MaxR = max(b.MaxR, c.R)
		b.MinS = min(b.MinS, c.S)
		b.MaxS = max(b.MaxS, c.S)
	}
	return b, true
}

// AddBasicRing bulk-inserts the origin cell plus its six immediate
// neighbors, all sharing the given elevation (or the grid default when
// omitted). Like AddCells it is all-or-nothing: if any of the seven
// coordinates is occupied, nothing is inserted.
func (g *Grid) AddBasicRing(elevation ...float64) ([]Cell, error) {
	elev := g.defaultElevation
	if len(elevation) > 0 {
		elev = elevation[0]
	}
	coords := append([]hex.Axial{{}}, hex.Ring(hex.Axial{}, 1)...)
	defs := make([]CellDefinition, 0, len(coords))
	for _, a := range coords {
		e := elev
		defs = append(defs, CellDefinition{Q: a.Q, R: a.R, Elevation: &e})
	}
	return g.AddCells(defs)
}

// NeighborCoordinates returns the six neighbor coordinates of a in
// Direction order. Pure arithmetic: it does not check whether the
// neighbors are present in the grid.
func (g *Grid) NeighborCoordinates(a hex.Axial) [6]hex.Cube {
	g.neighborCalls++
	return a.Neighbors()
}

// NeighborCoordinatesAt is NeighborCoordinates for cube coordinates.
func (g *Grid) NeighborCoordinatesAt(c hex.Cube) [6]hex.Cube {
	return g.NeighborCoordinates(c.ToAxial())
}

// Stats returns the number of lookup and neighbor-derivation calls served
// so far.
func (g *Grid) Stats() (lookups, neighborCalls uint64) {
	return g.lookups, g.neighborCalls
}
