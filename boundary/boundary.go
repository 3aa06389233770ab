// Package boundary computes the exterior faces of an arbitrary cell
// selection. The resulting map is the contract consumed by highlight and
// outline-drawing strategies.
package boundary

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/gravitas-015/hexboard/grid"
	"github.com/gravitas-015/hexboard/hex"
)

// Map records, per selected cell id, the faces bordering a cell outside the
// selection. Every selected cell has an entry; a fully enclosed cell maps
// to an empty set, which is distinct from the id being absent entirely.
type Map map[string]mapset.Set[hex.Direction]

// FindFaces computes the boundary faces of selection. A face is a boundary
// face when the neighbor across it is not part of the selection. Whether
// the grid holds a cell at that coordinate is irrelevant, so the walk is
// pure coordinate arithmetic over a membership set. Membership is by cell
// identity: structurally equal coordinates are the same cell, and duplicate
// selection entries collapse. g is the grid the selection came from; it is
// only consulted later, by OutlineSegments, to resolve ids back to cells.
func FindFaces(selection []grid.Cell, g *grid.Grid) Map {
	if len(selection) == 0 {
		return Map{}
	}
	members := mapset.New[string]()
	for _, cell := range selection {
		members.Put(cell.ID)
	}
	m := make(Map, len(selection))
	for _, cell := range selection {
		if _, ok := m[cell.ID]; ok {
			continue
		}
		faces := mapset.New[hex.Direction]()
		a := cell.Coord.ToAxial()
		for i := range hex.Directions {
			d := hex.Direction(i)
			if !members.Has(grid.CellID(a.Neighbor(d))) {
				faces.Put(d)
			}
		}
		m[cell.ID] = faces
	}
	return m
}

// Point3 is a world-space position. Y carries the cell elevation.
type Point3 struct {
	X, Y, Z float64
}

// Segment is one boundary face edge in world space.
type Segment struct {
	A, B Point3
}

// OutlineSegments resolves a boundary map against g and emits one segment
// per boundary face, using the fixed corner table so faces map to vertices
// ordinally. Ids that no longer resolve to a grid cell are skipped: a stale
// selection loses its lines, it does not fail the call.
func OutlineSegments(m Map, g *grid.Grid) []Segment {
	segs := make([]Segment, 0, len(m)*3)
	for id, faces := range m {
		cell, ok := g.GetCellByID(id)
		if !ok {
			continue
		}
		a := cell.Coord.ToAxial()
		for i := range hex.Directions {
			d := hex.Direction(i)
			if !faces.Has(d) {
				continue
			}
			ci, cj := hex.FaceCorners(d)
			ax, az := hex.Corner(a, ci)
			bx, bz := hex.Corner(a, cj)
			segs = append(segs, Segment{
				A: Point3{X: ax, Y: cell.Elevation, Z: az},
				B: Point3{X: bx, Y: cell.Elevation, Z: bz},
			})
		}
	}
	return segs
}
