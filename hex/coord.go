// Package hex implements cube and axial coordinate math for a flat-top
// hexagonal layout, plus the world-space projection used to place cells and
// to pick them back from pointer intersections.
package hex

// Axial represents axial coordinates (q, r). The third cube component is
// implied: s = -q - r.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates (q, r, s) with q+r+s=0.
type Cube struct {
	Q int
	R int
	S int
}

// Direction identifies one of the six hexagon faces in fixed rotational
// order. The order is load-bearing: boundary detection and face-vertex
// lookups consume directions ordinally.
type Direction int

const (
	North Direction = iota
	Northeast
	Southeast
	South
	Southwest
	Northwest
)

// Directions holds the axial neighbor offsets indexed by Direction.
var Directions = [6]Axial{
	{0, -1},  // North
	{1, -1},  // Northeast
	{1, 0},   // Southeast
	{0, 1},   // South
	{-1, 1},  // Southwest
	{-1, 0},  // Northwest
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case Northeast:
		return "Northeast"
	case Southeast:
		return "Southeast"
	case South:
		return "South"
	case Southwest:
		return "Southwest"
	case Northwest:
		return "Northwest"
	default:
		return "Unknown"
	}
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube { return Cube{Q: a.Q, R: a.R, S: -a.Q - a.R} }

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.Q, R: c.R} }

// Valid reports whether the cube constraint q+r+s=0 holds. The comparison
// is exact: values carrying floating-point rounding error are rejected, not
// tolerated.
func (c Cube) Valid() bool { return c.Q+c.R+c.S == 0 }

// Neighbor returns the coordinate across face d.
func (a Axial) Neighbor(d Direction) Cube {
	return a.Add(Directions[d]).ToCube()
}

// Neighbors returns the six adjacent coordinates in Direction order. It is
// pure coordinate arithmetic; whether the neighbors exist anywhere is a grid
// concern.
func (a Axial) Neighbors() [6]Cube {
	var out [6]Cube
	for i, d := range Directions {
		out[i] = a.Add(d).ToCube()
	}
	return out
}

// Distance returns the hex distance between two cube coords.
func Distance(a, b Cube) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S - b.S)
	if dq > dr && dq > ds {
		return dq
	}
	if dr > ds {
		return dr
	}
	return ds
}

// Ring returns the axial coordinates at exact distance k from center c,
// starting from Directions[4] and walking the six sides in order.
// If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k == 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(Directions[4].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns all axial coordinates at distance <= r from center c.
func Disk(c Axial, r int) []Axial {
	size := 1 + 3*r*(r+1)
	res := make([]Axial, 0, size)
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(Axial{q, r2}))
		}
	}
	return res
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
