package hex

import "math"

// The projection fixes a flat-top layout with unit hex size. x/z are the
// ground plane; height (y) comes from cell elevation and is applied by the
// caller.

// ToWorld converts axial coordinates to a world-space (x, z) position.
func ToWorld(a Axial) (x, z float64) {
	x = math.Sqrt(3)*float64(a.Q) + math.Sqrt(3)/2*float64(a.R)
	z = 1.5 * float64(a.R)
	return x, z
}

// FromWorld converts a world-space (x, z) position to the nearest hex cell.
func FromWorld(x, z float64) Cube {
	q := math.Sqrt(3)/3*x - z/3
	r := 2.0 / 3.0 * z
	return roundCube(q, r, -q-r)
}

// roundCube rounds fractional cube coordinates to the nearest valid cell.
// Components are rounded independently, then the one with the largest
// rounding error is recomputed from the other two to restore q+r+s=0.
// The branch order is significant on exact half-integer ties and must not
// be reordered.
func roundCube(qf, rf, sf float64) Cube {
	q := math.Round(qf)
	r := math.Round(rf)
	s := math.Round(sf)
	dq := math.Abs(q - qf)
	dr := math.Abs(r - rf)
	ds := math.Abs(s - sf)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Cube{Q: int(q), R: int(r), S: int(s)}
}

// corners holds the six unit-radius corner offsets. Corner 0 is the top
// corner (negative z); indices proceed in the same rotational sense as
// Direction, so that face d is bounded by the two corners FaceCorners(d).
var corners = [6][2]float64{
	{0, -1},
	{math.Sqrt(3) / 2, -0.5},
	{math.Sqrt(3) / 2, 0.5},
	{0, 1},
	{-math.Sqrt(3) / 2, 0.5},
	{-math.Sqrt(3) / 2, -0.5},
}

// faceCorners maps each Direction to the corner indices bounding that face,
// in perimeter order. The midpoint of a face's corners lies on the world
// offset of its Direction.
var faceCorners = [6][2]int{
	{5, 0}, // North
	{0, 1}, // Northeast
	{1, 2}, // Southeast
	{2, 3}, // South
	{3, 4}, // Southwest
	{4, 5}, // Northwest
}

// Corner returns the world-space position of corner i (0..5) of the hex at a.
func Corner(a Axial, i int) (x, z float64) {
	cx, cz := ToWorld(a)
	return cx + corners[i][0], cz + corners[i][1]
}

// FaceCorners returns the two corner indices bounding face d.
func FaceCorners(d Direction) (int, int) {
	return faceCorners[d][0], faceCorners[d][1]
}
