package hex

import (
	"math"
	"testing"
)

func TestToWorld(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	cases := []struct {
		a    Axial
		x, z float64
	}{
		{Axial{0, 0}, 0, 0},
		{Axial{1, 0}, sqrt3, 0},
		{Axial{0, 1}, sqrt3 / 2, 1.5},
		{Axial{-2, 1}, -2*sqrt3 + sqrt3/2, 1.5},
	}
	for _, tc := range cases {
		x, z := ToWorld(tc.a)
		if math.Abs(x-tc.x) > 1e-9 || math.Abs(z-tc.z) > 1e-9 {
			t.Fatalf("ToWorld(%v): expected (%v, %v), got (%v, %v)", tc.a, tc.x, tc.z, x, z)
		}
	}
}

func TestWorldRoundTrip(t *testing.T) {
	for q := -100; q <= 100; q++ {
		for r := -100; r <= 100; r++ {
			a := Axial{Q: q, R: r}
			x, z := ToWorld(a)
			if got := FromWorld(x, z); got != a.ToCube() {
				t.Fatalf("round trip failed for %v: got %v", a, got)
			}
		}
	}
	// spot checks out at the far corners of the supported range
	for _, a := range []Axial{{1000, 1000}, {-1000, 1000}, {1000, -1000}, {-1000, -1000}, {1000, 0}, {0, -1000}} {
		x, z := ToWorld(a)
		if got := FromWorld(x, z); got != a.ToCube() {
			t.Fatalf("round trip failed for %v: got %v", a, got)
		}
	}
}

func TestCubeRoundingTieBreak(t *testing.T) {
	// exact half-integer fractions exercise the tie-break branch order
	// directly; going through the world transform would smear the halves
	// with float error and make the ties unreachable
	cases := []struct {
		name       string
		qf, rf, sf float64
		want       Cube
	}{
		// q and s tie at 0.5 error; s is recomputed, so the rounded q wins.
		{"q-s tie", 0.5, 0, -0.5, Cube{1, 0, -1}},
		// q and r tie; r is recomputed, keeping the rounded q.
		{"q-r tie", -0.5, 0.5, 0, Cube{-1, 1, 0}},
		// q strictly largest error: q is recomputed from r and s.
		{"q largest", 0.5, 0.25, -0.75, Cube{1, 0, -1}},
		// r strictly larger than s: r is recomputed.
		{"r largest", 0.2, 0.5, -0.7, Cube{0, 1, -1}},
		// all three exact: no correction needed
		{"exact", 2, -3, 1, Cube{2, -3, 1}},
	}
	for _, tc := range cases {
		got := roundCube(tc.qf, tc.rf, tc.sf)
		if got != tc.want {
			t.Fatalf("%s: roundCube(%v, %v, %v): expected %v, got %v",
				tc.name, tc.qf, tc.rf, tc.sf, tc.want, got)
		}
		if !got.Valid() {
			t.Fatalf("%s: roundCube produced invalid cube %v", tc.name, got)
		}
	}
}

func TestFromWorldNearCenter(t *testing.T) {
	// small offsets from a cell center still resolve to that cell
	a := Axial{Q: 4, R: -7}
	cx, cz := ToWorld(a)
	for _, off := range [][2]float64{{0.3, 0}, {-0.3, 0.2}, {0, -0.4}, {0.2, 0.3}} {
		if got := FromWorld(cx+off[0], cz+off[1]); got != a.ToCube() {
			t.Fatalf("offset %v from center of %v: got %v", off, a, got)
		}
	}
}

func TestCornersAndFaces(t *testing.T) {
	a := Axial{}
	cx, cz := ToWorld(a)
	for i := 0; i < 6; i++ {
		x, z := Corner(a, i)
		d := math.Hypot(x-cx, z-cz)
		if math.Abs(d-1) > 1e-9 {
			t.Fatalf("corner %d at distance %v from center, expected 1", i, d)
		}
	}
	// the midpoint of a face's corners must sit halfway to the neighbor
	// across that face
	for i := range Directions {
		d := Direction(i)
		ci, cj := FaceCorners(d)
		ax, az := Corner(a, ci)
		bx, bz := Corner(a, cj)
		mx, mz := (ax+bx)/2, (az+bz)/2
		nx, nz := ToWorld(a.Add(Directions[d]))
		if math.Abs(mx-nx/2) > 1e-9 || math.Abs(mz-nz/2) > 1e-9 {
			t.Fatalf("face %v midpoint (%v, %v) not halfway to neighbor (%v, %v)", d, mx, mz, nx, nz)
		}
	}
}
