// SPDX-License-Identifier: MIT

package octahedral

// Transform is one element of Oh: a coordinate permutation followed by a
// sign flip per axis. Apply maps (x, y, z) to
// (Sign[0]·p[Perm[0]], Sign[1]·p[Perm[1]], Sign[2]·p[Perm[2]]).
type Transform struct {
	Perm [3]int
	Sign [3]float64
}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	c := [3]float64{p.X, p.Y, p.Z}

	return Point{
		X: t.Sign[0] * c[t.Perm[0]],
		Y: t.Sign[1] * c[t.Perm[1]],
		Z: t.Sign[2] * c[t.Perm[2]],
	}
}

var permutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// Group returns the 48 elements of Oh: 6 permutations × 8 sign patterns.
// The identity comes first. The slice is freshly allocated.
func Group() []Transform {
	out := make([]Transform, 0, 48)
	for _, p := range permutations {
		for s := 0; s < 8; s++ {
			t := Transform{Perm: p, Sign: [3]float64{1, 1, 1}}
			for axis := 0; axis < 3; axis++ {
				if s&(1<<axis) != 0 {
					t.Sign[axis] = -1
				}
			}
			out = append(out, t)
		}
	}

	return out
}
