// SPDX-License-Identifier: MIT

package octahedral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/octahedral"
)

// sample returns one valid representative per class, with parameters taken
// from published rules.
func sample() []octahedral.Representative {
	return []octahedral.Representative{
		octahedral.Octa(1.0 / 6.0),
		octahedral.Cube(0.075),
		octahedral.Edge(0.038),
		octahedral.Diagonal(0.3015113445777636, 0.02),
		octahedral.Planar(0.4597008433809831, 0.028),
		octahedral.General(0.1012526248572414, 0.4647448726420539, 0.004),
	}
}

// key rounds a point so that equal points compare equal in a map.
func key(p octahedral.Point) [3]int64 {
	const scale = 1e12
	return [3]int64{
		int64(math.Round(p.X * scale)),
		int64(math.Round(p.Y * scale)),
		int64(math.Round(p.Z * scale)),
	}
}

func reclass(rep octahedral.Representative, c octahedral.SymmetryClass) octahedral.Representative {
	rep.Class = c
	return rep
}

func TestExpand_CountsUniqueUnitNorm(t *testing.T) {
	want := map[octahedral.SymmetryClass]int{
		octahedral.Points6: 6, octahedral.Points8: 8, octahedral.Points12: 12,
		octahedral.Points24: 24, octahedral.Points24Axis: 24, octahedral.Points48: 48,
	}
	for _, rep := range sample() {
		t.Run(rep.Class.String(), func(t *testing.T) {
			pts, err := octahedral.ExpandPoints(rep)
			require.NoError(t, err)
			require.Len(t, pts, want[rep.Class])
			assert.Equal(t, want[rep.Class], rep.Class.Size())

			seen := make(map[[3]int64]bool, len(pts))
			for _, p := range pts {
				k := key(p)
				assert.False(t, seen[k], "duplicate point %+v", p)
				seen[k] = true
				assert.InDelta(t, 1.0, p.X*p.X+p.Y*p.Y+p.Z*p.Z, 1e-14)
			}
		})
	}
}

func TestExpand_OrbitClosedUnderGroup(t *testing.T) {
	group := octahedral.Group()
	for _, rep := range sample() {
		pts, err := octahedral.ExpandPoints(rep)
		require.NoError(t, err)

		set := make(map[[3]int64]bool, len(pts))
		for _, p := range pts {
			set[key(p)] = true
		}
		images := make(map[[3]int64]bool)
		for _, g := range group {
			for _, p := range pts {
				q := g.Apply(p)
				assert.True(t, set[key(q)], "%v: image %+v not in orbit", rep.Class, q)
				images[key(q)] = true
			}
		}
		assert.Len(t, images, len(pts), rep.Class.String())
	}
}

func TestExpand_SixPointLayout(t *testing.T) {
	x, y, z, err := octahedral.Expand(octahedral.Octa(1.0/6.0), nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, 0, 0, 0, 0}, x)
	assert.Equal(t, []float64{0, 0, 1, -1, 0, 0}, y)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, -1}, z)
}

func TestExpand_DiagonalPattern(t *testing.T) {
	rep := octahedral.Diagonal(0.3015113445777636, 0.02)
	pts, err := octahedral.ExpandPoints(rep)
	require.NoError(t, err)
	for _, p := range pts {
		m := []float64{math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)}
		na, nb := 0, 0
		for _, v := range m {
			switch {
			case math.Abs(v-rep.A) < 1e-15:
				na++
			case math.Abs(v-rep.B) < 1e-15:
				nb++
			}
		}
		assert.Equal(t, 2, na, "%+v", p)
		assert.Equal(t, 1, nb, "%+v", p)
	}
}

func TestExpand_AppendsToCallerSlices(t *testing.T) {
	x, y, z := []float64{9}, []float64{9}, []float64{9}
	x, y, z, err := octahedral.Expand(octahedral.Cube(0.1), x, y, z)
	require.NoError(t, err)
	assert.Len(t, x, 9)
	assert.Len(t, y, 9)
	assert.Len(t, z, 9)
	assert.Equal(t, 9.0, x[0])
}

func TestValidate_Violations(t *testing.T) {
	a := math.Sqrt(0.5)
	cases := []struct {
		name string
		rep  octahedral.Representative
		want error
	}{
		{"unknown class", octahedral.Representative{A: 1}, octahedral.ErrUnknownClass},
		{"6 with two nonzero", octahedral.Representative{A: a, B: a, Class: octahedral.Points6}, octahedral.ErrContractViolation},
		{"6 not unit", octahedral.Representative{A: 0.5, Class: octahedral.Points6}, octahedral.ErrContractViolation},
		{"8 unequal", octahedral.Representative{A: 0.5, B: 0.5, C: math.Sqrt(0.5), Class: octahedral.Points8}, octahedral.ErrContractViolation},
		{"12 with nonzero c", octahedral.Representative{A: 0.5, B: 0.5, C: math.Sqrt(0.5), Class: octahedral.Points12}, octahedral.ErrContractViolation},
		{"24 with equal a b", octahedral.Representative{A: math.Sqrt(1.0 / 3), B: math.Sqrt(1.0 / 3), Class: octahedral.Points24}, octahedral.ErrContractViolation},
		{"24 with axis norm", reclass(octahedral.Planar(0.6, 0), octahedral.Points24), octahedral.ErrContractViolation},
		{"24-axis with diagonal norm", reclass(octahedral.Diagonal(0.3, 0), octahedral.Points24Axis), octahedral.ErrContractViolation},
		{"24-axis zero b", octahedral.Representative{A: 1, Class: octahedral.Points24Axis}, octahedral.ErrContractViolation},
		{"48 with equal pair", octahedral.General(0.5, 0.5, 0), octahedral.ErrContractViolation},
		{"48 with zero c", octahedral.Representative{A: 0.6, B: 0.8, Class: octahedral.Points48}, octahedral.ErrContractViolation},
		{"diagonal out of range", octahedral.Diagonal(0.9, 0), octahedral.ErrContractViolation},
		{"nan weight", octahedral.Octa(math.NaN()), octahedral.ErrContractViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, octahedral.Validate(tc.rep), tc.want)

			x, y, z, err := octahedral.Expand(tc.rep, []float64{}, nil, nil)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, x)
			assert.Nil(t, y)
			assert.Nil(t, z)
		})
	}
}

func TestValidate_NegativeWeightAllowed(t *testing.T) {
	assert.NoError(t, octahedral.Validate(octahedral.Octa(-0.0013)))
}

func TestGroup(t *testing.T) {
	g := octahedral.Group()
	require.Len(t, g, 48)

	p := octahedral.Point{X: 0.1, Y: 0.3, Z: math.Sqrt(0.9)}
	assert.Equal(t, p, g[0].Apply(p), "identity first")

	images := make(map[[3]int64]bool)
	for _, tr := range g {
		images[key(tr.Apply(p))] = true
	}
	assert.Len(t, images, 48, "generic point has a trivial stabilizer")
}

func TestSymmetryClass_String(t *testing.T) {
	got := make([]string, 0, 6)
	for _, c := range octahedral.Classes() {
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"6-point", "8-point", "12-point", "24-point", "24-point-axis", "48-point"}, got)
	assert.Equal(t, "SymmetryClass(0)", octahedral.SymmetryClass(0).String())
	assert.Zero(t, octahedral.SymmetryClass(9).Size())
}
