// SPDX-License-Identifier: MIT

package octahedral

import "fmt"

const (
	methodExpand       = "Expand"
	methodExpandPoints = "ExpandPoints"
)

// Expand appends the orbit of rep to x, y and z and returns the grown slices.
//
// Implementation:
//   - Stage 1: Validate(rep); on failure return the inputs untouched.
//   - Stage 2: look up the class table and emit one point per row, mapping
//     each term to ±A, ±B, ±C or 0.
//
// Behavior highlights:
//   - Exactly rep.Class.Size() points are appended.
//   - Table order is fixed, so output is bit-reproducible.
//
// Errors:
//   - ErrUnknownClass, ErrContractViolation (see Validate).
//
// Complexity:
//   - Time O(k), extra space amortized O(k), k = rep.Class.Size().
func Expand(rep Representative, x, y, z []float64) ([]float64, []float64, []float64, error) {
	if err := Validate(rep); err != nil {
		return x, y, z, fmt.Errorf("%s: %w", methodExpand, err)
	}

	vals := [...]float64{z0: 0, pa: rep.A, na: -rep.A, pb: rep.B, nb: -rep.B, pc: rep.C, nc: -rep.C}
	for _, r := range orbitOf(rep.Class) {
		x = append(x, vals[r[0]])
		y = append(y, vals[r[1]])
		z = append(z, vals[r[2]])
	}

	return x, y, z, nil
}

// ExpandPoints is Expand returning a fresh []Point.
func ExpandPoints(rep Representative) ([]Point, error) {
	k := rep.Class.Size()
	x, y, z, err := Expand(rep, make([]float64, 0, k), make([]float64, 0, k), make([]float64, 0, k))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExpandPoints, err)
	}
	out := make([]Point, len(x))
	for i := range x {
		out[i] = Point{X: x[i], Y: y[i], Z: z[i]}
	}

	return out, nil
}

// orbitOf returns the sign/axis table of a valid class.
func orbitOf(c SymmetryClass) [][3]term {
	switch c {
	case Points6:
		return orbit6[:]
	case Points8:
		return orbit8[:]
	case Points12:
		return orbit12[:]
	case Points24:
		return orbit24[:]
	case Points24Axis:
		return orbit24Axis[:]
	default:
		return orbit48[:]
	}
}
