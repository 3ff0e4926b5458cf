// SPDX-License-Identifier: MIT

package octahedral

import (
	"math"
	"strconv"
)

// SymmetryClass names the orbit shape of a Representative.
// The zero value is invalid.
type SymmetryClass uint8

const (
	// Points6 is the orbit of (1,0,0).
	Points6 SymmetryClass = iota + 1
	// Points8 is the orbit of (a,a,a).
	Points8
	// Points12 is the orbit of (a,a,0).
	Points12
	// Points24 is the orbit of (a,a,b); parameters are stored as (a,b,0).
	Points24
	// Points24Axis is the orbit of (a,b,0).
	Points24Axis
	// Points48 is the orbit of (a,b,c).
	Points48
)

// Size returns the number of points the class expands into, or 0 for an
// unknown class.
func (c SymmetryClass) Size() int {
	switch c {
	case Points6:
		return len(orbit6)
	case Points8:
		return len(orbit8)
	case Points12:
		return len(orbit12)
	case Points24:
		return len(orbit24)
	case Points24Axis:
		return len(orbit24Axis)
	case Points48:
		return len(orbit48)
	default:
		return 0
	}
}

// String renders the class as "6-point", "24-point-axis", etc.
func (c SymmetryClass) String() string {
	switch c {
	case Points24Axis:
		return "24-point-axis"
	case Points6, Points8, Points12, Points24, Points48:
		return strconv.Itoa(c.Size()) + "-point"
	default:
		return "SymmetryClass(" + strconv.Itoa(int(c)) + ")"
	}
}

// Classes returns the six classes in declaration order.
func Classes() []SymmetryClass {
	return []SymmetryClass{Points6, Points8, Points12, Points24, Points24Axis, Points48}
}

// Representative is one tabulated orbit: a parameter triple, the weight
// shared by every point of the orbit, and the orbit's class.
//
// The weight may be negative; some high-order rules have negative weights.
type Representative struct {
	A, B, C float64
	Weight  float64
	Class   SymmetryClass
}

// Point is one expanded coordinate triple.
type Point struct {
	X, Y, Z float64
}

// Octa returns the Points6 representative (1,0,0) with weight v.
func Octa(v float64) Representative {
	return Representative{A: 1, Weight: v, Class: Points6}
}

// Cube returns the Points8 representative (1/√3, 1/√3, 1/√3) with weight v.
func Cube(v float64) Representative {
	a := math.Sqrt(1.0 / 3.0)

	return Representative{A: a, B: a, C: a, Weight: v, Class: Points8}
}

// Edge returns the Points12 representative (1/√2, 1/√2, 0) with weight v.
func Edge(v float64) Representative {
	a := math.Sqrt(0.5)

	return Representative{A: a, B: a, Weight: v, Class: Points12}
}

// Diagonal returns the Points24 representative for the orbit of (a, a, b)
// with b = √(1 − 2a²).
// The result is not validated; a > 1/√2 yields NaN and fails in Validate.
func Diagonal(a, v float64) Representative {
	return Representative{A: a, B: math.Sqrt(1 - 2*a*a), Weight: v, Class: Points24}
}

// Planar returns the Points24Axis representative (a, b, 0) with b = √(1 − a²).
func Planar(a, v float64) Representative {
	return Representative{A: a, B: math.Sqrt(1 - a*a), Weight: v, Class: Points24Axis}
}

// General returns the Points48 representative (a, b, c) with
// c = √(1 − a² − b²).
func General(a, b, v float64) Representative {
	return Representative{A: a, B: b, C: math.Sqrt(1 - a*a - b*b), Weight: v, Class: Points48}
}
