// SPDX-License-Identifier: MIT

// Package octahedral expands one representative point on the unit sphere into
// its orbit under the octahedral group with inversion (Oh, 48 elements).
//
// What:
//
//	A Representative carries a coordinate triple, a weight and a SymmetryClass.
//	The class fixes how many distinct images the 48 signed permutations of the
//	triple produce: 6, 8, 12, 24, 24 or 48. Expand appends exactly that many
//	points to caller-owned x/y/z slices.
//
// Classes and parameter layout (all magnitudes positive in tabulated data):
//
//	Points6       (1, 0, 0)                 → 6 vertices of the octahedron
//	Points8       (a, a, a), a = 1/√3       → 8 vertices of the cube
//	Points12      (a, a, 0), a = 1/√2       → 12 edge midpoints
//	Points24      (a, b, 0), orbit of (a, a, b), 2a² + b² = 1
//	Points24Axis  (a, b, 0), orbit of (a, b, 0),  a² + b² = 1
//	Points48      (a, b, c), pairwise distinct, a² + b² + c² = 1
//
// Points24 and Points24Axis share the zero pattern of their parameters; the
// role of a differs (repeated magnitude versus in-plane coordinate) and the
// norm constraint tells them apart.
//
// Contract:
//
//	Expand validates first. A triple whose zero/equal/distinct pattern or norm
//	does not match its class is a contract violation (ErrContractViolation):
//	nothing is appended and the input slices are returned unchanged.
//
// Determinism:
//
//	Each class uses a fixed sign/axis table (orbits.go). Output order never
//	depends on input values, so equal inputs produce bit-identical output.
//
// Complexity:
//
//	Expand is O(class size) time and amortized O(class size) extra space.
//
// Group returns the 48 transforms themselves, which lets callers check that a
// whole point set is mapped onto itself.
package octahedral
