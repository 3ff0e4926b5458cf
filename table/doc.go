// SPDX-License-Identifier: MIT

// Package table holds the Lebedev–Laikov coefficient tables: for each
// supported order, the ordered list of octahedral representatives whose
// orbits form the rule.
//
// Source:
//
//	V.I. Lebedev, D.N. Laikov, "A quadrature formula for the sphere of the
//	131st algebraic order of accuracy", Doklady Mathematics 59(3), 1999,
//	in the generator-code notation (codes 1–6) used by the published tables.
//
// Every compiled-in order has been checked for exactness: the weighted sum of
// x^{2i}y^{2j}z^{2k} over the expanded rule matches the closed-form sphere
// moment for all i+j+k ≤ ⌊degree/2⌋ to better than 1e-13 relative error. The
// quadrature package tests repeat that check.
//
// Orders flagged available in package order but absent here (3890, 4334,
// 4802, 5294, 5810) are unsupported: Representatives reports
// order.ErrUnsupportedOrder for them.
//
// Lifecycle:
//
//	Rows are converted to octahedral.Representative values once, during
//	package initialisation, and never mutated. A row that fails
//	octahedral.Validate panics at init: the table itself is corrupt.
//
// Concurrency: all functions are safe for concurrent use.
package table
