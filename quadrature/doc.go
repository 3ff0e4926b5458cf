// SPDX-License-Identifier: MIT

// Package quadrature builds Lebedev point sets and integrates functions over
// the sphere with them.
//
// What:
//
//	New(order) fetches the order's representatives from package table,
//	expands each with package octahedral, and concatenates the orbits into
//	four parallel slices x, y, z, w. The resulting PointSet is immutable.
//
// Scaling convention:
//
//	Stored weights sum to 1. Integrate and IntegrateVec return the surface
//	integral itself, 4π·r²·Σ wᵢ f(pᵢ), where r is the sphere radius
//	(1 unless WithRadius is given). Average returns the plain Σ wᵢ f(pᵢ).
//	With the 6-point rule and f ≡ 1, Integrate returns 4π.
//
// Why Lebedev:
//
//	A rule of degree d integrates every polynomial in x, y, z of total degree
//	≤ d exactly on the unit sphere, using far fewer points than a product
//	Gauss rule in (θ, φ) of the same degree.
//
// Options:
//
//   - WithWorkers(n)   : split the pointwise reduction into n contiguous
//     chunks evaluated concurrently and summed in chunk order. Results are
//     deterministic for a fixed n but may differ from the sequential sum in
//     the last bits; f must be safe for concurrent calls.
//   - WithRadius(r)    : integrate over the sphere of radius r.
//   - WithTolerance(t) : relative error bound used by VerifyExactness.
//
// Exactness:
//
//	Moment(i, j, k) is the closed-form mean of x^{2i} y^{2j} z^{2k} over the
//	unit sphere. VerifyExactness compares every such moment up to the rule's
//	degree against the rule and reports the worst relative error.
//
// Errors:
//
//   - order.ErrUnsupportedOrder : New/ForDegree on an order with no rule.
//   - ErrLengthMismatch         : a VecFunc returned the wrong number of values.
//   - ErrNilFunc                : a nil integrand.
//   - ErrNotExact               : VerifyExactness exceeded the tolerance.
//
// Concurrency:
//
//	A PointSet is read-only after New; all methods are safe for concurrent use.
package quadrature
