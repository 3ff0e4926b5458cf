// Package lebedev computes Lebedev quadrature rules on the unit sphere:
// fixed point sets with weights that integrate every polynomial up to a
// declared degree exactly.
//
// 🚀 What is in the box?
//
//	A small, dependency-light library for angular integration, e.g. in
//	atomic and molecular grids:
//		• Order catalog: 65 rule slots, 6 … 5810 points, degree 3 … 131
//		• Octahedral orbit expander: one representative → 6/8/12/24/48 points
//		• Coefficient tables: 27 verified Lebedev–Laikov rules, 6 … 3470 points
//		• Point sets: immutable x, y, z, w slices with pointwise and
//		  vectorized integration, optional chunked parallel reduction
//		• Exactness verifier: every even monomial up to the rule's degree
//
// ✨ Guarantees
//
//   - Weights sum to 1; Integrate returns the true surface integral (×4π).
//   - Every compiled-in rule is exact to its degree within 1e-13.
//   - Deterministic: equal inputs give bit-identical point sets.
//   - Read-only after init: safe for concurrent use without locks.
//
// Layout:
//
//	order/       catalog: Order, N, Available, Degree, PointCount, ForDegree
//	octahedral/  SymmetryClass, Representative, Expand, Validate, Group
//	table/       coefficient rows, Representatives, Supported
//	quadrature/  PointSet, New, Integrate, IntegrateVec, VerifyExactness
//	cmd/lebedev  CLI: catalog, points, generators, integrate, verify
//
// Quick example:
//
//	ps, err := quadrature.New(order.Order590)
//	if err != nil { ... }
//	v := ps.Integrate(func(x, y, z float64) float64 { return x * x * y * y * z * z })
//	// v ≈ 4π/105
//
//	go get github.com/katalvlaran/lebedev
package lebedev
