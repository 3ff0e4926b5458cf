// SPDX-License-Identifier: MIT

// Package order is the static catalog of Lebedev quadrature orders.
//
// An Order is identified by its point count (6, 14, 26, …, 5810). The catalog
// has N = 65 slots; every slot carries three fixed facts looked up by index:
//
//   - Available(i): whether the rule for slot i is realizable;
//   - Degree(i)   : the highest total polynomial degree integrated exactly;
//   - PointCount(i): the number of points of the rule.
//
// None of these values are computed; they are literal tables, initialised
// with the package and never mutated. All functions are safe for concurrent use.
//
// Availability here is a property of the published rule family. Whether a
// coefficient table is actually compiled in for an order is answered by
// package table (see table.Supported).
//
// Quick start:
//
//	o, err := order.ForDegree(41) // smallest available order exact to degree 41
//	if err != nil { ... }
//	fmt.Println(o, o.Points(), o.Degree()) // Order590 590 41
package order
