// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"

	"github.com/katalvlaran/lebedev/octahedral"
	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/table"
)

const (
	methodNew       = "New"
	methodForDegree = "ForDegree"
)

// PointSet is an expanded Lebedev rule: parallel coordinate and weight
// slices of equal length, immutable after construction.
type PointSet struct {
	order      order.Order
	degree     int
	x, y, z, w []float64
	opts       Options
}

// New builds the point set of o.
//
// Implementation:
//   - Stage 1: table.Representatives(o) (fails for unsupported orders).
//   - Stage 2: preallocate o.Points() entries and Expand every representative
//     in table order, appending its weight once per emitted point.
//   - Stage 3: scale coordinates by the radius when WithRadius was given.
//
// Errors:
//   - order.ErrUnsupportedOrder if o has no rule.
//   - octahedral.ErrContractViolation if a representative is malformed
//     (cannot happen for compiled-in tables; they are validated at init).
//
// Determinism:
//   - Two calls with the same o and radius return bit-identical slices.
//
// Complexity:
//   - Time O(N), Space O(N), N = o.Points().
func New(o order.Order, opts ...Option) (*PointSet, error) {
	reps, err := table.Representatives(o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	n := o.Points()
	ps := &PointSet{
		order:  o,
		degree: o.Degree(),
		x:      make([]float64, 0, n),
		y:      make([]float64, 0, n),
		z:      make([]float64, 0, n),
		w:      make([]float64, 0, n),
		opts:   gatherOptions(opts...),
	}
	for _, rep := range reps {
		if ps.x, ps.y, ps.z, err = octahedral.Expand(rep, ps.x, ps.y, ps.z); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", methodNew, o, err)
		}
		for len(ps.w) < len(ps.x) {
			ps.w = append(ps.w, rep.Weight)
		}
	}
	if r := ps.opts.radius; r != 1 {
		for i := range ps.x {
			ps.x[i] *= r
			ps.y[i] *= r
			ps.z[i] *= r
		}
	}

	return ps, nil
}

// MustNew is New that panics on error. Intended for tests, examples and
// package-level variables with a known-good order.
func MustNew(o order.Order, opts ...Option) *PointSet {
	ps, err := New(o, opts...)
	if err != nil {
		panic(err)
	}

	return ps
}

// ForDegree builds the smallest supported rule exact to at least degree d.
// Orders flagged available but without a compiled-in table are skipped.
//
// Errors:
//   - order.ErrDegreeTooHigh if no supported rule reaches d.
func ForDegree(d int, opts ...Option) (*PointSet, error) {
	for _, o := range table.SupportedOrders() {
		if o.Degree() >= d {
			return New(o, opts...)
		}
	}

	return nil, fmt.Errorf("%s: degree %d: %w", methodForDegree, d, order.ErrDegreeTooHigh)
}

// Order returns the rule's order.
func (ps *PointSet) Order() order.Order { return ps.order }

// Degree returns the rule's exactness degree.
func (ps *PointSet) Degree() int { return ps.degree }

// Len returns the number of points.
func (ps *PointSet) Len() int { return len(ps.w) }

// Radius returns the sphere radius the coordinates describe.
func (ps *PointSet) Radius() float64 { return ps.opts.radius }

// X returns a copy of the x coordinates.
func (ps *PointSet) X() []float64 { return clone(ps.x) }

// Y returns a copy of the y coordinates.
func (ps *PointSet) Y() []float64 { return clone(ps.y) }

// Z returns a copy of the z coordinates.
func (ps *PointSet) Z() []float64 { return clone(ps.z) }

// Weights returns a copy of the weights. They sum to 1.
func (ps *PointSet) Weights() []float64 { return clone(ps.w) }

// Point returns the coordinates and weight of point i.
// It panics if i is out of range, like a slice index.
func (ps *PointSet) Point(i int) (x, y, z, w float64) {
	return ps.x[i], ps.y[i], ps.z[i], ps.w[i]
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
