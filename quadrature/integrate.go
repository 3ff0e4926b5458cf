// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

const methodIntegrateVec = "IntegrateVec"

// Func is a pointwise integrand.
type Func func(x, y, z float64) float64

// VecFunc is a vectorized integrand: given every coordinate of the rule it
// returns one value per point, in the same order.
type VecFunc func(x, y, z []float64) []float64

// Integrate returns the surface integral of f over the sphere,
// 4π·r²·Σ wᵢ f(xᵢ, yᵢ, zᵢ).
//
// Behavior highlights:
//   - Sequential by default; WithWorkers(n) evaluates n contiguous chunks
//     concurrently and adds the partial sums in chunk order.
//
// Complexity:
//   - Time O(N) calls of f, Space O(workers).
func (ps *PointSet) Integrate(f Func) float64 {
	return ps.area() * ps.reduce(f)
}

// Average returns Σ wᵢ f(xᵢ, yᵢ, zᵢ), the mean of f over the sphere.
func (ps *PointSet) Average(f Func) float64 {
	return ps.reduce(f)
}

// IntegrateVec returns the surface integral of the values produced by f.
// f receives fresh copies of the coordinate slices and may keep or modify them.
//
// Errors:
//   - ErrNilFunc if f is nil.
//   - ErrLengthMismatch if f returns a slice of the wrong length.
//
// Notes:
//   - The dot product may associate differently from Integrate; agreement is
//     to rounding, not bit-exact.
func (ps *PointSet) IntegrateVec(f VecFunc) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%s: %w", methodIntegrateVec, ErrNilFunc)
	}
	vals := f(ps.X(), ps.Y(), ps.Z())
	if len(vals) != len(ps.w) {
		return 0, fmt.Errorf("%s: got %d values for %d points: %w",
			methodIntegrateVec, len(vals), len(ps.w), ErrLengthMismatch)
	}

	return ps.area() * floats.Dot(vals, ps.w), nil
}

// IntegrateSpherical integrates f given in spherical angles: θ ∈ [0, π] is
// the polar angle from +z and φ ∈ (−π, π] the azimuth from +x.
func (ps *PointSet) IntegrateSpherical(f func(theta, phi float64) float64) float64 {
	r := ps.opts.radius

	return ps.Integrate(func(x, y, z float64) float64 {
		c := math.Max(-1, math.Min(1, z/r))
		return f(math.Acos(c), math.Atan2(y, x))
	})
}

// area is the surface area of the sphere described by ps.
func (ps *PointSet) area() float64 {
	r := ps.opts.radius

	return 4 * math.Pi * r * r
}

// reduce computes Σ wᵢ f(pᵢ), splitting the range into chunks when more than
// one worker is configured.
func (ps *PointSet) reduce(f Func) float64 {
	n := len(ps.w)
	k := ps.opts.workers
	if k > n {
		k = n
	}
	if k <= 1 {
		return ps.partial(f, 0, n)
	}

	parts := make([]float64, k)
	var g errgroup.Group
	for c := 0; c < k; c++ {
		c := c
		lo, hi := c*n/k, (c+1)*n/k
		g.Go(func() error {
			parts[c] = ps.partial(f, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return floats.Sum(parts)
}

func (ps *PointSet) partial(f Func, lo, hi int) float64 {
	s := 0.0
	for i := lo; i < hi; i++ {
		s += ps.w[i] * f(ps.x[i], ps.y[i], ps.z[i])
	}

	return s
}
