// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lebedev/order"
)

const methodVerifyExactness = "VerifyExactness"

// Report summarises an exactness sweep of one rule.
type Report struct {
	Order        order.Order `json:"order" yaml:"order"`
	Degree       int         `json:"degree" yaml:"degree"`
	Points       int         `json:"points" yaml:"points"`
	Monomials    int         `json:"monomials" yaml:"monomials"`
	WeightSum    float64     `json:"weight_sum" yaml:"weight_sum"`
	MaxRelErr    float64     `json:"max_rel_err" yaml:"max_rel_err"`
	Worst        [3]int      `json:"worst" yaml:"worst"` // (i, j, k) of the worst monomial
	ResidualNorm float64     `json:"residual_norm" yaml:"residual_norm"`
	Tolerance    float64     `json:"tolerance" yaml:"tolerance"`
	Exact        bool        `json:"exact" yaml:"exact"`
}

// Moment returns the mean of x^{2i} y^{2j} z^{2k} over the unit sphere,
//
//	(2i−1)!! (2j−1)!! (2k−1)!! / (2(i+j+k)+1)!!
//
// Moment(0,0,0) = 1 and Moment(1,1,1) = 1/105. Negative exponents yield NaN.
// Odd powers are not covered: their means vanish by symmetry.
func Moment(i, j, k int) float64 {
	if i < 0 || j < 0 || k < 0 {
		return math.NaN()
	}

	return oddFactorial(2*i-1) * oddFactorial(2*j-1) * oddFactorial(2*k-1) /
		oddFactorial(2*(i+j+k)+1)
}

// oddFactorial returns n!! for odd n, with (−1)!! = 1.
func oddFactorial(n int) float64 {
	r := 1.0
	for ; n > 1; n -= 2 {
		r *= float64(n)
	}

	return r
}

// Moment returns Σ wᵢ xᵢ^{2i} yᵢ^{2j} zᵢ^{2k} over the stored coordinates.
// For a unit-radius rule of degree d ≥ 2(i+j+k) it equals the package-level
// Moment(i, j, k) to rounding.
func (ps *PointSet) Moment(i, j, k int) float64 {
	return ps.reduce(func(x, y, z float64) float64 {
		return ipow(x*x, i) * ipow(y*y, j) * ipow(z*z, k)
	})
}

func ipow(v float64, n int) float64 {
	r := 1.0
	for ; n > 0; n-- {
		r *= v
	}

	return r
}

// VerifyExactness checks every even monomial x^{2i} y^{2j} z^{2k} with
// i+j+k ≤ ⌊degree/2⌋ against Moment(i, j, k), on coordinates normalised to
// the unit sphere.
//
// Implementation:
//   - Stage 1: tabulate xₗ^{2i}, yₗ^{2i}, zₗ^{2i} for i ≤ ⌊degree/2⌋.
//   - Stage 2: for each (i, j, k) compute the weighted sum and its relative
//     error; monomials are split across workers when WithWorkers > 1.
//   - Stage 3: collect the worst error (first in sweep order on ties) and the
//     2-norm of all relative errors.
//
// Errors:
//   - ErrNotExact if the worst relative error or |Σw − 1| exceeds the
//     tolerance. The Report is filled either way.
//
// Complexity:
//   - Time O(N·m³), Space O(N·m), N points, m = ⌊degree/2⌋.
func (ps *PointSet) VerifyExactness() (Report, error) {
	m := ps.degree / 2
	n := len(ps.w)
	inv := 1 / ps.opts.radius
	px, py, pz := evenPowers(ps.x, m, inv), evenPowers(ps.y, m, inv), evenPowers(ps.z, m, inv)

	var monos [][3]int
	for s := 0; s <= m; s++ {
		for i := s; i >= 0; i-- {
			for j := s - i; j >= 0; j-- {
				monos = append(monos, [3]int{i, j, s - i - j})
			}
		}
	}

	rel := make([]float64, len(monos))
	check := func(lo, hi int) {
		for t := lo; t < hi; t++ {
			i, j, k := monos[t][0], monos[t][1], monos[t][2]
			xi, yj, zk := px[i], py[j], pz[k]
			q := 0.0
			for l := 0; l < n; l++ {
				q += ps.w[l] * xi[l] * yj[l] * zk[l]
			}
			e := Moment(i, j, k)
			rel[t] = math.Abs(q-e) / e
		}
	}

	workers := ps.opts.workers
	if workers > len(monos) {
		workers = len(monos)
	}
	if workers <= 1 {
		check(0, len(monos))
	} else {
		var g errgroup.Group
		for c := 0; c < workers; c++ {
			lo, hi := c*len(monos)/workers, (c+1)*len(monos)/workers
			g.Go(func() error {
				check(lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	}

	rep := Report{
		Order:     ps.order,
		Degree:    ps.degree,
		Points:    n,
		Monomials: len(monos),
		WeightSum: floats.Sum(ps.w),
		Tolerance: ps.opts.tolerance,
	}
	for t, e := range rel {
		if e > rep.MaxRelErr {
			rep.MaxRelErr = e
			rep.Worst = monos[t]
		}
	}
	rep.ResidualNorm = mat.Norm(mat.NewVecDense(len(rel), rel), 2)
	rep.Exact = rep.MaxRelErr <= rep.Tolerance && math.Abs(rep.WeightSum-1) <= rep.Tolerance
	if !rep.Exact {
		return rep, fmt.Errorf("%s: %v: max relative error %.3g at %v, weight sum %.17g: %w",
			methodVerifyExactness, ps.order, rep.MaxRelErr, rep.Worst, rep.WeightSum, ErrNotExact)
	}

	return rep, nil
}

// evenPowers returns p[i][l] = (scale·v[l])^{2i} for i = 0..m.
func evenPowers(v []float64, m int, scale float64) [][]float64 {
	p := make([][]float64, m+1)
	p[0] = make([]float64, len(v))
	for l := range v {
		p[0][l] = 1
	}
	for i := 1; i <= m; i++ {
		p[i] = make([]float64, len(v))
		for l, c := range v {
			u := scale * c
			p[i][l] = p[i-1][l] * u * u
		}
	}

	return p
}
