// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/quadrature"
	"github.com/katalvlaran/lebedev/table"
)

func TestIntegrate_590_x2y2z2(t *testing.T) {
	ps := quadrature.MustNew(order.Order590)
	want := 4 * math.Pi / 105

	assert.InDelta(t, want, ps.Integrate(x2y2z2), 1e-9)

	got, err := ps.IntegrateVec(x2y2z2Vec)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

func TestIntegrate_PointwiseMatchesVectorized(t *testing.T) {
	for _, o := range table.SupportedOrders() {
		ps := quadrature.MustNew(o)
		vec, err := ps.IntegrateVec(sampleVec)
		require.NoError(t, err)
		assert.InEpsilon(t, ps.Integrate(sample), vec, 1e-13, o.String())
	}
}

func TestIntegrate_Workers(t *testing.T) {
	seq := quadrature.MustNew(order.Order2030)
	par := quadrature.MustNew(order.Order2030, quadrature.WithWorkers(4))

	a, b := par.Integrate(sample), par.Integrate(sample)
	assert.Equal(t, a, b, "fixed worker count must be reproducible")
	assert.InEpsilon(t, seq.Integrate(sample), a, 1e-13)

	many := quadrature.MustNew(order.Order6, quadrature.WithWorkers(64))
	assert.InDelta(t, 4*math.Pi, many.Integrate(one), 1e-14)
}

func TestIntegrate_Radius(t *testing.T) {
	const r = 2.0
	ps := quadrature.MustNew(order.Order50, quadrature.WithRadius(r))
	assert.Equal(t, r, ps.Radius())

	x, y, z := ps.X(), ps.Y(), ps.Z()
	for i := range x {
		assert.InDelta(t, r*r, x[i]*x[i]+y[i]*y[i]+z[i]*z[i], 1e-13)
	}

	assert.InDelta(t, 4*math.Pi*r*r, ps.Integrate(one), 1e-12)
	// ∫ x² dS over radius r = 4π r⁴ / 3.
	assert.InDelta(t, 4*math.Pi*r*r*r*r/3, ps.Integrate(func(x, _, _ float64) float64 { return x * x }), 1e-12)
}

func TestIntegrateSpherical(t *testing.T) {
	ps := quadrature.MustNew(order.Order50)
	// ∫ cos²θ dΩ = 4π/3.
	got := ps.IntegrateSpherical(func(theta, _ float64) float64 {
		c := math.Cos(theta)
		return c * c
	})
	assert.InDelta(t, 4*math.Pi/3, got, 1e-12)

	// ∫ sin²θ cos²φ dΩ = ∫ x² dΩ = 4π/3.
	got = ps.IntegrateSpherical(func(theta, phi float64) float64 {
		s, c := math.Sin(theta), math.Cos(phi)
		return s * s * c * c
	})
	assert.InDelta(t, 4*math.Pi/3, got, 1e-12)
}

func TestIntegrateVec_Errors(t *testing.T) {
	ps := quadrature.MustNew(order.Order26)

	_, err := ps.IntegrateVec(nil)
	assert.ErrorIs(t, err, quadrature.ErrNilFunc)

	_, err = ps.IntegrateVec(func(x, _, _ []float64) []float64 { return x[:len(x)-1] })
	assert.ErrorIs(t, err, quadrature.ErrLengthMismatch)
}

func TestIntegrateVec_InputsAreCopies(t *testing.T) {
	ps := quadrature.MustNew(order.Order26)
	before := ps.X()
	_, err := ps.IntegrateVec(func(x, y, z []float64) []float64 {
		for i := range x {
			x[i] = 0
		}
		return x
	})
	require.NoError(t, err)
	assert.Equal(t, before, ps.X())
}
