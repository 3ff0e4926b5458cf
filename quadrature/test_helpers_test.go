// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"math"

	"github.com/katalvlaran/lebedev/octahedral"
)

// pointKey rounds a coordinate triple so that equal points from different
// code paths compare equal in a map.
func pointKey(x, y, z float64) [3]int64 {
	const scale = 1e11
	return [3]int64{
		int64(math.Round(x * scale)),
		int64(math.Round(y * scale)),
		int64(math.Round(z * scale)),
	}
}

// sample is a smooth, non-polynomial integrand.
func sample(x, y, z float64) float64 {
	return math.Exp(x) + math.Cos(y*z) + x*x*y
}

// sampleVec is sample over whole coordinate slices.
func sampleVec(x, y, z []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = sample(x[i], y[i], z[i])
	}
	return out
}

func one(_, _, _ float64) float64 { return 1 }

func x2y2z2(x, y, z float64) float64 { return x * x * y * y * z * z }

func x2y2z2Vec(x, y, z []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x2y2z2(x[i], y[i], z[i])
	}
	return out
}

var group = octahedral.Group()
