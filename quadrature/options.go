// SPDX-License-Identifier: MIT

package quadrature

import "math"

// Defaults.
const (
	// DefaultWorkers is the number of reduction chunks; 1 means sequential.
	DefaultWorkers = 1

	// DefaultRadius is the sphere radius.
	DefaultRadius = 1.0

	// DefaultTolerance bounds the relative moment error in VerifyExactness.
	DefaultTolerance = 1e-10
)

const (
	panicWorkersInvalid   = "quadrature: WithWorkers: n must be ≥ 1"
	panicRadiusInvalid    = "quadrature: WithRadius: r must be finite and > 0"
	panicToleranceInvalid = "quadrature: WithTolerance: tol must be finite and > 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options is the resolved configuration of a PointSet. Fields are unexported;
// use the WithX constructors.
type Options struct {
	workers   int     // ≥ 1; DefaultWorkers
	radius    float64 // > 0; DefaultRadius
	tolerance float64 // > 0; DefaultTolerance
}

// WithWorkers sets the number of concurrent chunks for pointwise reductions
// and exactness sweeps.
//
// Notes:
//   - n = 1 is the sequential path. Results for a given n are reproducible.
//   - n larger than the point count is clamped at evaluation time.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithRadius makes the point set describe the sphere of radius r: stored
// coordinates are scaled by r and integrals carry the r² surface factor.
func WithRadius(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		panic(panicRadiusInvalid)
	}

	return func(o *Options) { o.radius = r }
}

// WithTolerance sets the relative error bound for VerifyExactness.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

func defaultOptions() Options {
	return Options{
		workers:   DefaultWorkers,
		radius:    DefaultRadius,
		tolerance: DefaultTolerance,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
