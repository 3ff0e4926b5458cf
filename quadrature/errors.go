// SPDX-License-Identifier: MIT

package quadrature

import "errors"

// Sentinel errors for point-set evaluation.
var (
	// ErrLengthMismatch indicates a VecFunc returned a slice whose length
	// differs from the number of points.
	ErrLengthMismatch = errors.New("quadrature: integrand returned wrong number of values")

	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("quadrature: nil integrand")

	// ErrNotExact indicates a rule failed its exactness check.
	ErrNotExact = errors.New("quadrature: rule is not exact to its declared degree")
)
