// SPDX-License-Identifier: MIT

package octahedral

import (
	"fmt"
	"math"
)

const (
	// patternEpsilon separates "zero" from "nonzero" and "equal" from
	// "distinct" magnitudes. Published tables keep distinct magnitudes far
	// more than 1e-2 apart.
	patternEpsilon = 1e-9

	// normEpsilon bounds |‖p‖² − 1| for the orbit point p.
	normEpsilon = 1e-12

	methodValidate = "Validate"
)

// Validate checks that rep's parameter pattern and norm match its class.
//
// Rules (magnitudes compared with patternEpsilon):
//   - Points6:      A ≠ 0, B = C = 0.
//   - Points8:      |A| = |B| = |C| ≠ 0.
//   - Points12:     |A| = |B| ≠ 0, C = 0.
//   - Points24:     A, B ≠ 0, |A| ≠ |B|, C = 0, 2A² + B² = 1.
//   - Points24Axis: A, B ≠ 0, |A| ≠ |B|, C = 0, A² + B² = 1.
//   - Points48:     A, B, C ≠ 0 and pairwise distinct.
//
// Every class also requires the orbit point to lie on the unit sphere and all
// parameters and the weight to be finite.
//
// Errors:
//   - ErrUnknownClass for a class outside the closed set.
//   - ErrContractViolation for any other mismatch.
func Validate(rep Representative) error {
	if rep.Class.Size() == 0 {
		return fmt.Errorf("%s: %v: %w", methodValidate, rep.Class, ErrUnknownClass)
	}
	if !finite(rep.A) || !finite(rep.B) || !finite(rep.C) || !finite(rep.Weight) {
		return violation(rep, "non-finite parameter")
	}

	a, b, c := math.Abs(rep.A), math.Abs(rep.B), math.Abs(rep.C)
	var ok bool
	var norm2 float64
	switch rep.Class {
	case Points6:
		ok = nonzero(a) && isZero(b) && isZero(c)
		norm2 = a * a
	case Points8:
		ok = nonzero(a) && equal(a, b) && equal(a, c)
		norm2 = 3 * a * a
	case Points12:
		ok = nonzero(a) && equal(a, b) && isZero(c)
		norm2 = 2 * a * a
	case Points24:
		ok = nonzero(a) && nonzero(b) && !equal(a, b) && isZero(c)
		norm2 = 2*a*a + b*b
	case Points24Axis:
		ok = nonzero(a) && nonzero(b) && !equal(a, b) && isZero(c)
		norm2 = a*a + b*b
	case Points48:
		ok = nonzero(a) && nonzero(b) && nonzero(c) &&
			!equal(a, b) && !equal(a, c) && !equal(b, c)
		norm2 = a*a + b*b + c*c
	}
	if !ok {
		return violation(rep, "coordinate pattern")
	}
	if math.Abs(norm2-1) > normEpsilon {
		return violation(rep, fmt.Sprintf("norm² = %.17g", norm2))
	}

	return nil
}

func violation(rep Representative, what string) error {
	return fmt.Errorf("%s: %v (%g, %g, %g): %s: %w",
		methodValidate, rep.Class, rep.A, rep.B, rep.C, what, ErrContractViolation)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func isZero(v float64) bool { return v <= patternEpsilon }

func nonzero(v float64) bool { return v > patternEpsilon }

func equal(u, v float64) bool { return math.Abs(u-v) <= patternEpsilon }
