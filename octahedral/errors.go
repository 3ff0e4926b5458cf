// SPDX-License-Identifier: MIT

package octahedral

import "errors"

// Sentinel errors for representative validation and expansion.
var (
	// ErrContractViolation indicates the coordinate pattern of a
	// Representative does not match its declared SymmetryClass.
	ErrContractViolation = errors.New("octahedral: representative does not match its symmetry class")

	// ErrUnknownClass indicates a SymmetryClass outside the closed set of six.
	ErrUnknownClass = errors.New("octahedral: unknown symmetry class")
)
