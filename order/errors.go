// SPDX-License-Identifier: MIT

package order

import "errors"

// Sentinel errors for catalog lookups.
var (
	// ErrUnsupportedOrder indicates the order is absent from the catalog or is
	// flagged unavailable.
	ErrUnsupportedOrder = errors.New("order: unsupported quadrature order")

	// ErrIndexOutOfRange indicates a slot index outside [0, N).
	ErrIndexOutOfRange = errors.New("order: slot index out of range")

	// ErrDegreeTooHigh indicates no available order reaches the requested degree.
	ErrDegreeTooHigh = errors.New("order: no available order reaches the requested degree")
)
