// SPDX-License-Identifier: MIT
// Package input: sentinel error set.

package input

import "errors"

var (
	// ErrMalformedHeader is returned when the first line is missing, does not
	// hold six integers, or holds negative values.
	ErrMalformedHeader = errors.New("input: malformed header")

	// ErrMalformedRide is returned when a ride line does not hold six
	// non-negative integers.
	ErrMalformedRide = errors.New("input: malformed ride")

	// ErrRideCount is returned when the number of ride lines differs from
	// the nRides field of the header.
	ErrRideCount = errors.New("input: ride count mismatch")

	// ErrRideIndex is returned by Data.Ride for an index outside [0, NRides).
	ErrRideIndex = errors.New("input: ride index out of range")
)
