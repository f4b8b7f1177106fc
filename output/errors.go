// SPDX-License-Identifier: MIT
// Package output: sentinel error set.

package output

import "errors"

var (
	// ErrBadShape is returned by NewNode when the value is not a K×2 matrix.
	ErrBadShape = errors.New("output: assignment value must be K×2")

	// ErrVehicleRange is returned when a vehicle index falls outside
	// [0, fleetSize), or when fleetSize itself is negative.
	ErrVehicleRange = errors.New("output: vehicle index out of range")

	// ErrNegativeRide is returned by NewNode for a negative ride index.
	ErrNegativeRide = errors.New("output: negative ride index")
)
