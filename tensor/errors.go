// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every public accessor returns one of these sentinels (possibly wrapped with
// call-site context via %w); callers match them with errors.Is.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is negative or when
	// a backing slice does not match the product of the dimensions.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that a flat or per-axis index is outside bounds.
	// Public indexers (At/Set/AtFlat/SetFlat) return this, never panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrRankMismatch indicates that the number of indices passed to At/Set
	// differs from the tensor rank.
	ErrRankMismatch = errors.New("tensor: rank mismatch")

	// ErrNilTensor indicates that a nil *Tensor was used.
	ErrNilTensor = errors.New("tensor: nil receiver")
)
