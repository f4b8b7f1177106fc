// SPDX-License-Identifier: MIT
// Package rlap: sentinel error set.
// Every public entry point returns these sentinels, possibly wrapped with
// call-site context via %w; tests and callers check them with errors.Is.
// The JV engine itself never fails: it assumes a well-formed N×N cost matrix
// and all validation happens before it runs.

package rlap

import "errors"

var (
	// ErrNilWeights indicates that a nil weight tensor was passed to Solve.
	ErrNilWeights = errors.New("rlap: nil weight matrix")

	// ErrBadShape is returned when the weight tensor is not a 2-D matrix with
	// at least one row and one column.
	ErrBadShape = errors.New("rlap: weight matrix must be 2-D with rows, cols >= 1")

	// ErrRaggedRows is returned by SolveMatrix when rows differ in length.
	ErrRaggedRows = errors.New("rlap: weight rows have different lengths")

	// ErrNonSquare is returned by NewCostMatrix for a non-square input.
	ErrNonSquare = errors.New("rlap: cost matrix is not square")

	// ErrNaNInf is returned by NewCostMatrix when a cost is NaN or ±Inf.
	ErrNaNInf = errors.New("rlap: NaN or Inf cost")

	// ErrWeightRange is returned when the weight magnitude is too large for
	// the engine's float64 arithmetic to stay exact, or exceeds WithMaxWeight.
	ErrWeightRange = errors.New("rlap: weight magnitude out of range")

	// ErrNotBijection is returned by Certify when rowsol/colsol are not
	// mutually inverse permutations of {0..N-1}.
	ErrNotBijection = errors.New("rlap: row and column solutions are not a bijection")

	// ErrDualInfeasible is returned by Certify when a reduced cost is negative
	// or a matched pair has a non-zero reduced cost.
	ErrDualInfeasible = errors.New("rlap: potentials violate dual feasibility")
)
