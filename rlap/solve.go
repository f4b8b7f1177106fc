// SPDX-License-Identifier: MIT

// Package rlap - entry points.
//
// Solve runs the three stages in order and returns the rectangular result:
//
//	weights (R×C) ──BuildCostMatrix──▶ cost (N×N) ──JV──▶ Solution ──Extract──▶ Pairs
//
// Nothing is cached between calls: every call owns its cost matrix and
// scratch buffers, so separate calls may run concurrently.

package rlap

import (
	"fmt"

	"github.com/katalvlaran/fleetmatch/tensor"
)

// Solve finds a maximum-weight one-to-one pairing between the smaller side of
// weights and a subset of the larger side.
// MAIN DESCRIPTION:
//   - weights is an R×C integer tensor, R, C >= 1.
//   - The result holds exactly min(R, C) pairs; each index of the smaller
//     side appears once, indices of the larger side at most once.
//
// Implementation:
//   - Stage 1: validate shape and the weight range (ErrBadShape, ErrWeightRange).
//   - Stage 2: BuildCostMatrix (negate + zero padding).
//   - Stage 3: JV over the N×N square.
//   - Stage 4: optional Certify (WithCertify).
//   - Stage 5: Extract and total the original weights.
//
// Errors:
//   - ErrNilWeights, ErrBadShape, ErrWeightRange.
//   - ErrNotBijection, ErrDualInfeasible (only with WithCertify).
//
// Complexity:
//   - Time O(N³) worst case, Space O(N²).
func Solve(weights *tensor.Tensor[int], opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	rows, cols, err := shapeOf(weights)
	if err != nil {
		return nil, err
	}
	n := max(rows, cols)
	if err = checkWeightRange(weights, n, o.maxWeight); err != nil {
		return nil, err
	}

	cost, err := BuildCostMatrix(weights)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("rlap: solve", "rows", rows, "cols", cols, "n", n)
	sol := jv(cost, o.logger)

	if o.certify {
		if err = Certify(cost, sol, o.eps); err != nil {
			return nil, err
		}
	}

	pairs := Extract(sol, rows, cols)
	total := 0
	for _, p := range pairs {
		w, _ := weights.At(p.Row, p.Col)
		total += w
	}
	o.logger.Debug("rlap: solved", "pairs", len(pairs), "total", total)

	return &Result{
		Pairs:    pairs,
		Total:    total,
		Rows:     rows,
		Cols:     cols,
		Solution: sol,
	}, nil
}

// SolveMatrix is Solve for a [][]int weight matrix.
// Errors: ErrBadShape (no rows or empty rows), ErrRaggedRows, plus Solve's.
func SolveMatrix(weights [][]int, opts ...Option) (*Result, error) {
	rows := len(weights)
	if rows == 0 || len(weights[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(weights[0])

	flat := make([]int, 0, rows*cols)
	var i int
	for i = range weights {
		if len(weights[i]) != cols {
			return nil, fmt.Errorf("SolveMatrix: row %d has %d entries, want %d: %w", i, len(weights[i]), cols, ErrRaggedRows)
		}
		flat = append(flat, weights[i]...)
	}
	w, err := tensor.FromSlice(flat, rows, cols)
	if err != nil {
		return nil, err
	}

	return Solve(w, opts...)
}

// Tensor renders the pairs as a K×2 index matrix, row k = (Pairs[k].Row,
// Pairs[k].Col). This is the shape the output tree writer consumes.
// Complexity: O(K).
func (r *Result) Tensor() *tensor.Tensor[int] {
	flat := make([]int, 0, 2*len(r.Pairs))
	for _, p := range r.Pairs {
		flat = append(flat, p.Row, p.Col)
	}
	t, _ := tensor.FromSlice(flat, len(r.Pairs), 2) // shape matches by construction

	return t
}
