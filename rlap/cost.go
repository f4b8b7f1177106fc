// SPDX-License-Identifier: MIT

// Package rlap - cost matrix construction.
//
// Purpose:
//   - Turn an R×C maximization weight matrix into the N×N minimization cost
//     matrix the JV engine expects, N = max(R, C).
//   - Keep the square in one row-major buffer (offset = i*N + j) so the engine
//     can scan rows without bounds-checked accessors.

package rlap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fleetmatch/tensor"
)

// CostMatrix is an immutable N×N row-major matrix of float64 costs.
// The engine reads it but never writes it.
type CostMatrix struct {
	n    int       // order of the square
	data []float64 // len == n*n
}

// N returns the order of the square. Complexity: O(1).
func (c *CostMatrix) N() int { return c.n }

// At returns cost[i][j] or ErrOutOfRange-style context on bad indices.
// Complexity: O(1).
func (c *CostMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0, fmt.Errorf("CostMatrix.At(%d,%d): %w", i, j, tensor.ErrOutOfRange)
	}

	return c.data[i*c.n+j], nil
}

// BuildCostMatrix converts weights into the padded minimization square.
// MAIN DESCRIPTION:
//   - cost[i][j] = -weights[i][j] for i<R, j<C ("maximize weight" becomes
//     "minimize cost").
//   - cost[i][j] = 0 when i>=R or j>=C: padding rows/columns stand for
//     non-existent entities and match anything for free.
//
// Implementation:
//   - Stage 1: require a 2-D tensor with R, C >= 1 (ErrBadShape).
//   - Stage 2: allocate N*N zeros, N = max(R, C).
//   - Stage 3: negate the R×C block in row-major order.
//
// Errors:
//   - ErrNilWeights, ErrBadShape.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func BuildCostMatrix(weights *tensor.Tensor[int]) (*CostMatrix, error) {
	rows, cols, err := shapeOf(weights)
	if err != nil {
		return nil, err
	}
	n := max(rows, cols)
	data := make([]float64, n*n)

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			w, _ := weights.At(i, j) // in range by construction
			data[i*n+j] = -float64(w)
		}
	}

	return &CostMatrix{n: n, data: data}, nil
}

// NewCostMatrix wraps an explicit square of minimization costs, for callers
// that already work in cost space. Rows are copied.
//
// Errors: ErrBadShape (empty), ErrNonSquare, ErrNaNInf.
// Complexity: O(N²).
func NewCostMatrix(costs [][]float64) (*CostMatrix, error) {
	n := len(costs)
	if n == 0 {
		return nil, ErrBadShape
	}
	data := make([]float64, 0, n*n)
	var i int
	for i = range costs {
		if len(costs[i]) != n {
			return nil, fmt.Errorf("NewCostMatrix: row %d has %d entries, want %d: %w", i, len(costs[i]), n, ErrNonSquare)
		}
		for _, c := range costs[i] {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("NewCostMatrix: row %d: %w", i, ErrNaNInf)
			}
		}
		data = append(data, costs[i]...)
	}

	return &CostMatrix{n: n, data: data}, nil
}

// shapeOf returns (rows, cols) of a 2-D weight tensor.
func shapeOf(weights *tensor.Tensor[int]) (int, int, error) {
	if weights == nil {
		return 0, 0, ErrNilWeights
	}
	dims := weights.Dims()
	if len(dims) != 2 || dims[0] < 1 || dims[1] < 1 {
		return 0, 0, fmt.Errorf("dims %v: %w", dims, ErrBadShape)
	}

	return dims[0], dims[1], nil
}

// checkWeightRange enforces the float64 exactness envelope.
//
// With W = max|weight| and N = max(R, C), costs lie in [-W, W]. Every
// potential moves by at most one augmenting path length (<= 2·N·W) per
// augmentation and there are at most N augmentations, so 2·N²·W + W bounds
// every value the engine computes. Keeping that below 2^53 makes all
// arithmetic exact and every tie comparison reliable. limit > 0 adds a
// caller-imposed cap on W.
//
// Complexity: O(R·C).
func checkWeightRange(weights *tensor.Tensor[int], n, limit int) error {
	var (
		maxAbs float64
		i      int
	)
	for i = 0; i < weights.Size(); i++ {
		w, _ := weights.AtFlat(i)
		maxAbs = math.Max(maxAbs, math.Abs(float64(w)))
	}
	if limit > 0 && maxAbs > float64(limit) {
		return fmt.Errorf("max |weight| %.0f exceeds limit %d: %w", maxAbs, limit, ErrWeightRange)
	}
	envelope := 2*float64(n)*float64(n)*maxAbs + maxAbs
	if envelope > exactFloatLimit {
		return fmt.Errorf("max |weight| %.0f with N=%d exceeds exact float64 range: %w", maxAbs, n, ErrWeightRange)
	}

	return nil
}
