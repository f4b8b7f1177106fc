package rlap_test

import (
	"testing"

	"github.com/katalvlaran/fleetmatch/rlap"
	"github.com/katalvlaran/fleetmatch/tensor"
	"github.com/stretchr/testify/require"
)

func mustCost(t *testing.T, rows [][]float64) *rlap.CostMatrix {
	t.Helper()
	c, err := rlap.NewCostMatrix(rows)
	require.NoError(t, err)

	return c
}

func mustWeightsCost(t *testing.T, w [][]int) *rlap.CostMatrix {
	t.Helper()
	flat := make([]int, 0, len(w)*len(w[0]))
	for _, row := range w {
		flat = append(flat, row...)
	}
	wt, err := tensor.FromSlice(flat, len(w), len(w[0]))
	require.NoError(t, err)
	c, err := rlap.BuildCostMatrix(wt)
	require.NoError(t, err)

	return c
}

// TestJV_TallScenario pins the full solution of the padded 3×2 example:
// column reduction assigns rows 0 and 1, row 2 is repaired by one strict
// augmenting row reduction step that lowers v[2] from 0 to -1.
func TestJV_TallScenario(t *testing.T) {
	c := mustWeightsCost(t, [][]int{{3, 1}, {1, 3}, {2, 2}})

	sol := rlap.JV(c)
	require.Equal(t, []int{0, 1, 2}, sol.RowSol)
	require.Equal(t, []int{0, 1, 2}, sol.ColSol)
	require.Equal(t, []float64{-3, -3, -1}, sol.V)
	require.Equal(t, []float64{0, 0, 1}, sol.U)
	require.NoError(t, rlap.Certify(c, sol, 0))
}

// TestJV_SquareCrossPairing checks the reduction-transfer path on a 2×2.
func TestJV_SquareCrossPairing(t *testing.T) {
	c := mustWeightsCost(t, [][]int{{1, 2}, {2, 1}})

	sol := rlap.JV(c)
	require.Equal(t, []int{1, 0}, sol.RowSol)
	require.Equal(t, []int{1, 0}, sol.ColSol)
	require.Equal(t, []float64{-4, -3}, sol.V)
	require.Equal(t, []float64{1, 2}, sol.U)
	require.Equal(t, -4.0, rlap.Cost(c, sol.RowSol))
}

// TestJV_AllZeroTieBreak locks the tie-break order: column reduction gives
// every column to row 0 (last scanned column 0 cannot steal on a tie, so row 0
// keeps column 2), then rows 1 and 2 take columns 0 and 1 during the first
// augmenting row reduction pass.
func TestJV_AllZeroTieBreak(t *testing.T) {
	c := mustCost(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	var rep int
	for rep = 0; rep < 3; rep++ {
		sol := rlap.JV(c)
		require.Equal(t, []int{2, 0, 1}, sol.RowSol)
		require.Equal(t, []int{1, 2, 0}, sol.ColSol)
	}
}

// TestJV_IdenticalRowsReachAugmentation makes two rows fight over the same
// column through both row-reduction passes so the last one is placed by the
// shortest augmenting path phase.
func TestJV_IdenticalRowsReachAugmentation(t *testing.T) {
	c := mustCost(t, [][]float64{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}})

	sol := rlap.JV(c)
	require.Equal(t, []int{0, 1, 2}, sol.RowSol)
	require.Equal(t, []float64{1, 2, 3}, sol.V)
	require.NoError(t, rlap.Certify(c, sol, 0))
}

// TestJV_Classic4x4 is the textbook instance with unique optimum 13.
func TestJV_Classic4x4(t *testing.T) {
	c := mustCost(t, [][]float64{
		{9, 2, 7, 8},
		{6, 4, 3, 7},
		{5, 8, 1, 8},
		{7, 6, 9, 4},
	})

	sol := rlap.JV(c)
	require.Equal(t, []int{1, 0, 2, 3}, sol.RowSol)
	require.Equal(t, 13.0, rlap.Cost(c, sol.RowSol))
	require.Equal(t, 13.0, rlap.DualBound(sol))
	require.NoError(t, rlap.Certify(c, sol, 0))
}

// TestJV_SingleCell covers N == 1, where reduction transfer has no alternative column.
func TestJV_SingleCell(t *testing.T) {
	c := mustCost(t, [][]float64{{-7}})

	sol := rlap.JV(c)
	require.Equal(t, []int{0}, sol.RowSol)
	require.Equal(t, []int{0}, sol.ColSol)
	require.Equal(t, []float64{-7}, sol.V)
	require.Equal(t, []float64{0}, sol.U)
	require.NoError(t, rlap.Certify(c, sol, 0))
}

// TestJV_DoesNotMutateCost ensures the engine only reads the cost matrix.
func TestJV_DoesNotMutateCost(t *testing.T) {
	rows := [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}
	c := mustCost(t, rows)

	_ = rlap.JV(c)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			got, _ := c.At(i, j)
			require.Equal(t, rows[i][j], got)
		}
	}
}
