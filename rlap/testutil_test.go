// Package rlap_test holds shared fixtures for the solver tests: random
// weight matrices, a brute-force oracle and matching sanity checks.
package rlap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fleetmatch/rlap"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

// randomWeights returns an r×c matrix with entries in [lo, hi].
func randomWeights(rng *rand.Rand, r, c, lo, hi int) [][]int {
	w := make([][]int, r)
	var i, j int
	for i = 0; i < r; i++ {
		w[i] = make([]int, c)
		for j = 0; j < c; j++ {
			w[i][j] = lo + rng.Intn(hi-lo+1)
		}
	}

	return w
}

// bruteForceMax enumerates every matching of the smaller side into the larger
// one and returns the maximum total weight.
func bruteForceMax(w [][]int) int {
	r, c := len(w), len(w[0])
	best := 0
	first := true
	if r <= c {
		for _, perm := range combin.Permutations(c, r) {
			sum := 0
			for i, j := range perm {
				sum += w[i][j]
			}
			if first || sum > best {
				best, first = sum, false
			}
		}

		return best
	}
	for _, perm := range combin.Permutations(r, c) {
		sum := 0
		for j, i := range perm {
			sum += w[i][j]
		}
		if first || sum > best {
			best, first = sum, false
		}
	}

	return best
}

// requireSoundPairs checks the extractor contract: min(r,c) pairs, indices in
// range, no index repeated on either side, Total consistent with w.
func requireSoundPairs(t *testing.T, w [][]int, res *rlap.Result) {
	t.Helper()
	r, c := len(w), len(w[0])
	require.Len(t, res.Pairs, min(r, c))

	seenRow := make(map[int]bool, len(res.Pairs))
	seenCol := make(map[int]bool, len(res.Pairs))
	sum := 0
	for _, p := range res.Pairs {
		require.GreaterOrEqual(t, p.Row, 0)
		require.Less(t, p.Row, r)
		require.GreaterOrEqual(t, p.Col, 0)
		require.Less(t, p.Col, c)
		require.False(t, seenRow[p.Row], "row %d repeated in %v", p.Row, res.Pairs)
		require.False(t, seenCol[p.Col], "col %d repeated in %v", p.Col, res.Pairs)
		seenRow[p.Row], seenCol[p.Col] = true, true
		sum += w[p.Row][p.Col]
	}
	require.Equal(t, sum, res.Total)
}

// requireBijection checks colsol[rowsol[i]] == i and rowsol[colsol[j]] == j.
func requireBijection(t *testing.T, sol rlap.Solution) {
	t.Helper()
	n := len(sol.RowSol)
	require.Len(t, sol.ColSol, n)
	var i, j int
	for i = 0; i < n; i++ {
		require.Equal(t, i, sol.ColSol[sol.RowSol[i]], "rowsol=%v colsol=%v", sol.RowSol, sol.ColSol)
	}
	for j = 0; j < n; j++ {
		require.Equal(t, j, sol.RowSol[sol.ColSol[j]], "rowsol=%v colsol=%v", sol.RowSol, sol.ColSol)
	}
}
