// Package rlap - optimality certificate checks.
package rlap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Certify verifies that sol is a perfect matching on cost and that its
// potentials prove it optimal.
//
// Checks, in order:
//  1. len(RowSol) == len(ColSol) == len(U) == len(V) == N.
//  2. RowSol and ColSol are mutually inverse permutations (ErrNotBijection).
//  3. cost[i][j] - U[i] - V[j] >= -eps for all (i, j) and
//     |cost[i][RowSol[i]] - U[i] - V[RowSol[i]]| <= eps (ErrDualInfeasible).
//
// Complexity: O(N²).
func Certify(cost *CostMatrix, sol Solution, eps float64) error {
	n := cost.n
	if len(sol.RowSol) != n || len(sol.ColSol) != n || len(sol.U) != n || len(sol.V) != n {
		return fmt.Errorf("Certify: solution length mismatch for N=%d: %w", n, ErrNotBijection)
	}

	var i, j int
	for i = 0; i < n; i++ {
		j = sol.RowSol[i]
		if j < 0 || j >= n || sol.ColSol[j] != i {
			return fmt.Errorf("Certify: row %d -> col %d: %w", i, j, ErrNotBijection)
		}
	}
	for j = 0; j < n; j++ {
		i = sol.ColSol[j]
		if i < 0 || i >= n || sol.RowSol[i] != j {
			return fmt.Errorf("Certify: col %d -> row %d: %w", j, i, ErrNotBijection)
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			r := cost.data[i*n+j] - sol.U[i] - sol.V[j]
			if r < -eps {
				return fmt.Errorf("Certify: reduced cost (%d,%d)=%g: %w", i, j, r, ErrDualInfeasible)
			}
			if sol.RowSol[i] == j && math.Abs(r) > eps {
				return fmt.Errorf("Certify: matched pair (%d,%d) has slack %g: %w", i, j, r, ErrDualInfeasible)
			}
		}
	}

	return nil
}

// Cost returns the total minimization cost of rowsol on cost.
// rowsol must be a valid row solution of length N.
// Complexity: O(N).
func Cost(cost *CostMatrix, rowsol []int) float64 {
	var (
		total float64
		i     int
	)
	for i = range rowsol {
		total += cost.data[i*cost.n+rowsol[i]]
	}

	return total
}

// DualBound returns sum(U) + sum(V), the dual objective of sol.
// For any feasible potentials it is a lower bound on the cost of every
// perfect matching; after JV it equals Cost(cost, sol.RowSol).
// Complexity: O(N).
func DualBound(sol Solution) float64 {
	return floats.Sum(sol.U) + floats.Sum(sol.V)
}
