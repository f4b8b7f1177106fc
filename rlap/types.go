// Package rlap - result and solution types.
package rlap

// Unassigned marks a column with no row in ColSol before convergence.
const Unassigned = -1

// Pair is one chosen pairing of the original rectangular problem.
// Row indexes the weight matrix's first axis, Col its second.
type Pair struct {
	Row int
	Col int
}

// Solution is the raw output of the JV engine over the padded N×N square.
//
// After JV returns:
//   - RowSol[i] is the column of row i and ColSol[RowSol[i]] == i for all i.
//   - U and V are dual potentials with Cost(i,j) - U[i] - V[j] >= 0 for every
//     (i, j), and == 0 when RowSol[i] == j.
type Solution struct {
	RowSol []int
	ColSol []int
	U      []float64
	V      []float64
}

// Result is what Solve returns for a rectangular weight matrix.
type Result struct {
	// Pairs holds exactly min(rows, cols) pairings in extraction order.
	Pairs []Pair

	// Total is the sum of the original weights over Pairs.
	Total int

	// Rows and Cols are the dimensions of the original weight matrix.
	Rows, Cols int

	// Solution is the engine output over the padded square.
	Solution Solution
}
