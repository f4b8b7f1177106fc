// Package rlap - projection of the square solution onto the rectangle.
package rlap

// Extract projects a padded-square solution back onto the original rows×cols
// problem and returns exactly min(rows, cols) pairs.
//
//   - rows > cols: one pair per real column, (ColSol[j], j) for j < cols.
//   - rows <= cols: one pair per real row, (i, RowSol[i]) for i < rows.
//
// Iterating over the smaller side only means pairs with padding indices are
// never emitted: the larger side has no padding, so every partner is real.
//
// Complexity: O(min(rows, cols)).
func Extract(sol Solution, rows, cols int) []Pair {
	if rows > cols {
		pairs := make([]Pair, cols)
		var j int
		for j = 0; j < cols; j++ {
			pairs[j] = Pair{Row: sol.ColSol[j], Col: j}
		}

		return pairs
	}

	pairs := make([]Pair, rows)
	var i int
	for i = 0; i < rows; i++ {
		pairs[i] = Pair{Row: i, Col: sol.RowSol[i]}
	}

	return pairs
}
