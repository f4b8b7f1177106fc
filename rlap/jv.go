// SPDX-License-Identifier: MIT

// Package rlap - Jonker–Volgenant shortest augmenting path engine.
//
// JV solves the square linear assignment problem (minimize total cost over
// perfect matchings) in four phases that share the column potentials v:
//
//  1. Column reduction      : v[j] = min_i cost[i][j], columns scanned N-1..0.
//  2. Reduction transfer    : rows matched exactly once push slack into v.
//  3. Augmenting row reduction (two passes) : cheap auction-like repairs.
//  4. Augmentation          : Dijkstra over reduced costs per remaining free row.
//
// Scan orders and tie-breaks below are part of the observable contract: they
// decide which optimum is returned when several exist.
//
// Complexity: O(N³) time worst case, O(N) scratch beyond the cost matrix.

package rlap

import (
	"math"

	"github.com/katalvlaran/fleetmatch/logging"
)

// jvState holds the per-call scratch buffers. Nothing in it outlives jv.
type jvState struct {
	n       int
	a       []float64 // cost matrix, row-major, read only
	rowsol  []int     // column assigned to row
	colsol  []int     // row assigned to column, Unassigned when none
	v       []float64 // column potentials
	free    []int     // unassigned rows
	numfree int       // len of the live prefix of free
	collist []int     // columns partitioned into ready | scan | todo
	matches []int     // times a row was a column minimum in phase 1
	d       []float64 // reduced path distance to each column
	pred    []int     // row predecessor of each column on the path
	log     logging.Logger
}

// JV runs the Jonker–Volgenant algorithm on cost and returns an optimal
// row/column bijection together with its dual potentials.
// MAIN DESCRIPTION:
//   - Deterministic: identical input gives identical output, ties included.
//   - Never fails; cost must be a valid N×N matrix with N >= 1.
//
// Returns:
//   - Solution with RowSol/ColSol a perfect bijection over {0..N-1} and
//     U[i] = cost[i][RowSol[i]] - V[RowSol[i]].
//
// Complexity:
//   - Time O(N³) worst case, Space O(N).
func JV(cost *CostMatrix) Solution {
	return jv(cost, logging.NewNop())
}

// jv is JV with a logger for per-phase Debug records.
func jv(cost *CostMatrix, log logging.Logger) Solution {
	n := cost.n
	s := &jvState{
		n:       n,
		a:       cost.data,
		rowsol:  make([]int, n),
		colsol:  make([]int, n),
		v:       make([]float64, n),
		free:    make([]int, n),
		collist: make([]int, n),
		matches: make([]int, n),
		d:       make([]float64, n),
		pred:    make([]int, n),
		log:     log,
	}
	var i int
	for i = 0; i < n; i++ {
		s.rowsol[i] = Unassigned
	}

	s.columnReduction()
	s.reductionTransfer()
	log.Debug("rlap: reduction done", "n", n, "free", s.numfree)

	s.augmentingRowReduction()
	s.augmentingRowReduction()

	augmented := s.numfree
	s.augment()
	log.Debug("rlap: augmentation done", "n", n, "augmentingPaths", augmented)

	u := make([]float64, n)
	for i = 0; i < n; i++ {
		j := s.rowsol[i]
		u[i] = s.a[i*n+j] - s.v[j]
	}

	return Solution{RowSol: s.rowsol, ColSol: s.colsol, U: u, V: s.v}
}

// columnReduction sets v[j] to the column minimum and tentatively assigns
// each column to its minimizing row.
//
// Columns are scanned in descending order; within a column the first row
// holding the strict minimum wins. When a row is already taken, the newer
// column steals it only if its minimum is strictly smaller.
func (s *jvState) columnReduction() {
	n, a := s.n, s.a
	var i, j int
	for j = n - 1; j >= 0; j-- {
		imin := 0
		minCost := a[j]
		for i = 1; i < n; i++ {
			if a[i*n+j] < minCost {
				minCost = a[i*n+j]
				imin = i
			}
		}
		s.v[j] = minCost

		s.matches[imin]++
		switch {
		case s.matches[imin] == 1:
			s.rowsol[imin] = j
			s.colsol[j] = imin
		case s.v[j] < s.v[s.rowsol[imin]]:
			j1 := s.rowsol[imin]
			s.rowsol[imin] = j
			s.colsol[j] = imin
			s.colsol[j1] = Unassigned
		default:
			s.colsol[j] = Unassigned
		}
	}
}

// reductionTransfer builds the free-row list and, for every row matched
// exactly once, lowers the price of its column by the row's best alternative
// reduced cost. Rows matched twice or more are left as phase 1 resolved them.
func (s *jvState) reductionTransfer() {
	n, a := s.n, s.a
	var i, j int
	for i = 0; i < n; i++ {
		switch {
		case s.matches[i] == 0:
			s.free[s.numfree] = i
			s.numfree++
		case s.matches[i] == 1 && n > 1:
			// n == 1 has no alternative column; the minimum would stay +Inf.
			j1 := s.rowsol[i]
			minCost := math.Inf(1)
			for j = 0; j < n; j++ {
				if j != j1 && a[i*n+j]-s.v[j] < minCost {
					minCost = a[i*n+j] - s.v[j]
				}
			}
			s.v[j1] -= minCost
		}
	}
}

// augmentingRowReduction runs one pass over the current free rows.
//
// Each free row takes its cheapest column j1. With a strict minimum the price
// of j1 is lowered to the second minimum and an evicted occupant is retried
// immediately; on a tie an occupied j1 is traded for the second-minimum
// column and any evicted row waits for the next pass.
func (s *jvState) augmentingRowReduction() {
	n, a := s.n, s.a
	prvnumfree := s.numfree
	s.numfree = 0

	k := 0
	for k < prvnumfree {
		i := s.free[k]
		k++

		umin := a[i*n] - s.v[0]
		usubmin := math.Inf(1)
		j1, j2 := 0, 0
		var j int
		for j = 1; j < n; j++ {
			h := a[i*n+j] - s.v[j]
			if h < usubmin {
				if h >= umin {
					usubmin = h
					j2 = j
				} else {
					usubmin = umin
					umin = h
					j2 = j1
					j1 = j
				}
			}
		}

		i0 := s.colsol[j1]
		strict := umin < usubmin
		if strict {
			s.v[j1] -= usubmin - umin
		} else if i0 != Unassigned {
			j1 = j2
			i0 = s.colsol[j2]
		}

		s.rowsol[i] = j1
		s.colsol[j1] = i

		if i0 != Unassigned {
			if strict {
				// continue the chain with the evicted row at the same slot
				k--
				s.free[k] = i0
			} else {
				s.free[s.numfree] = i0
				s.numfree++
			}
		}
	}
	s.log.Debug("rlap: augmenting row reduction pass", "free", s.numfree)
}

// augment grows one shortest augmenting path per remaining free row.
//
// collist is partitioned as [0,low) ready, [low,up) at the current minimum
// distance and waiting to be scanned, [up,n) not yet reached at the minimum.
// The search stops at the first unassigned column found at the minimum.
// Prices of ready columns are then raised to keep reduced costs
// non-negative, and assignments are flipped back along pred to freerow.
func (s *jvState) augment() {
	n, a := s.n, s.a
	colsol, rowsol, v, d, pred, collist := s.colsol, s.rowsol, s.v, s.d, s.pred, s.collist

	var f, j, k int
	for f = 0; f < s.numfree; f++ {
		freerow := s.free[f]

		for j = n - 1; j >= 0; j-- {
			d[j] = a[freerow*n+j] - v[j]
			pred[j] = freerow
			collist[j] = j
		}

		var (
			low, up, last int
			endofpath     int
			minDist       float64
			found         bool
		)
		for !found {
			if up == low {
				last = low - 1

				// collect every todo column at the new minimum distance into [low,up)
				minDist = d[collist[up]]
				up++
				for k = up; k < n; k++ {
					j = collist[k]
					h := d[j]
					if h <= minDist {
						if h < minDist {
							up = low
							minDist = h
						}
						collist[k] = collist[up]
						collist[up] = j
						up++
					}
				}

				for k = low; k < up; k++ {
					if colsol[collist[k]] == Unassigned {
						endofpath = collist[k]
						found = true
						break
					}
				}
			}

			if !found {
				// scan the next minimum column and relax through its row
				j1 := collist[low]
				low++
				i := colsol[j1]
				h := a[i*n+j1] - v[j1] - minDist

				for k = up; k < n; k++ {
					j = collist[k]
					v2 := a[i*n+j] - v[j] - h
					if v2 < d[j] {
						pred[j] = i
						if v2 == minDist {
							if colsol[j] == Unassigned {
								endofpath = j
								found = true
								break
							}
							collist[k] = collist[up]
							collist[up] = j
							up++
						}
						d[j] = v2
					}
				}
			}
		}

		for k = last; k >= 0; k-- {
			j1 := collist[k]
			v[j1] += d[j1] - minDist
		}

		for {
			i := pred[endofpath]
			colsol[endofpath] = i
			j1 := endofpath
			endofpath = rowsol[i]
			rowsol[i] = j1
			if i == freerow {
				break
			}
		}
	}
}
