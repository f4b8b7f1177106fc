// Package rlap solves the Rectangular Linear Assignment Problem with the
// Jonker–Volgenant shortest augmenting path algorithm.
//
// 🚀 What is RLAP?
//
//	Given an R×C matrix of integer weights between two sets, pick a
//	one-to-one pairing of every member of the smaller set with a distinct
//	member of the larger set so that the total weight is maximal. Typical
//	use: match a fleet of vehicles to ride requests for one step of a search.
//
// ✨ Pipeline:
//   - BuildCostMatrix : negate weights and zero-pad to N×N, N = max(R, C).
//   - JV              : optimal perfect matching on the square + dual potentials.
//   - Extract         : project back to exactly min(R, C) pairs.
//   - Certify         : optional check of bijection and complementary slackness.
//
// ⚙️ Usage:
//
//	res, err := rlap.SolveMatrix([][]int{{3, 1}, {1, 3}, {2, 2}})
//	// res.Pairs == [{0 0} {1 1}], res.Total == 6
//
//	node, _ := output.NewNode(parent, res.Tensor())
//
// Determinism:
//
//	Column reduction scans columns from N-1 down to 0 and the row-reduction
//	tie-break trades an occupied minimum column for the second minimum.
//	Both are fixed, so equal-cost inputs always yield the same pairing.
//
// Performance:
//
//   - Time:   O(N³) worst case
//   - Memory: O(N²) cost matrix + O(N) scratch per call
package rlap
