// Package fleetmatch pairs vehicles with rides by solving rectangular linear
// assignment problems exactly.
//
// 🚀 What is fleetmatch?
//
//	A small pipeline around a Jonker–Volgenant solver:
//		• tensor/  : dense row-major n-dimensional arrays for weights and results
//		• rlap/    : maximum-weight one-to-one pairing over an R×C weight matrix
//		• input/   : problem-file reader (grid, fleet, bonus, ride table)
//		• output/  : parent-linked result tree and per-vehicle result files
//		• logging/ : structured Logger interface, slog adapter, no-op logger
//
// ✨ Guarantees:
//
//   - Optimal: the pairing maximizes the summed weight, with a dual
//     certificate available through rlap.Certify / rlap.WithCertify.
//   - Deterministic: identical input gives identical pairs, ties included.
//   - Exact: integer weights are checked against the float64 exactness range
//     before solving; out-of-range input is rejected, never approximated.
//   - Re-entrant: every Solve owns its buffers; calls may run concurrently.
//
// ⚙️ Usage:
//
//	data, _ := input.Read("problem.in")
//	weights := buildWeights(data)            // R×C tensor.Tensor[int]
//	res, _ := rlap.Solve(weights)
//	node, _ := output.NewNode(nil, res.Tensor())
//	_ = node.WriteToFile("problem.out", data.FleetSize)
//
// The package itself exports nothing; it documents the module layout.
package fleetmatch
