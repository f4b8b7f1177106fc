// Package output turns a chain of assignment rounds into a result file.
//
// Each Node keeps the (vehicle, ride) pairs chosen at one level of a search
// and a pointer to the level above. The file written from a leaf has one line
// per vehicle:
//
//	<number of rides> <ride> <ride> ...
//
// with rides listed root first. A K×2 tensor from rlap.Result.Tensor can be
// used as a node value directly when rows are vehicles and columns are rides.
package output
