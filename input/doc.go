// Package input reads fleet/ride problem files.
//
// A problem file starts with one header line of six integers
//
//	rows cols fleetSize nRides bonus maxTime
//
// followed by exactly nRides lines of six integers each
//
//	startRow startCol finishRow finishCol earliestStart latestFinish
//
// Fields are separated by any whitespace; trailing blanks and empty lines are
// ignored. The ride table is kept as an nRides×6 tensor so it can be fed to
// weight builders without copying, with Ride giving a typed view of one row.
package input
