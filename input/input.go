// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fleetmatch/tensor"
)

// fieldsPerLine is the width of the header and of every ride line.
const fieldsPerLine = 6

// maxPreallocRides caps the ride buffer reserved from the header count;
// larger tables grow as lines are read.
const maxPreallocRides = 1 << 16

// Ride column offsets inside Data.Rides.
const (
	colStartRow = iota
	colStartCol
	colFinishRow
	colFinishCol
	colEarliestStart
	colLatestFinish
)

// Data is a parsed problem file.
type Data struct {
	Rows      int // grid rows
	Cols      int // grid columns
	FleetSize int // number of vehicles
	NRides    int // number of rides
	Bonus     int // bonus for starting a ride on time
	MaxTime   int // simulation steps

	// Rides is NRides×6, one row per ride in file order. Nil when NRides == 0.
	Rides *tensor.Tensor[int]
}

// Ride is a typed view of one row of Data.Rides.
type Ride struct {
	StartRow, StartCol   int
	FinishRow, FinishCol int
	EarliestStart        int
	LatestFinish         int
}

// Distance returns the Manhattan length of the ride.
func (r Ride) Distance() int {
	return abs(r.FinishRow-r.StartRow) + abs(r.FinishCol-r.StartCol)
}

// Read opens path and parses it. I/O errors are wrapped with the path.
func Read(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input.Read(%q): %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("input.Read(%q): %w", path, err)
	}

	return d, nil
}

// Parse reads a problem from r.
// MAIN DESCRIPTION:
//   - The first non-empty line is the header; the next NRides non-empty
//     lines are rides. Anything after them is an error.
//
// Errors:
//   - ErrMalformedHeader, ErrMalformedRide, ErrRideCount (with line numbers).
//   - Any error from r.
//
// Complexity:
//   - Time O(NRides), Space O(NRides).
func Parse(r io.Reader) (*Data, error) {
	sc := bufio.NewScanner(r)
	line := 0

	next := func() ([]string, bool) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, true
			}
		}

		return nil, false
	}

	fields, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		return nil, fmt.Errorf("empty input: %w", ErrMalformedHeader)
	}
	header, err := parseInts(fields)
	if err != nil {
		return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedHeader)
	}
	d := &Data{
		Rows:      header[0],
		Cols:      header[1],
		FleetSize: header[2],
		NRides:    header[3],
		Bonus:     header[4],
		MaxTime:   header[5],
	}

	if d.NRides > math.MaxInt/fieldsPerLine {
		return nil, fmt.Errorf("line %d: ride count %d too large: %w", line, d.NRides, ErrMalformedHeader)
	}

	if d.NRides > 0 {
		data := make([]int, 0, min(d.NRides, maxPreallocRides)*fieldsPerLine)
		var k int
		for k = 0; k < d.NRides; k++ {
			fields, ok = next()
			if !ok {
				if err = sc.Err(); err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}

				return nil, fmt.Errorf("got %d rides, header says %d: %w", k, d.NRides, ErrRideCount)
			}
			ride, err := parseInts(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedRide)
			}
			data = append(data, ride...)
		}
		if d.Rides, err = tensor.FromSlice(data, d.NRides, fieldsPerLine); err != nil {
			return nil, err
		}
	}

	if _, ok = next(); ok {
		return nil, fmt.Errorf("line %d: more than %d rides: %w", line, d.NRides, ErrRideCount)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	return d, nil
}

// Ride returns ride i, or ErrRideIndex.
func (d *Data) Ride(i int) (Ride, error) {
	if i < 0 || i >= d.NRides {
		return Ride{}, fmt.Errorf("Data.Ride(%d): %w", i, ErrRideIndex)
	}
	at := func(col int) int {
		v, _ := d.Rides.At(i, col) // in range by construction
		return v
	}

	return Ride{
		StartRow:      at(colStartRow),
		StartCol:      at(colStartCol),
		FinishRow:     at(colFinishRow),
		FinishCol:     at(colFinishCol),
		EarliestStart: at(colEarliestStart),
		LatestFinish:  at(colLatestFinish),
	}, nil
}

// String renders the problem summary, one "label: value" per line.
func (d *Data) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "number of rides: %d\n", d.NRides)
	fmt.Fprintf(&b, "map: (%d, %d)\n", d.Rows, d.Cols)
	fmt.Fprintf(&b, "number of cars: %d\n", d.FleetSize)
	fmt.Fprintf(&b, "bonus: %d\n", d.Bonus)
	fmt.Fprintf(&b, "simulation steps: %d\n", d.MaxTime)

	return b.String()
}

// parseInts converts exactly fieldsPerLine non-negative decimal fields.
func parseInts(fields []string) ([]int, error) {
	if len(fields) != fieldsPerLine {
		return nil, fmt.Errorf("%d fields, want %d", len(fields), fieldsPerLine)
	}
	out := make([]int, fieldsPerLine)
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not an integer", k+1, f)
		}
		if v < 0 {
			return nil, fmt.Errorf("field %d: negative value %d", k+1, v)
		}
		out[k] = v
	}

	return out, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
