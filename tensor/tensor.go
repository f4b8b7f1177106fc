// SPDX-License-Identifier: MIT

// Package tensor - dense row-major storage & safe accessors.
//
// Purpose:
//   - Provide a contiguous buffer with the explicit offset formula
//     ((i0·d1 + i1)·d2 + …)·dk + ik.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/NewFilled/FromSlice: O(size); At/Set: O(rank); AtFlat/SetFlat: O(1);
//     Clone: O(size); Share: O(rank).

package tensor

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxAtFlat  = "AtFlat"
	ctxSetFlat = "SetFlat"
	ctxDim     = "Dim"
)

// MaxShownEntries caps the number of elements rendered by String.
const MaxShownEntries = 20

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
	_fmtMore  = "..."
)

// Number is the set of element types a Tensor may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// tensorErrorf wraps a sentinel with a uniform Tensor context and the offending indices.
func tensorErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Tensor.%s(%v): %w", method, idx, err)
}

// Tensor is a dense n-dimensional array.
//   - dims holds the extent of every axis (nil for the empty tensor).
//   - data is a flat buffer of length prod(dims) in row-major order.
//
// Two handles produced by Share alias the same data; writes through one are
// visible through the other. Clone never aliases.
type Tensor[T Number] struct {
	dims []int // per-axis extents; nil when size == 0
	data []T   // row-major storage (len == product of dims)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Tensor[int])(nil)

// New creates a zero-filled tensor with the given dimensions.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation.
//
// Implementation:
//   - Stage 1: reject negative dims (ErrBadShape).
//   - Stage 2: compute size = prod(dims); size 0 collapses to the empty tensor.
//   - Stage 3: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Any zero extent yields a tensor with Size()==0 and Dims()==nil, so
//     "empty" has exactly one representation.
//
// Errors:
//   - ErrBadShape on a negative extent.
//
// Complexity:
//   - Time O(size), Space O(size).
func New[T Number](dims ...int) (*Tensor[T], error) {
	size, err := sizeOf(dims)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return &Tensor[T]{}, nil
	}

	return &Tensor[T]{
		dims: append([]int(nil), dims...),
		data: make([]T, size),
	}, nil
}

// NewFilled creates a tensor with every element set to value.
// Complexity: O(size).
func NewFilled[T Number](value T, dims ...int) (*Tensor[T], error) {
	t, err := New[T](dims...)
	if err != nil {
		return nil, err
	}
	var i int
	for i = range t.data {
		t.data[i] = value
	}

	return t, nil
}

// FromSlice creates a tensor holding a copy of data laid out with dims.
// len(data) must equal the product of dims, otherwise ErrBadShape.
// Complexity: O(size).
func FromSlice[T Number](data []T, dims ...int) (*Tensor[T], error) {
	size, err := sizeOf(dims)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("FromSlice: len(data)=%d, want %d: %w", len(data), size, ErrBadShape)
	}
	if size == 0 {
		return &Tensor[T]{}, nil
	}

	return &Tensor[T]{
		dims: append([]int(nil), dims...),
		data: append([]T(nil), data...),
	}, nil
}

// sizeOf validates dims and returns their product.
func sizeOf(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, nil
	}
	size := 1
	var k int
	for k = range dims {
		if dims[k] < 0 {
			return 0, fmt.Errorf("dims %v: %w", dims, ErrBadShape)
		}
		if dims[k] != 0 && size > math.MaxInt/dims[k] {
			return 0, fmt.Errorf("dims %v: size overflows int: %w", dims, ErrBadShape)
		}
		size *= dims[k]
	}

	return size, nil
}

// Size returns the number of elements. Complexity: O(1).
func (t *Tensor[T]) Size() int { return len(t.data) }

// Rank returns the number of axes (0 for the empty tensor). Complexity: O(1).
func (t *Tensor[T]) Rank() int { return len(t.dims) }

// Dims returns a copy of the dimension vector (nil for the empty tensor).
// Complexity: O(rank).
func (t *Tensor[T]) Dims() []int {
	if t.dims == nil {
		return nil
	}

	return append([]int(nil), t.dims...)
}

// Dim returns the extent of a single axis or ErrOutOfRange.
func (t *Tensor[T]) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(t.dims) {
		return 0, tensorErrorf(ctxDim, []int{axis}, ErrOutOfRange)
	}

	return t.dims[axis], nil
}

// offsetOf computes the row-major offset of idx.
// Returns ErrRankMismatch when len(idx) != rank and ErrOutOfRange when any
// component is outside its axis. Public methods wrap the sentinel.
func (t *Tensor[T]) offsetOf(idx []int) (int, error) {
	if len(idx) != len(t.dims) {
		return 0, ErrRankMismatch
	}
	off := 0
	var k int
	for k = range idx {
		if idx[k] < 0 || idx[k] >= t.dims[k] {
			return 0, ErrOutOfRange
		}
		off = off*t.dims[k] + idx[k]
	}

	return off, nil
}

// At returns the element at the multi-index idx.
// MAIN DESCRIPTION:
//   - Safe element read; len(idx) must equal Rank().
//
// Errors:
//   - ErrRankMismatch, ErrOutOfRange (wrapped with the indices).
//
// Complexity:
//   - Time O(rank), Space O(1).
func (t *Tensor[T]) At(idx ...int) (T, error) {
	off, err := t.offsetOf(idx)
	if err != nil {
		var zero T
		return zero, tensorErrorf(ctxAt, idx, err)
	}

	return t.data[off], nil
}

// Set stores v at the multi-index idx.
// Errors: ErrRankMismatch, ErrOutOfRange (wrapped with the indices).
// Complexity: O(rank).
func (t *Tensor[T]) Set(v T, idx ...int) error {
	off, err := t.offsetOf(idx)
	if err != nil {
		return tensorErrorf(ctxSet, idx, err)
	}
	t.data[off] = v

	return nil
}

// AtFlat returns the element at flat (list) index i. Complexity: O(1).
func (t *Tensor[T]) AtFlat(i int) (T, error) {
	if i < 0 || i >= len(t.data) {
		var zero T
		return zero, tensorErrorf(ctxAtFlat, []int{i}, ErrOutOfRange)
	}

	return t.data[i], nil
}

// SetFlat stores v at flat (list) index i. Complexity: O(1).
func (t *Tensor[T]) SetFlat(i int, v T) error {
	if i < 0 || i >= len(t.data) {
		return tensorErrorf(ctxSetFlat, []int{i}, ErrOutOfRange)
	}
	t.data[i] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(size).
func (t *Tensor[T]) Clone() *Tensor[T] {
	if len(t.data) == 0 {
		return &Tensor[T]{}
	}

	return &Tensor[T]{
		dims: append([]int(nil), t.dims...),
		data: append([]T(nil), t.data...),
	}
}

// Share returns a second handle on the same buffer.
// Writes through either handle are visible through both; the buffer lives as
// long as the longest-living handle. Use Clone for an independent copy.
// Complexity: O(rank).
func (t *Tensor[T]) Share() *Tensor[T] {
	return &Tensor[T]{
		dims: t.Dims(),
		data: t.data,
	}
}

// String renders at most MaxShownEntries elements in flat order, e.g.
// "[0, 1, 2]" or "[0, 1, …, 19, ...]" when truncated. Intended for debugging.
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)

	shown := min(len(t.data), MaxShownEntries)
	var i int
	for i = 0; i < shown; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, t.data[i])
	}
	if len(t.data) > MaxShownEntries {
		sb.WriteString(_fmtSep)
		sb.WriteString(_fmtMore)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
