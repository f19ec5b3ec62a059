// SPDX-License-Identifier: MIT
// Package matrix provides core container primitives for dense numeric data.
// Dense is a generic, row-major container storing elements in one flat
// slice for simple ownership, contiguous iteration and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of T values.
// rows and cols form the authoritative runtime shape; data holds
// rows*cols elements in row-major order (index row*cols+col).
//
// The shape is fully dynamic: it is fixed by the constructor and changes
// only through Resize, which discards the old storage. A Dense instance
// exclusively owns its backing slice; sharing happens only through an
// explicit Clone.
type Dense[T Number] struct {
	rows, cols int // runtime shape, each > 0 for a live container
	data       []T // flat backing storage, length == rows*cols
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols container with every cell set to the
// default fill, the zero value of T.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zeroed by the runtime).
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice; make gives the zero fill for free.
	data := make([]T, rows*cols)

	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// NewFilled creates a rows×cols container with every cell set to value.
// Complexity: O(r*c) time and memory.
func NewFilled[T Number](rows, cols int, value T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(value)

	return m, nil
}

// FromFlat creates a rows×cols container from a flat row-major literal.
// Stage 1 (Validate): shape > 0 and len(elems) == rows*cols.
// Stage 2 (Execute): copy elems into fresh storage (the input slice is
// never aliased).
// Returns ErrBadShape on an invalid shape and ErrInvalidArgument when the
// element count does not match the shape.
// Complexity: O(r*c).
func FromFlat[T Number](rows, cols int, elems []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Exact-count contract: no silent truncation or padding.
	if len(elems) != rows*cols {
		return nil, matrixErrorf("FromFlat", ErrInvalidArgument)
	}

	data := make([]T, rows*cols)
	copy(data, elems)

	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows creates a container from a nested list-of-rows literal.
// The shape is inferred: len(rows) x len(rows[0]).
// Stage 1 (Validate): non-empty input, no ragged rows.
// Stage 2 (Execute): flatten row-major into fresh storage.
// Returns ErrInvalidArgument on an empty literal or when any row length
// differs from the first.
// Complexity: O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidArgument)
	}

	r, c := len(rows), len(rows[0])
	data := make([]T, 0, r*c)
	for i := 0; i < r; i++ {
		// Every row must carry exactly c elements.
		if len(rows[i]) != c {
			return nil, matrixErrorf("FromRows", ErrInvalidArgument)
		}
		data = append(data, rows[i]...)
	}

	return &Dense[T]{rows: r, cols: c, data: data}, nil
}

// NewIdentity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the container.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the container.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.cols
}

// Shape returns the runtime (rows, cols) extent as a single value.
// Complexity: O(1).
func (m *Dense[T]) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the data slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the data slice.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data exposes the owned flat backing slice for advanced or interop use.
// The slice aliases live storage: writes through it are visible to every
// accessor, and Resize invalidates it. The caller must not hold it past
// the lifetime of the container.
// Complexity: O(1).
func (m *Dense[T]) Data() []T {
	return m.data
}

// Fill overwrites every cell with value, in place.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(value T) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Resize discards the current storage and re-initializes the container to
// a rows×cols shape with the default (zero) fill. Old contents are not
// preserved. Any slice previously obtained from Data, and any live view
// or iterator, must be considered invalid afterwards.
// Stage 1 (Validate): rows and cols > 0.
// Stage 2 (Execute): allocate fresh zeroed storage, update the shape.
// Returns ErrBadShape on non-positive dimensions; the receiver is left
// untouched on failure.
// Complexity: O(r*c) for the new allocation.
func (m *Dense[T]) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return matrixErrorf("Resize", ErrBadShape)
	}
	// Replace storage wholesale; the old slice is released to the GC.
	m.data = make([]T, rows*cols)
	m.rows, m.cols = rows, cols

	return nil
}

// Clone returns a deep copy of the container.
// The returned Dense is independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{rows: m.rows, cols: m.cols, data: copyData}
}

// String implements fmt.Stringer: one row per line, values separated by
// a single space. The dump is meant for human inspection, not parsing.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		for j = 0; j < m.cols; j++ { // iterate over columns
			if j > 0 {
				sb.WriteByte(' ') // separate values within a row
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
		}
		sb.WriteByte('\n') // close row
	}

	return sb.String()
}
