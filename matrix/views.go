// SPDX-License-Identifier: MIT
// Package matrix: row views.
//
// Row and Crow are lightweight non-owning views into one row of a bound
// container. Both are pure index-translation objects: every read and
// write is routed through the container's bounds-checked accessors, so a
// view can never disagree with live storage. Snapshot materializes a
// fresh copy on demand for callers that want a detached value sequence.
//
// A view does not pin the container's shape: after Resize the bound row
// index may fall out of range, and subsequent accesses return
// ErrOutOfRange rather than stale data.

package matrix

import (
	"fmt"
	"strings"
)

// Row is a mutable view of one row of a bound Dense container.
type Row[T Number] struct {
	m   *Dense[T] // bound container, never nil for a constructed view
	idx int       // bound row index
}

// Crow is a read-only view of one row of a bound Dense container.
type Crow[T Number] struct {
	m   *Dense[T]
	idx int
}

// Row returns a mutable view of row i.
// The container checks the row index before the view is built and
// returns ErrOutOfRange for an invalid one.
// Complexity: O(1); no copying.
func (m *Dense[T]) Row(i int) (Row[T], error) {
	if i < 0 || i >= m.rows {
		return Row[T]{}, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return Row[T]{m: m, idx: i}, nil
}

// Crow returns a read-only view of row i.
// Returns ErrOutOfRange for an invalid row index.
// Complexity: O(1); no copying.
func (m *Dense[T]) Crow(i int) (Crow[T], error) {
	if i < 0 || i >= m.rows {
		return Crow[T]{}, denseErrorf("Crow", i, 0, ErrOutOfRange)
	}

	return Crow[T]{m: m, idx: i}, nil
}

// At reads the element at column col through the owning container.
// Returns ErrOutOfRange when col is outside the current column extent.
// Complexity: O(1).
func (r Row[T]) At(col int) (T, error) {
	return r.m.At(r.idx, col)
}

// Set writes v at column col straight through to the owning container.
// Returns ErrOutOfRange when col is outside the current column extent.
// Complexity: O(1).
func (r Row[T]) Set(col int, v T) error {
	return r.m.Set(r.idx, col, v)
}

// SetAll writes every element of elems through to the owning container,
// replacing the whole row.
// Stage 1 (Validate): len(elems) must equal the column extent.
// Stage 2 (Execute): copy into the backing row segment.
// Returns ErrInvalidArgument on a length mismatch; the row is untouched
// on failure.
// Complexity: O(c).
func (r Row[T]) SetAll(elems []T) error {
	if len(elems) != r.m.cols {
		return matrixErrorf("Row.SetAll", ErrInvalidArgument)
	}
	copy(r.m.data[r.idx*r.m.cols:(r.idx+1)*r.m.cols], elems)

	return nil
}

// Snapshot returns a fresh copy of the current row contents.
// The copy is detached: later mutations of the container do not affect
// it, and mutating it does not affect the container.
// Complexity: O(c) time and memory.
func (r Row[T]) Snapshot() []T {
	out := make([]T, r.m.cols)
	copy(out, r.m.data[r.idx*r.m.cols:(r.idx+1)*r.m.cols])

	return out
}

// Len returns the number of elements in the viewed row.
// Complexity: O(1).
func (r Row[T]) Len() int { return r.m.cols }

// Index returns the bound row index.
// Complexity: O(1).
func (r Row[T]) Index() int { return r.idx }

// String renders the current row contents space-separated.
// Complexity: O(c).
func (r Row[T]) String() string {
	return formatRow(r.m, r.idx)
}

// At reads the element at column col through the owning container.
// Returns ErrOutOfRange when col is outside the current column extent.
// Complexity: O(1).
func (r Crow[T]) At(col int) (T, error) {
	return r.m.At(r.idx, col)
}

// Snapshot returns a fresh copy of the current row contents.
// Complexity: O(c) time and memory.
func (r Crow[T]) Snapshot() []T {
	out := make([]T, r.m.cols)
	copy(out, r.m.data[r.idx*r.m.cols:(r.idx+1)*r.m.cols])

	return out
}

// Len returns the number of elements in the viewed row.
// Complexity: O(1).
func (r Crow[T]) Len() int { return r.m.cols }

// Index returns the bound row index.
// Complexity: O(1).
func (r Crow[T]) Index() int { return r.idx }

// String renders the current row contents space-separated.
// Complexity: O(c).
func (r Crow[T]) String() string {
	return formatRow(r.m, r.idx)
}

// formatRow renders row i of m with single-space separators and no
// trailing newline; shared by Row.String and Crow.String.
func formatRow[T Number](m *Dense[T], i int) string {
	var sb strings.Builder
	for j := 0; j < m.cols; j++ {
		if j > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
	}

	return sb.String()
}
