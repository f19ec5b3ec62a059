// SPDX-License-Identifier: MIT
// Package matrix: traversal cursors.
//
// Iterator is an explicit (row, col) cursor bound to one container. It
// advances column-first and wraps into the next row; the end position is
// (rows, 0). Dereferencing at or past the end is defensive: Value returns
// the zero value of T instead of failing, while Set reports ErrOutOfRange.
//
// For modern call sites the container also exposes range-over-func
// adapters (All, Values) built on the standard iter package; both walk
// exactly rows*cols elements once, row-major.

package matrix

import "iter"

// Pos is a (row, col) position inside a container, as yielded by All.
type Pos struct {
	Row int
	Col int
}

// Iterator is a row-major traversal cursor over a bound container.
// The zero Iterator is not usable; obtain one from Begin or End.
type Iterator[T Number] struct {
	m        *Dense[T] // bound container
	row, col int       // current position; end is (rows, 0)
}

// Begin returns a cursor positioned at (0, 0).
// Complexity: O(1).
func (m *Dense[T]) Begin() Iterator[T] {
	return Iterator[T]{m: m, row: 0, col: 0}
}

// End returns the one-past-last cursor, positioned at (rows, 0).
// Complexity: O(1).
func (m *Dense[T]) End() Iterator[T] {
	return Iterator[T]{m: m, row: m.rows, col: 0}
}

// Next advances the cursor one position: column-first, wrapping into the
// next row once the last column is passed. Advancing an end cursor moves
// it further past the end; Done keeps reporting true.
// Complexity: O(1).
func (it *Iterator[T]) Next() {
	if it.col != it.m.cols-1 && it.row < it.m.rows {
		it.col++
		return
	}
	it.row++
	it.col = 0
}

// Value returns the element at the current position. At or past the end
// position it returns the zero value of T instead of failing; use Done
// to distinguish a genuine zero element from an exhausted cursor.
// Complexity: O(1).
func (it Iterator[T]) Value() T {
	if it.row >= it.m.rows || it.col >= it.m.cols {
		var zero T
		return zero
	}

	return it.m.data[it.row*it.m.cols+it.col]
}

// Set writes v at the current position, straight into live storage.
// Returns ErrOutOfRange at or past the end position.
// Complexity: O(1).
func (it Iterator[T]) Set(v T) error {
	return it.m.Set(it.row, it.col, v)
}

// Pos returns the current (row, col) position.
// Complexity: O(1).
func (it Iterator[T]) Pos() (int, int) {
	return it.row, it.col
}

// Done reports whether the cursor is at or past the end position.
// Complexity: O(1).
func (it Iterator[T]) Done() bool {
	return it.row >= it.m.rows
}

// Eq reports whether two cursors are bound to the same container
// instance and sit at the same position.
// Complexity: O(1).
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	return it.m == other.m && it.row == other.row && it.col == other.col
}

// All returns a range-over-func sequence of (position, value) pairs,
// walking exactly rows*cols elements once in row-major order.
// The container must not be resized during iteration.
// Complexity: O(r*c) for a full traversal.
func (m *Dense[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				if !yield(Pos{Row: i, Col: j}, m.data[i*m.cols+j]) {
					return
				}
			}
		}
	}
}

// Values returns a range-over-func sequence of the element values in
// row-major order.
// Complexity: O(r*c) for a full traversal.
func (m *Dense[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := 0; idx < len(m.data); idx++ {
			if !yield(m.data[idx]) {
				return
			}
		}
	}
}
