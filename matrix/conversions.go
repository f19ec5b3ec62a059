// SPDX-License-Identifier: MIT
// Package matrix: equality, element-type conversion and shape widening.
//
// Strict equality requires identical runtime shape and element-wise
// equality; cross-type comparison is expressed by converting one operand
// first (Convert), which keeps element-type compatibility a compile-time
// concern. AllClose is the tolerance-based form for float data.

package matrix

import "math"

const (
	opConvert  = "Convert"
	opGrow     = "Grow"
	opAllClose = "AllClose"
)

// Convert returns a copy of src with every element converted to U using
// Go's native numeric conversion (truncation toward zero for
// float→integer). The result owns fresh storage.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func Convert[U Number, T Number](src *Dense[T]) (*Dense[U], error) {
	if err := validateNotNil(src); err != nil {
		return nil, matrixErrorf(opConvert, err)
	}

	out := &Dense[U]{rows: src.rows, cols: src.cols, data: make([]U, len(src.data))}
	for idx, v := range src.data {
		out.data[idx] = U(v)
	}

	return out, nil
}

// Grow is the widening conversion: it produces a container of the
// requested (equal or larger) shape, copying existing cells into the same
// (row, col) positions and padding every new cell with the default (zero)
// fill.
// Stage 1 (Validate): the target shape must not be smaller in either
// dimension.
// Errors: ErrDimensionMismatch when rows < m.Rows or cols < m.Cols.
// Complexity: O(rows*cols) time and memory; the receiver is untouched.
func (m *Dense[T]) Grow(rows, cols int) (*Dense[T], error) {
	if rows < m.rows || cols < m.cols {
		return nil, matrixErrorf(opGrow, ErrDimensionMismatch)
	}

	out := &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	for i := 0; i < m.rows; i++ {
		copy(out.data[i*cols:i*cols+m.cols], m.data[i*m.cols:(i+1)*m.cols])
	}

	return out, nil
}

// Equal reports strict equality: same runtime shape and element-wise
// equality. A nil argument is never equal. Element-type compatibility is
// enforced by the type system; convert first to compare across types.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// EqualFlat compares the container against a flat row-major literal.
// A literal whose total length differs from rows*cols is simply not
// equal; no error is raised.
// Complexity: O(r*c) worst case, O(1) on length mismatch.
func (m *Dense[T]) EqualFlat(elems []T) bool {
	if len(elems) != len(m.data) {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != elems[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most the configured epsilon (DefaultEpsilon,
// see WithEpsilon). Use it instead of Equal for float data that went
// through arithmetic.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(1) space.
func AllClose[T Number](a, b *Dense[T], opts ...Option) (bool, error) {
	if err := validateBinary(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	for idx := range a.data {
		if math.Abs(float64(a.data[idx])-float64(b.data[idx])) > o.eps {
			return false, nil
		}
	}

	return true, nil
}
