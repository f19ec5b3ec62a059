// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

// validateNotNil ensures the container reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func validateNotNil[T Number](m *Dense[T]) error {
	// If the container is nil, fail with the unified sentinel.
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures containers a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure).
// Returns nil or ErrDimensionMismatch. Complexity: O(1).
func validateSameShape[T Number](a, b *Dense[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows, the inner-dimension
// contract of matrix multiplication. Assumes non-nil operands.
// Returns nil or ErrDimensionMismatch. Complexity: O(1).
func validateMulCompatible[T Number](a, b *Dense[T]) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare checks that m is square (Rows == Cols).
// Assumes a non-nil receiver. Returns nil or ErrNonSquare.
// Complexity: O(1).
func validateSquare[T Number](m *Dense[T]) error {
	if m.rows != m.cols {
		return ErrNonSquare
	}

	return nil
}

// validateVecLen ensures the vector length matches the required size n.
// A nil vector is rejected to avoid subtle bugs in MulVec-like routines.
// Complexity: O(1).
func validateVecLen[S Number](x []S, n int) error {
	if x == nil {
		return ErrInvalidArgument
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
