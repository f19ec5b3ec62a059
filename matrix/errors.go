// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in option
// constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. The taxonomy has three root classes;
// the fine-grained sentinels below wrap their root via %w at definition
// time, so errors.Is matches BOTH the precise condition and its class:
//
//	errors.Is(err, ErrNonSquare)  // precise
//	errors.Is(err, ErrLogic)      // class
//
// Call sites wrap with an operation tag via matrixErrorf; see ops.go.

var (
	// ErrOutOfRange indicates that a row or column index is outside the
	// current runtime extents. Public indexers (At/Set) MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidArgument indicates malformed input data: a literal list
	// whose element count does not match rows*cols, a ragged nested
	// literal, or a bulk row assignment of the wrong length.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrLogic is the root class for structural misuse: shape mismatches
	// between operands, non-square input to square-only analysis, and
	// shrinking requests to the widening conversion.
	ErrLogic = errors.New("matrix: logic error")
)

// Fine-grained sentinels. Each wraps its taxonomy root so callers can
// match at either granularity.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors and Resize validate shape
	// before any allocation.
	ErrBadShape = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub over different shapes, Mul where a.Cols != b.Rows,
	// a vector whose length differs from the column count, or a Grow
	// target smaller than the source.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrLogic)

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't (Pow, Det, DetCofactor).
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrLogic)

	// ErrNilMatrix indicates that a nil container (receiver or argument)
	// was passed into an operation.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrLogic)
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across the package. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
