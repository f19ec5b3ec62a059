// Package matrix_test contains unit tests for the functional options.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtlgo/mtl/matrix"
)

// TestWithEpsilonValidation ensures nonsensical tolerances panic in the
// constructor, not at use time.
func TestWithEpsilonValidation(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.NotPanics(t, func() { matrix.WithEpsilon(matrix.DefaultEpsilon) })
}

// TestWithDetRoundingValidation bounds the rounding request.
func TestWithDetRoundingValidation(t *testing.T) {
	require.Panics(t, func() { matrix.WithDetRounding(-1) })
	require.Panics(t, func() { matrix.WithDetRounding(16) })
	require.NotPanics(t, func() { matrix.WithDetRounding(0) })
	require.NotPanics(t, func() { matrix.WithDetRounding(matrix.DefaultDetRoundDigits) })
}

// TestOptionsApplyInOrder verifies that the last setter wins, through an
// observable behavior path (IsDiagonal epsilon).
func TestOptionsApplyInOrder(t *testing.T) {
	noisy := mustFromRows(t, [][]float64{{1, 0.5}, {0, 1}})

	// 0.5 off-diagonal: rejected by the default, absorbed by eps=1.
	require.False(t, matrix.IsDiagonal(noisy))
	require.True(t, matrix.IsDiagonal(noisy, matrix.WithEpsilon(1)))
	require.False(t, matrix.IsDiagonal(noisy, matrix.WithEpsilon(1), matrix.WithEpsilon(0.1)))
}
