// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the container and kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/mtlgo/mtl/matrix"
)

// mustDense allocates an r×c zero-filled container or fails the test.
func mustDense[T matrix.Number](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustFromRows builds a container from a nested literal or fails the test.
func mustFromRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// collect drains the Values sequence into a slice for order assertions.
func collect[T matrix.Number](m *matrix.Dense[T]) []T {
	var out []T
	for v := range m.Values() {
		out = append(out, v)
	}

	return out
}
