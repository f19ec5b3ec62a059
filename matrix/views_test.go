// Package matrix_test contains unit tests for the Row and Crow views:
// construction bounds, write-through semantics, bulk assignment and
// snapshots.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtlgo/mtl/matrix"
)

// TestRowOutOfRange ensures the container rejects an invalid row index
// before any view is built.
func TestRowOutOfRange(t *testing.T) {
	m := mustDense[int](t, 2, 2)

	_, err := m.Row(2) // index == extent
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Crow(5) // beyond the extent
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowWriteThrough verifies that a mutation through the view's index
// accessor is visible via the container's own accessor immediately.
func TestRowWriteThrough(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)

	require.NoError(t, row.Set(0, 30)) // write through the view

	v, err := m.At(1, 0) // read through the container
	require.NoError(t, err)
	require.Equal(t, 30, v)

	v, err = row.At(0) // and back through the view
	require.NoError(t, err)
	require.Equal(t, 30, v)
}

// TestRowColumnBounds ensures view access is column-checked by the container.
func TestRowColumnBounds(t *testing.T) {
	m := mustDense[int](t, 2, 3)

	row, err := m.Row(0)
	require.NoError(t, err)

	_, err = row.At(3) // index == column extent
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = row.Set(4, 1) // beyond the column extent
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowSetAll validates bulk assignment: full write-through on the
// exact length, ErrInvalidArgument otherwise.
func TestRowSetAll(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(0)
	require.NoError(t, err)

	require.NoError(t, row.SetAll([]int{7, 8, 9}))
	require.True(t, m.EqualFlat([]int{7, 8, 9, 4, 5, 6}))

	err = row.SetAll([]int{1, 2}) // wrong length
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.True(t, m.EqualFlat([]int{7, 8, 9, 4, 5, 6})) // row untouched
}

// TestRowSnapshotDetached ensures Snapshot returns a copy that neither
// tracks nor mutates live storage.
func TestRowSnapshotDetached(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	row, err := m.Row(0)
	require.NoError(t, err)

	snap := row.Snapshot()
	require.Equal(t, []int{1, 2}, snap)

	require.NoError(t, row.Set(0, 10)) // mutate after the snapshot
	require.Equal(t, []int{1, 2}, snap) // the copy is detached

	snap[1] = 99 // mutate the copy
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, v) // live storage unaffected
}

// TestCrowReadOnlyView verifies the read-only view observes live storage.
func TestCrowReadOnlyView(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1.5, 2.5}})

	crow, err := m.Crow(0)
	require.NoError(t, err)
	require.Equal(t, 2, crow.Len())
	require.Equal(t, 0, crow.Index())

	require.NoError(t, m.Set(0, 0, 9.5)) // mutate through the container

	v, err := crow.At(0) // the view routes to live storage
	require.NoError(t, err)
	require.Equal(t, 9.5, v)
	require.Equal(t, []float64{9.5, 2.5}, crow.Snapshot())
}

// TestRowString checks the view's space-separated rendering.
func TestRowString(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, "4 5 6", row.String())

	crow, err := m.Crow(0)
	require.NoError(t, err)
	require.Equal(t, "1 2 3", crow.String())
}
