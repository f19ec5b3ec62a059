// SPDX-License-Identifier: MIT
// Package matrix: determinant and diagonal analysis.
//
// Det is the production path: Gaussian elimination over a float64 working
// copy with first-nonzero pivoting, O(n^3). DetCofactor is recursive
// cofactor expansion, exponential time, kept as a simple-to-verify oracle
// for tests and small shapes. Both consume a disposable working buffer;
// the input container is never mutated.

package matrix

import "math"

const (
	opDet         = "Det"
	opDetCofactor = "DetCofactor"
)

// Det computes the determinant of a square container via row reduction to
// triangular form with pivot tracking.
//
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Prepare): copy the elements into a float64 working buffer.
// Stage 3 (Execute): for each pivot column, take the FIRST row at or
// below the diagonal with a non-zero entry (first-nonzero pivoting, not
// magnitude-based, so the elimination order is fully deterministic); no
// candidate means the matrix is singular and the determinant is 0. A row
// swap flips the running sign. The pivot row is divided by its pivot and
// the running determinant multiplied by the pre-division pivot; rows
// below are then eliminated.
// Stage 4 (Finalize): round to the configured number of decimal places
// (DefaultDetRoundDigits, see WithDetRounding) to suppress float noise.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3) time, O(n^2) space for the working copy.
func Det[T Number](m *Dense[T], opts ...Option) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)

	// Disposable working copy; the container itself stays untouched.
	n := m.rows
	w := make([]float64, n*n)
	for idx, v := range m.data {
		w[idx] = float64(v)
	}

	det := 1.0
	var i, j, r int
	for i = 0; i < n; i++ {
		// First-nonzero pivot search at or below row i.
		pivotRow := -1
		for r = i; r < n; r++ {
			if w[r*n+i] != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return 0, nil // no pivot in this column: singular
		}
		// Swap the pivot row into position; each swap flips the sign.
		if pivotRow != i {
			for j = 0; j < n; j++ {
				w[i*n+j], w[pivotRow*n+j] = w[pivotRow*n+j], w[i*n+j]
			}
			det = -det
		}

		// Normalize the pivot row; fold the pre-division pivot into det.
		pivot := w[i*n+i]
		det *= pivot
		for j = i; j < n; j++ {
			w[i*n+j] /= pivot
		}

		// Eliminate the pivot column from every row below.
		for r = i + 1; r < n; r++ {
			factor := w[r*n+i]
			if factor == 0 {
				continue
			}
			for j = i; j < n; j++ {
				w[r*n+j] -= factor * w[i*n+j]
			}
		}
	}

	// Round away accumulated float noise; canonicalize a signed zero.
	scale := math.Pow(10, float64(o.detDigits))
	det = math.Round(det*scale) / scale
	if det == 0 {
		det = 0
	}

	return det, nil
}

// DetCofactor computes the determinant via recursive cofactor expansion
// along the first row, extracting one minor per column. Exponential time;
// intended as a verification oracle and for tiny shapes.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!) time, O(n^2) space per recursion level.
func DetCofactor[T Number](m *Dense[T]) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opDetCofactor, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDetCofactor, err)
	}

	n := m.rows
	w := make([]float64, n*n)
	for idx, v := range m.data {
		w[idx] = float64(v)
	}

	return cofactorExpand(w, n), nil
}

// cofactorExpand evaluates the determinant of the n×n buffer w by
// expansion along the first row. The 1×1 and 2×2 bases are closed-form.
func cofactorExpand(w []float64, n int) float64 {
	if n == 1 {
		return w[0]
	}
	if n == 2 {
		return w[0]*w[3] - w[1]*w[2]
	}

	det := 0.0
	sign := 1.0
	minor := make([]float64, (n-1)*(n-1))
	var col, r, c, idx int
	for col = 0; col < n; col++ {
		// Extract the minor that drops row 0 and column col.
		idx = 0
		for r = 1; r < n; r++ {
			for c = 0; c < n; c++ {
				if c == col {
					continue
				}
				minor[idx] = w[r*n+c]
				idx++
			}
		}
		det += sign * w[col] * cofactorExpand(minor, n-1)
		sign = -sign
	}

	return det
}

// IsDiagonal reports whether every off-diagonal cell of a square
// container is zero within the configured epsilon. A non-square (or nil)
// container is not diagonal by definition: the answer is false
// immediately, without scanning.
// Complexity: O(n^2) time, O(1) space.
func IsDiagonal[T Number](m *Dense[T], opts ...Option) bool {
	if m == nil || m.rows != m.cols {
		return false
	}
	o := gatherOptions(opts...)

	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if i != j && math.Abs(float64(m.data[i*m.cols+j])) > o.eps {
				return false
			}
		}
	}

	return true
}
