// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels over the Dense container, including
// element-wise addition and subtraction, matrix and scalar multiplication,
// matrix-vector products, transpose and repeated-multiply power. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Declare the canonical value-returning kernels used across the package.
//   - Keep operands immutable: every kernel allocates a fresh result.
//   - Compound in-place forms live on the container itself (see the
//     *InPlace methods at the bottom of this file).
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via
//     matrixErrorf with a stable operation tag.
//   - Loop orders are fixed (flat 0..n-1, or i→k→j for Mul) so results are
//     deterministic and reproducible.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opScale  = "Scale"
	opMulVec = "MulVec"
	opPow    = "Pow"
	opTrans  = "Transpose"
)

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Stage 1 (Validate): both operands non-nil with identical shapes.
// Stage 2 (Execute): single flat loop over the backing slices.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and memory; inputs are never mutated.
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := a.Clone()
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] += b.data[idx]
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh
// result.
// Stage 1 (Validate): both operands non-nil with identical shapes.
// Stage 2 (Execute): single flat loop over the backing slices.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and memory; inputs are never mutated.
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res := a.Clone()
	for idx := range res.data {
		res.data[idx] -= b.data[idx]
	}

	return res, nil
}

// validateBinary is the shared NotNil → SameShape sequence for the
// element-wise kernels.
func validateBinary[T Number](a, b *Dense[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return validateSameShape(a, b)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing):
// C[i][j] = Σ_k A[i][k]·B[k][j].
// Stage 1 (Validate): operands non-nil and A.Cols == B.Rows.
// Stage 2 (Execute): i→k→j triple loop with row-major strides, skipping
// zero A[i,k] entries.
// Result shape is A.Rows × B.Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense[T](a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Row-major i→k→j order keeps both operand walks contiguous.
	var i, j, k int
	var av T
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < a.rows; i++ {
		rowOffsetA = i * a.cols
		rowOffsetR = i * b.cols
		for k = 0; k < a.cols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.cols
			for j = 0; j < b.cols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j]·alpha. The scalar
// may be of any Number type; the product is formed in float64 and then
// converted back to T, matching assign-after-promotion semantics for
// integer containers. Scaling is symmetric, so this single kernel covers
// both matrix×scalar and scalar×matrix.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory; the input is never mutated.
func Scale[T Number, S Number](m *Dense[T], alpha S) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := m.Clone()
	a := float64(alpha)
	for idx := range res.data {
		res.data[idx] = T(float64(res.data[idx]) * a)
	}

	return res, nil
}

// MulVec treats x as a column vector and returns the product m·x as a
// fresh column-shaped result of length m.Rows. The accumulation runs in
// float64 and each component is converted back to T once, at the end.
// Stage 1 (Validate): m non-nil, len(x) == m.Cols.
// Errors: ErrNilMatrix, ErrInvalidArgument (nil vector),
// ErrDimensionMismatch (wrong length).
// Complexity: O(r*c) time, O(r) space; the matrix is never mutated.
func MulVec[T Number, S Number](m *Dense[T], x []S) ([]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := validateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	out := make([]T, m.rows)
	var i, j int
	var sum float64
	for i = 0; i < m.rows; i++ {
		sum = 0
		for j = 0; j < m.cols; j++ {
			sum += float64(m.data[i*m.cols+j]) * float64(x[j])
		}
		out[i] = T(sum)
	}

	return out, nil
}

// Pow returns m raised to the n-th power by repeated multiplication
// against a fixed snapshot of the original value (n−1 full multiplies; no
// fast exponentiation). Pow(m, 0) yields the identity of matching
// dimension.
// Stage 1 (Validate): m non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n * r^3) time, O(r^2) space; the input is never mutated.
func Pow[T Number](m *Dense[T], n uint) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	// n == 0 is the multiplicative identity.
	if n == 0 {
		return NewIdentity[T](m.rows)
	}

	base := m.Clone() // fixed snapshot of the original value
	res := m.Clone()
	var err error
	for i := uint(1); i < n; i++ {
		if res, err = Mul(res, base); err != nil {
			return nil, matrixErrorf(opPow, err) // unreachable for square inputs
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Stage 1 (Validate): m non-nil.
// Stage 2 (Execute): flat-slice copy data[i*c+j] → res.data[j*r+i].
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory; the input is never mutated.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTrans, err)
	}

	res, err := NewDense[T](m.cols, m.rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTrans, err)
	}

	var i, j, baseSrc int
	for i = 0; i < m.rows; i++ {
		baseSrc = i * m.cols
		for j = 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// ---------- Compound in-place forms (+=, -=, *=) ----------

// AddInPlace applies m += b element-wise, writing into the receiver's
// storage without reallocating.
// Errors: ErrNilMatrix, ErrDimensionMismatch; the receiver is untouched
// on failure.
// Complexity: O(r*c) time, O(1) extra space.
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	if err := validateBinary(m, b); err != nil {
		return matrixErrorf("AddInPlace", err)
	}
	for idx := range m.data {
		m.data[idx] += b.data[idx]
	}

	return nil
}

// SubInPlace applies m -= b element-wise, writing into the receiver's
// storage without reallocating.
// Errors: ErrNilMatrix, ErrDimensionMismatch; the receiver is untouched
// on failure.
// Complexity: O(r*c) time, O(1) extra space.
func (m *Dense[T]) SubInPlace(b *Dense[T]) error {
	if err := validateBinary(m, b); err != nil {
		return matrixErrorf("SubInPlace", err)
	}
	for idx := range m.data {
		m.data[idx] -= b.data[idx]
	}

	return nil
}

// MulInPlace applies m *= b: the product is computed into a fresh buffer
// and then replaces the receiver's storage and shape, which becomes
// m.Rows × b.Cols. This is the one compound form that reallocates, since
// multiplication changes the shape whenever b is not square.
// Errors: ErrNilMatrix, ErrDimensionMismatch; the receiver is untouched
// on failure.
// Complexity: O(r*n*c) time, O(r*c) space for the replacement buffer.
func (m *Dense[T]) MulInPlace(b *Dense[T]) error {
	res, err := Mul(m, b)
	if err != nil {
		return matrixErrorf("MulInPlace", err)
	}
	// Adopt the result's storage wholesale; the old slice is released.
	m.data = res.data
	m.rows, m.cols = res.rows, res.cols

	return nil
}

// ScaleInPlace applies m *= alpha element-wise, writing into the
// receiver's storage. The product is formed in float64 and converted back
// to T, matching Scale.
// Complexity: O(r*c) time, O(1) extra space.
func (m *Dense[T]) ScaleInPlace(alpha float64) {
	for idx := range m.data {
		m.data[idx] = T(float64(m.data[idx]) * alpha)
	}
}

// MulVecInPlace is the compound-assignment matrix×vector form: it writes
// the product m·x into column 0 of the receiver and leaves every other
// column as it was. Prefer MulVec, which returns a detached column-shaped
// result; keep this form for call sites that want the collapse in place.
// Errors: ErrInvalidArgument (nil vector), ErrDimensionMismatch
// (len(x) != m.Cols); the receiver is untouched on failure.
// Complexity: O(r*c) time, O(r) extra space for the staging column.
func (m *Dense[T]) MulVecInPlace(x []float64) error {
	if err := validateVecLen(x, m.cols); err != nil {
		return matrixErrorf("MulVecInPlace", err)
	}

	// Stage the column first so row 0's overwrite cannot feed row 1.
	col := make([]float64, m.rows)
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			col[i] += float64(m.data[i*m.cols+j]) * x[j]
		}
	}
	for i = 0; i < m.rows; i++ {
		m.data[i*m.cols] = T(col[i])
	}

	return nil
}
