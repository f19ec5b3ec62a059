// Package matrix offers a generic dense two-dimensional numeric container
// and the operations that make it useful.
//
// The matrix package provides:
//
//   - Dense[T], a runtime-shaped, row-major container over any integer or
//     float element type, with bounds-checked access and explicit Resize.
//   - Row / Crow views that translate indices straight into live storage.
//   - Iterator, a (row, col) cursor with column-first advancement, plus
//     range-over-func adapters for modern traversal.
//   - Value-returning arithmetic kernels (Add, Sub, Mul, Scale, MulVec,
//     Pow) and compound in-place forms on the container itself.
//   - Determinant analysis in two flavors: Gaussian elimination with
//     first-nonzero pivoting, and recursive cofactor expansion.
//
// Dense is best for small and medium shapes where O(r*c) memory and
// contiguous storage are acceptable.
//
// See the examples in this package for usage patterns.
package matrix
