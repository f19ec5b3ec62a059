// Package mtl is a small, dependency-light linear-algebra playground built
// around one generic dense matrix container.
//
// 🚀 What is mtl?
//
//	A modern, zero-runtime-dependency library that brings together:
//		• A generic dense container: Dense[T] over any integer or float type
//		• Row views: mutable Row and read-only Crow with write-through access
//		• Iteration: explicit (row, col) cursors plus Go 1.23 range-over-func
//		• Arithmetic: Add, Sub, Mul, Scale, MulVec, Pow and in-place forms
//		• Analysis: elimination and cofactor determinants, diagonal checks
//		• Conversion: element-type conversion, shape widening, equality
//
// ✨ Why choose mtl?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – bounds-checked access, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, no global state
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Dense container, views, iterators, kernels and analysis
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	p, _ := matrix.Mul(m, m)
//	fmt.Println(p) // 7 10
//	               // 15 22
//
// See matrix/doc.go for the full tour.
package mtl
