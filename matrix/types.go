// SPDX-License-Identifier: MIT

// Package matrix: domain types shared across the container, views and
// kernels. This file intentionally contains ONLY domain-facing types;
// errors and options live in dedicated files (errors.go, options.go) per
// the global conventions.
package matrix

import "golang.org/x/exp/constraints"

// Number constrains the element types a Dense container may carry.
// Any fixed-width or platform integer and any float qualifies; complex
// and boolean types are intentionally excluded because the arithmetic
// kernels rely on ordering and a float64 working representation.
type Number interface {
	constraints.Integer | constraints.Float
}

// Shape is the (rows, cols) extent of a matrix instance.
// The zero Shape describes an empty container.
type Shape struct {
	Rows int // number of rows, > 0 for any live container
	Cols int // number of columns, > 0 for any live container
}

// Size returns rows*cols, the element count of a container of this shape.
// Complexity: O(1).
func (s Shape) Size() int { return s.Rows * s.Cols }
