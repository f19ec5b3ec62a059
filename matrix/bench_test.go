// SPDX-License-Identifier: MIT
// Package matrix_test: micro-benchmarks for the hot kernels.
//
// Sizes are deliberately small/medium so the suite stays fast; the goal
// is catching accidental quadratic regressions, not peak-FLOPS tuning.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/mtlgo/mtl/matrix"
)

// benchDense builds an n×n float64 container with deterministic pseudo-
// random contents.
func benchDense(b *testing.B, n int) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(42)) // fixed seed for reproducibility
	data := m.Data()
	for i := range data {
		data[i] = rng.Float64()
	}

	return m
}

func BenchmarkAdd64(b *testing.B) {
	m := benchDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(m, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul64(b *testing.B) {
	m := benchDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(m, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranspose128(b *testing.B) {
	m := benchDense(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Transpose(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDet32(b *testing.B) {
	m := benchDense(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Det(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIteratorTraverse128(b *testing.B) {
	m := benchDense(b, 128)
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		for it := m.Begin(); !it.Done(); it.Next() {
			sink += it.Value()
		}
	}
	_ = sink
}
