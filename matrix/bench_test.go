// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the kernels on the largest
// shapes the diagnostic produces (100×10 design matrices).
package matrix_test

import (
	"testing"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF []float64
)

func BenchmarkCrossProduct(b *testing.B) {
	b.ReportAllocs()
	X := MustDense(b, 100, 10)
	RandomIntFill(b, X, 1337)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.CrossProduct(X)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	X := MustDense(b, 100, 10)
	RandomIntFill(b, X, 4242)
	xtx, err := matrix.CrossProduct(X)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Inverse(xtx)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkSingularValues(b *testing.B) {
	b.ReportAllocs()
	X := MustDense(b, 100, 10)
	RandomIntFill(b, X, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := matrix.SingularValues(X)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = s
	}
}
