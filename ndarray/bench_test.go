// Package ndarray_test provides benchmarks for wrapping and transforming
// array-like input.
package ndarray_test

import (
	"fmt"
	"testing"

	"github.com/jonaspleyer/pyvista/ndarray"
)

// benchSizes are the element counts to benchmark with.
var benchSizes = []int{64, 1024, 16384}

// sink to defeat dead-code elimination
var sinkArr *ndarray.Array

func BenchmarkFromAny_FlatSlice(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			data := make([]float64, n)
			for i := range data {
				data[i] = float64(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				arr, err := ndarray.FromAny(data)
				if err != nil {
					b.Fatal(err)
				}
				sinkArr = arr
			}
		})
	}
}

func BenchmarkFromAny_Nested(b *testing.B) {
	b.ReportAllocs()
	for _, rows := range []int{16, 256} {
		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			nested := make([]any, rows)
			for i := range nested {
				nested[i] = []any{float64(i), float64(i) + 0.5, float64(i) + 0.25}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				arr, err := ndarray.FromAny(nested)
				if err != nil {
					b.Fatal(err)
				}
				sinkArr = arr
			}
		})
	}
}

func BenchmarkBroadcastTo(b *testing.B) {
	b.ReportAllocs()
	row, err := ndarray.FromFloat64s([]float64{1, 2, 3}).Reshape(ndarray.Shape{1, 3})
	if err != nil {
		b.Fatal(err)
	}
	target := ndarray.Shape{1024, 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr, err := row.BroadcastTo(target)
		if err != nil {
			b.Fatal(err)
		}
		sinkArr = arr
	}
}

func BenchmarkAsType(b *testing.B) {
	b.ReportAllocs()
	data := make([]float64, 4096)
	for i := range data {
		data[i] = float64(i)
	}
	arr := ndarray.FromFloat64s(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := arr.AsType(ndarray.Int64)
		if err != nil {
			b.Fatal(err)
		}
		sinkArr = out
	}
}
