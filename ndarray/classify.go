// Package ndarray: structural classification of array-like input.
// KindOf and FromAny dispatch over a closed set of Go types — bare scalars,
// flat slices, slices of slices, []any nested up to MaxNestingDepth, and
// *Array — so classification stays exhaustive and compiler-checked instead
// of relying on open-ended reflection.

package ndarray

import "fmt"

// MaxNestingDepth is the maximum nesting depth accepted for []any input.
// Deeper structures are rejected as unsupported rather than silently
// flattened.
const MaxNestingDepth = 4

// realScalar is the closed set of real-valued Go scalar types accepted as
// array elements (bool and complex types are handled separately).
type realScalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// KindOf classifies an input into its structural variant without building
// the canonical array. Exactly one kind applies; unsupported inputs map to
// KindInvalid. Complexity: O(1).
func KindOf(in any) Kind {
	switch in.(type) {
	case *Array:
		return KindNative
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		complex64, complex128:
		return KindNumber
	case []bool,
		[]int, []int8, []int16, []int32, []int64,
		[]uint, []uint8, []uint16, []uint32, []uint64,
		[]float32, []float64,
		[]complex64, []complex128:
		return KindSequence1D
	case [][]bool,
		[][]int, [][]int8, [][]int16, [][]int32, [][]int64,
		[][]uint, [][]uint8, [][]uint16, [][]uint32, [][]uint64,
		[][]float32, [][]float64,
		[][]complex64, [][]complex128:
		return KindSequence2D
	case []any:
		return KindNested
	default:
		return KindInvalid
	}
}

// FromAny classifies and wraps an array-like input into a canonical Array.
//
// Classification priority follows the variant order: an existing *Array is
// passed through unchanged (identity-preserving — the returned pointer IS
// the input), then bare scalars, then flat slices, then slices of slices,
// then []any nested structures. Ragged nested input returns ErrRagged
// naming the offending nesting level; anything outside the closed type set
// returns ErrUnsupportedType.
//
// Inputs are never mutated; slice contents are copied into the Array.
// Complexity: O(size).
func FromAny(in any) (*Array, error) {
	return fromAnyDepth(in, 0)
}

// fromAnyDepth is FromAny with nesting-level tracking for []any input.
func fromAnyDepth(in any, depth int) (*Array, error) {
	switch v := in.(type) {
	case *Array:
		if v == nil {
			return nil, ErrNilArray
		}

		return v, nil

	case bool:
		return scalarBool(v), nil
	case int:
		return scalarReal(float64(v), Int), nil
	case int8:
		return scalarReal(float64(v), Int8), nil
	case int16:
		return scalarReal(float64(v), Int16), nil
	case int32:
		return scalarReal(float64(v), Int32), nil
	case int64:
		return scalarReal(float64(v), Int64), nil
	case uint:
		return scalarReal(float64(v), Uint), nil
	case uint8:
		return scalarReal(float64(v), Uint8), nil
	case uint16:
		return scalarReal(float64(v), Uint16), nil
	case uint32:
		return scalarReal(float64(v), Uint32), nil
	case uint64:
		return scalarReal(float64(v), Uint64), nil
	case float32:
		return scalarReal(float64(v), Float32), nil
	case float64:
		return scalarReal(v, Float64), nil
	case complex64:
		return scalarComplex(complex128(v), Complex64), nil
	case complex128:
		return scalarComplex(v, Complex128), nil

	case []bool:
		return seq1DBool(v), nil
	case []int:
		return seq1D(v, Int), nil
	case []int8:
		return seq1D(v, Int8), nil
	case []int16:
		return seq1D(v, Int16), nil
	case []int32:
		return seq1D(v, Int32), nil
	case []int64:
		return seq1D(v, Int64), nil
	case []uint:
		return seq1D(v, Uint), nil
	case []uint8:
		return seq1D(v, Uint8), nil
	case []uint16:
		return seq1D(v, Uint16), nil
	case []uint32:
		return seq1D(v, Uint32), nil
	case []uint64:
		return seq1D(v, Uint64), nil
	case []float32:
		return seq1D(v, Float32), nil
	case []float64:
		return seq1D(v, Float64), nil
	case []complex64:
		return seq1DComplex(v, Complex64), nil
	case []complex128:
		return seq1DComplex(v, Complex128), nil

	case [][]bool:
		return seq2DBool(v)
	case [][]int:
		return seq2D(v, Int)
	case [][]int8:
		return seq2D(v, Int8)
	case [][]int16:
		return seq2D(v, Int16)
	case [][]int32:
		return seq2D(v, Int32)
	case [][]int64:
		return seq2D(v, Int64)
	case [][]uint:
		return seq2D(v, Uint)
	case [][]uint8:
		return seq2D(v, Uint8)
	case [][]uint16:
		return seq2D(v, Uint16)
	case [][]uint32:
		return seq2D(v, Uint32)
	case [][]uint64:
		return seq2D(v, Uint64)
	case [][]float32:
		return seq2D(v, Float32)
	case [][]float64:
		return seq2D(v, Float64)
	case [][]complex64:
		return seq2DComplex(v, Complex64)
	case [][]complex128:
		return seq2DComplex(v, Complex128)

	case []any:
		return fromNested(v, depth+1)

	default:
		return nil, fmt.Errorf("got %T: %w", in, ErrUnsupportedType)
	}
}

// scalarReal builds a 0-d real array.
func scalarReal(v float64, dt DType) *Array {
	return &Array{shape: Shape{}, dtype: dt, real: []float64{v}}
}

// scalarBool builds a 0-d bool array (stored as 0/1).
func scalarBool(v bool) *Array {
	f := 0.0
	if v {
		f = 1.0
	}

	return &Array{shape: Shape{}, dtype: Bool, real: []float64{f}}
}

// scalarComplex builds a 0-d complex array.
func scalarComplex(v complex128, dt DType) *Array {
	return &Array{shape: Shape{}, dtype: dt, cplx: []complex128{v}}
}

// seq1D wraps a flat real slice. An empty slice keeps its declared element
// dtype (Go slices carry their element type, unlike untyped nested input).
func seq1D[T realScalar](s []T, dt DType) *Array {
	buf := make([]float64, len(s))
	for i, v := range s {
		buf[i] = float64(v)
	}

	return &Array{shape: Shape{len(s)}, dtype: dt, real: buf}
}

// seq1DBool wraps a flat bool slice as 0/1 values.
func seq1DBool(s []bool) *Array {
	buf := make([]float64, len(s))
	for i, v := range s {
		if v {
			buf[i] = 1
		}
	}

	return &Array{shape: Shape{len(s)}, dtype: Bool, real: buf}
}

// seq1DComplex wraps a flat complex slice.
func seq1DComplex[T ~complex64 | ~complex128](s []T, dt DType) *Array {
	buf := make([]complex128, len(s))
	for i, v := range s {
		buf[i] = complex128(v)
	}

	return &Array{shape: Shape{len(s)}, dtype: dt, cplx: buf}
}

// seq2D wraps a slice of real slices, enforcing rectangularity: every row
// must have the length of the first row, otherwise ErrRagged identifies the
// offending row. An empty outer slice yields shape (0, 0).
func seq2D[T realScalar](s [][]T, dt DType) (*Array, error) {
	if len(s) == 0 {
		return &Array{shape: Shape{0, 0}, dtype: dt, real: []float64{}}, nil
	}
	cols := len(s[0])
	buf := make([]float64, 0, len(s)*cols)
	for i, row := range s {
		if len(row) != cols {
			return nil, raggedRowErr(i, cols, len(row))
		}
		for _, v := range row {
			buf = append(buf, float64(v))
		}
	}

	return &Array{shape: Shape{len(s), cols}, dtype: dt, real: buf}, nil
}

// seq2DBool wraps a slice of bool slices as 0/1 values.
func seq2DBool(s [][]bool) (*Array, error) {
	if len(s) == 0 {
		return &Array{shape: Shape{0, 0}, dtype: Bool, real: []float64{}}, nil
	}
	cols := len(s[0])
	buf := make([]float64, 0, len(s)*cols)
	for i, row := range s {
		if len(row) != cols {
			return nil, raggedRowErr(i, cols, len(row))
		}
		for _, v := range row {
			f := 0.0
			if v {
				f = 1
			}
			buf = append(buf, f)
		}
	}

	return &Array{shape: Shape{len(s), cols}, dtype: Bool, real: buf}, nil
}

// seq2DComplex wraps a slice of complex slices.
func seq2DComplex[T ~complex64 | ~complex128](s [][]T, dt DType) (*Array, error) {
	if len(s) == 0 {
		return &Array{shape: Shape{0, 0}, dtype: dt, cplx: []complex128{}}, nil
	}
	cols := len(s[0])
	buf := make([]complex128, 0, len(s)*cols)
	for i, row := range s {
		if len(row) != cols {
			return nil, raggedRowErr(i, cols, len(row))
		}
		for _, v := range row {
			buf = append(buf, complex128(v))
		}
	}

	return &Array{shape: Shape{len(s), cols}, dtype: dt, cplx: buf}, nil
}

// raggedRowErr reports a row-length mismatch at nesting level 1.
func raggedRowErr(row, want, got int) error {
	return fmt.Errorf("level 1: row %d has length %d, expected %d: %w", row, got, want, ErrRagged)
}

// fromNested stacks the elements of a []any into one array.
// Stage 1 (Wrap): classify and wrap each element recursively.
// Stage 2 (Validate): all sibling shapes must match (rectangularity);
// nesting beyond MaxNestingDepth is unsupported.
// Stage 3 (Stack): concatenate buffers, promoting dtypes through the
// bool < integer < floating < complex lattice.
//
// An empty []any infers dtype Float64 by convention (there is no element
// to infer from). Complexity: O(size).
func fromNested(items []any, level int) (*Array, error) {
	if level > MaxNestingDepth {
		return nil, fmt.Errorf("nesting depth exceeds %d: %w", MaxNestingDepth, ErrUnsupportedType)
	}
	if len(items) == 0 {
		return &Array{shape: Shape{0}, dtype: Float64, real: []float64{}}, nil
	}

	// Wrap every sibling and verify they agree on shape.
	children := make([]*Array, len(items))
	dtype := DTypeInvalid
	for i, item := range items {
		child, err := fromAnyDepth(item, level)
		if err != nil {
			return nil, err
		}
		if i > 0 && !child.shape.Equal(children[0].shape) {
			return nil, fmt.Errorf("level %d: element %d has shape %s, expected %s: %w",
				level, i, child.shape, children[0].shape, ErrRagged)
		}
		children[i] = child
		dtype = promote(dtype, child.dtype)
	}

	// Resulting depth must stay within the supported nesting bound.
	shape := append(Shape{len(items)}, children[0].shape...)
	if len(shape) > MaxNestingDepth {
		return nil, fmt.Errorf("result would have %d dimensions, limit is %d: %w",
			len(shape), MaxNestingDepth, ErrUnsupportedType)
	}

	out := &Array{shape: shape, dtype: dtype}
	if dtype.IsComplex() {
		out.cplx = make([]complex128, 0, shape.Size())
		for _, child := range children {
			if child.IsComplex() {
				out.cplx = append(out.cplx, child.cplx...)
				continue
			}
			for _, v := range child.real {
				out.cplx = append(out.cplx, complex(v, 0))
			}
		}
	} else {
		out.real = make([]float64, 0, shape.Size())
		for _, child := range children {
			out.real = append(out.real, child.real...)
		}
	}

	return out, nil
}

// promote resolves the common dtype of two siblings through the numeric
// promotion lattice bool < integer < floating < complex. Equal dtypes stay;
// mixed dtypes of the same family widen to the canonical family dtype.
func promote(a, b DType) DType {
	if a == DTypeInvalid {
		return b
	}
	if b == DTypeInvalid || a == b {
		return a
	}

	ra, rb := promoRank(a), promoRank(b)
	r := ra
	if rb > r {
		r = rb
	}
	switch r {
	case rankComplex:
		return Complex128
	case rankFloating:
		return Float64
	case rankInteger:
		return Int64
	default:
		return Bool
	}
}

// Promotion ranks for the dtype lattice.
const (
	rankBool = iota
	rankInteger
	rankFloating
	rankComplex
)

// promoRank returns the lattice rank of a dtype.
func promoRank(d DType) int {
	switch {
	case d.IsComplex():
		return rankComplex
	case d.IsFloating():
		return rankFloating
	case d.IsInteger():
		return rankInteger
	default:
		return rankBool
	}
}
