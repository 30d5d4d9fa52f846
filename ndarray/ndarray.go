// Package ndarray: the Array container — a rectangular, row-major numeric
// buffer with an explicit Shape and DType. Array generalizes a dense 2-d
// matrix to n dimensions; element access is bounds-checked and returns
// sentinel errors, never panics, on user-triggered conditions.

package ndarray

import (
	"fmt"
	"math"
)

// Array is the canonical n-dimensional numeric buffer.
//
// Exactly one of the two payload slices is non-nil for non-empty arrays:
// real dtypes (including bool, stored as 0/1) live in the float64 buffer,
// complex dtypes in the complex128 buffer. Both buffers are row-major.
//
// Arrays are treated as immutable by every function in this module: all
// transforms return a new header and callers must not mutate the slices
// returned by Data or ComplexData.
type Array struct {
	shape Shape
	dtype DType
	real  []float64
	cplx  []complex128
}

// New creates an Array of the given shape and dtype, zero-initialized.
// Stage 1 (Validate): shape extents must be non-negative, dtype valid.
// Stage 2 (Allocate): flat backing slice of Size() elements.
// Complexity: O(size) time and memory.
func New(shape Shape, dtype DType) (*Array, error) {
	if err := shape.validateConcrete(); err != nil {
		return nil, err
	}
	if dtype == DTypeInvalid {
		return nil, fmt.Errorf("New: %w", ErrUnsupportedType)
	}

	a := &Array{shape: shape.Clone(), dtype: dtype}
	if dtype.IsComplex() {
		a.cplx = make([]complex128, shape.Size())
	} else {
		a.real = make([]float64, shape.Size())
	}

	return a, nil
}

// FromFloat64s wraps a flat float64 slice as a 1-d Float64 array.
// The slice is copied; the caller's slice is never aliased.
func FromFloat64s(data []float64) *Array {
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Array{shape: Shape{len(data)}, dtype: Float64, real: buf}
}

// ScalarOf wraps a single float64 as a 0-d Float64 array.
func ScalarOf(v float64) *Array {
	return &Array{shape: Shape{}, dtype: Float64, real: []float64{v}}
}

// Shape returns a copy of the array's shape; mutating it does not affect
// the array.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// DType returns the logical element type.
func (a *Array) DType() DType { return a.dtype }

// NDim returns the number of axes.
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the total element count.
func (a *Array) Size() int { return a.shape.Size() }

// IsComplex reports whether the array stores complex values.
func (a *Array) IsComplex() bool { return a.dtype.IsComplex() }

// Len returns the first-axis extent, or ErrNoLength for 0-d arrays
// (a scalar has no length).
func (a *Array) Len() (int, error) {
	if len(a.shape) == 0 {
		return 0, ErrNoLength
	}

	return a.shape[0], nil
}

// flatIndex converts a multi-index into a row-major flat offset.
// Complexity: O(ndim).
func (a *Array) flatIndex(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("index has %d axes, array has %d: %w", len(idx), len(a.shape), ErrOutOfRange)
	}
	flat := 0
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			return 0, fmt.Errorf("index %d on axis %d (extent %d): %w", j, i, a.shape[i], ErrOutOfRange)
		}
		flat = flat*a.shape[i] + j
	}

	return flat, nil
}

// At returns the real element at the given multi-index. A 0-d array takes
// an empty index. Complex arrays return ErrComplex.
func (a *Array) At(idx ...int) (float64, error) {
	if a.IsComplex() {
		return 0, ErrComplex
	}
	flat, err := a.flatIndex(idx)
	if err != nil {
		return 0, err
	}

	return a.real[flat], nil
}

// ComplexAt returns the element at the given multi-index as a complex128.
// Real arrays are promoted (imaginary part zero).
func (a *Array) ComplexAt(idx ...int) (complex128, error) {
	flat, err := a.flatIndex(idx)
	if err != nil {
		return 0, err
	}
	if a.IsComplex() {
		return a.cplx[flat], nil
	}

	return complex(a.real[flat], 0), nil
}

// FlatAt returns the real element at a flat row-major offset.
func (a *Array) FlatAt(i int) (float64, error) {
	if a.IsComplex() {
		return 0, ErrComplex
	}
	if i < 0 || i >= len(a.real) {
		return 0, fmt.Errorf("flat index %d (size %d): %w", i, len(a.real), ErrOutOfRange)
	}

	return a.real[i], nil
}

// Data returns the real backing buffer as a read-only view (no copy).
// Callers MUST NOT mutate the returned slice. Complex arrays return nil;
// use ComplexData instead.
func (a *Array) Data() []float64 { return a.real }

// ComplexData returns the complex backing buffer as a read-only view.
// Real arrays return nil.
func (a *Array) ComplexData() []complex128 { return a.cplx }

// Copy returns a deep copy of the array.
// Complexity: O(size) time and memory.
func (a *Array) Copy() *Array {
	out := &Array{shape: a.shape.Clone(), dtype: a.dtype}
	if a.real != nil {
		out.real = make([]float64, len(a.real))
		copy(out.real, a.real)
	}
	if a.cplx != nil {
		out.cplx = make([]complex128, len(a.cplx))
		copy(out.cplx, a.cplx)
	}

	return out
}

// AllFinite reports whether every element is finite (no NaN, no ±Inf).
// For complex arrays both the real and imaginary parts must be finite.
// Complexity: O(size).
func (a *Array) AllFinite() bool {
	for _, v := range a.real {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for _, v := range a.cplx {
		re, im := real(v), imag(v)
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			return false
		}
	}

	return true
}

// AllIntegral reports whether every real element equals its own floor.
// Complex arrays are never integral. NaN/Inf elements are not integral.
// Complexity: O(size).
func (a *Array) AllIntegral() bool {
	if a.IsComplex() {
		return false
	}
	for _, v := range a.real {
		if v != math.Floor(v) {
			return false
		}
	}

	return true
}

// String renders a compact debug form: dtype and shape, plus the literal
// contents for arrays of at most four elements. Larger arrays show only
// the element count.
func (a *Array) String() string {
	const previewLimit = 4

	if a == nil {
		return "Array(nil)"
	}
	n := a.Size()
	if n <= previewLimit {
		if a.IsComplex() {
			return fmt.Sprintf("Array<%s>%s%v", a.dtype, a.shape, a.cplx)
		}

		return fmt.Sprintf("Array<%s>%s%v", a.dtype, a.shape, a.real)
	}

	return fmt.Sprintf("Array<%s>%s with %d elements", a.dtype, a.shape, n)
}
