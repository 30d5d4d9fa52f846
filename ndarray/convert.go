// Package ndarray: dtype casting and conversion back to plain Go values.
// AsType implements the explicit cast policy: casts must preserve values
// exactly, otherwise ErrUnsafeCast — there is no silent truncation path.

package ndarray

import (
	"fmt"
	"math"
)

// AsType returns the array retagged (and, when necessary, re-buffered) to
// the target dtype.
//
// Policy, in order:
//   - same dtype: the receiver itself is returned (identity).
//   - real → complex: values are promoted with zero imaginary parts.
//   - complex → real: ErrComplex (imaginary parts cannot be discarded).
//   - real → integer or bool target: every value must already be exactly
//     representable (integral; 0/1 for bool), otherwise ErrUnsafeCast.
//     Rounding is the caller's job — this package never truncates.
//   - real → real (float targets): always allowed.
//
// Complexity: O(size) when a new buffer is needed, O(1) otherwise.
func (a *Array) AsType(target DType) (*Array, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if target == DTypeInvalid {
		return nil, fmt.Errorf("AsType: %w", ErrUnsupportedType)
	}
	if target == a.dtype {
		return a, nil
	}

	if a.IsComplex() {
		if !target.IsComplex() {
			return nil, fmt.Errorf("cast %s to %s: %w", a.dtype, target, ErrComplex)
		}

		return &Array{shape: a.shape.Clone(), dtype: target, cplx: a.cplx}, nil
	}

	if target.IsComplex() {
		buf := make([]complex128, len(a.real))
		for i, v := range a.real {
			buf[i] = complex(v, 0)
		}

		return &Array{shape: a.shape.Clone(), dtype: target, cplx: buf}, nil
	}

	// Real to real: guard exact representability for integer/bool targets.
	if target.IsInteger() {
		for _, v := range a.real {
			if v != math.Floor(v) || math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("cast %s to %s with value %v: %w", a.dtype, target, v, ErrUnsafeCast)
			}
			if target.IsUnsigned() && v < 0 {
				return nil, fmt.Errorf("cast %s to %s with negative value %v: %w", a.dtype, target, v, ErrUnsafeCast)
			}
		}
	}
	if target.IsBool() {
		for _, v := range a.real {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("cast %s to %s with value %v: %w", a.dtype, target, v, ErrUnsafeCast)
			}
		}
	}

	return &Array{shape: a.shape.Clone(), dtype: target, real: a.real}, nil
}

// Scalar returns the single element of a 0-d (or single-element) real
// array. Arrays with more than one element return ErrShapeMismatch.
func (a *Array) Scalar() (float64, error) {
	if a.IsComplex() {
		return 0, ErrComplex
	}
	if a.Size() != 1 {
		return 0, fmt.Errorf("array %s is not a scalar: %w", a.shape, ErrShapeMismatch)
	}

	return a.real[0], nil
}

// Float64s returns a flat copy of a real array's elements in row-major
// order. Complex arrays return ErrComplex.
func (a *Array) Float64s() ([]float64, error) {
	if a.IsComplex() {
		return nil, ErrComplex
	}
	out := make([]float64, len(a.real))
	copy(out, a.real)

	return out, nil
}

// Complex128s returns a flat copy of the elements as complex128 values,
// promoting real arrays with zero imaginary parts.
func (a *Array) Complex128s() []complex128 {
	if a.IsComplex() {
		out := make([]complex128, len(a.cplx))
		copy(out, a.cplx)

		return out
	}
	out := make([]complex128, len(a.real))
	for i, v := range a.real {
		out[i] = complex(v, 0)
	}

	return out
}

// Int64s returns a flat copy of the elements as int64 values. Every element
// must be exactly representable as an integer, otherwise ErrUnsafeCast —
// the same no-truncation policy as AsType.
func (a *Array) Int64s() ([]int64, error) {
	if a.IsComplex() {
		return nil, ErrComplex
	}
	out := make([]int64, len(a.real))
	for i, v := range a.real {
		if v != math.Floor(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("value %v at flat index %d: %w", v, i, ErrUnsafeCast)
		}
		out[i] = int64(v)
	}

	return out, nil
}

// Bools returns a flat copy of the elements as bool values. Every element
// must be exactly 0 or 1, otherwise ErrUnsafeCast.
func (a *Array) Bools() ([]bool, error) {
	if a.IsComplex() {
		return nil, ErrComplex
	}
	out := make([]bool, len(a.real))
	for i, v := range a.real {
		switch v {
		case 0:
			// false already
		case 1:
			out[i] = true
		default:
			return nil, fmt.Errorf("value %v at flat index %d: %w", v, i, ErrUnsafeCast)
		}
	}

	return out, nil
}

// Nested2D returns a 2-d real array as a slice of row slices.
// Non-2-d or complex arrays return an error.
func (a *Array) Nested2D() ([][]float64, error) {
	if a.IsComplex() {
		return nil, ErrComplex
	}
	if a.NDim() != 2 {
		return nil, fmt.Errorf("array %s is not 2-dimensional: %w", a.shape, ErrShapeMismatch)
	}
	rows, cols := a.shape[0], a.shape[1]
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		copy(row, a.real[i*cols:(i+1)*cols])
		out[i] = row
	}

	return out, nil
}

// NestedAny converts the array back to plain Go values preserving the exact
// nesting depth: a 0-d array yields a float64 (or bool/complex128 per
// dtype), a 1-d array a flat slice, deeper arrays nested []any levels.
// The integer dtypes yield float64 leaves; use Int64s for typed integers.
func (a *Array) NestedAny() any {
	return a.nestedFrom(0, 0, a.Size())
}

// nestedFrom builds the nested representation of the sub-block
// [lo, lo+size) at the given axis.
func (a *Array) nestedFrom(axis, lo, size int) any {
	if axis == len(a.shape) {
		switch {
		case a.IsComplex():
			return a.cplx[lo]
		case a.dtype.IsBool():
			return a.real[lo] == 1
		default:
			return a.real[lo]
		}
	}

	extent := a.shape[axis]
	out := make([]any, extent)
	if extent == 0 {
		return out
	}
	stride := size / extent
	for i := 0; i < extent; i++ {
		out[i] = a.nestedFrom(axis+1, lo+i*stride, stride)
	}

	return out
}
