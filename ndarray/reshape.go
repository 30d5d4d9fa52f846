// Package ndarray: structural transforms — Reshape and BroadcastTo.
// Both return new headers and never mutate the receiver. Reshape shares the
// backing buffer (element order is row-major either way); BroadcastTo
// materializes the expanded buffer.

package ndarray

import "fmt"

// Reshape returns an array with the same elements and the target shape.
//
// The target may contain at most one -1 axis, whose extent is inferred from
// the element count. A target whose size differs from the array's size
// returns ErrShapeMismatch naming the attempted target.
//
// The returned header shares the backing buffer with the receiver (arrays
// are read-only by contract, so sharing is safe). Reshaping to the current
// shape returns the receiver itself.
// Complexity: O(ndim).
func (a *Array) Reshape(target Shape) (*Array, error) {
	if a == nil {
		return nil, ErrNilArray
	}

	resolved, err := resolveTarget(target, a.Size())
	if err != nil {
		return nil, err
	}
	if resolved.Equal(a.shape) {
		return a, nil
	}

	return &Array{shape: resolved, dtype: a.dtype, real: a.real, cplx: a.cplx}, nil
}

// Flatten returns a 1-d view of the array. 0-d arrays flatten to shape (1).
func (a *Array) Flatten() (*Array, error) {
	return a.Reshape(Shape{-1})
}

// resolveTarget validates a reshape target against an element count and
// infers a single -1 wildcard axis.
func resolveTarget(target Shape, size int) (Shape, error) {
	resolved := target.Clone()
	inferAt := -1
	known := 1
	for i, d := range resolved {
		switch {
		case d == -1:
			if inferAt >= 0 {
				return nil, fmt.Errorf("reshape target %s has multiple inferred axes: %w", target, ErrBadShape)
			}
			inferAt = i
		case d < 0:
			return nil, fmt.Errorf("reshape target %s: %w", target, ErrBadShape)
		default:
			known *= d
		}
	}

	if inferAt >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("cannot reshape %d elements to %s: %w", size, target, ErrShapeMismatch)
		}
		resolved[inferAt] = size / known

		return resolved, nil
	}
	if known != size {
		return nil, fmt.Errorf("cannot reshape %d elements to %s: %w", size, target, ErrShapeMismatch)
	}

	return resolved, nil
}

// BroadcastTo returns an array expanded to the target shape under standard
// trailing-dimension broadcasting: shapes are aligned at their last axis,
// and each axis must either match or have extent 1 on the source (missing
// leading source axes count as 1). Incompatible shapes return ErrBroadcast.
//
// Broadcasting to the current shape returns the receiver itself; otherwise
// the expanded buffer is materialized.
// Complexity: O(target size).
func (a *Array) BroadcastTo(target Shape) (*Array, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if err := target.validateConcrete(); err != nil {
		return nil, err
	}
	if target.Equal(a.shape) {
		return a, nil
	}
	if len(target) < len(a.shape) {
		return nil, broadcastErr(a.shape, target)
	}

	// Align source axes to the right of the target and validate extents.
	offset := len(target) - len(a.shape)
	src := make(Shape, len(target))
	for i := range target {
		src[i] = 1
		if i >= offset {
			src[i] = a.shape[i-offset]
		}
		if src[i] != target[i] && src[i] != 1 {
			return nil, broadcastErr(a.shape, target)
		}
	}

	out := &Array{shape: target.Clone(), dtype: a.dtype}
	n := target.Size()
	if a.IsComplex() {
		out.cplx = make([]complex128, n)
	} else {
		out.real = make([]float64, n)
	}

	// Walk the target in row-major order, mapping each multi-index back to
	// the source by clamping broadcast axes to 0.
	idx := make([]int, len(target))
	for flat := 0; flat < n; flat++ {
		srcFlat := 0
		for i := range target {
			j := idx[i]
			if src[i] == 1 {
				j = 0
			}
			srcFlat = srcFlat*src[i] + j
		}
		if a.IsComplex() {
			out.cplx[flat] = a.cplx[srcFlat]
		} else {
			out.real[flat] = a.real[srcFlat]
		}

		// Advance the row-major multi-index.
		for i := len(target) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < target[i] {
				break
			}
			idx[i] = 0
		}
	}

	return out, nil
}

// broadcastErr reports an incompatible broadcast attempt.
func broadcastErr(from, to Shape) error {
	return fmt.Errorf("shape %s to %s: %w", from, to, ErrBroadcast)
}
