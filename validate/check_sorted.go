// Package validate: CheckSorted — monotonicity along an axis, in any of the
// four orderings (ascending/descending × strict/non-strict).

package validate

import "math"

// Axis selectors for SortedOpts. Any other value in [-ndim, ndim-1]
// addresses that axis directly (negative values count from the end).
const (
	// AxisLast checks sortedness along the last axis (the default).
	AxisLast = -1

	// AxisFlatten checks the row-major flattening of the whole array.
	AxisFlatten = math.MinInt32
)

// SortedOpts selects the ordering CheckSorted enforces.
type SortedOpts struct {
	// Ascending selects non-decreasing (or strictly increasing) order;
	// false selects descending.
	Ascending bool

	// Strict forbids equal adjacent elements.
	Strict bool

	// Axis is the axis to compare along; see AxisLast and AxisFlatten.
	Axis int
}

// DefaultSortedOpts returns the default ordering: non-strict ascending
// along the last axis.
func DefaultSortedOpts() SortedOpts {
	return SortedOpts{Ascending: true, Strict: false, Axis: AxisLast}
}

// CheckSorted verifies that the input is sorted along the selected axis.
//
// Scalars and arrays with fewer than two elements along the axis are
// trivially sorted. Complex arrays have no ordering and fail with ErrDType.
// An axis outside [-ndim, ndim-1] returns ErrConfig. The default name is
// "Array".
func CheckSorted(v any, opts SortedOpts, name ...string) error {
	n := nameOr("Array", name)
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}
	if arr.IsComplex() {
		return errf(ErrDType, "%s must have real numbers to be checked for sortedness; got dtype %s",
			n, arr.DType())
	}
	if arr.NDim() == 0 || arr.Size() == 0 {
		return nil
	}

	if opts.Axis == AxisFlatten {
		flat, ferr := arr.Flatten()
		if ferr != nil {
			return ferr
		}
		arr = flat
	}

	shape := arr.Shape()
	axis := opts.Axis
	if opts.Axis == AxisFlatten {
		axis = 0
	} else {
		if axis < -arr.NDim() || axis >= arr.NDim() {
			return errf(ErrConfig, "axis %d is out of bounds for an array with %d dimensions", opts.Axis, arr.NDim())
		}
		if axis < 0 {
			axis += arr.NDim()
		}
	}

	// Stride of the compare axis in the row-major flat layout.
	stride := 1
	for i := axis + 1; i < len(shape); i++ {
		stride *= shape[i]
	}

	data := arr.Data()
	extent := shape[axis]
	for flat := range data {
		coord := (flat / stride) % extent
		if coord == 0 {
			continue
		}
		prev, cur := data[flat-stride], data[flat]
		if !inOrder(prev, cur, opts) {
			return errf(ErrValue, "%s %s must be sorted in %s order", n, arr, orderName(opts))
		}
	}

	return nil
}

// inOrder reports whether the adjacent pair (prev, cur) satisfies the
// requested ordering.
func inOrder(prev, cur float64, opts SortedOpts) bool {
	switch {
	case opts.Ascending && opts.Strict:
		return prev < cur
	case opts.Ascending:
		return prev <= cur
	case opts.Strict:
		return prev > cur
	default:
		return prev >= cur
	}
}

// orderName renders the ordering for error messages, e.g.
// "strict ascending".
func orderName(opts SortedOpts) string {
	dir := "descending"
	if opts.Ascending {
		dir = "ascending"
	}
	if opts.Strict {
		return "strict " + dir
	}

	return dir
}
