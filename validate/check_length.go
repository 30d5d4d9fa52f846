// Package validate: CheckLength — first-axis length against an exact set
// and/or inclusive bounds.

package validate

// LengthUnbounded disables a Min or Max bound in LengthOpts.
const LengthUnbounded = -1

// LengthOpts selects the length constraints CheckLength enforces. Zero or
// more constraints may be active at once; with none active, CheckLength
// only verifies that the input has a length at all.
type LengthOpts struct {
	// Exact lists allowed lengths. Empty means any length.
	Exact []int

	// Min and Max bound the length inclusively; LengthUnbounded disables
	// either end.
	Min, Max int

	// MustBe1D additionally constrains the input to exactly one dimension.
	MustBe1D bool

	// AllowScalar treats a 0-d input as having length 1 instead of
	// failing with ErrType.
	AllowScalar bool
}

// DefaultLengthOpts returns options with every constraint disabled.
func DefaultLengthOpts() LengthOpts {
	return LengthOpts{Min: LengthUnbounded, Max: LengthUnbounded}
}

// CheckLength verifies the first-axis length of the input.
//
// A 0-d input has no length: it fails with ErrType unless AllowScalar is
// set, in which case it counts as length 1. The Min/Max pair is validated
// as an ascending range before use. The default name is "Array".
func CheckLength(v any, opts LengthOpts, name ...string) error {
	n := nameOr("Array", name)
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}

	length, err := arr.Len()
	if err != nil {
		if !opts.AllowScalar {
			return errf(ErrType, "%s is a scalar and has no length", n)
		}
		length = 1
	}

	if opts.MustBe1D && arr.NDim() > 1 {
		if err := CheckNDim(arr, []int{1}, n); err != nil {
			return err
		}
	}

	if len(opts.Exact) > 0 {
		ok := false
		for _, want := range opts.Exact {
			if length == want {
				ok = true

				break
			}
		}
		if !ok {
			if len(opts.Exact) == 1 {
				return errf(ErrValue, "%s must have a length equal to %d; got length %d",
					n, opts.Exact[0], length)
			}

			return errf(ErrValue, "%s must have a length equal to any of %v; got length %d",
				n, opts.Exact, length)
		}
	}

	if opts.Min != LengthUnbounded && opts.Max != LengthUnbounded {
		if err := CheckSorted([]int{opts.Min, opts.Max}, DefaultSortedOpts(), "Length range"); err != nil {
			return err
		}
	}
	if opts.Min != LengthUnbounded && length < opts.Min {
		return errf(ErrValue, "%s must have a minimum length of %d; got length %d", n, opts.Min, length)
	}
	if opts.Max != LengthUnbounded && length > opts.Max {
		return errf(ErrValue, "%s must have a maximum length of %d; got length %d", n, opts.Max, length)
	}

	return nil
}
