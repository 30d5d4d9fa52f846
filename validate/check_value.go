// Package validate: numeric-value checkers — finiteness, integrality,
// bounds and ranges. Bound comparisons require a real dtype; NaN bounds are
// a caller bug (ErrConfig), never silently vacuous.

package validate

import (
	"math"

	"github.com/jonaspleyer/pyvista/ndarray"
)

// CheckFinite verifies that every element is finite: no NaN and no ±Inf.
// For complex arrays both components of every element must be finite.
// The default name is "Array".
func CheckFinite(v any, name ...string) error {
	n := nameOr("Array", name)
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}
	if !arr.AllFinite() {
		return errf(ErrValue, "%s must have finite values", n)
	}

	return nil
}

// CheckInteger verifies integrality. With strict=false any real array whose
// values all equal their floor passes (2.0 is integer-like); with
// strict=true the dtype itself must be an integer subtype, so float arrays
// fail regardless of their values. The default name is "Array".
func CheckInteger(v any, strict bool, name ...string) error {
	n := nameOr("Array", name)
	if strict {
		return CheckSubDType(v, []ndarray.Class{ndarray.ClassInteger}, n)
	}
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}
	if !arr.AllIntegral() {
		return errf(ErrValue, "%s must have integer-like values", n)
	}

	return nil
}

// CheckGreaterThan verifies that every element exceeds the bound (strict)
// or at least equals it (non-strict). The array must have a real dtype.
// The default name is "Array".
func CheckGreaterThan(v any, bound float64, strict bool, name ...string) error {
	n := nameOr("Array", name)
	if math.IsNaN(bound) {
		return errf(ErrConfig, "comparison bound must not be NaN")
	}
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}
	if err := CheckReal(arr, n); err != nil {
		return err
	}

	for _, x := range arr.Data() {
		if strict && !(x > bound) {
			return errf(ErrValue, "%s values must all be greater than %v", n, bound)
		}
		if !strict && !(x >= bound) {
			return errf(ErrValue, "%s values must all be greater than or equal to %v", n, bound)
		}
	}

	return nil
}

// CheckLessThan verifies that every element is below the bound (strict) or
// at most equals it (non-strict). The array must have a real dtype.
// The default name is "Array".
func CheckLessThan(v any, bound float64, strict bool, name ...string) error {
	n := nameOr("Array", name)
	if math.IsNaN(bound) {
		return errf(ErrConfig, "comparison bound must not be NaN")
	}
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}
	if err := CheckReal(arr, n); err != nil {
		return err
	}

	for _, x := range arr.Data() {
		if strict && !(x < bound) {
			return errf(ErrValue, "%s values must all be less than %v", n, bound)
		}
		if !strict && !(x <= bound) {
			return errf(ErrValue, "%s values must all be less than or equal to %v", n, bound)
		}
	}

	return nil
}

// CheckNonnegative verifies that every element is >= 0.
// The default name is "Array".
func CheckNonnegative(v any, name ...string) error {
	return CheckGreaterThan(v, 0, false, nameOr("Array", name))
}

// CheckRange verifies that every element lies within [rng[0], rng[1]], with
// each end independently strict or inclusive. The range itself is validated
// first: it must be a two-element ascending pair, reported under the name
// "Range" so a bad range reads as a caller bug, not an input failure.
// The default name for the checked value is "Array".
func CheckRange(v any, rng []float64, strictLower, strictUpper bool, name ...string) error {
	n := nameOr("Array", name)
	if err := CheckShape(rng, Shapes(ndarray.Shape{2}), "Range"); err != nil {
		return err
	}
	if err := CheckSorted(rng, DefaultSortedOpts(), "Range"); err != nil {
		return err
	}

	if err := CheckGreaterThan(v, rng[0], strictLower, n); err != nil {
		return err
	}

	return CheckLessThan(v, rng[1], strictUpper, n)
}
