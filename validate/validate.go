// Package validate: the general Array pipeline. Specialized validators in
// special.go and axes.go all bottom out here.

package validate

import (
	"fmt"

	"github.com/jonaspleyer/pyvista/ndarray"
)

// Array wraps an arbitrary array-like input into a canonical
// ndarray.Array and validates it against the configured constraints.
//
// Stages, in fixed order:
//  1. Wrap: classify and convert the input (scalars, flat and 2-d slices
//     of any numeric Go type, nested []any up to depth 4, or an existing
//     *ndarray.Array passed through unchanged).
//  2. Transform: ReshapeTo, then BroadcastTo, when requested.
//  3. Check, fail-fast: real dtype (on by default), dtype classes, shape,
//     ndim, length, finiteness, integrality, nonnegativity, range,
//     sortedness.
//  4. Output: coerce to the requested output dtype, copy if requested.
//
// When the input is already a *ndarray.Array that passes every check and
// no transform, cast or copy applies, the returned pointer is the input
// itself.
func Array(in any, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)

	return runPipeline(in, &o)
}

// runPipeline executes the staged validation for an already-gathered
// option set. Specializations call this directly after pre-binding.
func runPipeline(in any, o *Options) (*ndarray.Array, error) {
	arr, err := wrap(in, o.name)
	if err != nil {
		return nil, err
	}

	if o.isSet(optReshape) {
		arr, err = arr.Reshape(o.reshapeTo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.name, err)
		}
	}
	if o.isSet(optBroadcast) {
		arr, err = arr.BroadcastTo(o.broadcastTo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.name, err)
		}
	}

	if err := runChecks(arr, o); err != nil {
		return nil, err
	}

	if o.isSet(optDTypeOut) {
		arr, err = arr.AsType(o.dtypeOut)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.name, err)
		}
	}
	if o.copyOut {
		arr = arr.Copy()
	}

	return arr, nil
}

// runChecks applies the configured checkers in the documented order and
// stops at the first violation.
func runChecks(arr *ndarray.Array, o *Options) error {
	if o.mustBeReal {
		if err := CheckReal(arr, o.name); err != nil {
			return err
		}
	}
	if o.isSet(optDType) {
		if err := CheckSubDType(arr, o.dtypeClasses, o.name); err != nil {
			return err
		}
	}
	if o.isSet(optShape) {
		if err := CheckShape(arr, o.shapeSpec, o.name); err != nil {
			return err
		}
	}
	if o.isSet(optNDim) {
		if err := CheckNDim(arr, o.ndims, o.name); err != nil {
			return err
		}
	}
	if o.isSet(optLength) {
		if err := CheckLength(arr, o.length, o.name); err != nil {
			return err
		}
	}
	if o.mustBeFinite {
		if err := CheckFinite(arr, o.name); err != nil {
			return err
		}
	}
	if o.mustBeInteger {
		if err := CheckInteger(arr, o.integerStrict, o.name); err != nil {
			return err
		}
	}
	if o.mustBeNonnegative {
		if err := CheckNonnegative(arr, o.name); err != nil {
			return err
		}
	}
	if o.mustBeInRange {
		rng := []float64{o.rangeLo, o.rangeHi}
		if err := CheckRange(arr, rng, o.strictLower, o.strictUpper, o.name); err != nil {
			return err
		}
	}
	if o.mustBeSorted {
		if err := CheckSorted(arr, o.sorted, o.name); err != nil {
			return err
		}
	}

	return nil
}
