// Package validate: structural checkers — CheckShape against a set of
// allowed shape alternatives (with -1 wildcards) and CheckNDim.

package validate

import (
	"strings"

	"github.com/jonaspleyer/pyvista/ndarray"
)

// ShapeSpec is an ordered list of allowed shape alternatives. An axis value
// of -1 inside an alternative is a wildcard matching any extent; any other
// negative value makes the specification itself invalid (ErrConfig).
type ShapeSpec []ndarray.Shape

// Shapes builds a ShapeSpec from shape alternatives, in matching order.
func Shapes(alts ...ndarray.Shape) ShapeSpec { return ShapeSpec(alts) }

// validate rejects malformed specifications before any input is inspected:
// a spec must contain at least one alternative and no axis below -1.
func (s ShapeSpec) validate() error {
	if len(s) == 0 {
		return errf(ErrConfig, "shape specification must contain at least one alternative")
	}
	for _, alt := range s {
		for _, d := range alt {
			if d < -1 {
				return errf(ErrConfig, "shape specification %s has invalid axis extent %d", alt, d)
			}
		}
	}

	return nil
}

// String renders the alternatives as "[(), (-1), (1, -1)]".
func (s ShapeSpec) String() string {
	parts := make([]string, len(s))
	for i, alt := range s {
		parts[i] = alt.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// matches reports whether the concrete shape satisfies any alternative.
func (s ShapeSpec) matches(actual ndarray.Shape) bool {
	for _, alt := range s {
		if shapeMatches(actual, alt) {
			return true
		}
	}

	return false
}

// shapeMatches compares a concrete shape against one alternative,
// honoring -1 wildcards on individual axes.
func shapeMatches(actual, allowed ndarray.Shape) bool {
	if len(actual) != len(allowed) {
		return false
	}
	for i := range actual {
		if allowed[i] != -1 && actual[i] != allowed[i] {
			return false
		}
	}

	return true
}

// CheckShape verifies that the input's shape matches at least one
// alternative of the specification. The default name is "Array".
//
// Matching is per-alternative: the dimension count must equal and every
// non-wildcard axis must equal. The error message names the offending
// shape and the full list of allowed alternatives.
func CheckShape(v any, spec ShapeSpec, name ...string) error {
	n := nameOr("Array", name)
	if err := spec.validate(); err != nil {
		return err
	}
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}

	actual := arr.Shape()
	if spec.matches(actual) {
		return nil
	}
	if len(spec) == 1 {
		return errf(ErrShape, "%s has shape %s which is not allowed; shape must be %s",
			n, actual, spec[0])
	}

	return errf(ErrShape, "%s has shape %s which is not allowed; shape must be one of %s",
		n, actual, spec)
}

// CheckNDim verifies that the input's dimension count is one of the given
// values. The default name is "Array".
func CheckNDim(v any, ndims []int, name ...string) error {
	n := nameOr("Array", name)
	if len(ndims) == 0 {
		return errf(ErrConfig, "CheckNDim requires at least one dimension count")
	}
	for _, d := range ndims {
		if d < 0 {
			return errf(ErrConfig, "dimension count %d is invalid", d)
		}
	}
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}

	nd := arr.NDim()
	for _, d := range ndims {
		if nd == d {
			return nil
		}
	}
	if len(ndims) == 1 {
		return errf(ErrShape, "%s has shape %s and %d dimensions; the number of dimensions must be %d",
			n, arr.Shape(), nd, ndims[0])
	}

	return errf(ErrShape, "%s has shape %s and %d dimensions; the number of dimensions must be one of %v",
		n, arr.Shape(), nd, ndims)
}
