// Package validate: dtype-category checkers — CheckSubDType, CheckNumeric,
// CheckReal. All of them classify by the array's dtype tag, never by value.

package validate

import (
	"fmt"
	"strings"

	"github.com/jonaspleyer/pyvista/ndarray"
)

// wrap converts an arbitrary input into a canonical array, prefixing
// conversion failures with the display name so errors read as
// "Array: <cause>". An input that is already a *ndarray.Array passes
// through as the same pointer.
func wrap(v any, name string) (*ndarray.Array, error) {
	arr, err := ndarray.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return arr, nil
}

// CheckSubDType verifies that the input's dtype belongs to at least one of
// the given classes. An empty class list is a caller bug and returns
// ErrConfig. The default name is "Input".
func CheckSubDType(v any, classes []ndarray.Class, name ...string) error {
	n := nameOr("Input", name)
	if len(classes) == 0 {
		return errf(ErrConfig, "CheckSubDType requires at least one dtype class")
	}
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}

	dt := arr.DType()
	for _, c := range classes {
		if dt.IsA(c) {
			return nil
		}
	}

	return errf(ErrDType, "%s has dtype %s which is not allowed; dtype must be a subtype of %s",
		n, dt, classList(classes))
}

// CheckNumeric verifies that the input's dtype is numeric: integer,
// floating or complex. Boolean arrays fail. The default name is "Array".
func CheckNumeric(v any, name ...string) error {
	n := nameOr("Array", name)
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}
	if !arr.DType().IsNumber() {
		return errf(ErrDType, "%s must be numeric; got dtype %s", n, arr.DType())
	}

	return nil
}

// CheckReal verifies that the input's dtype is real: integer or floating.
// Boolean and complex arrays fail. The default name is "Array".
func CheckReal(v any, name ...string) error {
	n := nameOr("Array", name)
	arr, err := wrap(v, n)
	if err != nil {
		return err
	}
	if !arr.DType().IsReal() {
		return errf(ErrDType, "%s must have real numbers; got dtype %s", n, arr.DType())
	}

	return nil
}

// classList renders a class set for error messages: "integer" or
// "one of [integer, floating]".
func classList(classes []ndarray.Class) string {
	if len(classes) == 1 {
		return classes[0].String()
	}
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = c.String()
	}

	return "one of [" + strings.Join(parts, ", ") + "]"
}
