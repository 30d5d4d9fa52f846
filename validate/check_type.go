// Package validate: CheckKind — type-level gating over the closed set of
// structural input variants. This is the static counterpart of open-ended
// runtime type inspection: classification is a single exhaustive switch in
// ndarray.KindOf, and callers constrain against its tags.

package validate

import "github.com/jonaspleyer/pyvista/ndarray"

// CheckKind verifies that the input classifies as one of the given
// structural variants (scalar, flat sequence, 2-d sequence, nested, or
// native array). An empty kind set is a caller bug and returns ErrConfig.
// The default name is "Input".
func CheckKind(v any, kinds []ndarray.Kind, name ...string) error {
	n := nameOr("Input", name)
	if len(kinds) == 0 {
		return errf(ErrConfig, "CheckKind requires at least one kind")
	}

	k := ndarray.KindOf(v)
	for _, want := range kinds {
		if k == want {
			return nil
		}
	}
	if k == ndarray.KindInvalid {
		return errf(ErrType, "%s has type %T which is not array-like", n, v)
	}

	return errf(ErrType, "%s classifies as %s which is not allowed; kind must be one of %v", n, k, kinds)
}
