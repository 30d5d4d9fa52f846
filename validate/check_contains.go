// Package validate: CheckContains — membership of a single item in an
// allowed set. Generic over any comparable element type.

package validate

// CheckContains verifies that item is one of the allowed values. An empty
// allowed set is a caller bug and returns ErrConfig. The default name is
// "Input".
func CheckContains[T comparable](allowed []T, item T, name ...string) error {
	n := nameOr("Input", name)
	if len(allowed) == 0 {
		return errf(ErrConfig, "CheckContains requires at least one allowed value")
	}
	for _, a := range allowed {
		if item == a {
			return nil
		}
	}

	return errf(ErrValue, "%s '%v' is not valid; %s must be one of %v", n, item, n, allowed)
}
