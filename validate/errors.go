// Package validate: sentinel error set (one per constraint family).
// Checkers and the pipeline return these sentinels wrapped with a precise,
// parameterized message; callers match with errors.Is. Ragged and
// unsupported-type conditions surface the ndarray sentinels unchanged
// (ndarray.ErrRagged, ndarray.ErrUnsupportedType).

package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrType is returned for type-level violations: a container or element
	// type outside the supported set where one was required.
	ErrType = errors.New("validate: type constraint violated")

	// ErrDType is returned for dtype-category violations: non-numeric,
	// non-real, complex where real is required, wrong dtype subtype.
	ErrDType = errors.New("validate: dtype constraint violated")

	// ErrShape is returned for shape, ndim and length mismatches against
	// one or more allowed alternatives.
	ErrShape = errors.New("validate: shape constraint violated")

	// ErrValue is returned for numeric-value violations: out of range, not
	// sorted, not finite, not integer-like, negative where nonnegative is
	// required, not contained in an allowed set.
	ErrValue = errors.New("validate: value constraint violated")

	// ErrConfig is returned when a caller misuses a specialized validator,
	// e.g. by overriding a mandatory pre-bound constraint, or passes a
	// nonsensical constraint parameter. It signals a bug at the call site,
	// not invalid input data.
	ErrConfig = errors.New("validate: invalid validator configuration")
)

// errf wraps a sentinel with a formatted message, keeping the sentinel
// matchable via errors.Is.
func errf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}

// nameOr resolves the optional trailing name parameter of a checker
// against its default label.
func nameOr(def string, name []string) string {
	if len(name) > 0 && name[0] != "" {
		return name[0]
	}

	return def
}
