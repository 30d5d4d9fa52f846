// Package ndarray: sentinel error set.
// All constructors and transforms return these sentinels (optionally wrapped
// with context via fmt.Errorf("...: %w", ...)); callers match with errors.Is.
// No function in this package panics on user input.

package ndarray

import "errors"

var (
	// ErrRagged is returned when a nested sequence has sibling sub-sequences
	// of inconsistent lengths and therefore cannot form a rectangular array.
	ErrRagged = errors.New("ndarray: ragged nested sequence")

	// ErrUnsupportedType is returned when an input (or a nested element) is
	// not part of the closed set of supported array-like types.
	ErrUnsupportedType = errors.New("ndarray: unsupported input type")

	// ErrBadShape indicates an invalid shape value, e.g. a negative axis
	// extent in a concrete array shape.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch indicates that a reshape target is incompatible with
	// the array's element count.
	ErrShapeMismatch = errors.New("ndarray: reshape incompatible with element count")

	// ErrBroadcast indicates that an array cannot be broadcast to the
	// requested shape under trailing-dimension broadcasting rules.
	ErrBroadcast = errors.New("ndarray: cannot broadcast to shape")

	// ErrOutOfRange indicates an element index outside the array bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrComplex is returned when a real-valued view or conversion is
	// requested on an array with a complex dtype.
	ErrComplex = errors.New("ndarray: array has complex dtype")

	// ErrUnsafeCast is returned by AsType when the target dtype cannot
	// represent the array's values exactly (e.g. float data with fractional
	// parts cast to an integer dtype). Truncating casts are never performed
	// silently; callers must round or validate integer-likeness first.
	ErrUnsafeCast = errors.New("ndarray: cast would not preserve values")

	// ErrNoLength is returned by Len for 0-dimensional arrays, which have
	// no first-axis extent.
	ErrNoLength = errors.New("ndarray: scalar array has no length")
)
