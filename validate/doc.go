// Package validate provides runtime contract checking for array-like
// values: shape, dtype, range, sortedness, finiteness and friends.
//
// The package has two layers:
//
//   - Checkers (CheckShape, CheckSorted, CheckRange, ...): independent pure
//     predicates. Each checks exactly one property of a value, returns nil
//     on success and a wrapped sentinel error on violation, and never
//     mutates its input. Every checker takes an optional trailing name used
//     only in error messages.
//
//   - The pipeline (Array and its specializations ArrayN, Array3,
//     ArrayNx3, Number, DataRange, ...): wraps an input into a canonical
//     ndarray.Array, applies an optional reshape or broadcast, runs the
//     requested checkers in a fixed order (dtype, then shape/ndim/length,
//     then numeric properties, then range/sortedness), coerces the output
//     dtype, and returns the result. Validation is fail-fast: the first
//     violated constraint is reported and nothing else runs.
//
// Specializations pre-bind mandatory constraints (typically the shape) on
// top of the general pipeline; a caller attempting to override a mandatory
// constraint gets ErrConfig, which signals API misuse rather than invalid
// input data.
//
// Every call is stateless and purely computational: the same input with
// the same options always yields the same output or the same error, there
// are no side effects, and concurrent calls from multiple goroutines are
// safe as long as inputs are not mutated mid-call.
//
// A successfully validated value validates again: feeding the output of
// Array back with the same options succeeds and returns an equal value.
// When the input is already a *ndarray.Array that satisfies all
// constraints as-is and no copy is requested, the pipeline returns the
// very same pointer (the identity-preserving fast path).
package validate
