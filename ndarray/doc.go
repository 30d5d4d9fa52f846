// Package ndarray provides the canonical in-memory representation used by
// the validation layer: a rectangular, row-major, homogeneous numeric buffer
// with an explicit shape and element type.
//
// The package has two jobs:
//
//   - Classification: FromAny inspects an arbitrary array-like input
//     (a bare number, a flat slice, a slice of slices, a nested []any up to
//     depth 4, or an existing *Array) and normalizes it into an Array.
//     Classification is structural and exhaustive over a closed set of Go
//     types; ragged nested input and unsupported element types are rejected
//     at wrap time.
//   - Canonical access: Array exposes Shape, DType, element access and
//     structural transforms (Reshape, BroadcastTo, AsType) plus conversions
//     back to plain Go values (slices, nested slices, scalars).
//
// An Array is conceptually immutable: every transform returns a new header
// (sharing or replacing the backing buffer) and never mutates its receiver.
// Wrapping an input never mutates the input. The package holds no global
// state, so concurrent use from multiple goroutines is safe as long as the
// caller does not mutate an input slice mid-call.
//
// Element storage is float64 for all real dtypes (bool is stored as 0/1)
// and complex128 for complex dtypes; the DType tag preserves the logical
// element type for dtype checks and output conversion.
package ndarray
