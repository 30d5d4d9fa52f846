// Package pyvista hosts the array validation and coercion toolkit: a
// small, dependency-light way to accept loosely typed numeric input and
// hand back canonical, contract-checked arrays.
//
// 🚀 What is pyvista/validate?
//
//	A pure-Go pair of packages that brings together:
//		• Canonical arrays: one rectangular, row-major container for scalars,
//		  vectors, matrices and nested input up to depth 4
//		• Structural classification: a closed set of accepted input variants,
//		  dispatched by an exhaustive type switch — no reflection
//		• Checkers: shape, ndim, length, dtype class, finiteness, integrality,
//		  bounds, ranges, sortedness, set membership
//		• A staged pipeline: wrap → transform → check → coerce, fail-fast,
//		  with an identity-preserving fast path for already-valid arrays
//		• Specializations: numbers, N-vectors, 3-vectors, (N, 3) point arrays,
//		  data ranges, axes frames, rotations and homogeneous transforms
//
// ✨ Why choose it?
//
//   - Predictable – every violation is a wrapped sentinel error, matchable
//     with errors.Is; messages name the value, the offense and the contract
//   - Honest casts – no silent truncation: a float array only becomes an
//     integer array when every value already is one
//   - Pure Go – no cgo, no hidden deps
//   - Stateless – every call is a pure function; concurrent use is safe
//
// Under the hood, everything is organized under two subpackages:
//
//	ndarray/  — the canonical Array container: classification, shapes,
//	            dtypes, reshape/broadcast, casts and conversions
//	validate/ — checkers, the staged validation pipeline and the
//	            specialized validators built on top of it
//
// Quick example:
//
//	points, err := validate.ArrayNx3([][]float64{{1, 2, 3}, {4, 5, 6}},
//	    validate.MustBeFinite(),
//	)
//
// accepts a slice of rows, verifies the (N, 3) contract and returns the
// canonical array — or the input pointer itself when it already complies.
//
//	go get github.com/jonaspleyer/pyvista
package pyvista
