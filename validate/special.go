// Package validate: specialized validators — the general Array pipeline
// with mandatory constraints pre-bound. Each specialization accepts the
// input in a small set of canonical and convertible shapes, checked
// against the shape the caller actually passed (before any folding), so
// shape errors always name the original shape and the full alternative
// list.

package validate

import (
	"fmt"

	"github.com/jonaspleyer/pyvista/ndarray"
)

// shapeGate describes a specialization's shape contract: base alternatives
// accepted as-is, reshape alternatives folded to the target via Reshape,
// broadcast alternatives folded via BroadcastTo.
type shapeGate struct {
	base      ShapeSpec
	reshape   ShapeSpec
	broadcast ShapeSpec
	target    ndarray.Shape
}

// apply rejects overridden mandatory options, wraps the input, checks its
// original shape against all active alternatives and folds it to the
// target shape. The reshape and broadcast alternative groups are active
// only when the corresponding toggle allows them.
func (g shapeGate) apply(in any, o *Options, fn string) (*ndarray.Array, error) {
	if err := o.reject(fn, optShape, optReshape, optBroadcast); err != nil {
		return nil, err
	}

	allowed := append(ShapeSpec{}, g.base...)
	if o.allowReshape {
		allowed = append(allowed, g.reshape...)
	}
	if o.allowBroadcast {
		allowed = append(allowed, g.broadcast...)
	}

	arr, err := wrap(in, o.name)
	if err != nil {
		return nil, err
	}
	if err := CheckShape(arr, allowed, o.name); err != nil {
		return nil, err
	}

	actual := arr.Shape()
	switch {
	case g.base.matches(actual):
		// Already canonical.
	case o.allowReshape && g.reshape.matches(actual):
		arr, err = arr.Reshape(g.target)
	case o.allowBroadcast && g.broadcast.matches(actual):
		arr, err = arr.BroadcastTo(g.target)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.name, err)
	}

	return arr, nil
}

// Number validates a single real number and returns it as a float64.
//
// The input must be a scalar, a 0-d array, or (unless NoReshape is given)
// a single-element 1-d array, which is folded to 0-d. Unlike the general
// pipeline, Number requires a finite value by default; AllowNonFinite
// lifts that.
func Number(in any, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if !o.isSet(optName) {
		o.name = "Number"
	}
	if !o.isSet(optFinite) {
		o.mustBeFinite = true
	}

	gate := shapeGate{
		base:    Shapes(ndarray.Shape{}),
		reshape: Shapes(ndarray.Shape{1}),
		target:  ndarray.Shape{},
	}
	arr, err := gate.apply(in, &o, "validate.Number")
	if err != nil {
		return 0, err
	}
	arr, err = runPipeline(arr, &o)
	if err != nil {
		return 0, err
	}

	return arr.Scalar()
}

// ArrayN validates a flat vector of any length and returns it as a 1-d
// array. Scalars and single-row/single-column 2-d inputs are folded to
// 1-d unless NoReshape is given.
func ArrayN(in any, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)

	gate := shapeGate{
		base:    Shapes(ndarray.Shape{-1}),
		reshape: Shapes(ndarray.Shape{}, ndarray.Shape{1, -1}, ndarray.Shape{-1, 1}),
		target:  ndarray.Shape{-1},
	}
	arr, err := gate.apply(in, &o, "validate.ArrayN")
	if err != nil {
		return nil, err
	}

	return runPipeline(arr, &o)
}

// ArrayNUnsigned validates a flat vector of nonnegative integer-like
// values. The integrality and nonnegativity constraints are pre-bound;
// the shape contract is that of ArrayN.
func ArrayNUnsigned(in any, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	o.mustBeInteger = true
	o.mustBeNonnegative = true

	gate := shapeGate{
		base:    Shapes(ndarray.Shape{-1}),
		reshape: Shapes(ndarray.Shape{}, ndarray.Shape{1, -1}, ndarray.Shape{-1, 1}),
		target:  ndarray.Shape{-1},
	}
	arr, err := gate.apply(in, &o, "validate.ArrayNUnsigned")
	if err != nil {
		return nil, err
	}

	return runPipeline(arr, &o)
}

// Array3 validates a 3-element vector, e.g. a point or direction. Row and
// column forms (1, 3) and (3, 1) fold to (3) unless NoReshape is given;
// with WithBroadcast, a scalar or single-element vector broadcasts to all
// three components.
func Array3(in any, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)

	gate := shapeGate{
		base:      Shapes(ndarray.Shape{3}),
		reshape:   Shapes(ndarray.Shape{1, 3}, ndarray.Shape{3, 1}),
		broadcast: Shapes(ndarray.Shape{}, ndarray.Shape{1}),
		target:    ndarray.Shape{3},
	}
	arr, err := gate.apply(in, &o, "validate.Array3")
	if err != nil {
		return nil, err
	}

	return runPipeline(arr, &o)
}

// ArrayNx3 validates an (N, 3) array of rows, e.g. a point cloud. A single
// 3-element vector folds to one row unless NoReshape is given. N may be
// zero.
func ArrayNx3(in any, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)

	gate := shapeGate{
		base:    Shapes(ndarray.Shape{-1, 3}),
		reshape: Shapes(ndarray.Shape{3}),
		target:  ndarray.Shape{-1, 3},
	}
	arr, err := gate.apply(in, &o, "validate.ArrayNx3")
	if err != nil {
		return nil, err
	}

	return runPipeline(arr, &o)
}

// DataRange validates a (lo, hi) pair: exactly two elements in ascending
// order. Both the shape and the ascending-sorted constraint are
// pre-bound.
func DataRange(in any, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	if !o.isSet(optName) {
		o.name = "Data Range"
	}
	if err := o.reject("validate.DataRange", optShape, optReshape, optBroadcast, optSorted); err != nil {
		return nil, err
	}
	o.mustBeSorted = true
	o.sorted = DefaultSortedOpts()

	arr, err := wrap(in, o.name)
	if err != nil {
		return nil, err
	}
	if err := CheckShape(arr, Shapes(ndarray.Shape{2}), o.name); err != nil {
		return nil, err
	}

	return runPipeline(arr, &o)
}

// dimensionalityLabels are the accepted string spellings, index = value.
var dimensionalityLabels = []string{"0D", "1D", "2D", "3D"}

// Dimensionality validates a spatial dimensionality: an integer-like
// scalar in [0, 3], or one of the string labels "0D" through "3D". Unless
// NoReshape is given, a single-element sequence carrying either form is
// folded to its element. The integrality and range constraints are
// pre-bound.
func Dimensionality(in any, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	if !o.isSet(optName) {
		o.name = "Dimensionality"
		o.set |= optName
	}

	if s, ok := dimensionalityLabel(in, o.allowReshape); ok {
		d := -1
		for i, lbl := range dimensionalityLabels {
			if s == lbl {
				d = i
				break
			}
		}
		if d < 0 {
			return 0, errf(ErrValue, "%s '%s' is not valid; %s must be one of [0 1 2 3 0D 1D 2D 3D]",
				o.name, s, o.name)
		}
		in = d
	}

	if err := o.reject("validate.Dimensionality", optInteger, optRange); err != nil {
		return 0, err
	}
	o.mustBeInteger = true
	o.mustBeInRange = true
	o.rangeLo, o.rangeHi = 0, 3
	o.strictLower, o.strictUpper = false, false

	v, err := Number(in, withGathered(&o)...)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// dimensionalityLabel extracts a label string from the input: a bare
// string, or (when folding is allowed) a single-element sequence holding
// one.
func dimensionalityLabel(in any, allowSeq bool) (string, bool) {
	switch v := in.(type) {
	case string:
		return v, true
	case []string:
		if allowSeq && len(v) == 1 {
			return v[0], true
		}
	case []any:
		if allowSeq && len(v) == 1 {
			if s, ok := v[0].(string); ok {
				return s, true
			}
		}
	}

	return "", false
}

// withGathered adapts an already-gathered option set back into a single
// Option so nested specializations can reuse it verbatim.
func withGathered(src *Options) []Option {
	return []Option{func(o *Options) { *o = *src }}
}
