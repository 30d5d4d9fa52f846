// Package validate: functional options for the Array pipeline.
//
// Options follow the usual pattern: a private Options struct with safe
// defaults, one exported Option setter per knob, and gatherOptions to fold
// a call's setters over the defaults. Options additionally records which
// knobs the caller touched (a bitmask), which lets specialized validators
// detect attempts to override their mandatory pre-bound constraints.

package validate

import "github.com/jonaspleyer/pyvista/ndarray"

// Defaults applied by gatherOptions before caller setters run.
const (
	// DefaultName labels the validated value in error messages.
	DefaultName = "Array"

	// DefaultMustBeReal: the pipeline rejects bool and complex dtypes
	// unless AllowNonReal is given.
	DefaultMustBeReal = true

	// DefaultAllowReshape: specialized validators fold reshape-compatible
	// input shapes (e.g. a (1, 3) row into a (3) vector) unless NoReshape
	// is given.
	DefaultAllowReshape = true
)

// optionFlag identifies one pipeline knob for explicit-set tracking.
type optionFlag uint32

const (
	optName optionFlag = 1 << iota
	optDType
	optShape
	optNDim
	optLength
	optReal
	optFinite
	optInteger
	optSorted
	optRange
	optNonnegative
	optReshape
	optBroadcast
	optDTypeOut
	optCopy
)

// flagNames maps each knob to the exported setter that controls it, for
// ErrConfig messages raised by specialized validators.
var flagNames = map[optionFlag]string{
	optName:        "WithName",
	optDType:       "MustHaveDType",
	optShape:       "MustHaveShape",
	optNDim:        "MustHaveNDim",
	optLength:      "MustHaveLength",
	optReal:        "MustBeReal/AllowNonReal",
	optFinite:      "MustBeFinite",
	optInteger:     "MustBeInteger",
	optSorted:      "MustBeSorted",
	optRange:       "MustBeInRange",
	optNonnegative: "MustBeNonnegative",
	optReshape:     "ReshapeTo",
	optBroadcast:   "BroadcastTo",
	optDTypeOut:    "WithDTypeOut",
	optCopy:        "WithCopy",
}

// Options carries the full configuration of one Array pipeline run.
type Options struct {
	name string

	mustBeReal        bool
	dtypeClasses      []ndarray.Class
	shapeSpec         ShapeSpec
	ndims             []int
	length            LengthOpts
	mustBeFinite      bool
	mustBeInteger     bool
	integerStrict     bool
	mustBeSorted      bool
	sorted            SortedOpts
	mustBeInRange     bool
	rangeLo, rangeHi  float64
	strictLower       bool
	strictUpper       bool
	mustBeNonnegative bool

	reshapeTo   ndarray.Shape
	broadcastTo ndarray.Shape
	dtypeOut    ndarray.DType
	copyOut     bool

	// Specialization toggles; the general pipeline ignores them.
	allowReshape   bool
	allowBroadcast bool

	set optionFlag
}

// Option mutates one knob of an Options value.
type Option func(*Options)

// isSet reports whether the caller explicitly touched the knob.
func (o *Options) isSet(f optionFlag) bool { return o.set&f != 0 }

// gatherOptions folds caller setters over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		name:         DefaultName,
		mustBeReal:   DefaultMustBeReal,
		length:       DefaultLengthOpts(),
		sorted:       DefaultSortedOpts(),
		allowReshape: DefaultAllowReshape,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithName sets the display name used in error messages.
func WithName(name string) Option {
	return func(o *Options) { o.name = name; o.set |= optName }
}

// MustHaveDType requires the input dtype to belong to one of the classes.
func MustHaveDType(classes ...ndarray.Class) Option {
	return func(o *Options) { o.dtypeClasses = classes; o.set |= optDType }
}

// MustHaveShape requires the input shape to match one of the alternatives
// (with -1 wildcards). The shape is checked after ReshapeTo/BroadcastTo.
func MustHaveShape(alts ...ndarray.Shape) Option {
	return func(o *Options) { o.shapeSpec = ShapeSpec(alts); o.set |= optShape }
}

// MustHaveNDim requires the dimension count to be one of the given values.
func MustHaveNDim(ndims ...int) Option {
	return func(o *Options) { o.ndims = ndims; o.set |= optNDim }
}

// MustHaveLength requires the first-axis length to be one of the values.
func MustHaveLength(lengths ...int) Option {
	return func(o *Options) { o.length.Exact = lengths; o.set |= optLength }
}

// MustHaveMinLength bounds the first-axis length from below (inclusive).
func MustHaveMinLength(n int) Option {
	return func(o *Options) { o.length.Min = n; o.set |= optLength }
}

// MustHaveMaxLength bounds the first-axis length from above (inclusive).
func MustHaveMaxLength(n int) Option {
	return func(o *Options) { o.length.Max = n; o.set |= optLength }
}

// AllowScalarLength makes length constraints treat a 0-d input as length 1.
func AllowScalarLength() Option {
	return func(o *Options) { o.length.AllowScalar = true; o.set |= optLength }
}

// MustBeReal requires a real dtype (integer or floating). This is the
// default; the setter exists so specializations can pin it explicitly.
func MustBeReal() Option {
	return func(o *Options) { o.mustBeReal = true; o.set |= optReal }
}

// AllowNonReal lifts the default real-dtype requirement, admitting bool
// and complex inputs.
func AllowNonReal() Option {
	return func(o *Options) { o.mustBeReal = false; o.set |= optReal }
}

// MustBeFinite rejects arrays containing NaN or ±Inf.
func MustBeFinite() Option {
	return func(o *Options) { o.mustBeFinite = true; o.set |= optFinite }
}

// AllowNonFinite lifts a pre-bound finiteness requirement, admitting NaN
// and ±Inf where a specialized validator (such as Number) would otherwise
// reject them by default.
func AllowNonFinite() Option {
	return func(o *Options) { o.mustBeFinite = false; o.set |= optFinite }
}

// MustBeInteger requires integer-like values: every element must equal its
// floor. The dtype itself may be floating.
func MustBeInteger() Option {
	return func(o *Options) { o.mustBeInteger = true; o.integerStrict = false; o.set |= optInteger }
}

// MustHaveIntegerDType requires an integer dtype subtype, not merely
// integer-like values.
func MustHaveIntegerDType() Option {
	return func(o *Options) { o.mustBeInteger = true; o.integerStrict = true; o.set |= optInteger }
}

// MustBeSorted requires sortedness per the given ordering options.
func MustBeSorted(sorted SortedOpts) Option {
	return func(o *Options) { o.mustBeSorted = true; o.sorted = sorted; o.set |= optSorted }
}

// MustBeInRange requires every element to lie within [lo, hi]. Strictness
// of each end is controlled by WithStrictLowerBound and
// WithStrictUpperBound.
func MustBeInRange(lo, hi float64) Option {
	return func(o *Options) {
		o.mustBeInRange = true
		o.rangeLo, o.rangeHi = lo, hi
		o.set |= optRange
	}
}

// WithStrictLowerBound makes the range lower bound exclusive.
func WithStrictLowerBound() Option {
	return func(o *Options) { o.strictLower = true; o.set |= optRange }
}

// WithStrictUpperBound makes the range upper bound exclusive.
func WithStrictUpperBound() Option {
	return func(o *Options) { o.strictUpper = true; o.set |= optRange }
}

// MustBeNonnegative requires every element to be >= 0.
func MustBeNonnegative() Option {
	return func(o *Options) { o.mustBeNonnegative = true; o.set |= optNonnegative }
}

// ReshapeTo reshapes the input before any checks run. The target may
// contain one -1 wildcard axis.
func ReshapeTo(shape ndarray.Shape) Option {
	return func(o *Options) { o.reshapeTo = shape.Clone(); o.set |= optReshape }
}

// BroadcastTo broadcasts the input to a concrete shape before any checks
// run (after ReshapeTo when both are given).
func BroadcastTo(shape ndarray.Shape) Option {
	return func(o *Options) { o.broadcastTo = shape.Clone(); o.set |= optBroadcast }
}

// WithDTypeOut coerces the validated array to the given dtype on output.
// Casts follow the explicit-cast policy of ndarray.AsType: a float array
// with fractional values cannot be cast to an integer dtype.
func WithDTypeOut(dt ndarray.DType) Option {
	return func(o *Options) { o.dtypeOut = dt; o.set |= optDTypeOut }
}

// WithCopy forces the output to be an independent copy, disabling the
// identity-preserving fast path.
func WithCopy() Option {
	return func(o *Options) { o.copyOut = true; o.set |= optCopy }
}

// NoReshape stops specialized validators from folding reshape-compatible
// input shapes: only the canonical shape alternatives are accepted.
// The general Array pipeline ignores this option.
func NoReshape() Option {
	return func(o *Options) { o.allowReshape = false }
}

// WithBroadcast lets specialized validators broadcast smaller compatible
// inputs, e.g. a scalar into a (3) vector for Array3. The general Array
// pipeline ignores this option.
func WithBroadcast() Option {
	return func(o *Options) { o.allowBroadcast = true }
}

// reject returns ErrConfig when the caller touched a knob that fn pins.
// Specialized validators call this for each mandatory constraint.
func (o *Options) reject(fn string, flags ...optionFlag) error {
	for _, f := range flags {
		if o.isSet(f) {
			return errf(ErrConfig, "option %s cannot be set for %s; its value is set automatically",
				flagNames[f], fn)
		}
	}

	return nil
}
