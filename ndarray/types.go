// Package ndarray: core type vocabulary — DType, Class, Shape and Kind.
// These are closed enumerations: classification and dtype dispatch are
// exhaustive switches, never open-ended reflection.

package ndarray

import (
	"fmt"
	"strings"
)

// DType identifies the logical element type of an Array.
//
// Real dtypes (bool, integers, floats) share a float64 backing buffer;
// complex dtypes use a complex128 buffer. The tag is what dtype checks and
// output conversions operate on.
type DType uint8

const (
	// DTypeInvalid is the zero value; no constructed Array carries it.
	DTypeInvalid DType = iota

	Bool
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

// dtypeNames maps each DType to its canonical display name.
var dtypeNames = map[DType]string{
	DTypeInvalid: "invalid",
	Bool:         "bool",
	Int:          "int",
	Int8:         "int8",
	Int16:        "int16",
	Int32:        "int32",
	Int64:        "int64",
	Uint:         "uint",
	Uint8:        "uint8",
	Uint16:       "uint16",
	Uint32:       "uint32",
	Uint64:       "uint64",
	Float32:      "float32",
	Float64:      "float64",
	Complex64:    "complex64",
	Complex128:   "complex128",
}

// String returns the canonical dtype name, e.g. "float64".
func (d DType) String() string {
	if s, ok := dtypeNames[d]; ok {
		return s
	}

	return fmt.Sprintf("DType(%d)", uint8(d))
}

// IsInteger reports whether d is a signed or unsigned integer dtype.
func (d DType) IsInteger() bool {
	switch d {
	case Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether d is an unsigned integer dtype.
func (d DType) IsUnsigned() bool {
	switch d {
	case Uint, Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// IsFloating reports whether d is a floating-point dtype.
func (d DType) IsFloating() bool { return d == Float32 || d == Float64 }

// IsComplex reports whether d is a complex dtype.
func (d DType) IsComplex() bool { return d == Complex64 || d == Complex128 }

// IsBool reports whether d is the boolean dtype.
func (d DType) IsBool() bool { return d == Bool }

// IsReal reports whether d is an integer or floating dtype.
// Bool is intentionally NOT real: boolean arrays fail real-number checks.
func (d DType) IsReal() bool { return d.IsInteger() || d.IsFloating() }

// IsNumber reports whether d is an integer, floating or complex dtype.
// Bool is intentionally NOT a number.
func (d DType) IsNumber() bool { return d.IsReal() || d.IsComplex() }

// Class identifies a family of dtypes for subtype checks, mirroring the
// numeric promotion lattice bool < integer < floating < complex.
type Class uint8

const (
	// ClassBool matches only the boolean dtype.
	ClassBool Class = iota

	// ClassInteger matches signed and unsigned integer dtypes.
	ClassInteger

	// ClassUnsigned matches unsigned integer dtypes only.
	ClassUnsigned

	// ClassFloating matches floating-point dtypes.
	ClassFloating

	// ClassComplex matches complex dtypes.
	ClassComplex

	// ClassReal matches integer and floating dtypes (not bool, not complex).
	ClassReal

	// ClassNumber matches integer, floating and complex dtypes (not bool).
	ClassNumber
)

// classNames maps each Class to its display name used in error messages.
var classNames = map[Class]string{
	ClassBool:     "bool",
	ClassInteger:  "integer",
	ClassUnsigned: "unsigned integer",
	ClassFloating: "floating",
	ClassComplex:  "complex",
	ClassReal:     "real",
	ClassNumber:   "number",
}

// String returns the class display name, e.g. "floating".
func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}

	return fmt.Sprintf("Class(%d)", uint8(c))
}

// IsA reports whether dtype d belongs to class c.
func (d DType) IsA(c Class) bool {
	switch c {
	case ClassBool:
		return d.IsBool()
	case ClassInteger:
		return d.IsInteger()
	case ClassUnsigned:
		return d.IsUnsigned()
	case ClassFloating:
		return d.IsFloating()
	case ClassComplex:
		return d.IsComplex()
	case ClassReal:
		return d.IsReal()
	case ClassNumber:
		return d.IsNumber()
	default:
		return false
	}
}

// Shape is an ordered list of axis extents. The empty shape denotes a
// scalar (0-dimensional) array. In shape *specifications* (validation
// targets), an axis value of -1 is a wildcard matching any extent; concrete
// array shapes never contain negative extents.
type Shape []int

// Size returns the total element count, i.e. the product of all extents.
// The scalar shape () has size 1.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// NDim returns the number of axes.
func (s Shape) NDim() int { return len(s) }

// Equal reports whether s and o have identical length and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// String renders the shape as "()", "(3)" or "(2, 3)".
func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%d", d)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// validateConcrete rejects shapes with negative extents: wildcards belong
// to specifications, never to constructed arrays.
func (s Shape) validateConcrete() error {
	for _, d := range s {
		if d < 0 {
			return fmt.Errorf("axis extent %d: %w", d, ErrBadShape)
		}
	}

	return nil
}

// Kind tags the structural variant of an array-like input. Exactly one kind
// applies to any supported input; KindOf determines it without constructing
// the canonical array.
type Kind uint8

const (
	// KindInvalid marks inputs outside the closed supported set.
	KindInvalid Kind = iota

	// KindNumber is a bare numeric or boolean scalar.
	KindNumber

	// KindSequence1D is a flat slice of scalars.
	KindSequence1D

	// KindSequence2D is a slice of flat scalar slices.
	KindSequence2D

	// KindNested is a []any nested up to depth 4, with scalar or *Array
	// leaves.
	KindNested

	// KindNative is an existing *Array, passed through unchanged.
	KindNative
)

// kindNames maps each Kind to its display name.
var kindNames = map[Kind]string{
	KindInvalid:    "invalid",
	KindNumber:     "number",
	KindSequence1D: "sequence1d",
	KindSequence2D: "sequence2d",
	KindNested:     "nested",
	KindNative:     "native",
}

// String returns the kind display name, e.g. "sequence2d".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}
