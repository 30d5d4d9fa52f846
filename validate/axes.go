// Package validate: geometric validators built on Array3 and the general
// pipeline — axes frames, rotation matrices and transform matrices.

package validate

import (
	"math"

	"github.com/jonaspleyer/pyvista/ndarray"
)

// axesEpsilon is the absolute tolerance for the geometric predicates in
// this file: zero-vector, parallelism, orthogonality and orthonormality.
const axesEpsilon = 1e-8

// Orientation is the handedness of a 3-d axes frame or rotation.
type Orientation uint8

const (
	// OrientationNone disables the handedness check.
	OrientationNone Orientation = iota

	// OrientationRight requires a right-handed frame (positive
	// determinant).
	OrientationRight

	// OrientationLeft requires a left-handed frame (negative determinant).
	OrientationLeft
)

// String returns "right", "left" or "none".
func (or Orientation) String() string {
	switch or {
	case OrientationRight:
		return "right"
	case OrientationLeft:
		return "left"
	default:
		return "none"
	}
}

// AxesOpts configures Axes and AxesFromVectors.
type AxesOpts struct {
	// MustBeOrthogonal requires every pair of axes to be perpendicular.
	MustBeOrthogonal bool

	// Normalize scales each axis to unit length in the output.
	Normalize bool

	// Orientation is the required handedness; OrientationNone skips the
	// check. When only two vectors are given the third is completed with
	// this handedness, so OrientationNone is then an error.
	Orientation Orientation
}

// DefaultAxesOpts returns the default configuration: orthogonal,
// right-handed, not normalized.
func DefaultAxesOpts() AxesOpts {
	return AxesOpts{MustBeOrthogonal: true, Orientation: OrientationRight}
}

// Axes validates a 3x3 (or 2x3, completing the third row) axes matrix
// whose rows are the axis vectors. The default name is "Axes".
//
// Checks, in order: no zero axis, no parallel pair, orthogonality (when
// required), handedness (when required). The result is a float64 (3, 3)
// array, row-normalized when Normalize is set.
func Axes(in any, opts AxesOpts, name ...string) (*ndarray.Array, error) {
	n := nameOr("Axes", name)
	arr, err := Array(in,
		WithName(n),
		MustHaveShape(ndarray.Shape{2, 3}, ndarray.Shape{3, 3}),
		MustBeFinite(),
		WithDTypeOut(ndarray.Float64),
	)
	if err != nil {
		return nil, err
	}

	rows, err := arr.Nested2D()
	if err != nil {
		return nil, err
	}
	if len(rows) == 2 {
		third, cerr := completeThird(rows[0], rows[1], opts.Orientation, n)
		if cerr != nil {
			return nil, cerr
		}
		rows = append(rows, third)
	}

	return finishAxes(rows, opts, n)
}

// AxesFromVectors validates an axes frame given as two or three separate
// 3-vectors (each in any Array3-compatible form). With two vectors the
// third is completed via the cross product using the requested
// handedness. The default name is "Axes".
func AxesFromVectors(vectors []any, opts AxesOpts, name ...string) (*ndarray.Array, error) {
	n := nameOr("Axes", name)
	if len(vectors) < 2 || len(vectors) > 3 {
		return nil, errf(ErrConfig, "%s requires two or three vectors; got %d", n, len(vectors))
	}

	rows := make([][]float64, 0, 3)
	for _, v := range vectors {
		axis, err := Array3(v, WithName(n), MustBeFinite(), WithDTypeOut(ndarray.Float64))
		if err != nil {
			return nil, err
		}
		row, err := axis.Float64s()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if len(rows) == 2 {
		third, err := completeThird(rows[0], rows[1], opts.Orientation, n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, third)
	}

	return finishAxes(rows, opts, n)
}

// completeThird derives the missing third axis from the first two via the
// cross product, honoring the requested handedness.
func completeThird(a, b []float64, or Orientation, name string) ([]float64, error) {
	if or == OrientationNone {
		return nil, errf(ErrConfig, "%s orientation must be specified when only two vectors are given", name)
	}
	third := cross(a, b)
	if or == OrientationLeft {
		for i := range third {
			third[i] = -third[i]
		}
	}

	return third, nil
}

// finishAxes runs the geometric checks on a complete 3-row frame and
// assembles the output array.
func finishAxes(rows [][]float64, opts AxesOpts, name string) (*ndarray.Array, error) {
	for _, row := range rows {
		if norm(row) < axesEpsilon {
			return nil, errf(ErrValue, "%s cannot be zeros", name)
		}
	}
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if norm(cross(rows[i], rows[j])) < axesEpsilon {
				return nil, errf(ErrValue, "%s cannot be parallel", name)
			}
		}
	}

	if opts.MustBeOrthogonal {
		for i := 0; i < len(rows); i++ {
			for j := i + 1; j < len(rows); j++ {
				if math.Abs(dot(rows[i], rows[j])) > axesEpsilon*norm(rows[i])*norm(rows[j]) {
					return nil, errf(ErrValue, "%s are not orthogonal", name)
				}
			}
		}
	}

	if opts.Normalize {
		for _, row := range rows {
			scale := 1 / norm(row)
			for i := range row {
				row[i] *= scale
			}
		}
	}

	if opts.Orientation != OrientationNone {
		d := det3(rows)
		if opts.Orientation == OrientationRight && d <= 0 {
			return nil, errf(ErrValue, "%s do not have a right-handed orientation", name)
		}
		if opts.Orientation == OrientationLeft && d >= 0 {
			return nil, errf(ErrValue, "%s do not have a left-handed orientation", name)
		}
	}

	flat := make([]float64, 0, 9)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	out := ndarray.FromFloat64s(flat)

	return out.Reshape(ndarray.Shape{3, 3})
}

// Rotation validates a 3x3 rotation matrix: orthonormal rows (its inverse
// equals its transpose) and, when required, the given handedness. The
// default name is "Rotation".
func Rotation(in any, handedness Orientation, name ...string) (*ndarray.Array, error) {
	n := nameOr("Rotation", name)
	arr, err := Array(in,
		WithName(n),
		MustHaveShape(ndarray.Shape{3, 3}),
		MustBeFinite(),
		WithDTypeOut(ndarray.Float64),
	)
	if err != nil {
		return nil, err
	}

	rows, err := arr.Nested2D()
	if err != nil {
		return nil, err
	}

	// R * R^T must be the identity within tolerance.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot(rows[i], rows[j])-want) > axesEpsilon {
				return nil, errf(ErrValue, "%s is not valid; its inverse must equal its transpose", n)
			}
		}
	}

	if handedness != OrientationNone {
		d := det3(rows)
		got := OrientationRight
		if d < 0 {
			got = OrientationLeft
		}
		if got != handedness {
			return nil, errf(ErrValue,
				"%s has incorrect handedness; expected a %s-handed rotation, but got a %s-handed rotation instead",
				n, handedness, got)
		}
	}

	return arr, nil
}

// Transform3x3 validates a 3x3 transformation matrix. The default name is
// "Transform".
func Transform3x3(in any, opts ...Option) (*ndarray.Array, error) {
	withDefaults := append([]Option{
		WithName("Transform"),
		MustHaveShape(ndarray.Shape{3, 3}),
		MustBeFinite(),
		WithDTypeOut(ndarray.Float64),
	}, opts...)

	return Array(in, withDefaults...)
}

// Transform4x4 validates a 4x4 homogeneous transformation matrix. A 3x3
// input is embedded into the linear part of an identity 4x4. The default
// name is "Transform".
func Transform4x4(in any, opts ...Option) (*ndarray.Array, error) {
	withDefaults := append([]Option{
		WithName("Transform"),
		MustHaveShape(ndarray.Shape{3, 3}, ndarray.Shape{4, 4}),
		MustBeFinite(),
		WithDTypeOut(ndarray.Float64),
	}, opts...)
	arr, err := Array(in, withDefaults...)
	if err != nil {
		return nil, err
	}
	if arr.NDim() == 2 && arr.Shape()[0] == 4 {
		return arr, nil
	}

	// Embed the 3x3 linear part into an identity homogeneous matrix.
	flat := make([]float64, 16)
	src := arr.Data()
	for i := 0; i < 3; i++ {
		copy(flat[i*4:i*4+3], src[i*3:(i+1)*3])
	}
	flat[15] = 1

	return ndarray.FromFloat64s(flat).Reshape(ndarray.Shape{4, 4})
}

// cross returns the cross product of two 3-vectors.
func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// dot returns the dot product of two equal-length vectors.
func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// norm returns the Euclidean norm of a vector.
func norm(a []float64) float64 { return math.Sqrt(dot(a, a)) }

// det3 returns the determinant of a 3x3 matrix given as rows.
func det3(m [][]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
