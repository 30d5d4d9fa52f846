package validate_test

import (
	"math"
	"testing"

	"github.com/jonaspleyer/pyvista/ndarray"
	"github.com/jonaspleyer/pyvista/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	v, err := validate.Number(42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	// Single-element vectors fold to a scalar by default.
	v, err = validate.Number([]float64{2.5})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = validate.Number([]float64{1, 2})
	require.ErrorIs(t, err, validate.ErrShape)

	// NoReshape restricts the input to true scalars.
	_, err = validate.Number([]float64{2.5}, validate.NoReshape())
	require.ErrorIs(t, err, validate.ErrShape)

	_, err = validate.Number(true)
	require.ErrorIs(t, err, validate.ErrDType)
}

func TestNumber_FiniteByDefault(t *testing.T) {
	_, err := validate.Number(math.Inf(1))
	require.ErrorIs(t, err, validate.ErrValue)

	_, err = validate.Number(math.NaN())
	require.ErrorIs(t, err, validate.ErrValue)

	// The default is a default, not a pin: the caller may lift it.
	v, err := validate.Number(math.Inf(1), validate.AllowNonFinite())
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	// The general pipeline keeps finiteness opt-in.
	arr, err := validate.Array([]float64{math.Inf(1)})
	require.NoError(t, err)
	assert.True(t, math.IsInf(arr.Data()[0], 1))
}

func TestNumber_MandatoryShape(t *testing.T) {
	_, err := validate.Number(1, validate.MustHaveShape(ndarray.Shape{}))
	require.ErrorIs(t, err, validate.ErrConfig)
	assert.Contains(t, err.Error(), "MustHaveShape")
	assert.Contains(t, err.Error(), "validate.Number")

	_, err = validate.Number(1, validate.ReshapeTo(ndarray.Shape{1}))
	require.ErrorIs(t, err, validate.ErrConfig)
}

func TestArrayN(t *testing.T) {
	arr, err := validate.ArrayN([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())

	// Scalars, rows and columns fold to 1-d.
	arr, err = validate.ArrayN(5)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{1}, arr.Shape())

	arr, err = validate.ArrayN([][]int{{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())

	arr, err = validate.ArrayN([][]int{{1}, {2}, {3}})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())
	assert.Equal(t, []float64{1, 2, 3}, arr.Data())
}

func TestArrayN_ShapeCheckedBeforeFolding(t *testing.T) {
	// A 2x2 input could flatten to 4 elements, but the shape contract is
	// judged on the shape as passed.
	_, err := validate.ArrayN([][]int{{1, 2}, {3, 4}})
	require.ErrorIs(t, err, validate.ErrShape)
	assert.Contains(t, err.Error(), "(2, 2)")
	assert.Contains(t, err.Error(), "shape must be one of")

	// Without folding, only 1-d inputs remain valid.
	_, err = validate.ArrayN(5, validate.NoReshape())
	require.ErrorIs(t, err, validate.ErrShape)
	require.NoError(t, errOf(validate.ArrayN([]int{5}, validate.NoReshape())))
}

func TestArrayNUnsigned(t *testing.T) {
	arr, err := validate.ArrayNUnsigned([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())

	// Whole-valued floats pass; output dtype follows the caller.
	arr, err = validate.ArrayNUnsigned([]float64{1, 2}, validate.WithDTypeOut(ndarray.Uint32))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Uint32, arr.DType())

	_, err = validate.ArrayNUnsigned([]int{-1})
	require.ErrorIs(t, err, validate.ErrValue)

	_, err = validate.ArrayNUnsigned([]float64{1.5})
	require.ErrorIs(t, err, validate.ErrValue)
}

func TestArray3(t *testing.T) {
	arr, err := validate.Array3([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())

	// Row and column forms fold to (3).
	arr, err = validate.Array3([][]int{{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())

	arr, err = validate.Array3([][]int{{1}, {2}, {3}})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())

	_, err = validate.Array3([]int{1, 2})
	require.ErrorIs(t, err, validate.ErrShape)

	// Scalars broadcast only on request.
	_, err = validate.Array3(5)
	require.ErrorIs(t, err, validate.ErrShape)

	arr, err = validate.Array3(5, validate.WithBroadcast())
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5}, arr.Data())

	arr, err = validate.Array3([]int{7}, validate.WithBroadcast())
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7}, arr.Data())
}

func TestArrayNx3(t *testing.T) {
	arr, err := validate.ArrayNx3([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 3}, arr.Shape())

	// A flat 3-vector folds to a single row.
	arr, err = validate.ArrayNx3([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{1, 3}, arr.Shape())
	assert.Equal(t, []float64{1, 2, 3}, arr.Data())

	// Zero rows are fine.
	empty, err := ndarray.New(ndarray.Shape{0, 3}, ndarray.Float64)
	require.NoError(t, err)
	arr, err = validate.ArrayNx3(empty)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{0, 3}, arr.Shape())

	_, err = validate.ArrayNx3([][]int{{1, 2}, {3, 4}})
	require.ErrorIs(t, err, validate.ErrShape)

	_, err = validate.ArrayNx3([]int{1, 2, 3, 4})
	require.ErrorIs(t, err, validate.ErrShape)

	// Without folding, a flat 3-vector no longer qualifies; the error names
	// the required shape.
	_, err = validate.ArrayNx3([]int{1, 2, 3}, validate.NoReshape())
	require.ErrorIs(t, err, validate.ErrShape)
	assert.Contains(t, err.Error(), "(-1, 3)")

	// Mandatory constraints cannot be overridden.
	_, err = validate.ArrayNx3([]int{1, 2, 3}, validate.BroadcastTo(ndarray.Shape{2, 3}))
	require.ErrorIs(t, err, validate.ErrConfig)
}

func TestArrayNx3_IdentityFastPath(t *testing.T) {
	in, err := ndarray.FromAny([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	out, err := validate.ArrayNx3(in)
	require.NoError(t, err)
	assert.Same(t, in, out)
}

func TestDataRange(t *testing.T) {
	arr, err := validate.DataRange([]int{0, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10}, arr.Data())

	// Equal endpoints are an allowed (degenerate) range.
	_, err = validate.DataRange([]float64{5, 5})
	require.NoError(t, err)

	_, err = validate.DataRange([]int{10, 0})
	require.ErrorIs(t, err, validate.ErrValue)

	_, err = validate.DataRange([]int{1, 2, 3})
	require.ErrorIs(t, err, validate.ErrShape)

	_, err = validate.DataRange([]int{0, 1}, validate.MustBeSorted(validate.DefaultSortedOpts()))
	require.ErrorIs(t, err, validate.ErrConfig)
}

func TestDimensionality(t *testing.T) {
	for want := 0; want <= 3; want++ {
		got, err := validate.Dimensionality(want)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := validate.Dimensionality("2D")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = validate.Dimensionality(4)
	require.ErrorIs(t, err, validate.ErrValue)

	_, err = validate.Dimensionality(1.5)
	require.ErrorIs(t, err, validate.ErrValue)

	_, err = validate.Dimensionality("4D")
	require.ErrorIs(t, err, validate.ErrValue)
}

func TestDimensionality_SequenceForms(t *testing.T) {
	// A single-element sequence folds to its element, for both the
	// numeric and the label spelling.
	got, err := validate.Dimensionality([]int{3})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = validate.Dimensionality([]string{"1D"})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = validate.Dimensionality([]any{"2D"})
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	// NoReshape restricts labels to the bare string form.
	_, err = validate.Dimensionality([]string{"1D"}, validate.NoReshape())
	require.Error(t, err)

	// The invalid-label message enumerates every accepted spelling.
	_, err = validate.Dimensionality("5D")
	require.ErrorIs(t, err, validate.ErrValue)
	assert.Contains(t, err.Error(), "[0 1 2 3 0D 1D 2D 3D]")
}

// errOf discards a validator's value, keeping only its error, so a call
// can sit inside a require line.
func errOf(_ *ndarray.Array, err error) error { return err }
