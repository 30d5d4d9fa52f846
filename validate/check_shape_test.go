package validate_test

import (
	"testing"

	"github.com/jonaspleyer/pyvista/ndarray"
	"github.com/jonaspleyer/pyvista/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckShape_Alternatives(t *testing.T) {
	vec := []int{1, 2, 3}

	require.NoError(t, validate.CheckShape(vec, validate.Shapes(ndarray.Shape{3})))
	require.NoError(t, validate.CheckShape(vec, validate.Shapes(ndarray.Shape{2}, ndarray.Shape{3})))

	err := validate.CheckShape(vec, validate.Shapes(ndarray.Shape{2}))
	require.ErrorIs(t, err, validate.ErrShape)
	assert.Contains(t, err.Error(), "has shape (3)")
	assert.Contains(t, err.Error(), "shape must be (2)")
}

func TestCheckShape_Wildcards(t *testing.T) {
	mat := [][]int{{1, 2, 3}, {4, 5, 6}}

	// -1 matches any extent on that axis.
	require.NoError(t, validate.CheckShape(mat, validate.Shapes(ndarray.Shape{-1, 3})))
	require.NoError(t, validate.CheckShape(mat, validate.Shapes(ndarray.Shape{2, -1})))
	require.NoError(t, validate.CheckShape(mat, validate.Shapes(ndarray.Shape{-1, -1})))

	// Dimension count must still match.
	err := validate.CheckShape(mat, validate.Shapes(ndarray.Shape{-1}))
	require.ErrorIs(t, err, validate.ErrShape)

	// A wildcard matches extent zero as well.
	empty, err := ndarray.New(ndarray.Shape{0, 3}, ndarray.Float64)
	require.NoError(t, err)
	require.NoError(t, validate.CheckShape(empty, validate.Shapes(ndarray.Shape{-1, 3})))
}

func TestCheckShape_ScalarAndName(t *testing.T) {
	require.NoError(t, validate.CheckShape(5, validate.Shapes(ndarray.Shape{})))

	err := validate.CheckShape(5, validate.Shapes(ndarray.Shape{1}), "Level")
	require.ErrorIs(t, err, validate.ErrShape)
	assert.Contains(t, err.Error(), "Level has shape ()")
}

func TestCheckShape_BadSpec(t *testing.T) {
	err := validate.CheckShape([]int{1}, validate.Shapes())
	require.ErrorIs(t, err, validate.ErrConfig)

	err = validate.CheckShape([]int{1}, validate.Shapes(ndarray.Shape{-2}))
	require.ErrorIs(t, err, validate.ErrConfig)
}

func TestCheckNDim(t *testing.T) {
	mat := [][]int{{1, 2}, {3, 4}}

	require.NoError(t, validate.CheckNDim(mat, []int{2}))
	require.NoError(t, validate.CheckNDim(mat, []int{1, 2, 3}))

	err := validate.CheckNDim(mat, []int{1})
	require.ErrorIs(t, err, validate.ErrShape)
	assert.Contains(t, err.Error(), "2 dimensions")

	err = validate.CheckNDim(mat, nil)
	require.ErrorIs(t, err, validate.ErrConfig)

	err = validate.CheckNDim(mat, []int{-1})
	require.ErrorIs(t, err, validate.ErrConfig)
}
