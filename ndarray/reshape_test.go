package ndarray_test

import (
	"testing"

	"github.com/jonaspleyer/pyvista/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshape_Basic(t *testing.T) {
	arr := ndarray.FromFloat64s([]float64{1, 2, 3, 4, 5, 6})

	out, err := arr.Reshape(ndarray.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 3}, out.Shape())
	// Row-major element order is preserved.
	v, err := out.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	// Size mismatch.
	_, err = arr.Reshape(ndarray.Shape{4})
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestReshape_WildcardInference(t *testing.T) {
	arr := ndarray.FromFloat64s([]float64{1, 2, 3, 4, 5, 6})

	out, err := arr.Reshape(ndarray.Shape{-1, 2})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 2}, out.Shape())

	// At most one wildcard.
	_, err = arr.Reshape(ndarray.Shape{-1, -1})
	require.ErrorIs(t, err, ndarray.ErrBadShape)

	// Indivisible element count.
	_, err = arr.Reshape(ndarray.Shape{-1, 4})
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestReshape_IdentityAndScalar(t *testing.T) {
	arr := ndarray.FromFloat64s([]float64{1, 2, 3})

	out, err := arr.Reshape(ndarray.Shape{3})
	require.NoError(t, err)
	assert.Same(t, arr, out)

	// A single element reshapes down to 0-d and back.
	one := ndarray.FromFloat64s([]float64{5})
	scalar, err := one.Reshape(ndarray.Shape{})
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.NDim())

	flat, err := ndarray.ScalarOf(5).Flatten()
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{1}, flat.Shape())
}

func TestBroadcastTo_Expansion(t *testing.T) {
	// Scalar to vector.
	out, err := ndarray.ScalarOf(7).BroadcastTo(ndarray.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7}, out.Data())

	// Vector to matrix along a new leading axis.
	vec := ndarray.FromFloat64s([]float64{1, 2, 3})
	out, err = vec.BroadcastTo(ndarray.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, out.Data())

	// Column to matrix along the trailing axis.
	col, err := vec.Reshape(ndarray.Shape{3, 1})
	require.NoError(t, err)
	out, err = col.BroadcastTo(ndarray.Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2, 3, 3}, out.Data())
}

func TestBroadcastTo_Errors(t *testing.T) {
	vec := ndarray.FromFloat64s([]float64{1, 2})

	_, err := vec.BroadcastTo(ndarray.Shape{3})
	require.ErrorIs(t, err, ndarray.ErrBroadcast)

	// Cannot drop axes.
	mat, err := ndarray.FromAny([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = mat.BroadcastTo(ndarray.Shape{2})
	require.ErrorIs(t, err, ndarray.ErrBroadcast)

	// Wildcards are not valid broadcast targets.
	_, err = vec.BroadcastTo(ndarray.Shape{-1})
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestBroadcastTo_Identity(t *testing.T) {
	vec := ndarray.FromFloat64s([]float64{1, 2})

	out, err := vec.BroadcastTo(ndarray.Shape{2})
	require.NoError(t, err)
	assert.Same(t, vec, out)
}
