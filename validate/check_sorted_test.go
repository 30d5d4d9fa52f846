package validate_test

import (
	"testing"

	"github.com/jonaspleyer/pyvista/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSorted_FourOrderings(t *testing.T) {
	ascendingWithTie := []int{1, 2, 2, 3}
	descendingWithTie := []int{3, 2, 2, 1}

	// Non-strict ascending admits ties; strict does not.
	require.NoError(t, validate.CheckSorted(ascendingWithTie, validate.DefaultSortedOpts()))
	err := validate.CheckSorted(ascendingWithTie, validate.SortedOpts{Ascending: true, Strict: true, Axis: validate.AxisLast})
	require.ErrorIs(t, err, validate.ErrValue)
	assert.Contains(t, err.Error(), "strict ascending")

	// Same pair of cases mirrored for descending.
	require.NoError(t, validate.CheckSorted(descendingWithTie, validate.SortedOpts{Axis: validate.AxisLast}))
	err = validate.CheckSorted(descendingWithTie, validate.SortedOpts{Strict: true, Axis: validate.AxisLast})
	require.ErrorIs(t, err, validate.ErrValue)
	assert.Contains(t, err.Error(), "strict descending")

	// A descending run fails the ascending check and vice versa.
	err = validate.CheckSorted(descendingWithTie, validate.DefaultSortedOpts())
	require.ErrorIs(t, err, validate.ErrValue)
	err = validate.CheckSorted(ascendingWithTie, validate.SortedOpts{Axis: validate.AxisLast})
	require.ErrorIs(t, err, validate.ErrValue)
}

func TestCheckSorted_TrivialInputs(t *testing.T) {
	require.NoError(t, validate.CheckSorted(5, validate.DefaultSortedOpts()))
	require.NoError(t, validate.CheckSorted([]int{7}, validate.DefaultSortedOpts()))
	require.NoError(t, validate.CheckSorted([]float64{}, validate.DefaultSortedOpts()))
}

func TestCheckSorted_Axes(t *testing.T) {
	// Rows sorted, columns not.
	mat := [][]int{{1, 9}, {2, 3}}

	require.NoError(t, validate.CheckSorted(mat, validate.DefaultSortedOpts()))

	err := validate.CheckSorted(mat, validate.SortedOpts{Ascending: true, Axis: 0})
	require.ErrorIs(t, err, validate.ErrValue)

	// Columns sorted, rows not.
	byCols := [][]int{{2, 1}, {3, 4}}
	require.NoError(t, validate.CheckSorted(byCols, validate.SortedOpts{Ascending: true, Axis: 0}))
	require.ErrorIs(t, validate.CheckSorted(byCols, validate.DefaultSortedOpts()), validate.ErrValue)

	// Negative axes count from the end: -2 is the first axis here.
	require.NoError(t, validate.CheckSorted(byCols, validate.SortedOpts{Ascending: true, Axis: -2}))

	err = validate.CheckSorted(mat, validate.SortedOpts{Ascending: true, Axis: 2})
	require.ErrorIs(t, err, validate.ErrConfig)
}

func TestCheckSorted_Flatten(t *testing.T) {
	// Row-major flattening of this matrix is 1,2,3,4.
	require.NoError(t, validate.CheckSorted([][]int{{1, 2}, {3, 4}},
		validate.SortedOpts{Ascending: true, Axis: validate.AxisFlatten}))

	// Sorted along rows but not across the row boundary.
	err := validate.CheckSorted([][]int{{1, 3}, {2, 4}},
		validate.SortedOpts{Ascending: true, Axis: validate.AxisFlatten})
	require.ErrorIs(t, err, validate.ErrValue)
}

func TestCheckSorted_MessageContents(t *testing.T) {
	// Arrays of at most four elements are spelled out in the message.
	err := validate.CheckSorted([]int{3, 1}, validate.DefaultSortedOpts())
	require.ErrorIs(t, err, validate.ErrValue)
	assert.Contains(t, err.Error(), "[3 1]")

	// Larger arrays report only their element count.
	err = validate.CheckSorted([]int{5, 4, 3, 2, 1}, validate.DefaultSortedOpts())
	require.ErrorIs(t, err, validate.ErrValue)
	assert.Contains(t, err.Error(), "with 5 elements")
	assert.NotContains(t, err.Error(), "[5 4 3 2 1]")
}

func TestCheckSorted_ComplexRejected(t *testing.T) {
	err := validate.CheckSorted([]complex128{1, 2}, validate.DefaultSortedOpts())
	require.ErrorIs(t, err, validate.ErrDType)
}
