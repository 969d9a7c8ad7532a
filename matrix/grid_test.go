package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/matrix"
)

// TestNewGrid_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewGrid_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := matrix.NewGrid[int](tc.rows, tc.cols)
			assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
			assert.Nil(t, g)
		})
	}
}

// TestGrid_AtSet checks zero initialization, writes and bounds checking.
func TestGrid_AtSet(t *testing.T) {
	g, err := matrix.NewGrid[int](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "new grid must be zero-filled")

	require.NoError(t, g.Set(1, 2, -7))
	v, err = g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -7, v)

	_, err = g.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, g.Set(0, 3, 1), matrix.ErrOutOfRange)
}

// TestGrid_RowView verifies that Row shares storage with the grid.
func TestGrid_RowView(t *testing.T) {
	g, err := matrix.NewGrid[int](3, 2)
	require.NoError(t, err)

	row := g.Row(1)
	require.Len(t, row, 2)
	row[0] = 5
	v, _ := g.At(1, 0)
	assert.Equal(t, 5, v, "writes through Row must reach the grid")

	assert.Nil(t, g.Row(3))
	assert.Nil(t, g.Row(-1))
}

// TestFromRows covers copying and ragged input.
func TestFromRows(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := matrix.FromRows(src)
	require.NoError(t, err)
	src[0][0] = 99
	v, _ := g.At(0, 0)
	assert.Equal(t, 1, v, "FromRows must deep-copy")

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]int{})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestGrid_CloneEqual checks deep copy and structural equality.
func TestGrid_CloneEqual(t *testing.T) {
	g, err := matrix.FromRows([][]int{{0, -1}, {-1, 1}})
	require.NoError(t, err)

	c := g.Clone()
	assert.True(t, g.Equal(c))
	require.NoError(t, c.Set(1, 1, 2))
	assert.False(t, g.Equal(c), "clone must be independent")

	other, _ := matrix.NewGrid[int](2, 3)
	assert.False(t, g.Equal(other), "different shapes are never equal")

	var nilGrid *matrix.Grid[int]
	assert.True(t, nilGrid.Equal(nil))
	assert.False(t, g.Equal(nil))
}

// TestGrid_Each verifies row-major order and early stop.
func TestGrid_Each(t *testing.T) {
	g, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []int
	g.Each(func(i, j, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	assert.Equal(t, []int{1, 2, 3}, seen)
}

// TestGrid_String checks the debug representation.
func TestGrid_String(t *testing.T) {
	g, err := matrix.FromRows([][]int{{0, -1, -2}, {-1, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, "[0, -1, -2]\n[-1, 1, 0]\n", g.String())
}
