package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyGrid(t *testing.T) {
	for _, dim := range []int{0, -1} {
		g, err := New(dim)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidDim)
	}
}

func TestNewStartsEmpty(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Dim())

	g.Each(func(x, y, h, c int) {
		assert.Zero(t, h, "height at (%d,%d)", x, y)
		assert.Zero(t, c, "colour at (%d,%d)", x, y)
	})
}

func TestResetOverwritesEveryCell(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			g.SetHeight(x, y, x+y)
			g.SetColour(x, y, 8-x)
		}
	}
	g.Reset(7)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, 0, g.Height(x, y))
			assert.Equal(t, 7, g.Colour(x, y))
		}
	}
}

func TestCellsAreIndependent(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	g.SetHeight(1, 2, 4)
	g.SetColour(2, 1, 6)

	assert.Equal(t, 4, g.Height(1, 2))
	assert.Equal(t, 0, g.Height(2, 1))
	assert.Equal(t, 6, g.Colour(2, 1))
	assert.Equal(t, 0, g.Colour(1, 2))
}

func TestSetDoesNotValidateValues(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)

	g.SetHeight(0, 0, 99)
	g.SetColour(0, 0, -3)
	assert.Equal(t, 99, g.Height(0, 0))
	assert.Equal(t, -3, g.Colour(0, 0))
}

func TestOutOfBoundsPanics(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {10, 10}}
	for _, c := range cases {
		x, y := c[0], c[1]
		assert.False(t, g.InBounds(x, y))
		want := (&BoundsError{X: x, Y: y, Dim: 4}).Error()
		assert.PanicsWithError(t, want, func() { g.Height(x, y) })
		assert.PanicsWithError(t, want, func() { g.Colour(x, y) })
		assert.PanicsWithError(t, want, func() { g.SetHeight(x, y, 1) })
		assert.PanicsWithError(t, want, func() { g.SetColour(x, y, 1) })
	}
}

func TestFailedWriteLeavesGridUntouched(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)

	// (2, 0) would alias (0, 1) with unchecked row-major indexing.
	assert.Panics(t, func() { g.SetHeight(2, 0, 5) })
	assert.Equal(t, 0, g.Height(0, 1))
}

func TestEachVisitsRowMajor(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	g.SetHeight(1, 0, 3)
	g.SetColour(0, 1, 2)

	var got [][4]int
	g.Each(func(x, y, h, c int) { got = append(got, [4]int{x, y, h, c}) })

	assert.Equal(t, [][4]int{
		{0, 0, 0, 0},
		{1, 0, 3, 0},
		{0, 1, 0, 2},
		{1, 1, 0, 0},
	}, got)
}
