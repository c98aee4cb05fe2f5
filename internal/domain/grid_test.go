package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridRequiresPerfectSquare(t *testing.T) {
	for _, n := range []int{1, 4, 9, 16, 25, 36, 49, 64} {
		g, err := NewGrid(n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, g.Size())
		require.Equal(t, n, g.Box()*g.Box())
		require.Equal(t, n*n, g.CountEmpty())
	}
	for _, n := range []int{2, 3, 5, 8, 10, 15, 24} {
		_, err := NewGrid(n)
		require.ErrorIs(t, err, ErrNotSquare, "n=%d", n)
	}
	for _, n := range []int{0, -1, 81} {
		_, err := NewGrid(n)
		require.Error(t, err, "n=%d", n)
	}
}

func TestGetSetContract(t *testing.T) {
	g, err := NewGrid(9)
	require.NoError(t, err)

	require.NoError(t, g.Set(3, 4, 7))
	v, err := g.Get(3, 4)
	require.NoError(t, err)
	require.Equal(t, uint8(7), v)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {100, 100}} {
		_, err := g.Get(rc[0], rc[1])
		require.ErrorIs(t, err, ErrOutOfRange)
		require.ErrorIs(t, g.Set(rc[0], rc[1], 1), ErrOutOfRange)
	}
	require.ErrorIs(t, g.Set(0, 0, 10), ErrBadValue)
	require.NoError(t, g.Set(0, 0, 9))
	require.NoError(t, g.Set(0, 0, 0))
}

func TestFromRowsValidation(t *testing.T) {
	_, err := FromRows([][]uint8{{1, 0}, {0, 1}})
	require.ErrorIs(t, err, ErrNotSquare)

	_, err = FromRows([][]uint8{
		{0, 0, 0, 0},
		{0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.Error(t, err)

	_, err = FromRows([][]uint8{
		{5, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.ErrorIs(t, err, ErrBadValue)

	g, err := FromRows([][]uint8{
		{1, 2, 3, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	require.Equal(t, uint8(3), g.At(0, 2))
	require.Equal(t, 12, g.CountEmpty())
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)
	g.SetAt(1, 2, 3)

	c := g.Clone()
	require.True(t, g.Equal(c))
	c.SetAt(0, 0, 1)
	require.False(t, g.Equal(c))
	require.Equal(t, uint8(0), g.At(0, 0))
}

func TestRowsRoundTrip(t *testing.T) {
	rows := [][]uint8{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	g, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, rows, g.Rows())

	// Rows is a copy, not a view.
	out := g.Rows()
	out[0][0] = 9
	require.Equal(t, uint8(1), g.At(0, 0))
}

func TestEqual(t *testing.T) {
	a, err := NewGrid(4)
	require.NoError(t, err)
	b, err := NewGrid(9)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
	require.True(t, a.Equal(a.Clone()))
}
