package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/validator"
)

func TestFirstEmptyRowMajorOrder(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 0, 4, 0},
		{0, 3, 2, 1},
	})
	r, c, ok := FirstEmpty(g)
	require.True(t, ok)
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)

	full := formulaGrid(t, 4)
	_, _, ok = FirstEmpty(full)
	require.False(t, ok)
}

func TestFewestCandidatesPrefersTightCell(t *testing.T) {
	// (0,3) is the only cell with exactly one candidate (4); every
	// other empty cell has at least two.
	g := mustGrid(t, [][]uint8{
		{1, 2, 3, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	r, c, ok := FewestCandidates(g)
	require.True(t, ok)
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
}

func TestSolveWithFewestCandidatesStrategy(t *testing.T) {
	g := mustGrid(t, sample)
	s := NewBacktrackingSolver()
	s.Next = FewestCandidates

	out, _ := s.Solve(context.Background(), g)
	require.Equal(t, domain.Solved, out)
	require.True(t, validator.New().Complete(context.Background(), g))
	// The sample has a unique solution, so any correct strategy must
	// land on the same grid.
	require.Equal(t, sampleSolution, g.Rows())
}
