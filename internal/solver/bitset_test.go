package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/validator"
)

// formulaGrid builds a complete valid n×n assignment by shifting each
// row: value(r,c) = ((r·B + r/B + c) mod n) + 1.
func formulaGrid(t *testing.T, n int) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(n)
	require.NoError(t, err)
	b := g.Box()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.SetAt(r, c, uint8((r*b+r/b+c)%n+1))
		}
	}
	require.True(t, validator.New().Complete(context.Background(), g))
	return g
}

// blank clears every cell whose flat index i satisfies i%mod == rem.
func blank(g *domain.Grid, mod, rem int) {
	n := g.Size()
	for i := 0; i < n*n; i++ {
		if i%mod == rem {
			g.SetAt(i/n, i%n, 0)
		}
	}
}

func TestBitsetMatchesBacktrackingExactly(t *testing.T) {
	a := mustGrid(t, sample)
	b := mustGrid(t, sample)

	outA, stA := NewBacktrackingSolver().Solve(context.Background(), a)
	outB, stB := NewBitsetSolver().Solve(context.Background(), b)
	require.Equal(t, domain.Solved, outA)
	require.Equal(t, domain.Solved, outB)
	require.True(t, a.Equal(b), "both engines explore the same tree in the same order")
	require.Equal(t, stA.Nodes, stB.Nodes)
}

func TestBitsetSolve16x16(t *testing.T) {
	g := formulaGrid(t, 16)
	blank(g, 7, 3)
	out, _ := NewBitsetSolver().Solve(context.Background(), g)
	require.Equal(t, domain.Solved, out)
	require.True(t, validator.New().Complete(context.Background(), g))
}

func TestBitsetSolve25x25(t *testing.T) {
	g := formulaGrid(t, 25)
	blank(g, 13, 5)
	out, _ := NewBitsetSolver().Solve(context.Background(), g)
	require.Equal(t, domain.Solved, out)
	require.True(t, validator.New().Complete(context.Background(), g))
}

func TestBitsetUnsolvableAndAborted(t *testing.T) {
	g := mustGrid(t, unsolvable9)
	before := g.Clone()
	out, _ := NewBitsetSolver().Solve(context.Background(), g)
	require.Equal(t, domain.Unsolvable, out)
	require.True(t, g.Equal(before))

	g = mustGrid(t, sample)
	before = g.Clone()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, _ = NewBitsetSolver().Solve(ctx, g)
	require.Equal(t, domain.Aborted, out)
	require.True(t, g.Equal(before))
}

func TestBitsetUnique(t *testing.T) {
	s := NewBitsetSolver()

	g := mustGrid(t, sample)
	unique, _ := s.Unique(context.Background(), g)
	require.True(t, unique)
	require.Equal(t, sample, g.Rows())

	empty, err := domain.NewGrid(9)
	require.NoError(t, err)
	unique, _ = s.Unique(context.Background(), empty)
	require.False(t, unique)
}
