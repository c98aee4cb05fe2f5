package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
)

// allowedReference is a naive oracle for Allowed: three independent
// loops over the row, the column, and the block.
func allowedReference(g *domain.Grid, r, c int, v uint8) bool {
	n, b := g.Size(), g.Box()
	for i := 0; i < n; i++ {
		if g.At(r, i) == v {
			return false
		}
	}
	for i := 0; i < n; i++ {
		if g.At(i, c) == v {
			return false
		}
	}
	br, bc := (r/b)*b, (c/b)*b
	for dr := 0; dr < b; dr++ {
		for dc := 0; dc < b; dc++ {
			if g.At(br+dr, bc+dc) == v {
				return false
			}
		}
	}
	return true
}

func TestAllowedExhaustive(t *testing.T) {
	boards := []struct {
		name string
		rows [][]uint8
	}{
		{"partial 4x4", [][]uint8{
			{1, 0, 0, 4},
			{0, 0, 2, 0},
			{0, 3, 0, 0},
			{2, 0, 0, 0},
		}},
		{"classic 9x9", sample},
		{"full 9x9", sampleSolution},
	}
	for _, tc := range boards {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows)
			n := g.Size()
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					for v := uint8(1); int(v) <= n; v++ {
						want := allowedReference(g, r, c, v)
						require.Equal(t, want, Allowed(g, r, c, v),
							"Allowed(%d,%d,%d)", r, c, v)
					}
				}
			}
		})
	}
}

func TestAllowedDetectsEachScope(t *testing.T) {
	g, err := domain.NewGrid(9)
	require.NoError(t, err)

	g.SetAt(2, 7, 5) // row scope for (2,0)
	require.False(t, Allowed(g, 2, 0, 5))
	require.True(t, Allowed(g, 3, 0, 5))

	g.SetAt(8, 0, 6) // column scope for (2,0)
	require.False(t, Allowed(g, 2, 0, 6))
	require.True(t, Allowed(g, 2, 1, 6))

	g.SetAt(1, 1, 7) // block scope for (2,0)
	require.False(t, Allowed(g, 2, 0, 7))
	require.True(t, Allowed(g, 2, 3, 7))
}
