package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/solver"
	"svw.info/nsudoku/internal/validator"
)

func TestGenerateAllDifficulties9x9(t *testing.T) {
	s := solver.NewBitsetSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 9, 12345, tc.diff)
			require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
			require.Equal(t, 9, p.Size)
			require.Equal(t, tc.diff, p.Difficulty)

			board, err := p.Board()
			require.NoError(t, err)
			givens := 81 - board.CountEmpty()
			require.GreaterOrEqual(t, givens, 17, "below the minimum clue count for 9×9")
			require.LessOrEqual(t, givens, 81)

			ok, conflicts, err := validator.New().Validate(ctx, board)
			require.NoError(t, err)
			require.True(t, ok, "conflicts: %v", conflicts)

			unique, _ := s.Unique(ctx, board)
			require.True(t, unique, "generated puzzle must have exactly one solution")
		})
	}
}

func TestGenerate4x4(t *testing.T) {
	s := solver.NewBitsetSolver()
	g := NewUniqueGenerator(s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p, _, err := g.Generate(ctx, 4, 7, domain.Medium)
	require.NoError(t, err)

	board, err := p.Board()
	require.NoError(t, err)
	unique, _ := s.Unique(ctx, board)
	require.True(t, unique)
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	s := solver.NewBitsetSolver()
	g := NewUniqueGenerator(s)

	ctx := context.Background()
	a, _, err := g.Generate(ctx, 9, 99, domain.Easy)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 9, 99, domain.Easy)
	require.NoError(t, err)
	require.Equal(t, a.Givens, b.Givens)
}

func TestGenerateRejectsBadSize(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBitsetSolver())
	_, _, err := g.Generate(context.Background(), 12, 1, domain.Medium)
	require.ErrorIs(t, err, domain.ErrNotSquare)
}
