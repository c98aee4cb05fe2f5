package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nsudoku/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	g, err := domain.FromRows([][]uint8{
		{1, 2, 3, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	h, found, err := NewSingles().Hint(context.Background(), g, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []domain.CellCoord{{Row: 0, Col: 3}}, h.Cells)
	require.Equal(t, uint8(4), h.Value)
	require.Equal(t, domain.StrategySingles, h.Strategy)
}

func TestHintNoneOnOpenBoard(t *testing.T) {
	g, err := domain.NewGrid(9)
	require.NoError(t, err)

	_, found, err := NewSingles().Hint(context.Background(), g, domain.StrategySingles)
	require.NoError(t, err)
	require.False(t, found)
}

func TestHintRespectsTierCap(t *testing.T) {
	g, err := domain.FromRows([][]uint8{
		{1, 2, 3, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	_, found, err := NewSingles().Hint(context.Background(), g, domain.StrategyTier(-1))
	require.NoError(t, err)
	require.False(t, found)
}
