package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	var b domain.Board
	// Row 0 holds 2..9; the only digit left for (0,0) is 1.
	for c := 1; c < 9; c++ {
		b.Values[0][c] = uint8(c + 1)
	}
	h, found, err := NewSingles().Hint(context.Background(), &b)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint8(1), h.Digit)
	require.Equal(t, []domain.CellCoord{{Row: 0, Col: 0}}, h.Cells)
	require.NotEmpty(t, h.Message)
}

func TestHintNoneOnOpenBoard(t *testing.T) {
	var b domain.Board
	_, found, err := NewSingles().Hint(context.Background(), &b)
	require.NoError(t, err)
	require.False(t, found)
}
