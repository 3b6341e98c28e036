package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[4][4] = 5
	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}

func TestValidateRowConflict(t *testing.T) {
	var b domain.Board
	b.Values[2][1] = 7
	b.Values[2][8] = 7
	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, conflicts, domain.CellCoord{Row: 2, Col: 8})
}

func TestValidateColConflict(t *testing.T) {
	var b domain.Board
	b.Values[0][3] = 2
	b.Values[8][3] = 2
	ok, _, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValidateBoxConflict(t *testing.T) {
	var b domain.Board
	b.Values[3][3] = 9
	b.Values[5][5] = 9
	ok, _, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValidateMalformed(t *testing.T) {
	var b domain.Board
	b.Values[1][1] = 11
	_, _, err := New().Validate(context.Background(), &b)
	require.ErrorIs(t, err, domain.ErrMalformedGrid)
}
