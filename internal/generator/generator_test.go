package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

func TestCarvePreservesUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	full := FullGrid(rng)
	puz, removed := Carve(full, 48, rng)

	require.Equal(t, 81-removed, puz.Clues())
	require.Equal(t, 1, solver.CountSolutions(puz, 2))

	// The unique completion is the grid we carved from.
	g := puz
	require.True(t, solver.Solve(&g, nil))
	require.Equal(t, full, g)
}

func TestCarveOnlyRemoves(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	full := FullGrid(rng)
	puz, _ := Carve(full, 40, rng)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if puz[r][c] != 0 {
				require.Equal(t, full[r][c], puz[r][c], "cell (%d,%d) altered", r, c)
			}
		}
	}
}

func TestCarveZeroTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	full := FullGrid(rng)
	puz, removed := Carve(full, 0, rng)
	require.Zero(t, removed)
	require.Equal(t, full, puz)
}

func TestGenerateAllDifficulties(t *testing.T) {
	g := NewUniqueGenerator()

	cases := []struct {
		name   string
		diff   domain.Difficulty
		target int
	}{
		{"easy", domain.Easy, 40},
		{"medium", domain.Medium, 33},
		{"hard", domain.Hard, 28},
		{"expert", domain.Expert, 24},
		{"master", domain.Master, 21},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)
			require.NotEmpty(t, p.ID)
			require.Equal(t, tc.diff, p.Difficulty)

			clues := p.Board.Values.Clues()
			require.GreaterOrEqual(t, clues, MinClues)
			require.Equal(t, tc.target+st.ShortBy, clues)

			// Exactly one solution, and it is the stored one.
			require.Equal(t, 1, solver.CountSolutions(p.Board.Values, 2))
			solved := p.Board.Values
			require.True(t, solver.Solve(&solved, nil))
			require.Equal(t, p.Solution, solved)

			// Fixed mask mirrors the givens.
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					require.Equal(t, p.Board.Values[r][c] != 0, p.Board.Fixed[r][c])
				}
			}
		})
	}
}

func TestGenerateReproducibleBySeed(t *testing.T) {
	g := NewUniqueGenerator()
	ctx := context.Background()
	a, _, err := g.Generate(ctx, 99, domain.Medium)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 99, domain.Medium)
	require.NoError(t, err)
	require.Equal(t, a.Board.Values, b.Board.Values)
	require.Equal(t, a.Solution, b.Solution)
}

func TestGenerateUnknownDifficulty(t *testing.T) {
	g := NewUniqueGenerator()
	_, _, err := g.Generate(context.Background(), 1, domain.Difficulty(42))
	require.ErrorIs(t, err, domain.ErrUnknownDifficulty)
}
