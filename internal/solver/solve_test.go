package solver

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = mustGrid("530070000600195000098000060800060003400803001700020006060000280000419005000080079")

// The unique solution of sample.
var sampleSolved = mustGrid("534678912672195348198342567859761423426853791713924856961537284287419635345286179")

// A consistent but unsolvable grid: (0,0) needs a 1 by its row, but column 0
// already holds a 1 further down.
var deadEnd = mustGrid("023456789000000000000000000000000000000000000100000000000000000000000000000000000")

func mustGrid(s string) domain.Grid {
	g, err := domain.ParseGrid(s)
	if err != nil {
		panic(err)
	}
	return g
}

func TestSolveSample(t *testing.T) {
	g := sample
	require.True(t, Solve(&g, nil))
	require.Equal(t, sampleSolved, g)
}

func TestSolveEmptyGrid(t *testing.T) {
	var g domain.Grid
	require.True(t, Solve(&g, nil))
	require.Equal(t, 81, g.Clues())
	assertCompleteAndValid(t, g)
}

func TestSolveFailureLeavesGridUnchanged(t *testing.T) {
	g := deadEnd
	require.False(t, Solve(&g, nil))
	require.Equal(t, deadEnd, g, "failed solve must fully backtrack")
}

func TestSolveKeepsGivens(t *testing.T) {
	g := sample
	require.True(t, Solve(&g, nil))
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != 0 {
				require.Equal(t, sample[r][c], g[r][c], "given at (%d,%d) changed", r, c)
			}
		}
	}
}

func TestCanPlaceDoesNotMutate(t *testing.T) {
	g := sample
	for v := uint8(1); v <= 9; v++ {
		CanPlace(&g, 0, 2, v)
	}
	require.Equal(t, sample, g)
}

func TestCanPlaceRejectsRowColBox(t *testing.T) {
	g := sample
	// (0,2) is empty; row 0 holds 5,3,7; col 2 holds 8; box 0 holds 5,3,6,9,8.
	require.False(t, CanPlace(&g, 0, 2, 5), "row duplicate")
	require.False(t, CanPlace(&g, 0, 2, 8), "col duplicate")
	require.False(t, CanPlace(&g, 0, 2, 9), "box duplicate")
	require.True(t, CanPlace(&g, 0, 2, 4))
}

func TestCandidatesRecomputed(t *testing.T) {
	g := sample
	before := Candidates(&g, 0, 2)
	require.Contains(t, before, uint8(4))
	g[0][3] = 4 // placing 4 in the row must remove it from the cell's set
	after := Candidates(&g, 0, 2)
	require.NotContains(t, after, uint8(4))
	g[0][3] = 0
}

func TestGenerateProducesValidGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := Generate(rng)
	assertCompleteAndValid(t, g)
}

func TestGenerateVariesBySeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)))
	b := Generate(rand.New(rand.NewSource(8)))
	require.NotEqual(t, a, b)
	// Same seed reproduces the same grid.
	c := Generate(rand.New(rand.NewSource(7)))
	require.Equal(t, a, c)
}

func TestMRVSolverPort(t *testing.T) {
	s := NewMRVSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, &domain.Board{Values: sample})
	require.NoError(t, err)
	require.Equal(t, sampleSolved, out.Values)
	require.Greater(t, st.Nodes, 0)

	_, _, err = s.Solve(ctx, &domain.Board{Values: deadEnd})
	require.ErrorIs(t, err, ErrUnsolvable)
}

func TestMRVSolverRejectsMalformed(t *testing.T) {
	s := NewMRVSolver()
	var g domain.Grid
	g[4][4] = 12
	_, _, err := s.Solve(context.Background(), &domain.Board{Values: g})
	require.ErrorIs(t, err, domain.ErrMalformedGrid)
}

// assertCompleteAndValid checks every row, column, and box is a permutation
// of 1..9.
func assertCompleteAndValid(t *testing.T, g domain.Grid) {
	t.Helper()
	for n := 0; n < 9; n++ {
		var rowSeen, colSeen, boxSeen [10]bool
		for i := 0; i < 9; i++ {
			rv := g[n][i]
			cv := g[i][n]
			bv := g[(n/3)*3+i/3][(n%3)*3+i%3]
			require.NotZero(t, rv)
			require.False(t, rowSeen[rv], "row %d repeats %d", n, rv)
			require.False(t, colSeen[cv], "col %d repeats %d", n, cv)
			require.False(t, boxSeen[bv], "box %d repeats %d", n, bv)
			rowSeen[rv], colSeen[cv], boxSeen[bv] = true, true, true
		}
	}
}
