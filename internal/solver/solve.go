package solver

import (
	"context"
	"math/rand"

	"svw.info/sudokugen/internal/domain"
)

// Solve fills g in place by MRV backtracking and reports success. A non-nil
// rng shuffles candidate order at every branch point, so repeated solves of
// the same partial grid produce varying completions; nil rng is fully
// deterministic. On failure g is restored to its pre-call state.
func Solve(g *domain.Grid, rng *rand.Rand) bool {
	return solveDFS(context.Background(), g, rng, new(int))
}

func solveDFS(ctx context.Context, g *domain.Grid, rng *rand.Rand, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, cands, found := mrvCell(g)
	if !found {
		return true // no empty cells left
	}
	if rng != nil {
		rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	}
	for _, v := range cands {
		*nodes++
		g[r][c] = v
		if solveDFS(ctx, g, rng, nodes) {
			return true
		}
		g[r][c] = 0
	}
	return false
}

// Generate produces a fully solved grid by running the randomized solver on
// an empty grid. Sudoku is always completable from zero givens, so this
// cannot fail for a well-behaved rng.
func Generate(rng *rand.Rand) domain.Grid {
	var g domain.Grid
	if !Solve(&g, rng) {
		// Unreachable from an empty grid; a panic here means the engine
		// itself is broken.
		panic("solver: empty grid did not solve")
	}
	return g
}
