package solver

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// CountSolutions counts completions of g up to cap and returns
// min(solutions, cap); callers pass cap=2 to distinguish "exactly one" from
// "more than one" without paying for an exhaustive count. The grid is taken
// by value, so the caller's copy is never disturbed.
func CountSolutions(g domain.Grid, cap int) int {
	count := 0
	countDFS(context.Background(), &g, cap, &count, new(int))
	return count
}

// Unique reports whether g has exactly one completion.
func Unique(g domain.Grid) bool {
	return CountSolutions(g, 2) == 1
}

// countDFS mirrors solveDFS but accumulates completions instead of stopping
// at the first, pruning dead branches and aborting outright (true) once count
// reaches cap.
func countDFS(ctx context.Context, g *domain.Grid, cap int, count, nodes *int) bool {
	if ctx.Err() != nil || *count >= cap {
		return true
	}
	r, c, cands, found := mrvCell(g)
	if !found {
		*count++
		return *count >= cap
	}
	for _, v := range cands {
		*nodes++
		g[r][c] = v
		if countDFS(ctx, g, cap, count, nodes) {
			g[r][c] = 0
			return true
		}
		g[r][c] = 0
	}
	return false
}
