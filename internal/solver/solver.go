// Package solver is the constraint-satisfaction engine: placement legality,
// MRV backtracking search, and the capped solution counter. It is stateless
// and reentrant; every call owns its grid exclusively for its duration.
package solver

import (
	"errors"

	"svw.info/sudokugen/internal/domain"
)

// ErrUnsolvable reports that no completion exists from the given state. It is
// an expected outcome, not an exceptional one; the functional API signals it
// with a bool and only the port layer wraps it as an error.
var ErrUnsolvable = errors.New("solver: no solution from given state")

// CanPlace reports whether digit v may legally be placed at (r, c): false iff
// v already appears in the cell's row, column, or 3x3 box. It is the single
// source of truth for legality; every other component derives constraints
// through it. Never mutates the grid.
func CanPlace(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// Candidates returns the digits 1..9 legally placeable at the empty cell
// (r, c). The set is recomputed on demand; no caching survives a mutation.
func Candidates(g *domain.Grid, r, c int) []uint8 {
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if CanPlace(g, r, c, v) {
			out = append(out, v)
		}
	}
	return out
}

// mrvCell selects the empty cell with the fewest candidates (ties broken by
// row-major scan order). found is false when the grid has no empty cells. A
// zero-candidate cell is returned immediately: that branch is dead and the
// caller must not descend further.
func mrvCell(g *domain.Grid) (row, col int, cands []uint8, found bool) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			cs := Candidates(g, r, c)
			if len(cs) == 0 {
				return r, c, nil, true
			}
			if len(cs) < best {
				row, col, cands, found = r, c, cs, true
				best = len(cs)
			}
		}
	}
	return row, col, cands, found
}
