package generator

import (
	"math/rand"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

// maxCarvePasses bounds how many times Carve re-shuffles and re-walks the
// remaining filled cells after an incomplete pass. A tuning knob, not a
// correctness requirement: every committed removal already preserves
// uniqueness.
const maxCarvePasses = 3

// Carve removes up to removeTarget cells from the solved grid full, keeping
// each removal only while the grid retains exactly one solution. It returns
// the carved puzzle and the number of cells actually removed, which may fall
// short of the target: greedy single-cell removal cannot always reach very
// low clue counts, and the caller decides whether that is acceptable.
//
// The returned puzzle always has exactly one completion, equal to full.
func Carve(full domain.Grid, removeTarget int, rng *rand.Rand) (domain.Grid, int) {
	puz := full
	removed := 0
	for pass := 0; pass < maxCarvePasses && removed < removeTarget; pass++ {
		order := rng.Perm(81)
		progress := false
		for _, pos := range order {
			if removed >= removeTarget {
				break
			}
			r, c := pos/9, pos%9
			if puz[r][c] == 0 {
				continue
			}
			old := puz[r][c]
			puz[r][c] = 0
			if solver.CountSolutions(puz, 2) == 1 {
				removed++
				progress = true
			} else {
				puz[r][c] = old
			}
		}
		if !progress {
			break // a full pass removed nothing; later passes won't either
		}
	}
	return puz, removed
}
