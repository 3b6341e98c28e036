// Package hint suggests the next logical move for a board.
package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

// Singles implements a minimal Hinter that suggests naked singles: empty
// cells whose candidate set, derived from the engine's legality predicate,
// holds exactly one digit.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if err := b.Values.CheckDigits(); err != nil {
		return domain.Hint{}, false, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			cands := solver.Candidates(&b.Values, r, c)
			if len(cands) == 1 {
				return domain.Hint{
					Message: fmt.Sprintf("Single: only %d fits here", cands[0]),
					Cells:   []domain.CellCoord{{Row: r, Col: c}},
					Digit:   cands[0],
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
