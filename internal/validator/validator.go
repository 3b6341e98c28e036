// Package validator provides fast structural checks over a board: digit
// range preconditions and row/col/box conflict detection.
package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit enumerates the cells of one of the 27 constraint groups.
type unit func(i int) (r, c int)

func row(n int) unit { return func(i int) (int, int) { return n, i } }
func col(n int) unit { return func(i int) (int, int) { return i, n } }
func box(n int) unit {
	br, bc := (n/3)*3, (n%3)*3
	return func(i int) (int, int) { return br + i/3, bc + i%3 }
}

// Validate checks every filled cell against its row, column, and box and
// returns the coordinates of duplicated cells. A malformed grid (digits
// outside 0..9) is rejected with domain.ErrMalformedGrid before any scan.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if err := b.Values.CheckDigits(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)
	units := make([]unit, 0, 27)
	for n := 0; n < 9; n++ {
		units = append(units, row(n), col(n), box(n))
	}
	for _, u := range units {
		m := 0
		for i := 0; i < 9; i++ {
			r, c := u(i)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
