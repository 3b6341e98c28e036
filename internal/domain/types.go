package domain

import (
	"errors"
	"fmt"
)

// Grid is a 9x9 Sudoku grid in row-major order; 0 marks an empty cell.
// It is a value type: assignment copies it, so search code can work on a
// private copy without touching the caller's grid.
type Grid [9][9]uint8

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Digit   uint8       `json:"digit,omitempty"`
}

// Puzzle is a persisted puzzle/solution pair with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	Solution   Grid       `json:"solution,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// ErrMalformedGrid indicates a grid whose cells fall outside 0..9 or whose
// textual form is not 81 digits.
var ErrMalformedGrid = errors.New("domain: malformed grid")

// Clues returns the number of filled cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CheckDigits verifies every cell holds a value in 0..9. Out-of-range cells
// are a caller error, reported via ErrMalformedGrid rather than tolerated.
func (g *Grid) CheckDigits() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrMalformedGrid, r, c, g[r][c])
			}
		}
	}
	return nil
}

// ParseGrid reads an 81-character digit string (row-major, '0' or '.' for
// empty) into a Grid.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	if len(s) != 81 {
		return g, fmt.Errorf("%w: want 81 characters, got %d", ErrMalformedGrid, len(s))
	}
	for i, ch := range []byte(s) {
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = ch - '0'
		default:
			return Grid{}, fmt.Errorf("%w: bad character %q at offset %d", ErrMalformedGrid, ch, i)
		}
	}
	return g, nil
}

// String renders the grid as an 81-character digit string.
func (g Grid) String() string {
	b := make([]byte, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b = append(b, '0'+g[r][c])
		}
	}
	return string(b)
}
