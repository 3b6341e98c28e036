package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
	// Removed is how many cells the carver actually zeroed; ShortBy is how
	// far it fell short of the removal target (0 when the target was hit).
	Removed int
	ShortBy int
}

// Solver solves a board and counts its solutions up to a cap.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Count(ctx context.Context, b *domain.Board, cap int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step, if one is found.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
