// Package generator produces full solved grids and carves them into puzzles
// with a unique solution.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
)

const (
	// MinClues is the established lower bound for a uniquely solvable
	// 9x9 Sudoku; no tier targets fewer givens than this.
	MinClues = 17

	// maxAttempts bounds the outer retry loop in strict mode.
	maxAttempts = 10
)

var (
	// ErrGenerationFailed reports that strict-target generation exhausted
	// its attempt budget without reaching the requested clue count.
	ErrGenerationFailed = errors.New("generator: failed to reach target clue count")

	// ErrInvalidClueCount reports a clue target outside 17..80.
	ErrInvalidClueCount = errors.New("generator: clue count must be between 17 and 80")
)

var log = logrus.New()

// targetClues maps each difficulty tier to its target number of givens.
func targetClues(d domain.Difficulty) (int, error) {
	switch d {
	case domain.Easy:
		return 40, nil
	case domain.Medium:
		return 33, nil
	case domain.Hard:
		return 28, nil
	case domain.Expert:
		return 24, nil
	case domain.Master:
		return 21, nil
	}
	return 0, fmt.Errorf("%w: %d", domain.ErrUnknownDifficulty, int(d))
}

// FullGrid produces a fully solved grid using the randomized solver. Each
// call with an independently seeded rng yields an uncorrelated completion.
func FullGrid(rng *rand.Rand) domain.Grid {
	return solver.Generate(rng)
}

// UniqueGenerator creates puzzles whose unique solution is retained alongside
// the carved board. Difficulty targets are best-effort by default: when the
// carve budget runs out short of the target, the puzzle is still returned
// (with more givens than asked) and the shortfall is logged at warn level and
// reported in Stats. StrictTarget upgrades the shortfall to a hard error
// after a bounded number of fresh attempts.
type UniqueGenerator struct {
	StrictTarget bool
}

func NewUniqueGenerator() *UniqueGenerator { return &UniqueGenerator{} }

// Generate creates a puzzle at the requested difficulty from the given seed.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	target, err := targetClues(diff)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if target < MinClues || target > 80 {
		return nil, ports.Stats{}, fmt.Errorf("%w: %d", ErrInvalidClueCount, target)
	}
	rng := rand.New(rand.NewSource(seed))

	attempts := 1
	if g.StrictTarget {
		attempts = maxAttempts
	}
	var (
		puz     domain.Grid
		full    domain.Grid
		removed int
	)
	want := 81 - target
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
		}
		full = FullGrid(rng)
		puz, removed = Carve(full, want, rng)
		if removed >= want {
			break
		}
	}
	shortBy := want - removed
	if shortBy > 0 {
		if g.StrictTarget {
			return nil, ports.Stats{Removed: removed, ShortBy: shortBy, Duration: time.Since(start)},
				fmt.Errorf("%w: short by %d after %d attempts", ErrGenerationFailed, shortBy, attempts)
		}
		log.WithFields(logrus.Fields{
			"difficulty": diff.String(),
			"target":     target,
			"clues":      puz.Clues(),
		}).Warn("carve budget exhausted before reaching target")
	}

	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = puz[r][c] != 0
		}
	}
	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		Solution:   full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Removed: removed, ShortBy: shortBy, Duration: time.Since(start)}, nil
}
