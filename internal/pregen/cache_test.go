package pregen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// stubGen returns canned puzzles instantly so the test exercises only the
// pool mechanics.
type stubGen struct{}

func (stubGen) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	return &domain.Puzzle{Seed: seed, Difficulty: d}, ports.Stats{}, nil
}

func TestTakeMissBeforeStart(t *testing.T) {
	c := NewCache(stubGen{}, 2)
	_, ok := c.Take(domain.Easy)
	require.False(t, ok)
}

func TestTakeAfterFill(t *testing.T) {
	c := NewCache(stubGen{}, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)

	require.Eventually(t, func() bool {
		p, ok := c.Take(domain.Master)
		return ok && p.Difficulty == domain.Master
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUnknownTierMisses(t *testing.T) {
	c := NewCache(stubGen{}, 1)
	_, ok := c.Take(domain.Difficulty(42))
	require.False(t, ok)
}
