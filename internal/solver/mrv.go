package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// MRVSolver adapts the engine to the ports.Solver interface, adding context
// cancellation and per-call stats on top of the raw search.
type MRVSolver struct{}

func NewMRVSolver() *MRVSolver { return &MRVSolver{} }

func (s *MRVSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := b.Values.CheckDigits(); err != nil {
		return nil, ports.Stats{}, err
	}
	grid := b.Values
	nodes := 0
	if !solveDFS(ctx, &grid, nil, &nodes) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if ctx.Err() != nil {
			return nil, st, ctx.Err()
		}
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func (s *MRVSolver) Count(ctx context.Context, b *domain.Board, cap int) (int, ports.Stats, error) {
	start := time.Now()
	if cap < 1 {
		return 0, ports.Stats{}, fmt.Errorf("solver: cap must be >= 1, got %d", cap)
	}
	if err := b.Values.CheckDigits(); err != nil {
		return 0, ports.Stats{}, err
	}
	grid := b.Values
	count, nodes := 0, 0
	countDFS(ctx, &grid, cap, &count, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if ctx.Err() != nil {
		return count, st, ctx.Err()
	}
	return count, st, nil
}
