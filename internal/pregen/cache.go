// Package pregen keeps a small pool of ready puzzles per difficulty so that
// seedless generate requests return without paying the carve cost inline.
package pregen

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

var log = logrus.New()

var tiers = [...]domain.Difficulty{
	domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Master,
}

// Cache holds a bounded channel of pregenerated puzzles per difficulty,
// refilled by one background worker per tier. Each worker owns its grids
// exclusively; no state is shared across workers.
type Cache struct {
	gen  ports.Generator
	pool map[domain.Difficulty]chan *domain.Puzzle
}

// NewCache creates a cache holding up to size puzzles per difficulty.
func NewCache(gen ports.Generator, size int) *Cache {
	c := &Cache{gen: gen, pool: make(map[domain.Difficulty]chan *domain.Puzzle, len(tiers))}
	for _, d := range tiers {
		c.pool[d] = make(chan *domain.Puzzle, size)
	}
	return c
}

// Start launches one refill worker per difficulty. Workers exit when ctx is
// canceled.
func (c *Cache) Start(ctx context.Context) {
	for _, d := range tiers {
		go c.fill(ctx, d)
	}
}

func (c *Cache) fill(ctx context.Context, d domain.Difficulty) {
	ch := c.pool[d]
	for {
		if ctx.Err() != nil {
			return
		}
		p, st, err := c.gen.Generate(ctx, time.Now().UnixNano(), d)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).WithField("difficulty", d.String()).Error("pregen failed")
			continue
		}
		log.WithFields(logrus.Fields{
			"difficulty": d.String(),
			"clues":      p.Board.Values.Clues(),
			"dur":        st.Duration.Round(time.Millisecond),
		}).Debug("pregenerated puzzle")
		select {
		case ch <- p:
		case <-ctx.Done():
			return
		}
	}
}

// Take returns a cached puzzle for the difficulty if one is ready. It never
// blocks; a miss means the caller should generate inline.
func (c *Cache) Take(d domain.Difficulty) (*domain.Puzzle, bool) {
	ch, ok := c.pool[d]
	if !ok {
		return nil, false
	}
	select {
	case p := <-ch:
		return p, true
	default:
		return nil, false
	}
}
