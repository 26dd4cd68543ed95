package searcher

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"solver/game"
)

var (
	ErrInconsistentState = errors.New("inconsistent game state")
	ErrPolicyOverwrite   = errors.New("policy already recorded with a different move")
)

type Option func(c *config)

type config struct {
	metrics  Collector
	cache    *ValueCache
	visitLog bool
}

func newConfig(options []Option) *config {
	c := &config{ // Default values
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(c)
	}
	if c.cache == nil {
		c.cache = NewValueCache()
	}
	return c
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = NewCollector()
	}
}

// WithCache makes a transposition solver read and extend cache instead of an
// empty one. The cache must only hold exact values of the same game.
func WithCache(cache *ValueCache) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithVisitLog records every history the alpha-beta search enters.
func WithVisitLog() Option {
	return func(c *config) {
		c.visitLog = true
	}
}

// outcomeRange returns the lowest and highest utility of the game.
func outcomeRange(state game.State) (lo, hi float64) {
	outcomes := state.Outcomes()
	if len(outcomes) == 0 {
		return math.Inf(-1), math.Inf(1)
	}
	return floats.Min(outcomes), floats.Max(outcomes)
}

func initialBest(maximizing bool) float64 {
	if maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// improves reports whether value strictly beats best for the side to move,
// so the first move reaching the extremum is kept.
func improves(value, best float64, maximizing bool) bool {
	if maximizing {
		return value > best
	}
	return value < best
}
