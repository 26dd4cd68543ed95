package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"solver/game"
)

type TranspositionResult struct {
	Value   float64
	Visited []game.History // alpha-beta with WithVisitLog only
	Cache   *ValueCache
	Metric  SearchMetric
}

// SolveTransposable evaluates state with the alpha-beta solver or the plain
// memoized one. The side to move at state maximizes iff it is Max. The
// alpha-beta window starts at the game's outcome range, which no value can
// leave, so the root value is exact.
func SolveTransposable(state game.Transposable, useAlphaBeta bool, options ...Option) (TranspositionResult, error) {
	player := state.Player()
	if player == game.NoPlayer && !state.IsTerminal() {
		return TranspositionResult{}, fmt.Errorf("%w: no player to move at history %q", ErrInconsistentState, state.History().Key())
	}
	maximizing := player == game.Max

	c := newConfig(options)

	if useAlphaBeta {
		a := &AlphaBeta{cache: c.cache, metrics: c.metrics, visitLog: c.visitLog}
		a.metrics.Start("alpha_beta")
		lo, hi := outcomeRange(state)
		value, err := a.Evaluate(state, lo, hi, maximizing)
		if err != nil {
			return TranspositionResult{}, err
		}
		metric := a.metrics.Complete(a.cache.Len())
		log.Debug().Msgf("alpha-beta value %v, %d histories, %d cached boards", value, metric.Nodes, a.cache.Len())
		return TranspositionResult{Value: value, Visited: a.visited, Cache: a.cache, Metric: metric}, nil
	}

	m := &Maxmin{cache: c.cache, metrics: c.metrics}
	m.metrics.Start("maxmin")
	value, err := m.Evaluate(state, maximizing)
	if err != nil {
		return TranspositionResult{}, err
	}
	metric := m.metrics.Complete(m.cache.Len())
	log.Debug().Msgf("maxmin value %v, %d histories, %d cached boards", value, metric.Nodes, m.cache.Len())
	return TranspositionResult{Value: value, Cache: m.cache, Metric: metric}, nil
}
