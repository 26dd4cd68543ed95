package searcher

import (
	"fmt"

	"solver/game"
)

// Maxmin is plain minimax memoized by board signature, without pruning.
type Maxmin struct {
	cache   *ValueCache
	metrics Collector
}

func NewMaxmin(options ...Option) *Maxmin {
	c := newConfig(options)
	return &Maxmin{
		cache:   c.cache,
		metrics: c.metrics,
	}
}

func (m *Maxmin) Cache() *ValueCache {
	return m.cache
}

func (m *Maxmin) Evaluate(state game.Transposable, maximizing bool) (float64, error) {
	m.metrics.AddNode()
	if state.IsTerminal() {
		m.metrics.AddTerminal()
		return state.Utility(), nil
	}

	signature := state.Signature()
	if v, ok := m.cache.Get(signature); ok {
		m.metrics.AddCacheHit()
		return v, nil
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("%w: no legal moves at non-terminal board %s", ErrInconsistentState, signature)
	}

	best := initialBest(maximizing)
	for _, move := range moves {
		next, err := state.Play(move)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInconsistentState, err)
		}
		child, ok := next.(game.Transposable)
		if !ok {
			return 0, fmt.Errorf("%w: child of %s has no signature", ErrInconsistentState, signature)
		}
		value, err := m.Evaluate(child, !maximizing)
		if err != nil {
			return 0, err
		}
		if improves(value, best, maximizing) {
			best = value
		}
	}

	m.cache.Store(signature, best)
	return best, nil
}

// BestMove returns the first legal move of state whose child has the best
// value for the side to move, with that value.
func (m *Maxmin) BestMove(state game.Transposable) (game.Move, float64, error) {
	player := state.Player()
	if state.IsTerminal() || player == game.NoPlayer {
		return 0, 0, fmt.Errorf("%w: no move to choose at history %q", ErrInconsistentState, state.History().Key())
	}
	maximizing := player == game.Max

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, 0, fmt.Errorf("%w: no legal moves at non-terminal history %q", ErrInconsistentState, state.History().Key())
	}
	best, bestMove := initialBest(maximizing), moves[0]
	for _, move := range moves {
		next, err := state.Play(move)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrInconsistentState, err)
		}
		child, ok := next.(game.Transposable)
		if !ok {
			return 0, 0, fmt.Errorf("%w: child has no signature", ErrInconsistentState)
		}
		value, err := m.Evaluate(child, !maximizing)
		if err != nil {
			return 0, 0, err
		}
		if improves(value, best, maximizing) {
			best, bestMove = value, move
		}
	}
	return bestMove, best, nil
}
