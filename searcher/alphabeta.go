package searcher

import (
	"fmt"

	"solver/game"
)

// AlphaBeta is minimax with alpha-beta pruning over a transposition cache
// keyed by board signature. Children are visited in ascending move order.
type AlphaBeta struct {
	cache    *ValueCache
	metrics  Collector
	visitLog bool
	visited  []game.History
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	c := newConfig(options)
	return &AlphaBeta{
		cache:    c.cache,
		metrics:  c.metrics,
		visitLog: c.visitLog,
	}
}

// Visited returns every history entered so far, in visiting order. It is
// empty unless the solver was built WithVisitLog.
func (a *AlphaBeta) Visited() []game.History {
	return a.visited
}

func (a *AlphaBeta) Cache() *ValueCache {
	return a.cache
}

// Evaluate returns the minimax value of state searched inside (alpha, beta).
// A cached value is returned without expanding the state. A computed value is
// cached only when it is exact: a result at or below alpha is an upper bound
// and a result at or above beta is a lower bound, unless it already is the
// lowest or highest outcome of the game.
func (a *AlphaBeta) Evaluate(state game.Transposable, alpha, beta float64, maximizing bool) (float64, error) {
	if a.visitLog {
		a.visited = append(a.visited, state.History())
	}
	a.metrics.AddNode()

	if state.IsTerminal() {
		a.metrics.AddTerminal()
		return state.Utility(), nil
	}

	signature := state.Signature()
	if v, ok := a.cache.Get(signature); ok {
		a.metrics.AddCacheHit()
		return v, nil
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("%w: no legal moves at non-terminal board %s", ErrInconsistentState, signature)
	}

	alpha0, beta0 := alpha, beta
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

		value, err := a.Evaluate(child, alpha, beta, !maximizing)
		if err != nil {
			return 0, err
		}
		if improves(value, best, maximizing) {
			best = value
		}
		if maximizing {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
		if beta <= alpha {
			a.metrics.AddCutoff()
			break
		}
	}

	lo, hi := outcomeRange(state)
	if (best > alpha0 || best == lo) && (best < beta0 || best == hi) {
		a.cache.Store(signature, best)
	}
	return best, nil
}
