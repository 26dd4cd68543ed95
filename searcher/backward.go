package searcher

import (
	"fmt"

	"solver/game"
)

// BackwardInduction walks the full game tree without memoization and records
// a deterministic best response for every non-terminal history it visits.
type BackwardInduction struct {
	tables  map[game.Player]*PolicyTable
	metrics Collector
}

type BackwardResult struct {
	Value  float64
	Max    *PolicyTable // policies of the first player
	Min    *PolicyTable
	Metric SearchMetric
}

func NewBackwardInduction(labels int, options ...Option) *BackwardInduction {
	c := newConfig(options)
	return &BackwardInduction{
		tables: map[game.Player]*PolicyTable{
			game.Max: NewPolicyTable(labels),
			game.Min: NewPolicyTable(labels),
		},
		metrics: c.metrics,
	}
}

// Table returns the policies recorded so far for player.
func (b *BackwardInduction) Table(player game.Player) *PolicyTable {
	return b.tables[player]
}

// Solve returns the value of state and records the mover's best move at every
// non-terminal history below it.
func (b *BackwardInduction) Solve(state game.State) (float64, error) {
	if state.IsTerminal() {
		b.metrics.AddNode()
		b.metrics.AddTerminal()
		return state.Utility(), nil
	}
	b.metrics.AddNode()

	player := state.Player()
	if player == game.NoPlayer {
		return 0, fmt.Errorf("%w: no player to move at non-terminal history %q", ErrInconsistentState, state.History().Key())
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("%w: no legal moves at non-terminal history %q", ErrInconsistentState, state.History().Key())
	}

	maximizing := player == game.Max
	best := initialBest(maximizing)
	bestMove := moves[0]
	for _, move := range moves {
		child, err := state.Play(move)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInconsistentState, err)
		}
		value, err := b.Solve(child)
		if err != nil {
			return 0, err
		}
		if improves(value, best, maximizing) {
			best = value
			bestMove = move
		}
	}

	if err := b.tables[player].Record(state.History(), bestMove); err != nil {
		return 0, err
	}
	return best, nil
}

// SolveBackward solves state with fresh policy tables.
func SolveBackward(state game.State, options ...Option) (BackwardResult, error) {
	b := NewBackwardInduction(state.Labels(), options...)
	b.metrics.Start("backward_induction")
	value, err := b.Solve(state)
	if err != nil {
		return BackwardResult{}, err
	}
	return BackwardResult{
		Value:  value,
		Max:    b.tables[game.Max],
		Min:    b.tables[game.Min],
		Metric: b.metrics.Complete(0),
	}, nil
}
