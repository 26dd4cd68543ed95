package engine

import (
	"fmt"

	"golang.org/x/exp/rand"

	"solver/game"
	"solver/searcher"
)

// PolicyAgent replays a solved policy table.
type PolicyAgent struct {
	table *searcher.PolicyTable
}

func NewPolicyAgent(table *searcher.PolicyTable) *PolicyAgent {
	return &PolicyAgent{table: table}
}

func (a *PolicyAgent) FindMove(state game.State) (game.Move, error) {
	key := state.History().Key()
	move, ok := a.table.Move(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoPolicy, key)
	}
	return move, nil
}

// MinimaxAgent plays the first move with the best memoized minimax value.
// Its cache persists across moves and games.
type MinimaxAgent struct {
	solver *searcher.Maxmin
}

func NewMinimaxAgent(options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{solver: searcher.NewMaxmin(options...)}
}

func (a *MinimaxAgent) FindMove(state game.State) (game.Move, error) {
	ts, ok := state.(game.Transposable)
	if !ok {
		return 0, ErrNotSolvable
	}
	move, _, err := a.solver.BestMove(ts)
	return move, err
}

type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("%w at history %q", ErrNoLegalMoves, state.History().Key())
	}
	return moves[a.rng.Intn(len(moves))], nil
}
