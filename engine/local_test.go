package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"solver/game"
	"solver/searcher"
)

// fixedAgent always plays the same move.
type fixedAgent struct {
	move game.Move
}

func (a fixedAgent) FindMove(state game.State) (game.Move, error) {
	return a.move, nil
}

func newTicTacToe(t *testing.T) game.State {
	t.Helper()
	state, err := game.NewTicTacToe()
	require.NoError(t, err)
	return state
}

func TestSolvedPolicyAgainstRandom(t *testing.T) {
	result, err := searcher.SolveBackward(newTicTacToe(t))
	require.NoError(t, err)

	t.Run("cross never loses", func(t *testing.T) {
		for seed := uint64(1); seed <= 25; seed++ {
			e := LocalEngine(newTicTacToe(t), NewPolicyAgent(result.Max), NewRandomAgent(seed))

			final, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err)
			require.True(t, final.IsTerminal())
			require.GreaterOrEqual(t, final.Utility(), searcher.Draw, "seed %d", seed)
			require.Equal(t, final.History().Len(), gameMetric.TotalMoves)
			require.Len(t, moveMetrics, gameMetric.TotalMoves)
			require.Equal(t, game.Max, gameMetric.StartingPlayer)
		}
	})

	t.Run("nought never loses", func(t *testing.T) {
		for seed := uint64(1); seed <= 25; seed++ {
			e := LocalEngine(newTicTacToe(t), NewRandomAgent(seed), NewPolicyAgent(result.Min))

			final, gameMetric, _, err := e.Run()

			require.NoError(t, err)
			require.LessOrEqual(t, final.Utility(), searcher.Draw, "seed %d", seed)
			require.NotEqual(t, game.Max, gameMetric.Winner)
		}
	})

	t.Run("solved policies draw against each other", func(t *testing.T) {
		e := LocalEngine(newTicTacToe(t), NewPolicyAgent(result.Max), NewPolicyAgent(result.Min))

		final, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, searcher.Draw, final.Utility())
		require.Equal(t, game.NoPlayer, gameMetric.Winner)
		require.Equal(t, 9, gameMetric.TotalMoves)
	})
}

func TestMinimaxAgentNotakto(t *testing.T) {
	agent := NewMinimaxAgent()
	for seed := uint64(1); seed <= 20; seed++ {
		state, err := game.NewNotakto(1)
		require.NoError(t, err)
		e := LocalEngine(state, agent, NewRandomAgent(seed))

		final, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, searcher.Win, final.Utility(), "seed %d", seed)
		require.Equal(t, game.Max, gameMetric.Winner)
		require.Zero(t, gameMetric.TotalMoves%2, "Min should complete the last line")
	}
}

func TestRandomAgentIsSeeded(t *testing.T) {
	play := func(seed uint64) game.History {
		state, err := game.NewNotakto(2)
		require.NoError(t, err)
		final, _, _, err := LocalEngine(state, NewRandomAgent(seed), NewRandomAgent(seed+1)).Run()
		require.NoError(t, err)
		return final.History()
	}

	require.Equal(t, play(7), play(7))
}

func TestLocalEngineErrors(t *testing.T) {
	t.Run("missing policy", func(t *testing.T) {
		table := searcher.NewPolicyTable(9)
		e := LocalEngine(newTicTacToe(t), NewPolicyAgent(table), NewRandomAgent(1))

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, ErrNoPolicy)
	})

	t.Run("illegal move", func(t *testing.T) {
		e := LocalEngine(newTicTacToe(t), fixedAgent{move: 4}, fixedAgent{move: 4})

		final, _, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.History{4}, final.History(), "Engine should stop at the last legal state")
	})

	t.Run("missing agent", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(newTicTacToe(t), nil, NewRandomAgent(1)) })
	})
}
