package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"solver/experiments/metrics"
	"solver/game"
)

type Local struct {
	State   game.State
	Agents  map[game.Player]Agent
	metrics metrics.Collector
}

// LocalEngine plays state to the end with maxAgent moving for the first
// player and minAgent for the second.
func LocalEngine(state game.State, maxAgent, minAgent Agent) *Local {
	if maxAgent == nil || minAgent == nil {
		panic("need an agent for each player")
	}
	return &Local{
		State:   state,
		Agents:  map[game.Player]Agent{game.Max: maxAgent, game.Min: minAgent},
		metrics: metrics.NewCollector(),
	}
}

// Run executes the entire game loop until the state is terminal.
func (e *Local) Run() (game.State, metrics.GameMetric, []metrics.MoveMetric, error) {
	log.Debug().Msgf("%s is starting at history %q", e.State.Player(), e.State.History().Key())
	e.metrics.Start(e.State.Player())

	for turn := 1; !e.State.IsTerminal(); turn++ {
		if turn > MaxMoves {
			return e.State, metrics.GameMetric{}, nil, ErrMoveLimit
		}
		player := e.State.Player()
		agent, ok := e.Agents[player]
		if !ok {
			return e.State, metrics.GameMetric{}, nil, fmt.Errorf("no agent for player %s at history %q", player, e.State.History().Key())
		}

		start := time.Now()
		move, err := agent.FindMove(e.State)
		if err != nil {
			return e.State, metrics.GameMetric{}, nil, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		next, err := e.State.Play(move)
		if err != nil {
			return e.State, metrics.GameMetric{}, nil, fmt.Errorf("%s played %d: %w", player, move, err)
		}
		e.metrics.AddMove(player, move, time.Since(start))

		e.State = next
	}

	gameMetric, moveMetrics := e.metrics.Complete(e.State.Utility())
	log.Debug().Msgf("game over after %d moves with utility %v", gameMetric.TotalMoves, gameMetric.Utility)
	return e.State, gameMetric, moveMetrics, nil
}
