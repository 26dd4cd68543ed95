package experiments

import (
	"fmt"

	"solver/engine"
	"solver/experiments/metrics"
	"solver/game"
	"solver/searcher"
)

const (
	KindPolicy  = "policy"
	KindMinimax = "minimax"
	KindRandom  = "random"
)

// AgentFactory builds agents from configs. Policy agents replay the table
// of the player they move for, so policies may be nil when no policy agent
// is configured.
func AgentFactory(policies map[game.Player]*searcher.PolicyTable) func(metrics.AgentConfig, game.Player) (engine.Agent, error) {
	return func(config metrics.AgentConfig, player game.Player) (engine.Agent, error) {
		switch config.Kind {
		case KindPolicy:
			table, ok := policies[player]
			if !ok || table == nil {
				return nil, fmt.Errorf("agent %d: no policy table for %s", config.ID, player)
			}
			return engine.NewPolicyAgent(table), nil
		case KindMinimax:
			return engine.NewMinimaxAgent(), nil
		case KindRandom:
			return engine.NewRandomAgent(config.Seed), nil
		}
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}
}
