package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"solver/engine"
	"solver/experiments/metrics"
	"solver/game"
)

// MatchUp pairs the agent moving first with the agent moving second.
type MatchUp struct {
	Max metrics.AgentConfig
	Min metrics.AgentConfig
}

type ArenaConfig struct {
	Name     string
	Games    int // per matchup
	MatchUps []MatchUp
	NewState func() (game.State, error)
	// NewAgent builds the agent playing player, once per matchup.
	NewAgent func(config metrics.AgentConfig, player game.Player) (engine.Agent, error)
}

type ArenaResult struct {
	MatchUp
	metrics.Tally
}

type Arena struct {
	Results []ArenaResult
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// RunArena plays every matchup cfg.Games times and collects the records.
func RunArena(cfg ArenaConfig) (Arena, error) {
	if cfg.NewState == nil || cfg.NewAgent == nil {
		return Arena{}, fmt.Errorf("arena %s needs a state and an agent factory", cfg.Name)
	}

	count := 0
	arena := Arena{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between max=%+v and min=%+v...", mi+1, len(cfg.MatchUps), matchup.Max, matchup.Min)

		maxAgent, err := cfg.NewAgent(matchup.Max, game.Max)
		if err != nil {
			return Arena{}, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		minAgent, err := cfg.NewAgent(matchup.Min, game.Min)
		if err != nil {
			return Arena{}, fmt.Errorf("matchup %d: %w", mi+1, err)
		}

		result := ArenaResult{MatchUp: matchup}
		for i := 0; i < cfg.Games; i++ {
			state, err := cfg.NewState()
			if err != nil {
				return Arena{}, err
			}

			_, gameMetric, moveMetrics, err := engine.LocalEngine(state, maxAgent, minAgent).Run()
			if err != nil {
				return Arena{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			result.Add(gameMetric)
			arena.Games = append(arena.Games, metrics.GameRecord{
				ID:         count,
				MatchUp:    mi + 1,
				MaxAgent:   matchup.Max.ID,
				MinAgent:   matchup.Min.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				arena.Moves = append(arena.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(cfg.MatchUps), i+1, gameMetric.Winner)
		}
		arena.Results = append(arena.Results, result)
		log.Info().Msgf("completed matchup %d of %d: max wins=%d min wins=%d draws=%d", mi+1, len(cfg.MatchUps), result.MaxWins, result.MinWins, result.Draws)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return arena, nil
}

// Store writes the agent configs and the game and move records of an arena.
func (a Arena) Store(writer *metrics.Writer) error {
	seen := map[int]bool{}
	configs := []metrics.AgentConfig{}
	for _, r := range a.Results {
		for _, c := range []metrics.AgentConfig{r.Max, r.Min} {
			if !seen[c.ID] {
				seen[c.ID] = true
				configs = append(configs, c)
			}
		}
	}

	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(a.Games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(a.Moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}
