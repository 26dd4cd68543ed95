package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"solver/experiments"
	"solver/experiments/metrics"
	"solver/game"
	"solver/meta"
	"solver/searcher"
	"solver/store"
)

var errSolversDisagree = errors.New("alpha-beta and maxmin disagree")

type config struct {
	game      string
	boards    int
	alphaBeta bool
	compare   bool
	out       string
	games     int
	seed      uint64
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.game, "game", meta.GAME, "Game to solve: tictactoe or notakto")
	flag.IntVar(&cfg.boards, "boards", meta.NUM_BOARDS, "Number of Notakto boards")
	flag.BoolVar(&cfg.alphaBeta, "alphabeta", true, "Solve Notakto with alpha-beta instead of plain memoized minimax")
	flag.BoolVar(&cfg.compare, "compare", false, "Run both Notakto solvers and check they agree")
	flag.StringVar(&cfg.out, "out", meta.OUT_DIR, "Output directory")
	flag.IntVar(&cfg.games, "games", meta.ARENA_GAMES, "Arena games per matchup, 0 disables the arena")
	flag.Uint64Var(&cfg.seed, "seed", meta.SEED, "Seed of the random arena agents")
	logLevel := flag.String("log-level", "info", "Log level")
	pretty := flag.Bool("pretty", false, "Human readable console logs")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.game)
	}
}

func run(cfg config) error {
	writer, err := metrics.NewWriter(cfg.out)
	if err != nil {
		return err
	}

	var records []metrics.SolveRecord
	var arena experiments.ArenaConfig
	switch cfg.game {
	case "tictactoe":
		records, arena, err = solveTicTacToe(cfg)
	case "notakto":
		records, arena, err = solveNotakto(cfg)
	default:
		return fmt.Errorf("unknown game %q", cfg.game)
	}
	if err != nil {
		return err
	}

	if err := writer.WriteSolveRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("stored %d solve records in %s", len(records), writer.Dir())

	if cfg.games <= 0 {
		return nil
	}
	result, err := experiments.RunArena(arena)
	if err != nil {
		return err
	}
	return result.Store(writer)
}

func solveTicTacToe(cfg config) ([]metrics.SolveRecord, experiments.ArenaConfig, error) {
	state, err := game.NewTicTacToe()
	if err != nil {
		return nil, experiments.ArenaConfig{}, err
	}

	result, err := searcher.SolveBackward(state, searcher.WithMetrics())
	if err != nil {
		return nil, experiments.ArenaConfig{}, err
	}
	log.Info().Msgf("tic-tac-toe value %v, %d max and %d min policies in %v", result.Value, result.Max.Len(), result.Min.Len(), result.Metric.Duration)

	if err := store.WritePolicy(filepath.Join(cfg.out, "policy_x.json"), result.Max); err != nil {
		return nil, experiments.ArenaConfig{}, err
	}
	if err := store.WritePolicy(filepath.Join(cfg.out, "policy_o.json"), result.Min); err != nil {
		return nil, experiments.ArenaConfig{}, err
	}
	log.Info().Msg("stored policies")

	records := []metrics.SolveRecord{{
		ID:          1,
		SolveMetric: metrics.SolveMetric{Game: cfg.game, Boards: 1, Value: result.Value, SearchMetric: result.Metric},
	}}

	policy := metrics.AgentConfig{ID: 1, Kind: experiments.KindPolicy}
	random := metrics.AgentConfig{ID: 2, Kind: experiments.KindRandom, Seed: cfg.seed}
	arena := experiments.ArenaConfig{
		Name:     cfg.game,
		Games:    cfg.games,
		MatchUps: []experiments.MatchUp{{Max: policy, Min: random}, {Max: random, Min: policy}},
		NewState: newTicTacToe,
		NewAgent: experiments.AgentFactory(map[game.Player]*searcher.PolicyTable{
			game.Max: result.Max,
			game.Min: result.Min,
		}),
	}
	return records, arena, nil
}

func solveNotakto(cfg config) ([]metrics.SolveRecord, experiments.ArenaConfig, error) {
	state, err := game.NewNotakto(cfg.boards)
	if err != nil {
		return nil, experiments.ArenaConfig{}, err
	}

	solvers := []bool{cfg.alphaBeta}
	if cfg.compare {
		solvers = append(solvers, !cfg.alphaBeta)
	}

	var records []metrics.SolveRecord
	var results []searcher.TranspositionResult
	for i, useAlphaBeta := range solvers {
		result, err := searcher.SolveTransposable(state, useAlphaBeta, searcher.WithMetrics())
		if err != nil {
			return nil, experiments.ArenaConfig{}, err
		}
		log.Info().Msgf("%d-board notakto value %v with %s: %d histories, %d cached boards in %v",
			cfg.boards, result.Value, result.Metric.Solver, result.Metric.Nodes, result.Cache.Len(), result.Metric.Duration)
		results = append(results, result)
		records = append(records, metrics.SolveRecord{
			ID:          i + 1,
			SolveMetric: metrics.SolveMetric{Game: cfg.game, Boards: cfg.boards, Value: result.Value, SearchMetric: result.Metric},
		})
	}
	if len(results) == 2 && results[0].Value != results[1].Value {
		return nil, experiments.ArenaConfig{}, fmt.Errorf("%w: %v != %v", errSolversDisagree, results[0].Value, results[1].Value)
	}

	if err := store.WriteValueCache(filepath.Join(cfg.out, "values.parquet"), results[0].Cache); err != nil {
		return nil, experiments.ArenaConfig{}, err
	}
	log.Info().Msgf("stored %d board values", results[0].Cache.Len())

	minimax := metrics.AgentConfig{ID: 1, Kind: experiments.KindMinimax}
	random := metrics.AgentConfig{ID: 2, Kind: experiments.KindRandom, Seed: cfg.seed}
	arena := experiments.ArenaConfig{
		Name:     cfg.game,
		Games:    cfg.games,
		MatchUps: []experiments.MatchUp{{Max: minimax, Min: random}, {Max: random, Min: minimax}},
		NewState: func() (game.State, error) { return newNotakto(cfg.boards) },
		NewAgent: experiments.AgentFactory(nil),
	}
	return records, arena, nil
}

func newTicTacToe() (game.State, error) {
	state, err := game.NewTicTacToe()
	if err != nil {
		return nil, err
	}
	return state, nil
}

func newNotakto(boards int) (game.State, error) {
	state, err := game.NewNotakto(boards)
	if err != nil {
		return nil, err
	}
	return state, nil
}
