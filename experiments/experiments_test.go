package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"solver/experiments/metrics"
	"solver/game"
	"solver/searcher"
)

func newTicTacToe() (game.State, error) {
	state, err := game.NewTicTacToe()
	if err != nil {
		return nil, err
	}
	return state, nil
}

func newNotakto() (game.State, error) {
	state, err := game.NewNotakto(1)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunArena(t *testing.T) {
	state, err := newTicTacToe()
	require.NoError(t, err)
	solved, err := searcher.SolveBackward(state)
	require.NoError(t, err)

	policy := metrics.AgentConfig{ID: 1, Kind: KindPolicy}
	random := metrics.AgentConfig{ID: 2, Kind: KindRandom, Seed: 42}
	cfg := ArenaConfig{
		Name:  "tictactoe",
		Games: 10,
		MatchUps: []MatchUp{
			{Max: policy, Min: random},
			{Max: random, Min: policy},
		},
		NewState: newTicTacToe,
		NewAgent: AgentFactory(map[game.Player]*searcher.PolicyTable{
			game.Max: solved.Max,
			game.Min: solved.Min,
		}),
	}

	arena, err := RunArena(cfg)
	require.NoError(t, err)

	t.Run("solved policy never loses", func(t *testing.T) {
		require.Len(t, arena.Results, 2)
		require.Equal(t, 10, arena.Results[0].Games())
		require.Zero(t, arena.Results[0].MinWins)
		require.Equal(t, 10, arena.Results[1].Games())
		require.Zero(t, arena.Results[1].MaxWins)
	})

	t.Run("records every game and move", func(t *testing.T) {
		require.Len(t, arena.Games, 20)
		total := 0
		for i, g := range arena.Games {
			require.Equal(t, i+1, g.ID)
			total += g.TotalMoves
		}
		require.Len(t, arena.Moves, total)
	})

	t.Run("stores csv records", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, arena.Store(writer))

		configs := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Len(t, configs, 3, "Header and two distinct agents")
		games := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, games, 21)
		require.Equal(t, "id", games[0][0])
		moves := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Len(t, moves, len(arena.Moves)+1)
	})
}

func TestRunArenaErrors(t *testing.T) {
	t.Run("unknown agent kind", func(t *testing.T) {
		_, err := RunArena(ArenaConfig{
			Games:    1,
			MatchUps: []MatchUp{{Max: metrics.AgentConfig{Kind: "oracle"}, Min: metrics.AgentConfig{Kind: KindRandom}}},
			NewState: newTicTacToe,
			NewAgent: AgentFactory(nil),
		})

		require.Error(t, err)
	})

	t.Run("policy agent without a table", func(t *testing.T) {
		_, err := RunArena(ArenaConfig{
			Games:    1,
			MatchUps: []MatchUp{{Max: metrics.AgentConfig{Kind: KindPolicy}, Min: metrics.AgentConfig{Kind: KindRandom}}},
			NewState: newTicTacToe,
			NewAgent: AgentFactory(nil),
		})

		require.Error(t, err)
	})

	t.Run("missing factories", func(t *testing.T) {
		_, err := RunArena(ArenaConfig{Games: 1})

		require.Error(t, err)
	})
}

func TestMinimaxArenaNotakto(t *testing.T) {
	arena, err := RunArena(ArenaConfig{
		Name:     "notakto",
		Games:    5,
		MatchUps: []MatchUp{{Max: metrics.AgentConfig{ID: 1, Kind: KindMinimax}, Min: metrics.AgentConfig{ID: 2, Kind: KindRandom, Seed: 3}}},
		NewState: newNotakto,
		NewAgent: AgentFactory(nil),
	})

	require.NoError(t, err)
	require.Equal(t, 5, arena.Results[0].MaxWins)
}
