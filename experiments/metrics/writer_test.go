package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"solver/game"
	"solver/searcher"
)

func TestWriteSolveRecords(t *testing.T) {
	writer, err := NewWriter(filepath.Join(t.TempDir(), "run"))
	require.NoError(t, err)

	records := []SolveRecord{
		{ID: 1, SolveMetric: SolveMetric{Game: "notakto", Boards: 2, Value: searcher.Win, SearchMetric: searcher.SearchMetric{Solver: "alpha_beta", Nodes: 120, Cutoffs: 7}}},
		{ID: 2, SolveMetric: SolveMetric{Game: "notakto", Boards: 2, Value: searcher.Win, SearchMetric: searcher.SearchMetric{Solver: "maxmin", Nodes: 300}}},
	}
	require.NoError(t, writer.WriteSolveRecords(records))

	f, err := os.Open(filepath.Join(writer.Dir(), "solve_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	require.Equal(t, "solver", rows[0][3])
	require.Equal(t, []string{"1", "notakto", "2", "alpha_beta", "1"}, rows[1][:5])
	require.Equal(t, "120", rows[1][7])
	require.Equal(t, "7", rows[1][10])
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(game.Max)
	c.AddMove(game.Max, 4, time.Millisecond)
	c.AddMove(game.Min, 0, time.Millisecond)

	gameMetric, moves := c.Complete(searcher.Loss)

	require.Equal(t, game.Min, gameMetric.Winner)
	require.Equal(t, 2, gameMetric.TotalMoves)
	require.Equal(t, []int{1, 2}, []int{moves[0].Step, moves[1].Step})
	require.Equal(t, game.Move(0), moves[1].Move)

	var tally Tally
	tally.Add(gameMetric)
	tally.Add(GameMetric{Winner: game.NoPlayer})
	require.Equal(t, Tally{MinWins: 1, Draws: 1}, tally)
	require.Equal(t, 2, tally.Games())
}
