package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"solver/game"
)

func TestPolicy(t *testing.T) {
	t.Run("degenerate policy is valid", func(t *testing.T) {
		p := Degenerate(9, 4)

		require.NoError(t, p.Validate(9))
		require.Len(t, p, 9)
		require.Equal(t, 1.0, p["4"])
		best, ok := p.Best()
		require.True(t, ok)
		require.Equal(t, game.Move(4), best)
	})

	t.Run("invalid policies are rejected", func(t *testing.T) {
		missing := Degenerate(9, 0)
		delete(missing, "8")
		require.ErrorIs(t, missing.Validate(9), ErrPolicyMissingLabel)

		extra := Degenerate(9, 0)
		extra["9"] = 0
		require.ErrorIs(t, extra.Validate(9), ErrPolicyUnknownLabel)

		negative := Degenerate(9, 0)
		negative["1"] = -0.5
		require.ErrorIs(t, negative.Validate(9), ErrPolicyBadValue)

		nan := Degenerate(9, 0)
		nan["1"] = math.NaN()
		require.ErrorIs(t, nan.Validate(9), ErrPolicyBadValue)

		short := Degenerate(9, 0)
		short["0"] = 0.5
		require.ErrorIs(t, short.Validate(9), ErrPolicySum)
	})

	t.Run("best breaks ties by lowest label", func(t *testing.T) {
		p := Policy{"0": 0, "1": 0.5, "2": 0.5}

		best, ok := p.Best()

		require.True(t, ok)
		require.Equal(t, game.Move(1), best)
	})
}

func TestPolicyTable(t *testing.T) {
	history := game.History{0, 4}

	t.Run("record and read back", func(t *testing.T) {
		table := NewPolicyTable(9)
		require.NoError(t, table.Record(history, 8))

		move, ok := table.Move("04")
		require.True(t, ok)
		require.Equal(t, game.Move(8), move)
		policy, ok := table.Policy("04")
		require.True(t, ok)
		require.Equal(t, Degenerate(9, 8), policy)
		_, ok = table.Move("40")
		require.False(t, ok)
	})

	t.Run("same move may be recorded twice", func(t *testing.T) {
		table := NewPolicyTable(9)
		require.NoError(t, table.Record(history, 8))
		require.NoError(t, table.Record(history, 8))
		require.Equal(t, 1, table.Len())
	})

	t.Run("a different move is not overwritten", func(t *testing.T) {
		table := NewPolicyTable(9)
		require.NoError(t, table.Record(history, 8))

		err := table.Record(history, 2)

		require.ErrorIs(t, err, ErrPolicyOverwrite)
		move, _ := table.Move("04")
		require.Equal(t, game.Move(8), move)
	})

	t.Run("move outside the alphabet", func(t *testing.T) {
		table := NewPolicyTable(9)
		require.ErrorIs(t, table.Record(history, 9), ErrPolicyUnknownLabel)
		require.ErrorIs(t, table.Record(history, -1), ErrPolicyUnknownLabel)
	})

	t.Run("keys are sorted", func(t *testing.T) {
		table := NewPolicyTable(9)
		require.NoError(t, table.Record(game.History{1, 2}, 3))
		require.NoError(t, table.Record(game.History{}, 0))
		require.NoError(t, table.Record(game.History{0}, 4))

		require.Equal(t, []string{"", "0", "12"}, table.Keys())
	})

	t.Run("rebuild from distributions", func(t *testing.T) {
		table := NewPolicyTable(18)
		require.NoError(t, table.Record(game.History{}, 4))
		require.NoError(t, table.Record(game.History{4, 13}, 0))

		rebuilt, err := PolicyTableFrom(18, table.Distributions())

		require.NoError(t, err)
		require.Equal(t, table.Keys(), rebuilt.Keys())
		move, _ := rebuilt.Move("")
		require.Equal(t, game.Move(4), move)
	})

	t.Run("rebuild rejects mixed policies", func(t *testing.T) {
		_, err := PolicyTableFrom(3, map[string]Policy{"": {"0": 0.5, "1": 0.5, "2": 0}})

		require.ErrorIs(t, err, ErrPolicyBadValue)
	})
}

func TestValueCache(t *testing.T) {
	cache := NewValueCache()
	_, ok := cache.Get("x00000000")
	require.False(t, ok)

	cache.Store("x00000000", Win)
	cache.Store("000000000", Loss)

	v, ok := cache.Get("x00000000")
	require.True(t, ok)
	require.Equal(t, Win, v)
	require.Equal(t, 2, cache.Len())
	require.Equal(t, []string{"000000000", "x00000000"}, cache.Signatures())
}

func TestCollector(t *testing.T) {
	t.Run("counts events", func(t *testing.T) {
		c := NewCollector()
		c.Start("maxmin")
		c.AddNode()
		c.AddNode()
		c.AddTerminal()
		c.AddCacheHit()
		c.AddCutoff()

		metric := c.Complete(7)

		require.Equal(t, "maxmin", metric.Solver)
		require.Equal(t, 2, metric.Nodes)
		require.Equal(t, 1, metric.Terminals)
		require.Equal(t, 1, metric.CacheHits)
		require.Equal(t, 1, metric.Cutoffs)
		require.Equal(t, 7, metric.CacheSize)
		require.False(t, metric.StartTime.IsZero())
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("maxmin")
		c.AddNode()

		require.Zero(t, c.Complete(3).Nodes)
	})
}
