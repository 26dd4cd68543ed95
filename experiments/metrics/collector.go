package metrics

import (
	"time"

	"solver/game"
	"solver/searcher"
)

// AgentConfig identifies an agent taking part in an arena.
type AgentConfig struct {
	ID   int
	Kind string // policy, minimax or random
	Seed uint64 // random agents only
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Move     game.Move
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer on a draw
	Utility        float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// SolveMetric is one solver run over a starting position.
type SolveMetric struct {
	Game   string
	Boards int
	Value  float64
	searcher.SearchMetric
}

// Collector follows a single game as the engine plays it.
type Collector interface {
	Start(starting game.Player)
	AddMove(player game.Player, move game.Move, duration time.Duration)
	Complete(utility float64) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(starting game.Player) {
	m.game = GameMetric{StartingPlayer: starting, StartTime: time.Now()}
	m.moves = nil
}

func (m *collector) AddMove(player game.Player, move game.Move, duration time.Duration) {
	m.moves = append(m.moves, MoveMetric{
		Step:     len(m.moves) + 1,
		Player:   player,
		Move:     move,
		Duration: duration,
	})
}

func (m *collector) Complete(utility float64) (GameMetric, []MoveMetric) {
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	m.game.TotalMoves = len(m.moves)
	m.game.Utility = utility
	m.game.Winner = WinnerOf(utility)
	return m.game, m.moves
}

// WinnerOf maps a utility for the first player to the winning side.
func WinnerOf(utility float64) game.Player {
	switch {
	case utility > 0:
		return game.Max
	case utility < 0:
		return game.Min
	}
	return game.NoPlayer
}

// Tally counts game outcomes of a matchup.
type Tally struct {
	MaxWins int
	MinWins int
	Draws   int
}

func (t *Tally) Add(m GameMetric) {
	switch m.Winner {
	case game.Max:
		t.MaxWins++
	case game.Min:
		t.MinWins++
	default:
		t.Draws++
	}
}

func (t Tally) Games() int {
	return t.MaxWins + t.MinWins + t.Draws
}
