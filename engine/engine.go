package engine

import (
	"errors"

	"solver/experiments/metrics"
	"solver/game"
)

// Both games end within 9 moves per board
const MaxMoves = 10000

var (
	ErrNoPolicy     = errors.New("no policy recorded for history")
	ErrNotSolvable  = errors.New("state has no board signature")
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrMoveLimit    = errors.New("game exceeded the move limit")
)

type Engine interface {
	// Run plays a game till it is terminal and returns the final state
	Run() (final game.State, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

type Agent interface {
	// FindMove returns the move to play for the side to move at state
	FindMove(state game.State) (game.Move, error)
}
