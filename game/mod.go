package game

import (
	"errors"
	"strconv"
	"strings"
)

// Cells on a single 3x3 board
const CellsPerBoard = 9

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrTooManyMoves  = errors.New("history longer than the number of cells")
	ErrInvalidBoards = errors.New("number of boards must be positive")
	ErrNotTerminal   = errors.New("utility requested for a non-terminal state")
)

type Move int

type Player int

const (
	NoPlayer Player = iota
	Max             // moves first, plays Cross in tic-tac-toe
	Min
)

func (p Player) String() string {
	switch p {
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return "none"
}

// Opponent returns the other side, NoPlayer stays NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case Max:
		return Min
	case Min:
		return Max
	}
	return NoPlayer
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	LegalMoves() []Move // ascending
	Play(Move) (State, error)
	IsTerminal() bool
	Utility() float64
	History() History
	// Labels is the size of the fixed move alphabet 0..Labels()-1
	Labels() int
	// Outcomes lists every value Utility can return
	Outcomes() []float64
}

// Transposable states have a value that depends only on their board content,
// so states with equal signatures can share a cached value.
type Transposable interface {
	State
	Signature() string
}

// History is the sequence of moves played from the empty position.
type History []Move

// Key concatenates the move indices, e.g. [0 4 2 5] -> "0425"
func (h History) Key() string {
	var b strings.Builder
	for _, m := range h {
		b.WriteString(strconv.Itoa(int(m)))
	}
	return b.String()
}

// Append returns a new history, h is never modified.
func (h History) Append(m Move) History {
	next := make(History, len(h), len(h)+1)
	copy(next, h)
	return append(next, m)
}

func (h History) Len() int {
	return len(h)
}

func moverAt(ply int) Player {
	if ply%2 == 0 {
		return Max
	}
	return Min
}
