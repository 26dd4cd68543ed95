package game

import (
	"fmt"
	"strings"
)

var notaktoOutcomes = []float64{-1, 1}

// Notakto is played on several independent boards where both players place
// Crosses. A board with a line is dead and takes no further moves; the game
// ends once every board is dead and whoever completed the last line loses.
//
// Moves are numbered board*CellsPerBoard + cell.
type Notakto struct {
	history History
	boards  []Board
	active  []bool
}

// NewNotakto replays history on numBoards empty boards and fails on the
// first move that is not legal at that point.
func NewNotakto(numBoards int, history ...Move) (*Notakto, error) {
	if numBoards < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoards, numBoards)
	}
	if len(history) > numBoards*CellsPerBoard {
		return nil, fmt.Errorf("%w: %d moves on %d boards", ErrTooManyMoves, len(history), numBoards)
	}

	n := &Notakto{
		history: History{},
		boards:  make([]Board, numBoards),
		active:  make([]bool, numBoards),
	}
	for i := range n.active {
		n.active[i] = true
	}

	for i, move := range history {
		if err := n.checkMove(move); err != nil {
			return nil, fmt.Errorf("move %d of %v: %w", i, history, err)
		}
		n.place(move)
		n.history = append(n.history, move)
	}
	return n, nil
}

func (n *Notakto) checkMove(move Move) error {
	if n.IsTerminal() {
		return fmt.Errorf("%w: %d played after every board is dead", ErrIllegalMove, move)
	}
	if move < 0 || int(move) >= len(n.boards)*CellsPerBoard {
		return fmt.Errorf("%w: %d out of range [0, %d)", ErrIllegalMove, move, len(n.boards)*CellsPerBoard)
	}
	board, cell := split(move)
	if !n.active[board] {
		return fmt.Errorf("%w: board %d is dead, legal moves=%v", ErrIllegalMove, board, n.LegalMoves())
	}
	if n.boards[board][cell] != Empty {
		return fmt.Errorf("%w: cell %d of board %d is occupied, legal moves=%v", ErrIllegalMove, cell, board, n.LegalMoves())
	}
	return nil
}

func split(move Move) (board, cell int) {
	return int(move) / CellsPerBoard, int(move) % CellsPerBoard
}

// place mutates n; only used while n is under construction
func (n *Notakto) place(move Move) {
	board, cell := split(move)
	n.boards[board][cell] = Cross
	if n.boards[board].HasLine() {
		n.active[board] = false
	}
}

func (n *Notakto) Player() Player {
	return moverAt(len(n.history))
}

// LegalMoves returns every empty cell of every live board, ascending.
func (n *Notakto) LegalMoves() []Move {
	moves := make([]Move, 0, len(n.boards)*CellsPerBoard-len(n.history))
	for b, board := range n.boards {
		if !n.active[b] {
			continue
		}
		for _, c := range board.EmptyCells() {
			moves = append(moves, Move(b*CellsPerBoard+c))
		}
	}
	return moves
}

func (n *Notakto) Play(move Move) (State, error) {
	if err := n.checkMove(move); err != nil {
		return nil, err
	}
	next := &Notakto{
		history: n.history.Append(move),
		boards:  make([]Board, len(n.boards)),
		active:  make([]bool, len(n.active)),
	}
	copy(next.boards, n.boards)
	copy(next.active, n.active)
	next.place(move)
	return next, nil
}

// IsTerminal is true once every board has a line. There is no draw.
func (n *Notakto) IsTerminal() bool {
	for _, a := range n.active {
		if a {
			return false
		}
	}
	return true
}

// Utility is +1 when an even number of moves was played, i.e. Min completed
// the last line, and -1 otherwise.
func (n *Notakto) Utility() float64 {
	if !n.IsTerminal() {
		panic(fmt.Errorf("%w: history %v", ErrNotTerminal, n.history))
	}
	if len(n.history)%2 == 0 {
		return 1
	}
	return -1
}

func (n *Notakto) History() History {
	return n.history
}

func (n *Notakto) Labels() int {
	return len(n.boards) * CellsPerBoard
}

func (n *Notakto) Outcomes() []float64 {
	return notaktoOutcomes
}

// Signature concatenates the boards' cells in board order. It ignores the
// order the moves were played in.
func (n *Notakto) Signature() string {
	var b strings.Builder
	b.Grow(len(n.boards) * CellsPerBoard)
	for _, board := range n.boards {
		b.WriteString(board.String())
	}
	return b.String()
}

func (n *Notakto) Boards() []Board {
	boards := make([]Board, len(n.boards))
	copy(boards, n.boards)
	return boards
}

func (n *Notakto) IsActive(board int) bool {
	return n.active[board]
}

// ActiveBoards lists the indices of boards without a line.
func (n *Notakto) ActiveBoards() []int {
	active := []int{}
	for i, a := range n.active {
		if a {
			active = append(active, i)
		}
	}
	return active
}

func (n *Notakto) String() string {
	return fmt.Sprintf("notakto{history=%v boards=%s}", []Move(n.history), n.Signature())
}
