package game

import "fmt"

var ticTacToeOutcomes = []float64{-1, 0, 1}

// TicTacToe is a single-board position. Cross (Max) moves first.
type TicTacToe struct {
	history History
	board   Board
}

// NewTicTacToe replays history from the empty board and fails on the first
// move that is not legal at that point.
func NewTicTacToe(history ...Move) (*TicTacToe, error) {
	if len(history) > CellsPerBoard {
		return nil, fmt.Errorf("%w: %d moves", ErrTooManyMoves, len(history))
	}

	t := &TicTacToe{history: History{}}
	for i, move := range history {
		if err := t.checkMove(move); err != nil {
			return nil, fmt.Errorf("move %d of %v: %w", i, history, err)
		}
		t.board[move] = markOf(t.Player())
		t.history = append(t.history, move)
	}
	return t, nil
}

func markOf(p Player) Mark {
	if p == Max {
		return Cross
	}
	return Nought
}

func (t *TicTacToe) checkMove(move Move) error {
	if t.IsTerminal() {
		return fmt.Errorf("%w: %d played after the game ended", ErrIllegalMove, move)
	}
	if move < 0 || move >= CellsPerBoard {
		return fmt.Errorf("%w: %d out of range [0, %d)", ErrIllegalMove, move, CellsPerBoard)
	}
	if t.board[move] != Empty {
		return fmt.Errorf("%w: cell %d is occupied, legal moves=%v", ErrIllegalMove, move, t.LegalMoves())
	}
	return nil
}

// Player to move, NoPlayer once all nine cells are taken.
func (t *TicTacToe) Player() Player {
	if len(t.history) >= CellsPerBoard {
		return NoPlayer
	}
	return moverAt(len(t.history))
}

func (t *TicTacToe) LegalMoves() []Move {
	if t.IsTerminal() {
		return nil
	}
	cells := t.board.EmptyCells()
	moves := make([]Move, len(cells))
	for i, c := range cells {
		moves[i] = Move(c)
	}
	return moves
}

func (t *TicTacToe) Play(move Move) (State, error) {
	if err := t.checkMove(move); err != nil {
		return nil, err
	}
	next := &TicTacToe{
		history: t.history.Append(move),
		board:   t.board,
	}
	next.board[move] = markOf(t.Player())
	return next, nil
}

func (t *TicTacToe) Winner() Mark {
	return t.board.Winner()
}

func (t *TicTacToe) IsDraw() bool {
	return t.board.IsFull() && t.Winner() == Empty
}

func (t *TicTacToe) IsTerminal() bool {
	return t.Winner() != Empty || t.board.IsFull()
}

// Utility is +1 for a Cross win, -1 for a Nought win and 0 for a draw.
func (t *TicTacToe) Utility() float64 {
	switch t.Winner() {
	case Cross:
		return 1
	case Nought:
		return -1
	}
	if !t.board.IsFull() {
		panic(fmt.Errorf("%w: history %v", ErrNotTerminal, t.history))
	}
	return 0
}

func (t *TicTacToe) History() History {
	return t.history
}

func (t *TicTacToe) Board() Board {
	return t.board
}

func (t *TicTacToe) Labels() int {
	return CellsPerBoard
}

func (t *TicTacToe) Outcomes() []float64 {
	return ticTacToeOutcomes
}

func (t *TicTacToe) Signature() string {
	return t.board.String()
}

func (t *TicTacToe) String() string {
	return fmt.Sprintf("tictactoe{history=%q board=%s}", t.history.Key(), t.board)
}
