package game

type Mark uint8

const (
	Empty Mark = iota
	Cross
	Nought
)

func (m Mark) Rune() rune {
	switch m {
	case Cross:
		return 'x'
	case Nought:
		return 'o'
	}
	return '0'
}

// horizontal, vertical and diagonal lines
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3x3 grid indexed row by row:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
type Board [CellsPerBoard]Mark

// Winner returns the mark owning a completed line, or Empty.
func (b Board) Winner() Mark {
	for _, l := range lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m
		}
	}
	return Empty
}

func (b Board) HasLine() bool {
	return b.Winner() != Empty
}

func (b Board) IsFull() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// EmptyCells in ascending order
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, CellsPerBoard)
	for i, m := range b {
		if m == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// String renders the cells as '0', 'x' and 'o', which is also the board's
// signature.
func (b Board) String() string {
	buf := make([]byte, CellsPerBoard)
	for i, m := range b {
		buf[i] = byte(m.Rune())
	}
	return string(buf)
}
