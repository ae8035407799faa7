package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/apperror"
)

const (
	BoardSize = 9
	RowSize   = 3
)

// CellState - what occupies a single cell.
type CellState int

const (
	Empty CellState = iota
	MarkX
	MarkO
)

func (that CellState) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Board - nine cells in row-major order, positions 0..8.
type Board [BoardSize]CellState

func NewBoard() Board {
	return Board{}
}

// Label - the text shown for the cell: its mark, or the 1-based position while empty.
func (that Board) Label(position int) string {
	if mark := that[position].String(); mark != "" {
		return mark
	}

	return strconv.Itoa(position + 1)
}

// Rows - splits the board positions into rows of RowSize.
func Rows() [][RowSize]int {
	rows := make([][RowSize]int, 0, BoardSize/RowSize)
	for start := 0; start < BoardSize; start += RowSize {
		rows = append(rows, [RowSize]int{start, start + 1, start + 2})
	}

	return rows
}

// Apply - returns a copy of the board with mark placed at position.
// The input board is left untouched.
func Apply(board Board, position int, mark CellState) (Board, error) {
	if position < 0 || position >= BoardSize {
		return board, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	if mark != MarkX && mark != MarkO {
		return board, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if board[position] != Empty {
		return board, apperror.ErrCellOccupied
	}

	next := board
	next[position] = mark

	return next, nil
}
