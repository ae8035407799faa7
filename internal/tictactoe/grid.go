package tictactoe

import (
	"strconv"
	"time"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

// StaticGrid - three rows of three plain buttons labelled 1 to 9.
func StaticGrid() *view.Node {
	return grid(func(position int) *view.Node {
		return view.Clickable(strconv.Itoa(position+1), nil)
	})
}

// SquareGrid - the same layout built from Square.
func SquareGrid() *view.Node {
	board := entity.NewBoard()

	return grid(func(position int) *view.Node {
		return Square(board.Label(position))
	})
}

// ClickableGrid - every cell reports to observer when clicked.
// Cells never change the board, so each click has the same effect.
func ClickableGrid(mountID string, board entity.Board, observer Observer) *view.Node {
	return grid(func(position int) *view.Node {
		label := board.Label(position)

		return ClickableSquare(label, func() {
			observer.CellActivated(entity.ActivationEvent{
				MountID:  mountID,
				Position: position,
				Label:    label,
				At:       time.Now(),
			})
		})
	})
}

func grid(cell func(position int) *view.Node) *view.Node {
	rows := make([]*view.Node, 0, entity.BoardSize/entity.RowSize)
	for _, row := range entity.Rows() {
		cells := make([]*view.Node, 0, entity.RowSize)
		for _, position := range row {
			cells = append(cells, cell(position))
		}
		rows = append(rows, view.Row(cells...))
	}

	return view.Column(rows...).With(view.AttrRole, "grid")
}
