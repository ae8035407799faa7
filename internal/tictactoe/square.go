package tictactoe

import "github.com/rocketscienceinc/tictactoe-tutorial/internal/view"

// Square - a labelled button that does nothing when clicked.
func Square(label string) *view.Node {
	return view.Clickable(label, nil).With(view.AttrRole, "square")
}

// ClickableSquare - a labelled button that calls onActivate once per click.
func ClickableSquare(label string, onActivate func()) *view.Node {
	return view.Clickable(label, onActivate).With(view.AttrRole, "square")
}
