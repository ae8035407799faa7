// Package terminal renders view trees with lipgloss and drives them with a
// bubbletea program.
package terminal

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

// Render - draws the tree. focus is the index of the highlighted region, -1 for none.
func Render(root *view.Node, styles Styles, focus int) string {
	regionIndex := 0

	var draw func(node *view.Node) string
	draw = func(node *view.Node) string {
		switch node.Kind {
		case view.KindContainer:
			return lipgloss.JoinVertical(lipgloss.Left, drawChildren(node, draw)...)
		case view.KindStack:
			if node.Attr(view.AttrDirection) == view.DirectionRow {
				return lipgloss.JoinHorizontal(lipgloss.Top, drawChildren(node, draw)...)
			}

			position := lipgloss.Left
			if node.Attr(view.AttrAlign) == "center" {
				position = lipgloss.Center
			}

			return lipgloss.JoinVertical(position, drawChildren(node, draw)...)
		case view.KindHeading:
			if node.Attr(view.AttrVariant) == "h6" {
				return styles.AppBar.Render(node.Text)
			}
			return styles.Heading.Render(node.Text)
		case view.KindLink:
			return styles.Link.Render(node.Text) + fmt.Sprintf(" (%s)", node.Attr(view.AttrHref))
		case view.KindClickable:
			style := styles.Cell
			switch {
			case regionIndex == focus:
				style = styles.Focused
			case !node.Interactive():
				style = styles.Inert
			}
			regionIndex++

			return style.Render(node.Text)
		default:
			return styles.Text.Render(node.Text)
		}
	}

	return draw(root)
}

func drawChildren(node *view.Node, draw func(*view.Node) string) []string {
	parts := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		if child != nil {
			parts = append(parts, draw(child))
		}
	}

	return parts
}
