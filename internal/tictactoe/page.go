package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

const (
	PageTitle  = "My Super Awesome Tic Tac Toe Game"
	AuthorName = "@larwaa"
	AuthorURL  = "https://github.com/larwaa"
	PagePath   = "/tic-tac-toe"
)

// LessonRef - a link to one tutorial step.
type LessonRef struct {
	Href  string
	Title string
}

// Page - the tic-tac-toe page: a heading and a clickable grid.
func Page(mountID string, board entity.Board, observer Observer) *view.Node {
	return view.Container(
		view.Text(PageTitle),
		ClickableGrid(mountID, board, observer),
	)
}

// Shell - wraps content with the course app bar.
func Shell(courseTitle string, content *view.Node) *view.Node {
	return view.Container(
		view.Row(view.Heading(courseTitle).With(view.AttrVariant, "h6")).With(view.AttrRole, "appbar"),
		content,
	).With(view.AttrRole, "main")
}

// Home - the landing page with the course title, the author and links to every step.
func Home(courseTitle string, lessons []LessonRef) *view.Node {
	links := make([]*view.Node, 0, len(lessons)+1)
	links = append(links, view.Link(PagePath, PageTitle))
	for _, lesson := range lessons {
		links = append(links, view.Link(lesson.Href, lesson.Title))
	}

	return view.Container(
		view.Column(
			view.Column(
				view.Heading(courseTitle).With(view.AttrVariant, "h4"),
				view.Link(AuthorURL, AuthorName).With(view.AttrVariant, "caption"),
			).With(view.AttrAlign, "center"),
			view.Column(links...),
		).With(view.AttrAlign, "center"),
	)
}
