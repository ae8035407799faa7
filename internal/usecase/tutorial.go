package usecase

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/lesson"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/render/html"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

const (
	stepStaticGrid = 1
	stepSquareGrid = 2
)

type TutorialUseCase interface {
	Home() *view.Node
	MountGame() *html.Mount
	Game(mountID string) (*html.Mount, error)
	Activate(mountID, regionID string) error
	Lesson(step int) (*LessonPage, error)
	CourseTitle() string
}

type pageHost interface {
	Mount(build html.Builder) *html.Mount
	Get(mountID string) (*html.Mount, error)
	Activate(mountID, regionID string) error
}

type lessonCatalog interface {
	Get(step int) (lesson.Lesson, error)
	List() []lesson.Lesson
}

// LessonPage - a lesson and the grid of its step. Mount is set only when the grid is clickable.
type LessonPage struct {
	Lesson lesson.Lesson
	Root   *view.Node
	Mount  *html.Mount
}

type tutorialUseCase struct {
	courseTitle string
	host        pageHost
	lessons     lessonCatalog
	observer    tictactoe.Observer
}

func NewTutorialUseCase(courseTitle string, host pageHost, lessons lessonCatalog, observer tictactoe.Observer) TutorialUseCase {
	return &tutorialUseCase{
		courseTitle: courseTitle,
		host:        host,
		lessons:     lessons,
		observer:    observer,
	}
}

func (that *tutorialUseCase) CourseTitle() string {
	return that.courseTitle
}

func (that *tutorialUseCase) Home() *view.Node {
	refs := make([]tictactoe.LessonRef, 0)
	for _, item := range that.lessons.List() {
		refs = append(refs, tictactoe.LessonRef{
			Href:  "/lessons/" + strconv.Itoa(item.Step),
			Title: item.Title,
		})
	}

	return that.shell(tictactoe.Home(that.courseTitle, refs))
}

// MountGame - a fresh board in a fresh mount on every call.
func (that *tutorialUseCase) MountGame() *html.Mount {
	return that.host.Mount(that.gameBuilder())
}

func (that *tutorialUseCase) Game(mountID string) (*html.Mount, error) {
	mount, err := that.host.Get(mountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return mount, nil
}

func (that *tutorialUseCase) Activate(mountID, regionID string) error {
	if err := that.host.Activate(mountID, regionID); err != nil {
		return fmt.Errorf("failed to activate region: %w", err)
	}

	return nil
}

func (that *tutorialUseCase) Lesson(step int) (*LessonPage, error) {
	item, err := that.lessons.Get(step)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	switch step {
	case stepStaticGrid:
		return &LessonPage{Lesson: item, Root: that.shell(tictactoe.StaticGrid())}, nil
	case stepSquareGrid:
		return &LessonPage{Lesson: item, Root: that.shell(tictactoe.SquareGrid())}, nil
	default:
		mount := that.host.Mount(that.gameBuilder())
		return &LessonPage{Lesson: item, Root: mount.Root, Mount: mount}, nil
	}
}

func (that *tutorialUseCase) gameBuilder() html.Builder {
	return func(mountID string) *view.Node {
		return that.shell(tictactoe.Page(mountID, entity.NewBoard(), that.observer))
	}
}

func (that *tutorialUseCase) shell(content *view.Node) *view.Node {
	return tictactoe.Shell(that.courseTitle, content)
}
