package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/lesson"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/render/html"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

const courseTitle = "Introduction to Go"

func newTutorial(t *testing.T, events *[]entity.ActivationEvent) TutorialUseCase {
	t.Helper()

	catalog, err := lesson.Load()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	host := html.NewHost(logger, html.Options{BasePath: tictactoe.PagePath})
	observer := tictactoe.ObserverFunc(func(event entity.ActivationEvent) {
		*events = append(*events, event)
	})

	return NewTutorialUseCase(courseTitle, host, catalog, observer)
}

func TestTutorialUseCase_Home(t *testing.T) {
	var events []entity.ActivationEvent
	tutorial := newTutorial(t, &events)

	// When: the home page is built
	home := tutorial.Home()

	// Then: it links the game and every lesson
	assert.Equal(t, 2, view.Count(home, courseTitle))
	assert.Equal(t, 1, view.Count(home, tictactoe.PageTitle))
	assert.Equal(t, 1, view.Count(home, "Step 1: A grid of buttons"))
	assert.Equal(t, courseTitle, tutorial.CourseTitle())
}

func TestTutorialUseCase_Game(t *testing.T) {
	t.Run("Every mount is fresh", func(t *testing.T) {
		var events []entity.ActivationEvent
		tutorial := newTutorial(t, &events)

		first := tutorial.MountGame()
		second := tutorial.MountGame()

		assert.NotEqual(t, first.ID, second.ID)
		assert.NotSame(t, first.Root, second.Root)
	})

	t.Run("Activation reaches the observer once", func(t *testing.T) {
		// Given: a mounted game
		var events []entity.ActivationEvent
		tutorial := newTutorial(t, &events)
		mount := tutorial.MountGame()

		// When: region 4 is activated
		require.NoError(t, tutorial.Activate(mount.ID, "4"))

		// Then: one event for that mount
		require.Len(t, events, 1)
		assert.Equal(t, mount.ID, events[0].MountID)
		assert.Equal(t, "5", events[0].Label)
	})

	t.Run("Unknown mount", func(t *testing.T) {
		var events []entity.ActivationEvent
		tutorial := newTutorial(t, &events)

		_, err := tutorial.Game("missing")
		require.ErrorIs(t, err, apperror.ErrMountNotFound)

		err = tutorial.Activate("missing", "0")
		require.ErrorIs(t, err, apperror.ErrMountNotFound)
	})
}

func TestTutorialUseCase_Lesson(t *testing.T) {
	var events []entity.ActivationEvent
	tutorial := newTutorial(t, &events)

	t.Run("Early steps have inert grids", func(t *testing.T) {
		for _, step := range []int{1, 2} {
			page, err := tutorial.Lesson(step)
			require.NoError(t, err)

			assert.Nil(t, page.Mount)
			regions := view.Regions(page.Root)
			require.Len(t, regions, 9)
			assert.False(t, regions[0].Interactive())
		}
	})

	t.Run("Clickable step is mounted", func(t *testing.T) {
		page, err := tutorial.Lesson(3)
		require.NoError(t, err)

		require.NotNil(t, page.Mount)
		assert.Same(t, page.Mount.Root, page.Root)
		require.NoError(t, tutorial.Activate(page.Mount.ID, "0"))
		assert.Len(t, events, 1)
	})

	t.Run("Unknown step", func(t *testing.T) {
		_, err := tutorial.Lesson(99)

		require.ErrorIs(t, err, apperror.ErrLessonNotFound)
	})
}
