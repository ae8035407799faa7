package tictactoe

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

var expectedLabels = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

func labels(regions []*view.Node) []string {
	out := make([]string, 0, len(regions))
	for _, region := range regions {
		out = append(out, region.Text)
	}

	return out
}

func countingObserver(events *[]entity.ActivationEvent) Observer {
	return ObserverFunc(func(event entity.ActivationEvent) {
		*events = append(*events, event)
	})
}

func TestClickableGrid_Layout(t *testing.T) {
	// Given: a grid over a fresh board
	grid := ClickableGrid("m1", entity.NewBoard(), ObserverFunc(func(entity.ActivationEvent) {}))

	// Then: it is a column of exactly three rows of three interactive cells
	require.Equal(t, view.KindStack, grid.Kind)
	assert.Equal(t, view.DirectionColumn, grid.Attr(view.AttrDirection))
	require.Len(t, grid.Children, 3)

	var rowLabels []string
	for _, row := range grid.Children {
		assert.Equal(t, view.DirectionRow, row.Attr(view.AttrDirection))
		require.Len(t, row.Children, 3)
		for _, cell := range row.Children {
			assert.True(t, cell.Interactive())
			rowLabels = append(rowLabels, cell.Text)
		}
	}

	// Then: labels run 1..9 in row-major order
	assert.Equal(t, expectedLabels, rowLabels)
	assert.Equal(t, expectedLabels, labels(view.Regions(grid)))
}

func TestClickableGrid_Activation(t *testing.T) {
	t.Run("Each click fires the observer exactly once", func(t *testing.T) {
		// Given: a grid with a recording observer
		var events []entity.ActivationEvent
		grid := ClickableGrid("m1", entity.NewBoard(), countingObserver(&events))
		regions := view.Regions(grid)

		// When: every cell is clicked once
		for _, region := range regions {
			region.OnActivate()
		}

		// Then: nine events arrive, one per position
		require.Len(t, events, 9)
		for position, event := range events {
			assert.Equal(t, "m1", event.MountID)
			assert.Equal(t, position, event.Position)
			assert.Equal(t, expectedLabels[position], event.Label)
		}
	})

	t.Run("Clicks never change any label", func(t *testing.T) {
		// Given: a grid
		var events []entity.ActivationEvent
		grid := ClickableGrid("m1", entity.NewBoard(), countingObserver(&events))
		regions := view.Regions(grid)

		// When: cells are clicked repeatedly in an arbitrary order
		for _, position := range []int{4, 4, 0, 8, 4, 2, 2} {
			regions[position].OnActivate()
		}

		// Then: every label and region is still in place
		assert.Len(t, events, 7)
		assert.Equal(t, expectedLabels, labels(view.Regions(grid)))
	})
}

func TestStepGrids(t *testing.T) {
	t.Run("StaticGrid has inert buttons", func(t *testing.T) {
		regions := view.Regions(StaticGrid())

		assert.Equal(t, expectedLabels, labels(regions))
		for _, region := range regions {
			assert.False(t, region.Interactive())
		}
	})

	t.Run("SquareGrid has inert squares", func(t *testing.T) {
		regions := view.Regions(SquareGrid())

		assert.Equal(t, expectedLabels, labels(regions))
		for _, region := range regions {
			assert.False(t, region.Interactive())
			assert.Equal(t, "square", region.Attr(view.AttrRole))
		}
	})
}

func TestPage(t *testing.T) {
	t.Run("Clicking 5 changes nothing and reports once", func(t *testing.T) {
		// Given: a rendered page
		var events []entity.ActivationEvent
		page := Page("m1", entity.NewBoard(), countingObserver(&events))
		before := view.Texts(page)

		// Then: the title is present once and the nine regions are in order
		assert.Equal(t, 1, view.Count(page, PageTitle))
		regions := view.Regions(page)
		require.Equal(t, expectedLabels, labels(regions))

		// When: the region labelled 5 is clicked
		regions[4].OnActivate()

		// Then: the diagnostic fired once and no text changed
		require.Len(t, events, 1)
		assert.Equal(t, 4, events[0].Position)
		assert.Equal(t, before, view.Texts(page))
	})

	t.Run("Two pages share nothing", func(t *testing.T) {
		// Given: two independently built pages
		var first, second []entity.ActivationEvent
		pageA := Page("a", entity.NewBoard(), countingObserver(&first))
		pageB := Page("b", entity.NewBoard(), countingObserver(&second))

		// When: only the first page is clicked
		view.Regions(pageA)[0].OnActivate()
		view.Regions(pageA)[0].OnActivate()

		// Then: the second page saw nothing
		assert.Len(t, first, 2)
		assert.Empty(t, second)
		assert.Equal(t, view.Texts(pageA), view.Texts(pageB))
	})
}

func TestHomeAndShell(t *testing.T) {
	home := Home("Course", []LessonRef{{Href: "/lessons/1", Title: "Step one"}})
	page := Shell("Course", home)

	assert.Equal(t, 2, view.Count(page, "Course"))
	assert.Equal(t, 1, view.Count(page, PageTitle))
	assert.Equal(t, 1, view.Count(page, "Step one"))
	assert.Empty(t, view.Regions(page))
}

func TestLogObserver(t *testing.T) {
	withoutTime := func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return attr
	}

	t.Run("Every cell logs the same line", func(t *testing.T) {
		// Given: an observer writing info lines to a buffer
		var buf bytes.Buffer
		observer := NewLogObserver(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: withoutTime})))

		// When: two different cells report
		observer.CellActivated(entity.ActivationEvent{MountID: "m1", Position: 0})
		observer.CellActivated(entity.ActivationEvent{MountID: "m1", Position: 8})

		// Then: both lines are identical and carry the message
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, lines[0], lines[1])
		assert.Contains(t, lines[0], `msg="`+DiagnosticMessage+`"`)
		assert.NotContains(t, buf.String(), "position")
	})

	t.Run("Position is logged at debug level", func(t *testing.T) {
		// Given: an observer writing debug lines to a buffer
		var buf bytes.Buffer
		observer := NewLogObserver(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

		// When: a cell reports
		observer.CellActivated(entity.ActivationEvent{MountID: "m1", Position: 8})

		// Then: the debug line names the position
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "position=8")
	})
}

func TestObservers(t *testing.T) {
	var first, second []entity.ActivationEvent
	fanout := Observers{countingObserver(&first), countingObserver(&second)}

	fanout.CellActivated(entity.ActivationEvent{Position: 3})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}
