package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/render/html"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/usecase"
)

type Handlers interface {
	Ping(w http.ResponseWriter, r *http.Request)
	Home(w http.ResponseWriter, r *http.Request)
	NewGame(w http.ResponseWriter, r *http.Request)
	Game(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Lesson(w http.ResponseWriter, r *http.Request)
}

type renderer interface {
	Render(w io.Writer, doc html.Document) error
	RenderMount(w io.Writer, mount *html.Mount, doc html.Document) error
	MountPath(mountID string) string
}

type tracer interface {
	Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span)
}

type handlers struct {
	logger   *slog.Logger
	tutorial usecase.TutorialUseCase
	renderer renderer
	tracer   tracer
}

func NewHandlers(logger *slog.Logger, tutorial usecase.TutorialUseCase, renderer renderer, tracer tracer) Handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		tutorial: tutorial,
		renderer: renderer,
		tracer:   tracer,
	}
}

func (that *handlers) Home(w http.ResponseWriter, r *http.Request) {
	doc := html.Document{
		Title: that.tutorial.CourseTitle(),
		Root:  that.tutorial.Home(),
	}

	that.write(w, r, func(buf io.Writer) error {
		return that.renderer.Render(buf, doc)
	})
}

// NewGame - mounts a fresh board on every visit.
func (that *handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	_, span := that.tracer.Start(r.Context(), "game.mount")
	defer span.End()

	mount := that.tutorial.MountGame()
	span.SetAttributes(attribute.String("mount.id", mount.ID))

	that.writeMount(w, r, mount)
}

func (that *handlers) Game(w http.ResponseWriter, r *http.Request) {
	mount, err := that.tutorial.Game(chi.URLParam(r, "mountID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeMount(w, r, mount)
}

func (that *handlers) Activate(w http.ResponseWriter, r *http.Request) {
	mountID := chi.URLParam(r, "mountID")
	regionID := chi.URLParam(r, "regionID")

	_, span := that.tracer.Start(r.Context(), "game.activate",
		attribute.String("mount.id", mountID),
		attribute.String("region.id", regionID),
	)
	defer span.End()

	if err := that.tutorial.Activate(mountID, regionID); err != nil {
		span.RecordError(err)
		that.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, that.renderer.MountPath(mountID), http.StatusSeeOther)
}

func (that *handlers) Lesson(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		http.Error(w, "Invalid lesson step", http.StatusBadRequest)
		return
	}

	page, err := that.tutorial.Lesson(step)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	doc := html.Document{
		Title:  page.Lesson.Title,
		Root:   page.Root,
		Lesson: page.Lesson.Body,
	}

	that.write(w, r, func(buf io.Writer) error {
		if page.Mount != nil {
			return that.renderer.RenderMount(buf, page.Mount, doc)
		}
		return that.renderer.Render(buf, doc)
	})
}

func (that *handlers) writeMount(w http.ResponseWriter, r *http.Request, mount *html.Mount) {
	doc := html.Document{Title: tictactoe.PageTitle}

	that.write(w, r, func(buf io.Writer) error {
		return that.renderer.RenderMount(buf, mount, doc)
	})
}

// write - renders into a buffer first so a failed render still gets a clean 500.
func (that *handlers) write(w http.ResponseWriter, r *http.Request, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		that.logger.Error("failed to write response", "path", r.URL.Path, "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperror.ErrMountNotFound),
		errors.Is(err, apperror.ErrRegionNotFound),
		errors.Is(err, apperror.ErrLessonNotFound):
		that.logger.Info("not found", "path", r.URL.Path, "error", err)
		http.Error(w, "Not Found", http.StatusNotFound)
	default:
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
