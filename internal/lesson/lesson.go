// Package lesson loads the tutorial commentary that accompanies each step of the grid.
package lesson

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/apperror"
)

//go:embed lessons/*.md
var embedded embed.FS

const highlightStyle = "github"

var ErrInvalidFrontMatter = errors.New("invalid lesson front matter")

type Lesson struct {
	Step  int
	Title string
	Body  template.HTML
}

type Catalog struct {
	lessons []Lesson
	byStep  map[int]Lesson
}

// Load - reads the lessons shipped with the binary.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "lessons")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded lessons: %w", err)
	}

	return LoadFS(sub)
}

// LoadFS - reads every *.md file at the root of fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			meta.Meta,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(false)),
			),
		),
	)

	catalog := &Catalog{
		byStep: make(map[int]Lesson, len(names)),
	}

	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read lesson %s: %w", name, err)
		}

		lesson, err := convert(md, src)
		if err != nil {
			return nil, fmt.Errorf("lesson %s: %w", path.Base(name), err)
		}

		if _, ok := catalog.byStep[lesson.Step]; ok {
			return nil, fmt.Errorf("lesson %s: duplicate step %d", name, lesson.Step)
		}

		catalog.byStep[lesson.Step] = lesson
		catalog.lessons = append(catalog.lessons, lesson)
	}

	sort.Slice(catalog.lessons, func(i, j int) bool {
		return catalog.lessons[i].Step < catalog.lessons[j].Step
	})

	return catalog, nil
}

func convert(md goldmark.Markdown, src []byte) (Lesson, error) {
	var buf bytes.Buffer

	ctx := parser.NewContext()
	if err := md.Convert(src, &buf, parser.WithContext(ctx)); err != nil {
		return Lesson{}, fmt.Errorf("failed to convert markdown: %w", err)
	}

	front := meta.Get(ctx)

	title, _ := front["title"].(string)
	if title == "" {
		return Lesson{}, fmt.Errorf("%w: missing title", ErrInvalidFrontMatter)
	}

	step, ok := front["step"].(int)
	if !ok || step <= 0 {
		return Lesson{}, fmt.Errorf("%w: missing or invalid step", ErrInvalidFrontMatter)
	}

	return Lesson{
		Step:  step,
		Title: title,
		Body:  template.HTML(buf.String()), //nolint: gosec // lessons are embedded, not user input
	}, nil
}

func (that *Catalog) Get(step int) (Lesson, error) {
	lesson, ok := that.byStep[step]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: step %d", apperror.ErrLessonNotFound, step)
	}

	return lesson, nil
}

// List - lessons ordered by step.
func (that *Catalog) List() []Lesson {
	return append([]Lesson(nil), that.lessons...)
}
