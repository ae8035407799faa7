package html

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

const stylesheet = `
body { margin: 0; font-family: system-ui, sans-serif; }
.appbar { position: sticky; top: 0; padding: 0 16px; margin-bottom: 32px; box-shadow: 0 1px 3px rgba(0, 0, 0, .2); }
.container { max-width: 1200px; margin: 0 auto; padding: 0 16px; }
.stack { display: flex; }
.stack-column { flex-direction: column; }
.stack-row { flex-direction: row; }
.align-center { align-items: center; }
.region { margin: 0; }
.region button { min-width: 48px; min-height: 48px; border: 0; background: none; font: inherit; cursor: pointer; }
.lesson { margin-bottom: 24px; }
`

// ErrEmptyDocument - a document was rendered without a root node.
var ErrEmptyDocument = errors.New("document has no root")

var templates = template.Must(template.New("document").Parse(`
{{- define "node" -}}
{{- if eq .Kind "container" -}}
<div class="container{{with .Role}} {{.}}{{end}}">{{range .Children}}{{template "node" .}}{{end}}</div>
{{- else if eq .Kind "stack" -}}
<div class="stack stack-{{.Direction}}{{with .Align}} align-{{.}}{{end}}{{with .Role}} {{.}}{{end}}">{{range .Children}}{{template "node" .}}{{end}}</div>
{{- else if eq .Kind "text" -}}
<p class="text">{{.Text}}</p>
{{- else if eq .Kind "heading" -}}
<h1 class="heading {{.Variant}}">{{.Text}}</h1>
{{- else if eq .Kind "link" -}}
<a class="{{.Variant}}" href="{{.Href}}">{{.Text}}</a>
{{- else if eq .Kind "clickable" -}}
{{- if .Action -}}
<form class="region" method="post" action="{{.Action}}"><button type="submit" data-region="{{.Region}}">{{.Text}}</button></form>
{{- else -}}
<span class="region"><button type="button" disabled>{{.Text}}</button></span>
{{- end -}}
{{- end -}}
{{- end -}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.Stylesheet}}</style>
</head>
<body>
{{with .Lesson}}<article class="container lesson">{{.}}</article>{{end}}
{{template "node" .Root}}
</body>
</html>
`))

// Document - a full page: a tree plus optional pre-rendered lesson markup.
type Document struct {
	Title  string
	Root   *view.Node
	Lesson template.HTML
}

type renderNode struct {
	Kind      string
	Text      string
	Role      string
	Direction string
	Align     string
	Variant   string
	Href      string
	Region    string
	Action    string
	Children  []*renderNode
}

type documentData struct {
	Title      string
	Stylesheet template.CSS
	Lesson     template.HTML
	Root       *renderNode
}

// Render - writes a document whose regions are inert.
func (that *Host) Render(w io.Writer, doc Document) error {
	return that.execute(w, doc, nil)
}

// RenderMount - writes a document whose live regions post back to the mount.
func (that *Host) RenderMount(w io.Writer, mount *Mount, doc Document) error {
	doc.Root = mount.Root

	return that.execute(w, doc, func(regionID string) string {
		if _, ok := mount.regions[regionID]; !ok {
			return ""
		}
		return that.ActionPath(mount.ID, regionID)
	})
}

func (that *Host) execute(w io.Writer, doc Document, action func(regionID string) string) error {
	if doc.Root == nil {
		return ErrEmptyDocument
	}

	regionIndex := 0

	var convert func(node *view.Node) *renderNode
	convert = func(node *view.Node) *renderNode {
		out := &renderNode{
			Kind:      string(node.Kind),
			Text:      node.Text,
			Role:      node.Attr(view.AttrRole),
			Direction: node.Attr(view.AttrDirection),
			Align:     node.Attr(view.AttrAlign),
			Variant:   node.Attr(view.AttrVariant),
			Href:      node.Attr(view.AttrHref),
		}

		if node.Kind == view.KindClickable {
			out.Region = strconv.Itoa(regionIndex)
			regionIndex++

			if action != nil {
				out.Action = action(out.Region)
			}
		}

		for _, child := range node.Children {
			if child != nil {
				out.Children = append(out.Children, convert(child))
			}
		}

		return out
	}

	data := documentData{
		Title:      doc.Title,
		Stylesheet: template.CSS(stylesheet), //nolint: gosec // constant stylesheet
		Lesson:     doc.Lesson,
		Root:       convert(doc.Root),
	}

	if err := templates.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	return nil
}
