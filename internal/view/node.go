// Package view describes pages as plain trees of nodes that a rendering host interprets.
package view

// Kind - the primitive a node stands for.
type Kind string

const (
	KindContainer Kind = "container"
	KindStack     Kind = "stack"
	KindText      Kind = "text"
	KindHeading   Kind = "heading"
	KindLink      Kind = "link"
	KindClickable Kind = "clickable"
)

// Attribute keys understood by the hosts.
const (
	AttrDirection = "direction"
	AttrVariant   = "variant"
	AttrHref      = "href"
	AttrAlign     = "align"
	AttrRole      = "role"
)

const (
	DirectionRow    = "row"
	DirectionColumn = "column"
)

// Node - one element of a view tree.
type Node struct {
	Kind     Kind
	Text     string
	Attrs    map[string]string
	Children []*Node

	// OnActivate is set only on clickable nodes that react to activation.
	OnActivate func()
}

func newNode(kind Kind, children ...*Node) *Node {
	return &Node{
		Kind:     kind,
		Attrs:    map[string]string{},
		Children: children,
	}
}

func Container(children ...*Node) *Node {
	return newNode(KindContainer, children...)
}

// Column - stacks children top to bottom.
func Column(children ...*Node) *Node {
	return newNode(KindStack, children...).With(AttrDirection, DirectionColumn)
}

// Row - stacks children left to right.
func Row(children ...*Node) *Node {
	return newNode(KindStack, children...).With(AttrDirection, DirectionRow)
}

func Text(text string) *Node {
	node := newNode(KindText)
	node.Text = text

	return node
}

func Heading(text string) *Node {
	node := newNode(KindHeading)
	node.Text = text

	return node
}

func Link(href, text string) *Node {
	node := newNode(KindLink)
	node.Text = text

	return node.With(AttrHref, href)
}

// Clickable - a labelled region. A nil onActivate yields an inert region.
func Clickable(label string, onActivate func()) *Node {
	node := newNode(KindClickable)
	node.Text = label
	node.OnActivate = onActivate

	return node
}

// With - sets an attribute and returns the node for chaining.
func (that *Node) With(key, value string) *Node {
	if that.Attrs == nil {
		that.Attrs = make(map[string]string)
	}

	that.Attrs[key] = value
	return that
}

func (that *Node) Attr(key string) string {
	return that.Attrs[key]
}

// Interactive - reports whether activating the node does anything.
func (that *Node) Interactive() bool {
	return that.Kind == KindClickable && that.OnActivate != nil
}
