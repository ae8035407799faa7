package view

// Walk - visits the tree depth-first in document order.
// Returning false from fn skips the node's children.
func Walk(root *Node, fn func(node *Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(node *Node, depth int, fn func(*Node, int) bool) {
	if node == nil {
		return
	}

	if !fn(node, depth) {
		return
	}

	for _, child := range node.Children {
		walk(child, depth+1, fn)
	}
}

// Regions - clickable nodes in document order.
func Regions(root *Node) []*Node {
	var regions []*Node

	Walk(root, func(node *Node, _ int) bool {
		if node.Kind == KindClickable {
			regions = append(regions, node)
		}
		return true
	})

	return regions
}

// Texts - the text content of every node in document order.
func Texts(root *Node) []string {
	var texts []string

	Walk(root, func(node *Node, _ int) bool {
		if node.Text != "" {
			texts = append(texts, node.Text)
		}
		return true
	})

	return texts
}

// Count - number of nodes carrying exactly this text.
func Count(root *Node, text string) int {
	count := 0
	for _, candidate := range Texts(root) {
		if candidate == text {
			count++
		}
	}

	return count
}
