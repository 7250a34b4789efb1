package tree

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// colourFillColor maps a node's color to a Graphviz fillcolor, matching
// the ANSI palette used by the Logger.
func colourFillColor(c Color) string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Golden:
		return "gold"
	case Red:
		return "red"
	case Purple:
		return "purple"
	default:
		return "gray"
	}
}

// DOT renders the tree as a Graphviz DOT graph: one node per arena slot,
// labeled with its id, color, and selected/discovered counters, with a
// double circle for fully-explored nodes.
func (t *Tree) DOT() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("tree"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	for i := range t.nodes {
		node := &t.nodes[i]
		name := fmt.Sprintf("n%d", i)
		shape := "ellipse"
		if node.fullyExplored {
			shape = "doublecircle"
		}
		attrs := map[string]string{
			"label":     fmt.Sprintf("\"id=%d sel=%d disc=%d\"", node.id, node.selected, node.discovered),
			"style":     "filled",
			"shape":     shape,
			"fillcolor": colourFillColor(node.colour),
			"fontcolor": fontColorFor(node.colour),
		}
		if err := g.AddNode("tree", name, attrs); err != nil {
			return "", err
		}
	}
	for i := range t.nodes {
		node := &t.nodes[i]
		if !node.parent.valid() {
			continue
		}
		src := fmt.Sprintf("n%d", node.parent)
		dst := fmt.Sprintf("n%d", i)
		if err := g.AddEdge(src, dst, true, nil); err != nil {
			return "", err
		}
	}

	return g.String(), nil
}

func fontColorFor(c Color) string {
	if c == Black || c == Purple {
		return "white"
	}
	return "black"
}
