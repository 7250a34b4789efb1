package tree

import (
	"fmt"
	"strings"
)

// FormatPath renders a node's path as a "0->200->201" style string,
// supplementing the round-trip path reconstruction law from spec.md
// section 8 with a human-readable form for logs and the graph CLI.
func (t *Tree) FormatPath(n NodeIndex) string {
	path := t.Node(n).path
	parts := make([]string, len(path))
	for i, code := range path {
		parts[i] = fmt.Sprintf("%d", code)
	}
	return strings.Join(parts, "->")
}

// ExplainScore describes how a node's current score was derived, naming
// the short-circuit rule that fired when one did.
func (t *Tree) ExplainScore(n NodeIndex) string {
	node := t.Node(n)
	score := t.NodeScore(n)

	switch {
	case t.FullyExplored(n):
		return fmt.Sprintf("node %d: -Inf (fully explored)", node.id)
	case n == t.root:
		return fmt.Sprintf("node %d: +Inf (root)", node.id)
	case node.selected == 0:
		return fmt.Sprintf("node %d: +Inf (never selected)", node.id)
	default:
		return fmt.Sprintf("node %d: %v (exploitation=%v exploration=%v)", node.id, score, t.NodeExploitation(n), t.NodeExploration(n))
	}
}
