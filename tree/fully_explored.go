package tree

import "github.com/chewxy/math32"

// FullyExplored implements spec.md section 4.6: a node is fully explored
// when its flag is set directly, or - recursively - it is Black, has
// exactly one real child, and that child's score is -Inf. Only Black
// nodes participate in the recursive rule; a White node might always
// sprout a sibling via future extension, so it is fully explored only by
// direct flag. The Golden simulation child every non-Golden node carries
// doesn't count towards "exactly one child" here: a terminal Black node
// with nothing but its Golden child is covered by the direct flag
// instead.
//
// t.cfg.Persistent is intentionally not consulted here. The original
// fuzzer's commented-out persistent-mode variant of this rule has
// unclear intended semantics (see DESIGN.md); the flag is threaded
// through the config so a future revision can wire it without changing
// this function's signature, but today it is a documented no-op.
func (t *Tree) FullyExplored(n NodeIndex) bool {
	node := t.Node(n)
	if node.fullyExplored {
		return true
	}
	if node.colour != Black {
		return false
	}
	real := node.RealChildren()
	if len(real) != 1 {
		return false
	}
	return t.NodeScore(real[0]) == math32.Inf(-1)
}

// markFullyExploredIfLeaf sets the direct flag on n if it is a non-Golden
// leaf, the unconditional step at the end of Expansion (spec.md section
// 4.5).
func (t *Tree) markFullyExploredIfLeaf(n NodeIndex) {
	node := t.Node(n)
	if node.colour == Golden {
		return
	}
	if node.IsLeaf() {
		node.fullyExplored = true
	}
}
