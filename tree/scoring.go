package tree

import (
	"github.com/chewxy/math32"
	"github.com/legionfuzz/mcts/config"
)

// NodeExploitation is node.discovered/node.selected, or +Inf if the node
// has never been selected (spec.md section 4.2).
func (t *Tree) NodeExploitation(n NodeIndex) float32 {
	node := t.Node(n)
	if node.selected == 0 {
		return math32.Inf(1)
	}
	return float32(node.discovered) / float32(node.selected)
}

// NodeExploration is the UCT1 exploration term, +Inf at the root or for a
// never-selected node.
func (t *Tree) NodeExploration(n NodeIndex) float32 {
	if n == t.root {
		return math32.Inf(1)
	}
	node := t.Node(n)
	if node.selected == 0 {
		return math32.Inf(1)
	}
	parent := t.Node(node.parent)
	rho := float32(t.cfg.RHO)
	return rho * math32.Sqrt(2*math32.Log(float32(parent.selected))/float32(node.selected))
}

// NodeScore is spec.md section 4.2's node score: -Inf once fully explored,
// +Inf at the root or for a never-selected node, else exploitation plus
// exploration. Under the Random policy every score is instead a uniformly
// distributed draw from the shared RNG.
func (t *Tree) NodeScore(n NodeIndex) float32 {
	if t.cfg.ScoreFunction == config.Random {
		return float32(t.uniformScore())
	}
	if t.FullyExplored(n) {
		return math32.Inf(-1)
	}
	node := t.Node(n)
	if n == t.root {
		return math32.Inf(1)
	}
	if node.selected == 0 {
		return math32.Inf(1)
	}
	return t.NodeExploitation(n) + t.NodeExploration(n)
}

// SeedExploitation mirrors NodeExploitation for a seed in a Golden node's
// pool.
func (t *Tree) SeedExploitation(golden NodeIndex, seedIdx int) float32 {
	seed := &t.Node(golden).seeds[seedIdx]
	if seed.selected == 0 {
		return math32.Inf(1)
	}
	return float32(seed.discovered) / float32(seed.selected)
}

// SeedExploration mirrors NodeExploration for a seed, with the owning
// Golden node's own selected count standing in for the parent's.
func (t *Tree) SeedExploration(golden NodeIndex, seedIdx int) float32 {
	seed := &t.Node(golden).seeds[seedIdx]
	if seed.selected == 0 {
		return math32.Inf(1)
	}
	goldenSelected := t.Node(golden).selected
	rho := float32(t.cfg.RHO)
	return rho * math32.Sqrt(2*math32.Log(float32(goldenSelected))/float32(seed.selected))
}

// SeedScore is spec.md section 4.2's seed score.
func (t *Tree) SeedScore(golden NodeIndex, seedIdx int) float32 {
	if t.cfg.ScoreFunction == config.Random {
		return float32(t.uniformScore())
	}
	seed := &t.Node(golden).seeds[seedIdx]
	if seed.selected == 0 {
		return math32.Inf(1)
	}
	return t.SeedExploitation(golden, seedIdx) + t.SeedExploration(golden, seedIdx)
}
