package tree

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrEmptySearchSpace is returned by Selection when root itself scores -Inf:
// every reachable path has been exhausted and the caller has no work left
// to hand to a host (spec.md section 4.3, step 3).
var ErrEmptySearchSpace = errors.New("tree: search space fully explored")

// ErrNoSeeds is returned by Selection when the chosen Golden node carries
// no registered seeds to mutate from. bestChild scores a Golden child like
// any other child, whether or not it has seeds, so this happens on a fresh
// tree and whenever the root's own Golden child wins: Expansion registers
// seeds only on the Golden children of nodes below the root, never on the
// root's.
var ErrNoSeeds = errors.New("tree: selected golden node has no seeds")

// bestChild scores every direct child of parent (including its Golden
// simulation child) and returns the max-scoring one, breaking ties
// uniformly at random. A node with only one child - true only before it
// has ever been extended, since every non-Golden node is born with its
// Golden child already attached - trivially returns that child with no
// comparison needed, which is the same outcome the literal short-circuit
// in spec.md section 4.3 describes.
func (t *Tree) bestChild(parent NodeIndex) (NodeIndex, float32) {
	children := t.Node(parent).children
	if len(children) == 1 {
		return children[0], t.NodeScore(children[0])
	}

	best := float32(math32.Inf(-1))
	var winners []NodeIndex
	for _, c := range children {
		score := t.NodeScore(c)
		switch {
		case score > best:
			best = score
			winners = winners[:0]
			winners = append(winners, c)
		case score == best:
			winners = append(winners, c)
		}
	}
	return winners[t.uniformIndex(len(winners))], best
}

// bestSeed scores every seed registered on golden's pool and returns the
// index of the max-scoring one, breaking ties uniformly at random.
func (t *Tree) bestSeed(golden NodeIndex) (int, float32, bool) {
	seeds := t.Node(golden).seeds
	if len(seeds) == 0 {
		return -1, 0, false
	}

	best := float32(math32.Inf(-1))
	var winners []int
	for i := range seeds {
		score := t.SeedScore(golden, i)
		switch {
		case score > best:
			best = score
			winners = winners[:0]
			winners = append(winners, i)
		case score == best:
			winners = append(winners, i)
		}
	}
	return winners[t.uniformIndex(len(winners))], best, true
}

// walkBackFullyExplored implements the walk-back half of spec.md section
// 4.3 step 3: n's best child scored -Inf, so n itself is marked fully
// explored directly, and the walk continues upward through any ancestor
// whose own score has in turn become -Inf, stopping at the first ancestor
// still viable. Returns false if the walk reaches root and root itself is
// now exhausted.
func (t *Tree) walkBackFullyExplored(n NodeIndex) (NodeIndex, bool) {
	node := t.Node(n)
	node.fullyExplored = true
	t.log.selection("node %d marked fully explored on walk-back", node.id)

	if n == t.root {
		return NilNode, false
	}
	parent := node.parent
	if t.NodeScore(parent) == math32.Inf(-1) {
		return t.walkBackFullyExplored(parent)
	}
	return parent, true
}

// Selection implements spec.md section 4.3. It descends from root via
// best_child, handling walk-back on a -Inf descent and the restart guard
// once a Golden node is reached, then picks a seed from that Golden node's
// pool.
func Selection(t *Tree) (NodeIndex, *Seed, error) {
	current := t.root
	t.Node(current).selected++

	for {
		for t.Node(current).colour != Golden {
			child, score := t.bestChild(current)
			if score == math32.Inf(-1) {
				resumed, ok := t.walkBackFullyExplored(current)
				if !ok {
					return NilNode, nil, ErrEmptySearchSpace
				}
				current = resumed
				continue
			}
			t.Node(child).selected++
			t.log.bestChild("descended to node %d (score=%v)", t.Node(child).id, score)
			current = child
		}

		parent := t.Node(current).parent
		if t.NodeScore(parent) == math32.Inf(-1) {
			t.log.selection("golden %d's parent exhausted mid-descent, restarting from root", t.Node(current).id)
			current = t.root
			t.Node(current).selected++
			continue
		}
		break
	}

	idx, score, ok := t.bestSeed(current)
	if !ok {
		return current, nil, ErrNoSeeds
	}
	seed := &t.Node(current).seeds[idx]
	seed.selected++
	t.log.bestSeed("chose seed %s region %d (score=%v)", seed.Queue.Filename, seed.RegionIndex, score)
	return current, seed, nil
}

// Seed re-fetches golden's seed at its stable ParentIndex. Callers must
// use this instead of retaining a *Seed returned by Selection across an
// intervening Expansion call, since Expansion's registerSeed may append
// to the pool and reallocate its backing array (spec.md section 5).
func (t *Tree) Seed(golden NodeIndex, seedIndex int) *Seed {
	return &t.Node(golden).seeds[seedIndex]
}
