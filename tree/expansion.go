package tree

import (
	"github.com/legionfuzz/mcts/replay"
)

// registerSeed appends a new Seed wrapping q to golden's pool, recording
// region as the matching region index (spec.md section 4.5 step 6).
func (t *Tree) registerSeed(golden NodeIndex, q *replay.QueueEntry, region int) {
	node := t.Node(golden)
	s := Seed{
		Queue:       q,
		RegionIndex: region,
		ParentIndex: len(node.seeds),
	}
	node.seeds = append(node.seeds, s)
	t.log.expansion("registered seed %s region %d on golden child of node %d", q.Filename, region, t.Node(node.parent).id)
}

// attachSimulationChild gives n a fresh Golden child, used both at node
// birth and when a Black node flips to White (spec.md section 4.5 step 5).
func (t *Tree) attachSimulationChild(n NodeIndex) NodeIndex {
	node := t.Node(n)
	golden := t.alloc()
	g := t.Node(golden)
	g.id = GoldenID
	g.colour = Golden
	g.path = node.path
	g.parent = n

	node = t.Node(n)
	node.simulationChild = golden
	node.children = append(node.children, golden)
	return golden
}

// Expansion implements spec.md section 4.5. It walks codes left-to-right
// from the given start node (normally the root), growing the tree and
// registering seeds as evidence dictates, and returns the deepest node
// reached together with whether any node was newly created.
func Expansion(t *Tree, start NodeIndex, q *replay.QueueEntry, codes []uint32) (NodeIndex, bool) {
	if len(codes) == 0 || codes[0] != RootID {
		invariantPanic("tree: expansion codes must start with the root id, got %v", codes)
	}

	current := start
	isNew := false

	matchCursor := 0
	prevExactEnd := false

	for i := 1; i < len(codes); i++ {
		isFinal := i == len(codes)-1

		child, existed := t.findChild(current, codes[i])
		createdNew := !existed

		if createdNew {
			isNew = true
		} else if !isFinal {
			// New evidence proves this child is extensible past this point;
			// any stale exhaustion flag from an earlier round no longer holds.
			t.Node(child).fullyExplored = false
		}

		searchFrom := matchCursor
		if prevExactEnd {
			searchFrom = matchCursor + 1
		}
		regionIdx := -1
		for j := searchFrom; j < len(q.Regions); j++ {
			if q.Regions[j].Prefixes(codes, i+1) {
				regionIdx = j
				break
			}
		}
		matchedLastCode := false
		if regionIdx >= 0 {
			matchCursor = regionIdx
			matchedLastCode = codes[i] == q.Regions[regionIdx].LastCode()
		}
		prevExactEnd = matchedLastCode

		if createdNew {
			colour := Black
			if matchedLastCode {
				colour = White
			}
			path := make([]uint32, len(t.Node(current).path)+1)
			copy(path, t.Node(current).path)
			path[len(path)-1] = codes[i]
			child = t.newRealNode(current, codes[i], colour, path)
		} else if matchedLastCode {
			cn := t.Node(child)
			if cn.colour == Black && i+1 < len(codes) {
				cn.colour = White
				t.attachSimulationChild(child)
				t.log.expansion("flipped node %d from black to white", cn.id)
			}
		}

		if matchedLastCode && regionIdx >= 0 {
			cn := t.Node(child)
			if cn.colour == White && q.Regions[regionIdx].StateCount < len(codes) {
				t.registerSeed(cn.simulationChild, q, regionIdx)
			}
		}

		if got := t.Node(child).path; got[len(got)-1] != codes[i] {
			invariantPanic("tree: node %d has corrupt path %v", codes[i], got)
		}

		current = child
	}

	t.markFullyExploredIfLeaf(current)

	if isNew {
		for n := current; ; {
			node := t.Node(n)
			node.discovered++
			if n == t.root {
				break
			}
			n = node.parent
		}
	}

	return current, isNew
}
