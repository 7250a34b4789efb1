package tree

import (
	"time"

	"github.com/legionfuzz/mcts/config"
	distrand "golang.org/x/exp/rand"
)

// Tree is the arena-backed colored response-code tree. It owns every node
// allocated during a session, the shared PRNG used for scoring and
// tie-breaks, and the log sink. Per spec.md section 5 it is single-threaded
// and non-reentrant: callers must run one full MCTS round to completion
// before starting the next.
type Tree struct {
	nodes []TreeNode
	root  NodeIndex

	cfg config.Config
	rng *distrand.Rand
	log *Logger
}

// New allocates a fresh Tree with a White root (id=0, path=[0]) and its
// eagerly-attached Golden simulation child (id=999, path=[0]). This is
// spec.md section 4.1's Initialisation, generalized to take an explicit
// config and logger instead of reading a global and a hardcoded file path.
func New(cfg config.Config, log *Logger) *Tree {
	t := &Tree{
		cfg:  cfg,
		rng:  distrand.New(newSharedSource(uint64(time.Now().UnixNano()))),
		log:  log,
		root: NilNode,
	}
	t.root = t.newRealNode(NilNode, RootID, White, []uint32{RootID})
	return t
}

// NewWithSeed behaves like New but seeds the shared PRNG deterministically,
// for tests of the tie-break policy (spec.md section 8, scenario 6).
func NewWithSeed(cfg config.Config, log *Logger, seed uint64) *Tree {
	t := &Tree{
		cfg:  cfg,
		rng:  distrand.New(newSharedSource(seed)),
		log:  log,
		root: NilNode,
	}
	t.root = t.newRealNode(NilNode, RootID, White, []uint32{RootID})
	return t
}

// Root returns the index of the tree's root node.
func (t *Tree) Root() NodeIndex { return t.root }

// Node returns a mutable pointer to the node at index n. Callers must not
// retain it across a call that may grow the arena (any alloc); re-fetch via
// Node instead.
func (t *Tree) Node(n NodeIndex) *TreeNode {
	return &t.nodes[n]
}

// Config returns the tree's process-wide configuration.
func (t *Tree) Config() config.Config { return t.cfg }

// alloc appends a new node to the arena and returns its index. The node is
// zeroed except for its parent and simulation child, which start as NilNode.
func (t *Tree) alloc() NodeIndex {
	idx := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, TreeNode{parent: NilNode, simulationChild: NilNode})
	return idx
}

// newRealNode allocates a non-Golden node and eagerly attaches its Golden
// simulation child as the first entry of its children list, preserving
// invariant 2 (every non-Golden node has a Golden child that is itself a
// direct child) from the moment of creation. The Golden child participates
// in selection/scoring exactly like any other child: choosing it is how
// the search decides to grow a brand new node at this point in the tree.
func (t *Tree) newRealNode(parent NodeIndex, id uint32, colour Color, path []uint32) NodeIndex {
	idx := t.alloc()
	n := t.Node(idx)
	n.id = id
	n.colour = colour
	n.path = path
	n.parent = parent
	n.simulationChild = NilNode

	golden := t.alloc()
	g := t.Node(golden)
	g.id = GoldenID
	g.colour = Golden
	g.path = path
	g.parent = idx

	n = t.Node(idx)
	n.simulationChild = golden
	n.children = append(n.children, golden)

	if parent.valid() {
		p := t.Node(parent)
		p.children = append(p.children, idx)
	}
	return idx
}

// findChild returns the non-Golden child of parent carrying id, if any.
func (t *Tree) findChild(parent NodeIndex, id uint32) (NodeIndex, bool) {
	for _, c := range t.Node(parent).RealChildren() {
		if t.Node(c).id == id {
			return c, true
		}
	}
	return NilNode, false
}
