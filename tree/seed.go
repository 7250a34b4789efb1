package tree

import "github.com/legionfuzz/mcts/replay"

// Seed is a replayable input registered on a Golden node: a recorded queue
// entry together with the index of the region inside it whose state
// sequence matches the path of the Golden node's parent, and which has
// bytes extending past that region (a strict prefix — Expansion checks
// this before it calls Tree.registerSeed).
type Seed struct {
	Queue       *replay.QueueEntry
	RegionIndex int

	selected   uint32
	discovered uint32

	// ParentIndex is this seed's own index within its owning Golden node's
	// pool. It is the only stable positional reference a caller may retain
	// across Expansions; the pool itself may be reallocated.
	ParentIndex int
}

// Selected returns the number of times this seed has been chosen by
// Selection.
func (s *Seed) Selected() uint32 { return s.selected }

// Discovered returns the number of times choosing this seed led to a
// previously unseen node.
func (s *Seed) Discovered() uint32 { return s.discovered }
