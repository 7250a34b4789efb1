package tree

import "github.com/legionfuzz/mcts/replay"

// seedQueueFixture is a minimal recorded queue entry shared by tests that
// just need some Seed to register; its region contents are not load
// bearing for the scoring/selection tests that use it.
var seedQueueFixture = replay.QueueEntry{
	Filename: "fixture.bin",
	Regions: []replay.Region{
		{StateSequence: []uint32{0, 200}, StateCount: 2, Offset: 0, Length: 4},
	},
}
