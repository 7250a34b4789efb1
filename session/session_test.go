package session

import (
	"testing"

	"github.com/legionfuzz/mcts/replay"
	"github.com/legionfuzz/mcts/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsFreshRoot(t *testing.T) {
	sess, err := New("")
	require.NoError(t, err)
	defer sess.Close()

	root := sess.Tree().Node(sess.Tree().Root())
	assert.Equal(t, tree.White, root.Colour())
	assert.Equal(t, uint32(0), root.ID())
}

func TestSession_FullRoundTrip(t *testing.T) {
	sess, err := New("")
	require.NoError(t, err)
	defer sess.Close()

	q := &replay.QueueEntry{
		Filename: "q.bin",
		Regions: []replay.Region{
			{StateSequence: []uint32{0, 200}, StateCount: 2},
			{StateSequence: []uint32{0, 200, 404}, StateCount: 3},
		},
	}

	// Dry run: bootstrap the tree with a known execution, skipping
	// Propagation as spec.md section 4.7 requires.
	_, isNew := sess.Expand(q, []uint32{0, 200, 404})
	assert.True(t, isNew)

	r, err := sess.Select()
	require.NoError(t, err)
	assert.Equal(t, tree.Golden, sess.Tree().Node(r.Golden).Colour())

	seed, err := sess.Simulate(r)
	require.NoError(t, err)
	assert.NotNil(t, seed)

	sess.Propagate(r, false)
	assert.Equal(t, uint64(1), sess.Rounds())
	assert.NoError(t, sess.Tree().CheckInvariants())
}
