package tree

// NodeIndex is an index into the Tree's node arena. It replaces the raw
// parent/child pointers of the original implementation so the arena can be
// grown with a single slice and never needs to chase pointers to free them.
type NodeIndex int32

// NilNode is the sentinel for "no node".
const NilNode NodeIndex = -1

func (n NodeIndex) valid() bool { return n >= 0 }
