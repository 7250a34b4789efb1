// Package replay holds the host-owned, read-only records the core
// traverses: a queue entry is a recorded message stream, and a region is
// the byte-range of that stream whose replay produced a given cumulative
// response-code prefix.
package replay

// Region is a byte-range of a recorded message stream together with the
// cumulative sequence of response codes observed by replaying up to that
// range. StateSequence[0] is always the artificial root code (0).
type Region struct {
	StateSequence []uint32
	StateCount    int
	Offset        int
	Length        int
}

// Prefixes reports whether this region's recorded state sequence agrees
// with codes[0:upto] (upto is exclusive), i.e. the region's replay produced
// exactly that prefix of response codes.
func (r Region) Prefixes(codes []uint32, upto int) bool {
	if r.StateCount < upto {
		return false
	}
	for i := 0; i < upto; i++ {
		if r.StateSequence[i] != codes[i] {
			return false
		}
	}
	return true
}

// LastCode returns the final response code recorded for this region.
func (r Region) LastCode() uint32 {
	return r.StateSequence[r.StateCount-1]
}

// QueueEntry is the host's recorded message stream: a file name and the
// ordered regions carved out of it. The core never mutates a QueueEntry;
// the host must keep one alive for at least as long as any Seed referencing
// it.
type QueueEntry struct {
	Filename string
	Regions  []Region
}
