package tree

// Propagation implements spec.md section 4.7. Node-level and seed-level
// selected counters were already incremented during Selection; here only
// the Golden node's own discovered counter and the chosen seed's
// discovered counter move, each by one if isNew. The host is responsible
// for skipping this call entirely on the very first, dry-run round.
//
// seedIndex is golden's seed's stable ParentIndex, not a retained *Seed:
// spec.md section 5 warns that the caller's Expansion call between
// Selection and Propagation may append to golden's seed pool and
// reallocate its backing array, so the seed is re-fetched here rather
// than taken as a pointer the caller might have kept across that call.
func Propagation(t *Tree, golden NodeIndex, seedIndex int, isNew bool) {
	node := t.Node(golden)
	seed := &node.seeds[seedIndex]
	if !isNew {
		t.log.propagation("no new coverage from golden %d seed region %d", node.id, seed.RegionIndex)
		return
	}
	node.discovered++
	seed.discovered++
	t.log.propagation("golden %d seed region %d discovered new coverage", node.id, seed.RegionIndex)
}
