package tree

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// invariantPanic reports a fatal invariant violation hit mid-operation
// (as opposed to CheckInvariants' end-of-run audit): per spec.md section
// 7, these are never recoverable, so it panics with a stack trace
// attached rather than returning an error.
func invariantPanic(format string, args ...interface{}) {
	panic(errors.WithStack(fmt.Errorf(format, args...)))
}

// CheckInvariants walks every node in the arena and reports every
// violation of spec.md section 3's invariants, batched via
// go-multierror rather than failing fast, so a single audit run (as used
// by the validation CLI and by tests) surfaces the whole picture instead
// of just the first broken node.
func (t *Tree) CheckInvariants() error {
	var result *multierror.Error

	for i := range t.nodes {
		idx := NodeIndex(i)
		node := &t.nodes[idx]

		if node.colour != Golden && idx != t.root {
			if len(node.path) == 0 || node.path[len(node.path)-1] != node.id {
				result = multierror.Append(result, fmt.Errorf("node %d: path %v does not end in id", node.id, node.path))
			}
		}

		if node.colour == Golden {
			if len(node.children) != 0 {
				result = multierror.Append(result, fmt.Errorf("golden node %d: has children %v", node.id, node.children))
			}
			if node.parent.valid() {
				parent := &t.nodes[node.parent]
				if !equalPaths(node.path, parent.path) {
					result = multierror.Append(result, fmt.Errorf("golden node %d: path %v does not match parent path %v", node.id, node.path, parent.path))
				}
			}
		} else {
			if !node.simulationChild.valid() {
				result = multierror.Append(result, fmt.Errorf("node %d: missing simulation child", node.id))
			} else if t.nodes[node.simulationChild].colour != Golden {
				result = multierror.Append(result, fmt.Errorf("node %d: simulation child %d is not golden", node.id, node.simulationChild))
			}
			if node.fullyExplored && len(node.RealChildren()) > 0 {
				result = multierror.Append(result, fmt.Errorf("node %d: fully_explored but has real children", node.id))
			}
		}

		seen := make(map[uint32]bool, len(node.children))
		for _, c := range node.children {
			cid := t.nodes[c].id
			if seen[cid] {
				result = multierror.Append(result, fmt.Errorf("node %d: two children share id %d", node.id, cid))
			}
			seen[cid] = true
		}

		for i, s := range node.seeds {
			region := s.Queue.Regions[s.RegionIndex]
			parent := &t.nodes[node.parent]
			if region.StateCount < len(parent.path) || !region.Prefixes(parent.path, len(parent.path)) {
				result = multierror.Append(result, fmt.Errorf("golden node %d seed %d: region %d does not prefix parent path %v", node.id, i, s.RegionIndex, parent.path))
			}
			if s.ParentIndex != i {
				result = multierror.Append(result, fmt.Errorf("golden node %d seed %d: parent_index %d out of sync", node.id, i, s.ParentIndex))
			}
		}

		// Expansion bumps discovered along the whole execution path up to
		// the root whenever is_new (spec.md section 4.5's final line),
		// including ancestors that a bare Expansion call - the bootstrap
		// dry run, or a direct test/CLI call - never routed through
		// Selection first, so they carry selected=0. Only once a node has
		// actually been selected does section 8 invariant 6 apply: from
		// that point on, Selection's per-round increment of this node's
		// selected always precedes the matching discovered bump, so
		// selected keeps pace. A node with selected==0 hasn't entered UCT
		// scoring yet (it scores +Inf regardless), so a pre-Selection
		// discovered head start is not a corruption signal.
		if node.selected > 0 && node.selected < node.discovered {
			result = multierror.Append(result, fmt.Errorf("node %d: selected %d < discovered %d", node.id, node.selected, node.discovered))
		}
	}

	return result.ErrorOrNil()
}

func equalPaths(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
