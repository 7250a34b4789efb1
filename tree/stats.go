package tree

import "gonum.org/v1/gonum/stat"

// Stats summarizes the selected/discovered distributions across every
// real (non-Golden) node in the arena, for diagnostics and the
// legion-graph CLI's text report.
type Stats struct {
	NodeCount          int
	GoldenCount        int
	FullyExploredCount int

	MeanSelected   float64
	StdDevSelected float64

	MeanDiscovered   float64
	StdDevDiscovered float64
}

// Report computes a Stats snapshot over the current arena contents.
func (t *Tree) Report() Stats {
	var selected, discovered []float64
	var s Stats

	for i := range t.nodes {
		node := &t.nodes[i]
		if node.colour == Golden {
			s.GoldenCount++
			continue
		}
		s.NodeCount++
		if node.fullyExplored {
			s.FullyExploredCount++
		}
		selected = append(selected, float64(node.selected))
		discovered = append(discovered, float64(node.discovered))
	}

	if len(selected) > 0 {
		s.MeanSelected, s.StdDevSelected = stat.MeanStdDev(selected, nil)
		s.MeanDiscovered, s.StdDevDiscovered = stat.MeanStdDev(discovered, nil)
	}
	return s
}
