package tree

import (
	distrand "golang.org/x/exp/rand"
)

// newSharedSource builds the PRNG source behind tie-break decisions and the
// Random scoring policy, the same x/exp/rand source construction tree.go's
// teacher used for its Dirichlet exploration noise.
func newSharedSource(seed uint64) distrand.Source {
	return distrand.NewSource(seed)
}

// uniformIndex picks a uniformly random index in [0, n) using the tree's
// shared RNG. It is the tie-break policy of spec.md section 4.2.
func (t *Tree) uniformIndex(n int) int {
	if n <= 1 {
		return 0
	}
	return t.rng.Intn(n)
}

// uniformScore returns a uniformly distributed score, used when the
// SCORE_FUNCTION policy is Random.
func (t *Tree) uniformScore() float64 {
	return t.rng.Float64()
}
