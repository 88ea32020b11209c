package wick

import (
	"slices"

	"github.com/katalvlaran/wick/diagram"
)

// CompositeContractions returns every multiset of elementary contractions
// that fits the legs of ops and leaves a free rank in [minRank, maxRank].
// Each multiset is a non-decreasing list of indices into elementary; the
// empty list stands for the uncontracted product.
func CompositeContractions(ops diagram.OperatorProduct, elementary []ElementaryContraction, minRank, maxRank int) [][]int {
	var out [][]int
	VisitComposites(ops, elementary, minRank, maxRank, func(c []int) bool {
		out = append(out, slices.Clone(c))

		return true
	})

	return out
}

// VisitComposites calls visit for each composite contraction in the order
// CompositeContractions returns them. The slice passed to visit is reused;
// copy it to keep it. Returning false stops the search.
func VisitComposites(ops diagram.OperatorProduct, elementary []ElementaryContraction, minRank, maxRank int, visit func(c []int) bool) {
	free := make([]diagram.Vertex, len(ops))
	for n, op := range ops {
		free[n] = op.Vertex
	}
	s := &search{
		elementary: elementary,
		free:       free,
		minRank:    minRank,
		maxRank:    maxRank,
		visit:      visit,
	}
	s.backtrack()
}

// search is the backtracking state: the chosen contractions and the legs
// they leave free.
type search struct {
	elementary []ElementaryContraction
	free       []diagram.Vertex
	chosen     []int
	minRank    int
	maxRank    int
	visit      func([]int) bool
	stopped    bool
}

func (s *search) backtrack() {
	rank := diagram.SumNumOps(s.free)
	if rank >= s.minRank && rank <= s.maxRank {
		if !s.visit(s.chosen) {
			s.stopped = true

			return
		}
	}
	// contractions only remove legs, so no descendant can reach minRank
	if rank < s.minRank {
		return
	}

	first := 0
	if len(s.chosen) > 0 {
		first = s.chosen[len(s.chosen)-1]
	}
	for c := first; c < len(s.elementary) && !s.stopped; c++ {
		if !s.admissible(c) {
			continue
		}
		s.apply(c)
		s.backtrack()
		s.undo(c)
	}
}

// admissible reports whether contraction c fits the free legs.
func (s *search) admissible(c int) bool {
	for a, v := range s.elementary[c] {
		for sp := range v {
			if v.Cre(sp) > s.free[a].Cre(sp) || v.Ann(sp) > s.free[a].Ann(sp) {
				return false
			}
		}
	}

	return true
}

func (s *search) apply(c int) {
	s.chosen = append(s.chosen, c)
	for a, v := range s.elementary[c] {
		s.free[a] = s.free[a].Sub(v)
	}
}

func (s *search) undo(c int) {
	s.chosen = s.chosen[:len(s.chosen)-1]
	for a, v := range s.elementary[c] {
		s.free[a] = s.free[a].Add(v)
	}
}

// Composite gathers the elementary contractions named by idx.
func Composite(elementary []ElementaryContraction, idx []int) CompositeContraction {
	out := make(CompositeContraction, len(idx))
	for n, c := range idx {
		out[n] = elementary[c]
	}

	return out
}
