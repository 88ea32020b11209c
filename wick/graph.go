package wick

import (
	"slices"

	"github.com/katalvlaran/wick/combinatorics"
	"github.com/katalvlaran/wick/diagram"
)

// CanonicalizeGraph returns the canonical representative of the
// contraction graph (ops, composite) and the sign of the operator
// reordering it implies.
//
// Operators may be reordered only past operators they commute with in
// this graph: two operators fail to commute when a two-leg contraction
// joins a creation leg of one with an annihilation leg of the other. Each
// admissible order contributes (-1)^(nA·nB) per transposed pair. Among all
// admissible orders the graph with the smallest operator sequence wins;
// ties are broken on the contraction rows, where a larger vertex sorts
// first. Rows are sorted under that rule for every candidate order.
func CanonicalizeGraph(ops diagram.OperatorProduct, composite CompositeContraction) (diagram.OperatorProduct, CompositeContraction, int) {
	n := len(ops)
	commute := commutability(n, composite)

	var (
		best     candidate
		haveBest bool
	)
	combinatorics.Permutations(n, func(perm []int) bool {
		sign, ok := reorderSign(perm, ops, commute)
		if !ok {
			return true
		}
		c := candidate{
			perm: slices.Clone(perm),
			rows: sortedRows(composite, perm),
			sign: sign,
		}
		if !haveBest || compareCandidates(ops, composite, c, best) < 0 {
			best, haveBest = c, true
		}

		return true
	})

	bestOps := make(diagram.OperatorProduct, n)
	for i, o := range best.perm {
		bestOps[i] = ops[o]
	}
	bestComposite := make(CompositeContraction, len(composite))
	for k, r := range best.rows {
		row := make(ElementaryContraction, n)
		for i, o := range best.perm {
			row[i] = composite[r][o]
		}
		bestComposite[k] = row
	}

	return bestOps, bestComposite, best.sign
}

// candidate is one admissible operator order with its best row order.
type candidate struct {
	perm []int
	rows []int
	sign int
}

// commutability reports, for every operator pair, whether the composite
// lets them trade places.
func commutability(n int, composite CompositeContraction) [][]bool {
	commute := make([][]bool, n)
	for i := range commute {
		commute[i] = make([]bool, n)
		for j := range commute[i] {
			commute[i][j] = true
		}
	}
	for _, el := range composite {
		if el.NumOps() != 2 {
			continue
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for s := range el[i] {
					if el[i].Cre(s)*el[j].Ann(s) > 0 || el[i].Ann(s)*el[j].Cre(s) > 0 {
						commute[i][j] = false
					}
				}
			}
		}
	}

	return commute
}

// reorderSign bubble-sorts a copy of perm back to the identity. It fails
// when a swap would exchange noncommuting operators and otherwise returns
// the product of (-1)^(nA·nB) over the swaps.
func reorderSign(perm []int, ops diagram.OperatorProduct, commute [][]bool) (int, bool) {
	p := slices.Clone(perm)
	sign := 1
	for i := 0; i < len(p)-1; i++ {
		for j := 0; j < len(p)-i-1; j++ {
			if p[j+1] >= p[j] {
				continue
			}
			if !commute[p[j+1]][p[j]] {
				return 0, false
			}
			if ops[p[j]].NumOps()*ops[p[j+1]].NumOps()%2 != 0 {
				sign = -sign
			}
			p[j], p[j+1] = p[j+1], p[j]
		}
	}

	return sign, true
}

// compareRows orders two contraction rows seen through perm; the row
// with the larger vertex at the first difference sorts first.
func compareRows(a, b ElementaryContraction, perm []int) int {
	for _, o := range perm {
		if c := a[o].Compare(b[o]); c != 0 {
			return -c
		}
	}

	return 0
}

// sortedRows returns the row order that minimizes the graph for perm.
func sortedRows(composite CompositeContraction, perm []int) []int {
	rows := combinatorics.Identity(len(composite))
	slices.SortStableFunc(rows, func(a, b int) int {
		return compareRows(composite[a], composite[b], perm)
	})

	return rows
}

// compareCandidates orders graphs by operator sequence, then row by row.
func compareCandidates(ops diagram.OperatorProduct, composite CompositeContraction, l, r candidate) int {
	for i := range l.perm {
		if c := ops[l.perm[i]].Compare(ops[r.perm[i]]); c != 0 {
			return c
		}
	}
	for k := range l.rows {
		lr, rr := composite[l.rows[k]], composite[r.rows[k]]
		for i := range l.perm {
			if c := lr[l.perm[i]].Compare(rr[r.perm[i]]); c != 0 {
				return -c
			}
		}
	}

	return 0
}
