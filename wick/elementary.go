package wick

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wick/combinatorics"
	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/space"
)

// ElementaryContractions returns every elementary contraction of ops,
// grouped by space in registry order. General-space contractions with
// more than maxCumulant half legs are left out.
func ElementaryContractions(reg *space.Registry, ops diagram.OperatorProduct, maxCumulant int) ([]ElementaryContraction, error) {
	var out []ElementaryContraction
	for s := 0; s < reg.Len(); s++ {
		switch reg.Kind(s) {
		case space.Occupied:
			// ┌───┐
			// a+  a
			out = pairContractions(out, ops, s, true)
		case space.Unoccupied:
			// ┌───┐
			// a   a+
			out = pairContractions(out, ops, s, false)
		case space.General:
			// ┌───┬───┬───┐
			// a+  a   a   a+
			out = generalContractions(out, ops, s, maxCumulant)
		default:
			return nil, fmt.Errorf("wick: ElementaryContractions: space %c has kind %v: %w",
				reg.Label(s), reg.Kind(s), ErrUnknownSpaceKind)
		}
	}

	return out, nil
}

// pairContractions appends the two-leg contractions of space s. With
// creLeft the left operator gives a creation leg (hole lines), otherwise
// an annihilation leg (particle lines).
func pairContractions(out []ElementaryContraction, ops diagram.OperatorProduct, s int, creLeft bool) []ElementaryContraction {
	n := len(ops)
	for l := 0; l < n; l++ {
		for r := l + 1; r < n; r++ {
			c := make(ElementaryContraction, n)
			if creLeft {
				if ops[l].Cre(s)*ops[r].Ann(s) == 0 {
					continue
				}
				c[l].SetCre(s, 1)
				c[r].SetAnn(s, 1)
			} else {
				if ops[l].Ann(s)*ops[r].Cre(s) == 0 {
					continue
				}
				c[l].SetAnn(s, 1)
				c[r].SetCre(s, 1)
			}
			out = append(out, c)
		}
	}

	return out
}

// generalContractions appends the 2k-leg contractions of space s for
// k = 1..min(Σcre, Σann, maxCumulant). Each k is split into at most n
// parts; every distinct arrangement of a partition over the operators is
// a candidate distribution of creation or annihilation legs, and each
// compatible (creation, annihilation) pair touching at least two
// operators is one contraction.
func generalContractions(out []ElementaryContraction, ops diagram.OperatorProduct, s, maxCumulant int) []ElementaryContraction {
	n := len(ops)
	sumCre, sumAnn := 0, 0
	for _, op := range ops {
		sumCre += op.Cre(s)
		sumAnn += op.Ann(s)
	}
	maxHalf := min(sumCre, sumAnn, maxCumulant)

	for k := 1; k <= maxHalf; k++ {
		var creLegs, annLegs [][]int
		for _, part := range combinatorics.IntegerPartitions(k, n) {
			perm := make([]int, n)
			copy(perm, part)
			slices.Sort(perm)
			for {
				creOK, annOK := true, true
				for a, legs := range perm {
					if ops[a].Cre(s) < legs {
						creOK = false
					}
					if ops[a].Ann(s) < legs {
						annOK = false
					}
				}
				if creOK {
					creLegs = append(creLegs, slices.Clone(perm))
				}
				if annOK {
					annLegs = append(annLegs, slices.Clone(perm))
				}
				if !combinatorics.NextPermutation(perm) {
					break
				}
			}
		}

		for _, cre := range creLegs {
			for _, ann := range annLegs {
				touched := 0
				for a := 0; a < n; a++ {
					if cre[a]+ann[a] > 0 {
						touched++
					}
				}
				if touched < 2 {
					continue
				}
				c := make(ElementaryContraction, n)
				for a := 0; a < n; a++ {
					c[a].SetCre(s, cre[a])
					c[a].SetAnn(s, ann[a])
				}
				out = append(out, c)
			}
		}
	}

	return out
}
