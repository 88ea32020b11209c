package wick

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/wick/algebra"
	"github.com/katalvlaran/wick/combinatorics"
	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// legKey identifies the n-th creation or annihilation leg of operator op
// in space s.
type legKey struct {
	op, space int
	cre       bool
	n         int
}

// layout is the uncontracted product written out as tensors and a string
// of second-quantized operators.
type layout struct {
	tensors []algebra.Tensor
	sqops   []algebra.SQOperator
	legs    map[legKey]int
}

// layoutProduct numbers the legs of ops. Each operator contributes its
// creation legs (space order) followed by its annihilation legs (reverse
// space order); indices are drawn per space in that same order. Every
// operator becomes an antisymmetric tensor with its creation indices
// lower and its annihilation indices upper.
func layoutProduct(reg *space.Registry, ops diagram.OperatorProduct) layout {
	l := layout{legs: make(map[legKey]int)}
	var next [space.MaxSpaces]int
	for o, op := range ops {
		var lower, upper []algebra.Index
		for s := 0; s < reg.Len(); s++ {
			for c := 0; c < op.Cre(s); c++ {
				idx := algebra.NewIndex(s, next[s])
				next[s]++
				l.legs[legKey{op: o, space: s, cre: true, n: c}] = len(l.sqops)
				l.sqops = append(l.sqops, algebra.Cre(idx))
				lower = append(lower, idx)
			}
		}
		for s := reg.Len() - 1; s >= 0; s-- {
			for a := op.Ann(s) - 1; a >= 0; a-- {
				idx := algebra.NewIndex(s, next[s])
				next[s]++
				l.legs[legKey{op: o, space: s, cre: false, n: a}] = len(l.sqops)
				l.sqops = append(l.sqops, algebra.Ann(idx))
				upper = append(upper, idx)
			}
		}
		slices.Reverse(upper)
		l.tensors = append(l.tensors, algebra.NewTensor(op.Label, lower, upper, algebra.Antisymmetric))
	}

	return l
}

// positions returns where the legs consumed by el in space s sit in the
// operator string, advancing offsets past them.
func (l layout) positions(el ElementaryContraction, s int, offsets []diagram.Vertex, cre bool) ([]int, error) {
	var out []int
	for o, v := range el {
		n, off := v.Ann(s), offsets[o].Ann(s)
		if cre {
			n, off = v.Cre(s), offsets[o].Cre(s)
		}
		for i := 0; i < n; i++ {
			pos, ok := l.legs[legKey{op: o, space: s, cre: cre, n: off + i}]
			if !ok {
				return nil, fmt.Errorf("wick: leg (op %d, space %d, cre %t, #%d) not found: %w",
					o, s, cre, off+i, ErrBrokenInvariant)
			}
			out = append(out, pos)
		}
		if cre {
			offsets[o].SetCre(s, off+n)
		} else {
			offsets[o].SetAnn(s, off+n)
		}
	}

	return out, nil
}

// EvaluateContraction applies composite to ops and returns the resulting
// term with its coefficient factor × sign × operator factors ×
// combinatorial factor.
//
// Occupied pairs identify the annihilator's index with the creator's;
// Unoccupied pairs identify the creator's index with the annihilator's and
// flip the sign. General contractions add a density tensor: gamma1 when
// the creation leg stands left of the annihilation leg, eta1 (with a sign
// flip) otherwise, and lambdaK for 2K legs with K > 1. Free operators are
// returned normal ordered, creators first, each group in space order.
func EvaluateContraction(reg *space.Registry, ops diagram.OperatorProduct, composite CompositeContraction, factor rational.Rational) (algebra.SymbolicTerm, rational.Rational, error) {
	l := layoutProduct(reg, ops)
	tensors := l.tensors

	offsets := make([]diagram.Vertex, len(ops))
	order := make([]int, len(l.sqops))
	for i := range order {
		order[i] = -1
	}
	placed, contracted, sign := 0, 0, 1
	reindex := make(algebra.IndexMap)

	for _, el := range composite {
		s := el.Space()
		if s < 0 || s >= reg.Len() {
			return algebra.SymbolicTerm{}, rational.Zero(), fmt.Errorf("wick: EvaluateContraction: empty contraction: %w", ErrBrokenInvariant)
		}
		rank := el.NumOps()
		contracted += rank

		cre, err := l.positions(el, s, offsets, true)
		if err != nil {
			return algebra.SymbolicTerm{}, rational.Zero(), err
		}
		ann, err := l.positions(el, s, offsets, false)
		if err != nil {
			return algebra.SymbolicTerm{}, rational.Zero(), err
		}
		for _, p := range cre {
			order[p] = placed
			placed++
		}
		for _, p := range ann {
			order[p] = placed
			placed++
		}

		switch reg.Kind(s) {
		case space.Occupied, space.Unoccupied:
			if len(cre) != 1 || len(ann) != 1 {
				return algebra.SymbolicTerm{}, rational.Zero(), fmt.Errorf(
					"wick: EvaluateContraction: pair contraction with %d+%d legs: %w", len(cre), len(ann), ErrBrokenInvariant)
			}
			ci, ai := l.sqops[cre[0]].Index, l.sqops[ann[0]].Index
			if reg.Kind(s) == space.Occupied {
				reindex[ai] = ci
			} else {
				reindex[ci] = ai
				sign = -sign
			}
		case space.General:
			upper := make([]algebra.Index, len(cre))
			for n, p := range cre {
				upper[n] = l.sqops[p].Index
			}
			lower := make([]algebra.Index, len(ann))
			for n, p := range ann {
				lower[len(ann)-1-n] = l.sqops[p].Index
			}
			label := "lambda" + strconv.Itoa(rank/2)
			if rank == 2 {
				label = "gamma1"
				if cre[0] > ann[0] {
					label = "eta1"
					sign = -sign
				}
			}
			tensors = append(tensors, algebra.NewTensor(label, lower, upper, algebra.Antisymmetric))
		default:
			return algebra.SymbolicTerm{}, rational.Zero(), fmt.Errorf("wick: EvaluateContraction: space %c: %w",
				reg.Label(s), ErrUnknownSpaceKind)
		}
	}

	for _, typ := range []algebra.OpType{algebra.Creation, algebra.Annihilation} {
		for s := 0; s < reg.Len(); s++ {
			for i, op := range l.sqops {
				if order[i] == -1 && op.Index.Space == s && op.Type == typ {
					order[i] = placed
					placed++
				}
			}
		}
	}
	if placed != len(order) {
		return algebra.SymbolicTerm{}, rational.Zero(), fmt.Errorf(
			"wick: EvaluateContraction: placed %d of %d operators: %w", placed, len(order), ErrBrokenInvariant)
	}
	sign *= combinatorics.PermutationSign(order)

	arranged := make([]algebra.SQOperator, len(l.sqops))
	for i, op := range l.sqops {
		arranged[order[i]] = op
	}

	term := algebra.NewTerm(true, arranged[contracted:], tensors...)
	term.Reindex(reindex)

	coeff := factor.Mul(CombinatorialFactor(ops, composite)).MulInt(int64(sign))
	for _, op := range ops {
		coeff = coeff.Mul(op.Factor())
	}

	return term, coeff, nil
}

// CombinatorialFactor counts the equivalent ways of realizing composite:
// each contraction, in order, picks its legs among those still free on
// every operator, and each group of r identical contractions divides the
// count by r.
func CombinatorialFactor(ops diagram.OperatorProduct, composite CompositeContraction) rational.Rational {
	free := make([]diagram.Vertex, len(ops))
	for n, op := range ops {
		free[n] = op.Vertex
	}

	f := rational.One()
	for _, el := range composite {
		for o, v := range el {
			for s := range v {
				f = f.Mul(rational.FromBigInt(combinatorics.Binomial(free[o].Cre(s), v.Cre(s))))
				f = f.Mul(rational.FromBigInt(combinatorics.Binomial(free[o].Ann(s), v.Ann(s))))
			}
			free[o] = free[o].Sub(v)
		}
	}

	repeats := make(map[string]int)
	for _, el := range composite {
		repeats[el.key()]++
	}
	for _, r := range repeats {
		f = f.QuoInt(int64(r))
	}

	return f
}
