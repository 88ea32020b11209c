package algebra

import (
	"slices"

	"github.com/katalvlaran/wick/combinatorics"
	"github.com/katalvlaran/wick/space"
)

// OpType distinguishes creation from annihilation operators.
type OpType int

const (
	// Creation operators print as a+(…).
	Creation OpType = iota
	// Annihilation operators print as a-(…).
	Annihilation
)

// SQOperator is a second-quantized operator acting on one index.
type SQOperator struct {
	Type  OpType
	Index Index
}

// Cre returns the creation operator on idx.
func Cre(idx Index) SQOperator { return SQOperator{Type: Creation, Index: idx} }

// Ann returns the annihilation operator on idx.
func Ann(idx Index) SQOperator { return SQOperator{Type: Annihilation, Index: idx} }

// IsCreation reports whether op is a creation operator.
func (op SQOperator) IsCreation() bool { return op.Type == Creation }

// Compare places creation operators first, creations in increasing index
// order and annihilations in decreasing index order.
func (op SQOperator) Compare(o SQOperator) int {
	if op.IsCreation() != o.IsCreation() {
		if op.IsCreation() {
			return -1
		}

		return 1
	}
	if op.IsCreation() {
		return op.Index.Compare(o.Index)
	}

	return o.Index.Compare(op.Index)
}

// Less reports whether op sorts before o.
func (op SQOperator) Less(o SQOperator) bool { return op.Compare(o) < 0 }

// Adjoint swaps creation and annihilation.
func (op SQOperator) Adjoint() SQOperator {
	if op.IsCreation() {
		return Ann(op.Index)
	}

	return Cre(op.Index)
}

// Render prints the operator as a+(o0) or a-(v1); bosons use b.
func (op SQOperator) Render(reg *space.Registry) string {
	sign := "-"
	if op.IsCreation() {
		sign = "+"
	}

	return reg.OpSymbol(op.Index.Space) + sign + "(" + op.Index.Render(reg) + ")"
}

// CompareOperators compares two operator strings lexicographically.
func CompareOperators(a, b []SQOperator) int {
	return slices.CompareFunc(a, b, SQOperator.Compare)
}

// CanonicalizeOperators sorts ops in place and returns the sign of the
// permutation applied.
func CanonicalizeOperators(ops []SQOperator) int {
	perm := make([]int, len(ops))
	for n := range perm {
		perm[n] = n
	}
	orig := slices.Clone(ops)
	slices.SortStableFunc(perm, func(a, b int) int { return orig[a].Compare(orig[b]) })
	for n, p := range perm {
		ops[n] = orig[p]
	}

	return combinatorics.PermutationSign(perm)
}
