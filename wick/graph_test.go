package wick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/wick"
)

func labels(ops diagram.OperatorProduct) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Label
	}

	return out
}

// TestCanonicalizeGraph_OddReorder moves two commuting odd operators and
// picks up a minus sign.
func TestCanonicalizeGraph_OddReorder(t *testing.T) {
	reg := ovRegistry()
	ops := product(t,
		diagram.MustMakeOperator(reg, "a", "o+ o+"),
		diagram.MustMakeOperator(reg, "c", "o"),
		diagram.MustMakeOperator(reg, "b", "o"))
	el, err := wick.ElementaryContractions(reg, ops, wick.DefaultMaxCumulant)
	require.NoError(t, err)
	full := wick.CompositeContractions(ops, el, 0, 0)
	require.Len(t, full, 1)

	bestOps, best, sign := wick.CanonicalizeGraph(ops, wick.Composite(el, full[0]))
	assert.Equal(t, []string{"a", "b", "c"}, labels(bestOps))
	assert.Equal(t, -1, sign)
	require.Len(t, best, 2)
	for _, row := range best {
		require.Len(t, row, 3)
		assert.Equal(t, 1, row[0].Cre(0), "every row takes one creator of a")
	}
}

// TestCanonicalizeGraph_Blocked keeps the order when every pair is joined.
func TestCanonicalizeGraph_Blocked(t *testing.T) {
	reg := ovRegistry()
	ops := product(t,
		diagram.MustMakeOperator(reg, "t", "v+ o"),
		diagram.MustMakeOperator(reg, "f", "o+ v"))
	el, err := wick.ElementaryContractions(reg, ops, wick.DefaultMaxCumulant)
	require.NoError(t, err)
	require.Empty(t, el)

	ops = product(t,
		diagram.MustMakeOperator(reg, "f", "o+ v"),
		diagram.MustMakeOperator(reg, "t", "v+ o"))
	el, err = wick.ElementaryContractions(reg, ops, wick.DefaultMaxCumulant)
	require.NoError(t, err)
	bestOps, _, sign := wick.CanonicalizeGraph(ops, wick.Composite(el, []int{0, 1}))
	assert.Equal(t, []string{"f", "t"}, labels(bestOps))
	assert.Equal(t, 1, sign)
}

// TestCanonicalizeGraph_RowOrder checks that the row order of the input
// does not leak into the result.
func TestCanonicalizeGraph_RowOrder(t *testing.T) {
	reg := ovRegistry()
	ops := product(t,
		diagram.MustMakeOperator(reg, "v", "o+ o+ v v"),
		diagram.MustMakeOperator(reg, "t", "v+ v+ o o"))
	el, err := wick.ElementaryContractions(reg, ops, wick.DefaultMaxCumulant)
	require.NoError(t, err)

	_, a, sa := wick.CanonicalizeGraph(ops, wick.Composite(el, []int{0, 0, 1, 1}))
	_, b, sb := wick.CanonicalizeGraph(ops, wick.Composite(el, []int{1, 1, 0, 0}))
	_, c, sc := wick.CanonicalizeGraph(ops, wick.Composite(el, []int{0, 1, 0, 1}))
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, sa, sb)
	assert.Equal(t, sa, sc)
}

// TestCanonicalizeGraph_Idempotent re-canonicalizes a canonical graph.
func TestCanonicalizeGraph_Idempotent(t *testing.T) {
	reg := ovRegistry()
	ops := product(t,
		diagram.MustMakeOperator(reg, "v", "o+ o+ v v"),
		diagram.MustMakeOperator(reg, "t", "v+ o"),
		diagram.MustMakeOperator(reg, "t", "v+ o"))
	el, err := wick.ElementaryContractions(reg, ops, wick.DefaultMaxCumulant)
	require.NoError(t, err)

	for _, idx := range wick.CompositeContractions(ops, el, 0, 0) {
		bestOps, best, _ := wick.CanonicalizeGraph(ops, wick.Composite(el, idx))
		againOps, again, sign := wick.CanonicalizeGraph(bestOps, best)
		assert.Equal(t, bestOps, againOps)
		assert.Equal(t, best, again)
		assert.Equal(t, 1, sign)
	}
}
