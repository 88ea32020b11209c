package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/algebra"
)

// TestSymbolicTerm_Components groups tensors that share indices.
func TestSymbolicTerm_Components(t *testing.T) {
	reg := ovRegistry()
	cases := []struct {
		name string
		text string
		want [][]int
	}{
		{"scalar", "1", nil},
		{"single", "f^{v0}_{o0} { a+(v0) a-(o0) }", [][]int{{0}}},
		{"pair", "f^{v0}_{o0} t^{o0}_{v0}", [][]int{{0, 1}}},
		{"unlinked", "f^{v0}_{o0} t^{o1}_{v1} t^{o0}_{v0} { a+(v1) a-(o1) }", [][]int{{0, 2}, {1}}},
		{"chain", "t^{o0}_{v0} v^{v0,v1}_{o0,o1} t^{o1}_{v1}", [][]int{{0, 1, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term, _, err := algebra.ParseTerm(reg, tc.text, algebra.Antisymmetric)
			require.NoError(t, err)
			assert.Equal(t, tc.want, term.Components())
			assert.Equal(t, len(tc.want) <= 1, term.Connected())
		})
	}
}

// TestSymbolicTerm_TensorGraph links tensors once per shared index pair.
func TestSymbolicTerm_TensorGraph(t *testing.T) {
	reg := ovRegistry()
	term, _, err := algebra.ParseTerm(reg, "t^{o0}_{v0} v^{v0,v1}_{o0,o1} t^{o1}_{v1} f^{v2}_{o2}", algebra.Antisymmetric)
	require.NoError(t, err)

	g := term.TensorGraph()
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
	assert.True(t, g.HasEdge("2", "1"))
	assert.False(t, g.HasEdge("0", "2"))
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, term.Components())
}

// TestExpression_Connected drops terms with unlinked tensors.
func TestExpression_Connected(t *testing.T) {
	reg := ovRegistry()
	expr := algebra.MustParseExpression(reg,
		"f^{v0}_{o0} t^{o0}_{v0}\nf^{v0}_{o0} t^{o0}_{v0} t^{o1}_{v1} { a+(v1) a-(o1) }")
	require.Equal(t, 2, expr.Len())

	got := expr.Connected()
	assert.True(t, got.Equal(algebra.MustParseExpression(reg, "f^{v0}_{o0} t^{o0}_{v0}")))
	assert.Equal(t, 2, expr.Len(), "receiver is untouched")
}
