package algebra

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/wick/bfs"
	"github.com/katalvlaran/wick/core"
)

// TensorGraph returns the graph with one vertex per tensor of t, named by
// its position, and an edge between every two tensors that share an index.
func (t SymbolicTerm) TensorGraph() *core.Graph {
	g := core.NewGraph()
	owners := make(map[Index][]string)
	for pos, x := range t.tensors {
		id := strconv.Itoa(pos)
		_ = g.AddVertex(id)
		for _, list := range [2][]Index{x.Lower, x.Upper} {
			for _, idx := range list {
				for _, other := range owners[idx] {
					_ = g.AddEdge(other, id)
				}
				owners[idx] = append(owners[idx], id)
			}
		}
	}

	return g
}

// Components groups the tensors of t into connected components of its
// TensorGraph. Components are listed in order of their first tensor and
// each lists tensor positions in breadth-first order from that tensor.
func (t SymbolicTerm) Components() [][]int {
	g := t.TensorGraph()
	seen := make(map[string]bool, g.VertexCount())

	var out [][]int
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := bfs.BFS(g, id)
		if err != nil {
			// the start vertex comes from g itself
			panic(fmt.Sprintf("algebra: Components: %v", err))
		}
		comp := make([]int, len(res.Order))
		for n, v := range res.Order {
			seen[v] = true
			comp[n], _ = strconv.Atoi(v)
		}
		out = append(out, comp)
	}

	return out
}

// Connected reports whether every tensor of t is reachable from every other
// through shared indices. Terms with fewer than two tensors are connected.
func (t SymbolicTerm) Connected() bool {
	return len(t.Components()) <= 1
}

// Connected returns the terms of e whose tensors form a single connected
// component.
func (e *Expression) Connected() *Expression {
	out := NewExpression()
	for _, term := range e.Terms() {
		if term.Symbolic.Connected() {
			out.Add(term.Symbolic, term.Coeff)
		}
	}

	return out
}
