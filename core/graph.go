package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.order[id]; ok {
		return nil
	}
	g.order[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.adjacency[id] = make(map[int]struct{})

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.order[id]

	return ok
}

// AddEdge links from and to. Both must exist. Self-loops and repeated
// edges are ignored.
func (g *Graph) AddEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rf, ok := g.order[from]
	if !ok {
		return fmt.Errorf("core: AddEdge(%q, %q): %w", from, to, ErrVertexNotFound)
	}
	rt, ok := g.order[to]
	if !ok {
		return fmt.Errorf("core: AddEdge(%q, %q): %w", from, to, ErrVertexNotFound)
	}
	if rf == rt {
		return nil
	}
	if _, dup := g.adjacency[from][rt]; dup {
		return nil
	}
	g.adjacency[from][rt] = struct{}{}
	g.adjacency[to][rf] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether from and to are linked.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rt, ok := g.order[to]
	if !ok {
		return false
	}
	_, ok = g.adjacency[from][rt]

	return ok
}

// NeighborIDs returns the neighbors of id in vertex insertion order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("core: NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}
	ranks := make([]int, 0, len(adj))
	for r := range adj {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)

	out := make([]string, len(ranks))
	for n, r := range ranks {
		out[n] = g.ids[r]
	}

	return out, nil
}

// Vertices returns every vertex ID in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.ids)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
