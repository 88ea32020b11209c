// Package bfs provides breadth-first search over a core.Graph, returning
// the visit order and the depth of every reached vertex.
//
// BFS explores vertices in increasing distance from a start vertex, with an
// optional visit hook, a depth limit and context cancellation. Neighbors are
// taken in the graph's deterministic order, so repeated runs visit vertices
// identically.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil             nil graph.
//   - ErrStartVertexNotFound  start vertex absent.
//   - ErrOptionViolation      negative MaxDepth.
//   - ErrNeighbors            the graph failed a neighbor lookup.
//   - context errors and OnVisit errors are propagated.
package bfs
