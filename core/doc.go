// Package core provides the small, thread-safe undirected Graph used to
// reason about how the factors of a symbolic term are linked.
//
// What:
//
//   - Vertices are string IDs; algebra uses one vertex per tensor of a
//     term, named by its position.
//   - Edges are undirected, unweighted and simple: adding an existing
//     edge or a self-loop is a no-op, because two tensors sharing several
//     indices are still linked once.
//   - Iteration is deterministic: Vertices and NeighborIDs follow vertex
//     insertion order, so traversals reproduce the order in which the
//     caller listed its factors.
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices and adjacency. Queries take the
//	read lock, mutations the write lock.
//
// Errors:
//
//   - ErrEmptyVertexID   vertex ID is the empty string.
//   - ErrVertexNotFound  an edge or query names an absent vertex.
package core
