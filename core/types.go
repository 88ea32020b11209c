package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is an undirected simple graph with insertion-ordered vertices.
type Graph struct {
	mu sync.RWMutex

	// order maps a vertex ID to its insertion rank.
	order map[string]int
	ids   []string

	// adjacency[from] holds the ranks of the neighbors of from.
	adjacency map[string]map[int]struct{}
	edges     int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		order:     make(map[string]int),
		adjacency: make(map[string]map[int]struct{}),
	}
}
