// This file declares the Graph type, its construction options,
// and the sentinel errors shared by all core operations.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexRange indicates a vertex index outside [0, n).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph over the dense vertex set 0..n-1.
//
// The vertex count is fixed at construction; edges are appended afterwards
// with AddEdge. Adjacency lists preserve insertion order, which is the order
// every traversal in this module follows.
type Graph struct {
	// Configuration flags
	directed   bool // all edges one-way when true
	allowLoops bool // allow self-loops

	// Storage
	edgeCount int     // logical edges added (mirrored pairs count once)
	adj       [][]int // adj[v] = ordered neighbor indices of v
}

// New creates a Graph with n vertices (0..n-1) and no edges.
// A negative n is treated as zero.
// By default the Graph is undirected and rejects self-loops.
// Complexity: O(n).
func New(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([][]int, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
