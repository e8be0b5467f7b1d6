// This file implements mutation and read access on Graph.
package core

import "fmt"

// VertexCount returns the number of vertices n.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges added via AddEdge.
// An undirected edge counts once even though it occupies two adjacency slots.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// HasVertex reports whether v is a valid vertex index, i.e. 0 <= v < n.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge appends the edge u→v to the adjacency structure.
// On an undirected graph the mirror entry v→u is appended in the same call,
// so both endpoints observe the edge immediately.
//
// Returns ErrVertexRange if either endpoint is outside [0, n), or
// ErrLoopNotAllowed for u == v unless the graph was built WithLoops.
// Parallel edges are permitted and simply append another entry.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: from=%d, n=%d", ErrVertexRange, u, len(g.adj))
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: to=%d, n=%d", ErrVertexRange, v, len(g.adj))
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}

	g.adj[u] = append(g.adj[u], v)
	// A self-loop occupies a single adjacency slot even when undirected.
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edgeCount++

	return nil
}

// Neighbors returns the ordered neighbor list of v as a read-only view of
// the internal slice; callers must not modify it. Returns nil when v is
// outside [0, n).
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Degree returns the out-degree of v (the length of its adjacency list).
// Returns 0 when v is outside [0, n).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// Adjacency returns the whole adjacency structure as a read-only view;
// callers must not modify the outer slice or any inner slice.
// Complexity: O(1).
func (g *Graph) Adjacency() [][]int { return g.adj }

// Clone returns a deep copy of g: same flags, same vertex count, and
// independently allocated adjacency lists.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		edgeCount:  g.edgeCount,
		adj:        make([][]int, len(g.adj)),
	}
	for v, nbrs := range g.adj {
		if len(nbrs) == 0 {
			continue
		}
		c.adj[v] = append(make([]int, 0, len(nbrs)), nbrs...)
	}

	return c
}
