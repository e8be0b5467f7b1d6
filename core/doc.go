// Package core defines the dense-index Graph used by every traversal and
// ordering package in intgraph.
//
// What
//
//   - A Graph holds a fixed set of n vertices identified by the integers
//     0..n-1 and an adjacency structure mapping each vertex to an ordered
//     slice of neighbor indices.
//   - Directedness is a construction-time property (WithDirected). Undirected
//     edges are materialized symmetrically: AddEdge(u, v) appends v to u's
//     list and u to v's list in the same call.
//   - Adjacency order is insertion order. Traversals follow it verbatim,
//     which makes every algorithm in this module deterministic for a given
//     construction sequence.
//
// Why
//
//   - Dense integer indices keep the hot paths allocation-free: visited sets
//     are []bool, depth and parent tables are []int, and neighbor iteration
//     is a plain slice walk.
//   - The vertex set is fixed at construction, so algorithms can size every
//     table once via VertexCount.
//
// Invariants
//
//   - Every adjacency entry is in [0, n). AddEdge enforces this; accessors
//     assume it.
//   - Self-loops are rejected unless the graph was built WithLoops.
//   - Parallel edges are permitted: traversals deduplicate through visited
//     marks, and in-degree counters consume each copy.
//
// Concurrency
//
//	Graph is not synchronized. Build it single-threaded, then share it
//	freely between concurrent readers; all traversal state lives in the
//	caller of each algorithm, never in the Graph.
//
// Errors
//
//   - ErrVertexRange     an endpoint lies outside [0, n).
//   - ErrLoopNotAllowed  a self-loop was added without WithLoops.
package core
