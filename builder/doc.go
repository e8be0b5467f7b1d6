// SPDX-License-Identifier: MIT
// Package: intgraph/builder
//
// doc.go - package overview and contracts shared by all constructors.

// Package builder provides deterministic constructors for common graph
// topologies over core.Graph, plus seeded random generators for benchmarks
// and stress tests.
//
// What
//
//   - FromEdges(n, edges, ...)        literal edge list over n vertices.
//   - Path(n, ...)                    chain 0-1-...-(n-1).
//   - Cycle(n, ...)                   ring 0-1-...-(n-1)-0.
//   - Star(n, ...)                    center 0 joined to every other vertex.
//   - Complete(n, ...)                every vertex pair joined.
//   - Grid(rows, cols, ...)           orthogonal 4-neighborhood lattice,
//     row-major vertex numbering.
//   - Tree(depth, branching, ...)     complete b-ary tree, heap numbering.
//   - RandomSparse(n, edges, seed, ...) seeded uniform edge sampling.
//   - RandomDAG(n, edges, seed)       seeded acyclic digraph, edges point
//     from lower to higher index.
//
// Determinism
//
//	Every constructor adds edges in a fixed, documented order, so adjacency
//	lists and therefore traversal orders are reproducible. The random
//	generators draw from math/rand seeded with the caller's seed; the same
//	seed always yields the same graph.
//
// Modes
//
//	Constructors accept core.GraphOption values and forward them to
//	core.New, so any topology can be built directed or undirected. In
//	directed mode the symmetric topologies (Path, Cycle, Star, Complete,
//	Grid, Tree) emit forward arcs only, following the numbering direction.
//
// Errors
//
//   - ErrTooFewVertices  a vertex-count parameter is below the minimum.
//   - ErrBadDimension    a shape parameter (rows, cols, depth, edge count)
//     is outside its domain.
//   - FromEdges wraps core.ErrVertexRange when an edge endpoint is out of
//     range; no partially built graph is returned.
package builder
