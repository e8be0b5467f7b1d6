// Package intgraph is a compact toolkit for graphs over dense integer
// vertices: build a topology, traverse it, order it.
//
// 🚀 What is intgraph?
//
//	A small, deterministic library built around one adjacency-list Graph
//	whose vertices are simply 0..n-1:
//		• Core primitives: dense Graph, directed or undirected, ordered adjacency
//		• Builders: paths, cycles, stars, grids, trees, seeded random graphs
//		• Traversals: BFS with layer guarantees, DFS in recursive and
//		  iterative form, whole-graph component sweeps
//		• Ordering: topological sort via DFS coloring or Kahn peeling
//		• Warm-ups: bracket matching, sorted-list merging, staircase DP
//
// ✨ Why choose intgraph?
//
//   - Deterministic by construction: adjacency keeps insertion order, so
//     every traversal order is reproducible
//   - Dense-index speed: visited sets are []bool, no hashing on hot paths
//   - Explicit contracts: sentinel errors, documented preconditions,
//     context cancellation on every long loop
//   - Extensible: OnVisit/OnEnqueue/OnExit hooks for custom logic
//
// Everything is organized under focused subpackages:
//
//	bfs/        breadth-first traversal, layers, shortest hop paths
//	brackets/   balanced-bracket validation
//	builder/    deterministic and seeded-random topology constructors
//	core/       the dense integer Graph type
//	dfs/        depth-first traversal, recursive and iterative engines
//	mergelist/  stable merging of sorted linked lists
//	stairs/     staircase counting and min-cost grid walks
//	topo/       topological ordering with an agreed failure contract
//
// Quick ASCII example:
//
//	    0
//	   / \
//	  1   2
//	  |   |
//	  3   4
//
//	bfs visits this tree level by level as [0 1 2 3 4]; dfs dives down the
//	first branch and reports [0 1 3 2 4].
//
//	go get github.com/katalvlaran/intgraph
package intgraph
