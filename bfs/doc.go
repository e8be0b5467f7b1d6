// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, unweighted distances, and parent links.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex. AllComponents repeats the primitive from every unvisited
//     vertex in index order 0..n-1, covering disconnected graphs.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance (in edges) from its component's start, -1 if unreached
//   - Parent: per-vertex predecessor in the BFS tree, -1 for roots and unreached
//   - Components: per-component membership (AllComponents only)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is marked and enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest distances in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//
// Marking discipline
//
//	A vertex is marked visited at enqueue time, never at dequeue time, so a
//	vertex can be enqueued at most once regardless of how many edges lead to
//	it. Each reachable vertex therefore appears exactly once in Order.
//
// Determinism
//
//	Adjacency lists preserve insertion order and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible: within a layer,
//	vertices appear in the adjacency order of the layer's discovering
//	parents, parents taken in their own discovery order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, visited, Depth, Parent)
//
// Usage
//
//	g := core.New(5)
//	// ... AddEdge calls ...
//	result, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // handle ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation,
//	    // or a hook error
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr, nbr) == false.
//   - WithOnEnqueue(fn):       hook when a vertex is marked and enqueued.
//   - WithOnDequeue(fn):       hook immediately before visiting a vertex.
//   - WithOnVisit(fn):         hook during visit; returning an error aborts BFS.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if the start index lies outside [0, n).
//   - ErrOptionViolation  if an invalid Option was supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
