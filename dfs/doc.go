// Package dfs implements depth-first search over a core.Graph in two
// interchangeable forms: a recursive reference walker and an explicit-stack
// iterative engine, plus a whole-graph variant for disconnected inputs.
//
// What
//
//   - DFS(g, start, ...) runs the recursive form from one start vertex and
//     returns a Result whose Order is the pre-order visit sequence: a vertex
//     is appended the moment it is first discovered, before its subtree.
//   - Iterative(g, start, ...) produces the same visitation contract with an
//     explicit stack instead of the call stack. Popped vertices that were
//     already visited are discarded (lazy deletion), and neighbors are
//     pushed in reverse adjacency order so that popping follows forward
//     adjacency order.
//   - AllComponents(g, ...) drives the recursive walker from every unvisited
//     vertex in index order 0..n-1, covering the whole graph.
//   - Walker is the traversal-state object behind the recursive form. It
//     owns the visited set and the order accumulator, and successive Walk
//     calls share that state, which is how multi-component traversals
//     compose. NewWalker + Walk is the explicit version of what
//     AllComponents does internally.
//
// Choosing a form
//
//	The recursive walker matches the textbook formulation and is the
//	reference implementation; its recursion depth grows with the longest
//	simple path from the start, so very long chains can exhaust the stack.
//	Iterative is the production default: same contract, heap-allocated
//	stack, no depth hazard.
//
// Order divergence
//
//	The two forms are not guaranteed to produce byte-identical orders on
//	every graph: the iterative engine may push a vertex once per incoming
//	discovery edge before its first pop, and the first pop wins. Both
//	sequences are valid depth-first orders; treat them as equivalent rather
//	than interchangeable.
//
// Complexity
//
//   - Time:   O(V + E) for either form, plus hook and filter overhead.
//   - Memory: O(V) for visited, depth, and parent tables; the recursive
//     form additionally consumes call-stack frames, the iterative form an
//     explicit stack of at most O(E) frames.
//
// Options
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook on discovery; an error aborts.
//   - WithOnExit(fn)          post-order hook, recursive walker only.
//   - WithMaxDepth(limit)     stop descending beyond the given depth (>= 0).
//   - WithFilterNeighbor(fn)  skip neighbors; skips are counted in
//     Result.SkippedNeighbors.
//
// Errors
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartOutOfRange   if the start index lies outside [0, n).
//   - context.Canceled     if the context is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
