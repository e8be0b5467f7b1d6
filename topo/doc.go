// Package topo provides topological ordering of directed graphs under two
// interchangeable strategies with a shared failure contract.
//
// What
//
//   - Sort(g, ...) orders vertices depth-first: a three-color sweep (White,
//     Gray, Black) records vertices in post-order and reverses the result.
//     A Gray-to-Gray back-edge proves a cycle; the offending cycle is
//     reconstructed from the Gray chain and reported in the error.
//   - Kahn(g, ...) orders vertices by in-degree peeling: every vertex with
//     no incoming edges is enqueued in ascending index order, then removed
//     FIFO while decrementing its successors. Vertices still unprocessed
//     when the queue drains sit on cycles.
//
// Agreement
//
//	The two strategies accept exactly the same inputs: on a DAG both
//	return a valid topological order, on a cyclic graph both fail with
//	ErrCycleDetected and a nil order. No partial order is ever returned.
//	The successful orders generally differ (depth-first chains versus
//	breadth-first layers); each respects every edge.
//
// Choosing a strategy
//
//	Sort recurses along dependency chains, so its stack grows with the
//	longest path; it yields the classic reverse post-order used for
//	dependency resolution. Kahn is loop-based and stack-safe, produces a
//	layered order that tends to interleave independent components, and
//	additionally reports how many vertices were trapped on cycles.
//
// Complexity
//
//   - Time:   O(V + E) for either strategy.
//   - Memory: O(V) for color or in-degree tables; Sort also consumes
//     recursion frames along the deepest chain.
//
// Errors
//
//   - ErrGraphNil        if g is nil.
//   - ErrNotDirected     if g is undirected.
//   - ErrCycleDetected   if the graph is not acyclic; Sort appends the
//     reconstructed cycle, Kahn the count of unprocessed vertices.
//   - context.Canceled   if a WithCancelContext context is done.
package topo
