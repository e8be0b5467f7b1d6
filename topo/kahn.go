package topo

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// Kahn computes a topological ordering of all vertices in g by repeatedly
// removing in-degree-zero vertices. Sources are seeded in ascending index
// order and consumed FIFO, so the result is a layered order and fully
// deterministic for a given graph.
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrNotDirected.
// If any vertex is left with a positive in-degree once the queue drains,
// the graph is cyclic: returns ErrCycleDetected and a nil order.
// You may pass WithCancelContext(ctx) to enable cancellation.
func Kahn(g *core.Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs can be ordered.
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	// 3. Apply optional settings.
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 4. Tally in-degrees; each parallel edge copy counts separately.
	n := g.VertexCount()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		for _, w := range g.Neighbors(v) {
			indeg[w]++
		}
	}
	// 5. Seed the queue with every source vertex in ascending index order.
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	// 6. Peel sources FIFO, decrementing successors as their edges vanish.
	order := make([]int, 0, n)
	for qi := 0; qi < len(queue); qi++ {
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}

		v := queue[qi]
		order = append(order, v)
		for _, w := range g.Neighbors(v) {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}
	// 7. Leftover vertices sit on cycles; no partial order is returned.
	if len(order) < n {
		return nil, fmt.Errorf("%w: %d vertices unprocessed", ErrCycleDetected, n-len(order))
	}

	return order, nil
}
