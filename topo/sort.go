package topo

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// sorter encapsulates state for one depth-first Sort run.
type sorter struct {
	graph *core.Graph
	opts  topoOptions
	state []VertexState // per-vertex color, indexed by vertex
	path  []int         // current Gray chain, used to reconstruct cycles
	order []int         // recorded post-order sequence
}

// Sort computes a topological ordering of all vertices in g so that for
// every edge u->v, u appears before v. Roots are taken in ascending index
// order; within one graph the result is fully deterministic.
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrNotDirected.
// If a cycle is detected, returns ErrCycleDetected with the cycle spelled
// out, and a nil order.
// You may pass WithCancelContext(ctx) to enable cancellation.
func Sort(g *core.Graph, options ...TopoOption) ([]int, error) {
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
	// 4. Initialize sorter state; every vertex starts White.
	n := g.VertexCount()
	s := &sorter{
		graph: g,
		opts:  opts,
		state: make([]VertexState, n),
		path:  make([]int, 0, n),
		order: make([]int, 0, n),
	}
	// 5. Drive DFS from every White vertex in index order.
	for v := 0; v < n; v++ {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse post-order to produce the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit explores v depth-first, coloring states and catching back-edges.
func (s *sorter) visit(v int) error {
	// 1. Cancellation check at entry.
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. Mark as in-progress and extend the Gray chain.
	s.state[v] = Gray
	s.path = append(s.path, v)

	// 3. Explore outgoing edges in adjacency order.
	for _, w := range s.graph.Neighbors(v) {
		switch s.state[w] {
		case Gray:
			// Back-edge into the Gray chain closes a cycle.
			return fmt.Errorf("%w: %v", ErrCycleDetected, s.cycleTo(w))
		case White:
			if err := s.visit(w); err != nil {
				return err
			}
		}
	}

	// 4. Backtrack: pop the chain, mark fully explored, record post-order.
	s.path = s.path[:len(s.path)-1]
	s.state[v] = Black
	s.order = append(s.order, v)

	return nil
}

// cycleTo extracts the closed cycle [w ... v w] from the Gray chain, where
// v is the chain's tip and w the back-edge target.
func (s *sorter) cycleTo(w int) []int {
	idx := 0
	for i, u := range s.path {
		if u == w {
			idx = i
			break
		}
	}
	cyc := append([]int(nil), s.path[idx:]...)

	return append(cyc, w)
}
