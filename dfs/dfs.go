package dfs

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// Walker is the recursive traversal engine. It owns the visited set, the
// depth and parent tables, and the order accumulator; repeated Walk calls
// against the same Walker share that state, so a second Walk extends the
// previous one instead of restarting it.
type Walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// NewWalker validates the graph, applies options, and allocates the shared
// traversal state sized to the graph.
func NewWalker(g *core.Graph, opts ...Option) (*Walker, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Assemble options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Allocate per-vertex state with -1 sentinels.
	n := g.VertexCount()
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return &Walker{graph: g, opts: cfg, res: res}, nil
}

// Walk runs a depth-first traversal from start, extending any state left by
// earlier Walk calls. Walking an already-visited start is a no-op.
func (w *Walker) Walk(start int) error {
	if !w.graph.HasVertex(start) {
		return fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, w.graph.VertexCount())
	}
	if w.res.Visited[start] {
		return nil
	}
	return w.visit(start, 0, -1)
}

// Result exposes the accumulated traversal state.
func (w *Walker) Result() *Result {
	return w.res
}

// visit performs the recursive expansion of v at the given depth.
func (w *Walker) visit(v, depth, parent int) error {
	// 1) Honor cancellation before touching the vertex.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2) Enforce the depth bound without marking v.
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3) Mark and record v in pre-order.
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4) Expand neighbors in adjacency order.
	for _, nbr := range w.graph.Neighbors(v) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		if err := w.visit(nbr, depth+1, v); err != nil {
			return err
		}
	}

	// 5) Post-order hook once the subtree is complete.
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	return nil
}

// DFS runs the recursive form from a single start vertex. It is shorthand
// for NewWalker + Walk + Result.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}
	if err := w.Walk(start); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// AllComponents runs the recursive walker from every still-unvisited vertex
// in index order, so disconnected graphs are covered deterministically. One
// Components entry is appended per traversal root.
func AllComponents(g *core.Graph, opts ...Option) (*Result, error) {
	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}
	for v := 0; v < g.VertexCount(); v++ {
		if w.res.Visited[v] {
			continue
		}
		mark := len(w.res.Order)
		if err := w.Walk(v); err != nil {
			return w.res, err
		}
		w.res.Components = append(w.res.Components, w.res.Order[mark:])
	}
	return w.res, nil
}
