// This file implements the BFS primitive and its whole-graph variant.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// queueItem pairs a vertex with its BFS depth and its parent.
type queueItem struct {
	v      int
	depth  int
	parent int // -1 for a component root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, g.VertexCount())
	}

	// Seed queue with the start vertex (no parent).
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// AllComponents runs BFS from every unvisited vertex in index order 0..n-1
// under one shared visited set, so the whole graph is covered and
// Result.Order is a permutation of 0..n-1. Per-component membership is
// recorded in Result.Components.
func AllComponents(g *core.Graph, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	for v := 0; v < g.VertexCount(); v++ {
		if w.visited[v] {
			continue
		}
		mark := len(w.res.Order)
		w.enqueue(v, 0, -1)
		if err := w.loop(); err != nil {
			return w.res, err
		}
		w.res.Components = append(w.res.Components, w.res.Order[mark:])
	}

	return w.res, nil
}

// newWalker validates g, resolves options, and sizes all bookkeeping.
func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res:     res,
	}, nil
}

// enqueue marks v visited at depth d, records its parent, fires OnEnqueue,
// and adds it to the queue. Marking happens here, at enqueue time, so no
// vertex can be enqueued twice.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors walks the adjacency list of item.v in order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	for _, nbr := range w.graph.Neighbors(item.v) {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}
}
