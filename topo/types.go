package topo

import (
	"context"
	"errors"
)

// VertexState tracks depth-first visitation progress during Sort.
type VertexState uint8

const (
	// White marks a vertex not yet visited.
	White VertexState = iota
	// Gray marks a vertex on the recursion stack (in progress).
	Gray
	// Black marks a vertex whose descendants are fully explored.
	Black
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sort or Kahn.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrNotDirected is returned for undirected graphs: mirrored adjacency
	// makes every edge its own back-edge, so no topological order exists.
	ErrNotDirected = errors.New("topo: graph must be directed")

	// ErrCycleDetected is returned by both strategies when the graph is not
	// acyclic. The order result is nil in that case.
	ErrCycleDetected = errors.New("topo: cycle detected")
)

// TopoOption configures optional behavior shared by Sort and Kahn.
type TopoOption func(*topoOptions)

// topoOptions holds strategy settings, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
