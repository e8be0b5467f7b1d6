package dfs

import (
	"context"
	"errors"
)

// Sentinel errors returned by the traversal entry points.
var (
	// ErrGraphNil is returned when the supplied graph is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")
	// ErrStartOutOfRange is returned when the start vertex lies outside [0, n).
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// Option customizes traversal behavior via functional options.
type Option func(*Options)

// Options holds DFS configuration shared by the recursive and iterative forms.
type Options struct {
	// Ctx enables cancellation; checked once per vertex expansion.
	Ctx context.Context

	// OnVisit fires when a vertex is first discovered (pre-order).
	// Returning an error aborts traversal and clears Result.Order.
	OnVisit func(v int) error

	// OnExit fires after a vertex's subtree is fully explored (post-order).
	// Only the recursive walker fires it; Iterative never does.
	OnExit func(v int) error

	// MaxDepth bounds descent: vertices deeper than MaxDepth edges from the
	// start are not visited. Negative means unlimited; 0 visits the start
	// vertex only.
	MaxDepth int

	// FilterNeighbor, when non-nil, is consulted before following an edge.
	// Returning false skips the neighbor and increments
	// Result.SkippedNeighbors.
	FilterNeighbor func(v int) bool
}

// DefaultOptions returns the baseline configuration: background context,
// no hooks, unlimited depth, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context used for cancellation checks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook invoked at first discovery.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook invoked after a vertex's subtree
// completes. The iterative engine does not fire it.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth bounds how deep the traversal descends. Negative lifts the
// bound; 0 restricts the walk to the start vertex alone.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs a neighbor predicate; edges whose target fails
// the predicate are skipped and counted.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result aggregates the outcome of one or more Walk calls.
type Result struct {
	// Order lists vertices in the sequence they were first visited
	// (pre-order). It spans every Walk performed with the same Walker.
	Order []int

	// Depth[v] is the number of tree edges from the walk's start to v,
	// or -1 if v was never visited.
	Depth []int

	// Parent[v] is the vertex from which v was discovered, or -1 for
	// roots and unvisited vertices.
	Parent []int

	// Visited marks every vertex reached so far.
	Visited []bool

	// Components holds one Order slice per traversal root, in root order.
	// Populated by AllComponents; each entry aliases a window of Order.
	Components [][]int

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Reached reports whether v was visited. Out-of-range v reports false.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Visited) && r.Visited[v]
}
