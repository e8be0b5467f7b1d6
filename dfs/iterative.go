package dfs

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// frame is one pending expansion on the explicit stack.
type frame struct {
	v      int
	depth  int
	parent int
}

// Iterative runs depth-first search with an explicit heap-allocated stack,
// trading the recursive form's call-stack hazard for a bounded loop. The
// contract matches DFS except that OnExit never fires.
//
// A vertex may sit on the stack several times, once per discovery edge
// pushed before its first pop; stale frames are dropped at pop time (lazy
// deletion), so the first pop wins and later frames are no-ops. Neighbors
// are pushed in reverse adjacency order, which makes pops follow forward
// adjacency order.
func Iterative(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Assemble options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, n)
	}

	// 3) Allocate per-vertex state with -1 sentinels.
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

	// 4) Seed the stack and loop until it drains.
	stack := make([]frame, 0, n)
	stack = append(stack, frame{v: start, depth: 0, parent: -1})

	for len(stack) > 0 {
		select {
		case <-cfg.Ctx.Done():
			return res, cfg.Ctx.Err()
		default:
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Lazy deletion: a duplicate frame for a visited vertex is stale.
		if res.Visited[item.v] {
			continue
		}

		res.Visited[item.v] = true
		res.Depth[item.v] = item.depth
		res.Parent[item.v] = item.parent
		res.Order = append(res.Order, item.v)

		if cfg.OnVisit != nil {
			if err := cfg.OnVisit(item.v); err != nil {
				res.Order = nil
				return res, fmt.Errorf("dfs: OnVisit hook for %d: %w", item.v, err)
			}
		}

		if cfg.MaxDepth >= 0 && item.depth+1 > cfg.MaxDepth {
			continue
		}

		// Reverse push so forward adjacency order pops first.
		nbrs := g.Neighbors(item.v)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nbr := nbrs[i]
			if cfg.FilterNeighbor != nil && !cfg.FilterNeighbor(nbr) {
				res.SkippedNeighbors++
				continue
			}
			if res.Visited[nbr] {
				continue
			}
			stack = append(stack, frame{v: nbr, depth: item.depth + 1, parent: item.v})
		}
	}

	return res, nil
}
