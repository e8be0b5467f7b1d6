// SPDX-License-Identifier: MIT
// Package: intgraph/builder
//
// deterministic.go - fixed-topology constructors: FromEdges, Path, Cycle,
// Star, Complete, Grid, Tree.
//
// Contract:
//   - Parameters are validated first; invalid input returns a sentinel error
//     and no partially built graph.
//   - Vertices are numbered by the documented scheme of each topology; edges
//     are added in a fixed order, so adjacency lists are reproducible.
//   - core.GraphOption values are forwarded to core.New unchanged.

package builder

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// File-local constants: method tags and minima (no magic literals).
const (
	methodFromEdges = "FromEdges"
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodComplete  = "Complete"
	methodGrid      = "Grid"
	methodTree      = "Tree"

	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 1
	minCompleteVertices = 1
	minGridDim          = 1
	minTreeBranching    = 1
)

// FromEdges builds a graph over n vertices from a literal edge list. Edges
// are added in slice order; an endpoint outside [0, n) aborts with the
// wrapped core error and nothing is returned.
func FromEdges(n int, edges [][2]int, opts ...core.GraphOption) (*core.Graph, error) {
	// 1) Validate the vertex count domain.
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodFromEdges, n, ErrTooFewVertices)
	}
	// 2) Materialize the graph and replay the list in order.
	g := core.New(n, opts...)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodFromEdges, e[0], e[1], err)
		}
	}

	return g, nil
}

// Path builds the chain 0-1-...-(n-1). In directed mode arcs follow the
// numbering: i -> i+1.
func Path(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("%s: n=%d (min %d): %w", methodPath, n, minPathVertices, ErrTooFewVertices)
	}
	g := core.New(n, opts...)
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
		}
	}

	return g, nil
}

// Cycle builds the ring 0-1-...-(n-1)-0. In directed mode arcs follow the
// numbering, closing with (n-1) -> 0.
func Cycle(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("%s: n=%d (min %d): %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
	}
	g := core.New(n, opts...)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if err := g.AddEdge(i, next); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i, next, err)
		}
	}

	return g, nil
}

// Star joins center 0 to every other vertex, spokes in ascending order.
func Star(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("%s: n=%d (min %d): %w", methodStar, n, minStarVertices, ErrTooFewVertices)
	}
	g := core.New(n, opts...)
	for k := 1; k < n; k++ {
		if err := g.AddEdge(0, k); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, 0, k, err)
		}
	}

	return g, nil
}

// Complete joins every vertex pair. Pairs are emitted with i < j, so in
// directed mode the result is the transitive tournament over 0..n-1.
func Complete(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("%s: n=%d (min %d): %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
	}
	g := core.New(n, opts...)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return g, nil
}

// Grid builds a rows x cols orthogonal lattice with a 4-neighborhood.
// Cell (r, c) becomes vertex r*cols + c (row-major); each cell connects to
// its right neighbor, then its bottom neighbor, where they exist.
func Grid(rows, cols int, opts ...core.GraphOption) (*core.Graph, error) {
	// 1) Validate both dimensions early.
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each min %d): %w",
			methodGrid, rows, cols, minGridDim, ErrBadDimension)
	}
	// 2) Emit edges per cell in row-major order: right, then bottom.
	g := core.New(rows*cols, opts...)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				if err := g.AddEdge(v, v+1); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, v, v+1, err)
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(v, v+cols); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, v, v+cols, err)
				}
			}
		}
	}

	return g, nil
}

// Tree builds the complete branching-ary tree of the given depth with heap
// numbering: the root is 0 and the children of v are v*branching + 1
// through v*branching + branching. Depth 0 is a lone root. In directed mode
// arcs point from parent to child.
func Tree(depth, branching int, opts ...core.GraphOption) (*core.Graph, error) {
	// 1) Validate shape parameters.
	if depth < 0 {
		return nil, fmt.Errorf("%s: depth=%d: %w", methodTree, depth, ErrBadDimension)
	}
	if branching < minTreeBranching {
		return nil, fmt.Errorf("%s: branching=%d (min %d): %w",
			methodTree, branching, minTreeBranching, ErrTooFewVertices)
	}
	// 2) Count vertices level by level: 1 + b + b^2 + ... + b^depth.
	n, levelSize := 1, 1
	for d := 1; d <= depth; d++ {
		levelSize *= branching
		n += levelSize
	}
	// 3) Wire each vertex to its children in ascending order.
	g := core.New(n, opts...)
	for v := 0; v < n; v++ {
		for k := 1; k <= branching; k++ {
			child := v*branching + k
			if child >= n {
				break
			}
			if err := g.AddEdge(v, child); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodTree, v, child, err)
			}
		}
	}

	return g, nil
}
