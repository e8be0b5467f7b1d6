// SPDX-License-Identifier: MIT
// Package: intgraph/builder
//
// random.go - seeded stochastic constructors: RandomSparse, RandomDAG.
//
// Contract:
//   - Both generators draw from math/rand seeded with the caller's seed, so
//     a fixed (n, edges, seed) triple always produces the same graph.
//   - Self-loop draws are discarded and redrawn; parallel edges may occur,
//     matching what uniform sampling over ordered pairs naturally yields.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/intgraph/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomDAG    = "RandomDAG"

	minRandomVertices = 1
)

// RandomSparse samples the requested number of edges uniformly over ordered
// vertex pairs, discarding self-loop draws. With edges well below n*(n-1)
// the result is a sparse, usually disconnected graph.
func RandomSparse(n, edges int, seed int64, opts ...core.GraphOption) (*core.Graph, error) {
	// 1) Validate the sampling domain.
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d (min %d): %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
	}
	if edges < 0 {
		return nil, fmt.Errorf("%s: edges=%d: %w", methodRandomSparse, edges, ErrBadDimension)
	}
	if edges > 0 && n < 2 {
		return nil, fmt.Errorf("%s: n=%d cannot carry %d edges: %w", methodRandomSparse, n, edges, ErrBadDimension)
	}
	// 2) Draw edges from the seeded source in a fixed order.
	g := core.New(n, opts...)
	rng := rand.New(rand.NewSource(seed))
	for added := 0; added < edges; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, u, v, err)
		}
		added++
	}

	return g, nil
}

// RandomDAG samples a directed acyclic graph: each drawn pair is oriented
// from its lower to its higher index, which rules out cycles regardless of
// seed. The result is always directed.
func RandomDAG(n, edges int, seed int64) (*core.Graph, error) {
	// 1) Validate the sampling domain.
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d (min %d): %w", methodRandomDAG, n, minRandomVertices, ErrTooFewVertices)
	}
	if edges < 0 {
		return nil, fmt.Errorf("%s: edges=%d: %w", methodRandomDAG, edges, ErrBadDimension)
	}
	if edges > 0 && n < 2 {
		return nil, fmt.Errorf("%s: n=%d cannot carry %d edges: %w", methodRandomDAG, n, edges, ErrBadDimension)
	}
	// 2) Draw pairs and orient them upward.
	g := core.New(n, core.WithDirected(true))
	rng := rand.New(rand.NewSource(seed))
	for added := 0; added < edges; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomDAG, u, v, err)
		}
		added++
	}

	return g, nil
}
