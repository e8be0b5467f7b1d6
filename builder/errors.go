// SPDX-License-Identifier: MIT
// Package: intgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Constructors attach parameter context via %w wrapping and never
//     stringify parameters into the sentinels themselves.
//   - Constructors never panic; invalid input is always an error return.

package builder

import "errors"

// ErrTooFewVertices indicates that a vertex-count parameter (n, branching)
// is smaller than the minimum for the requested topology.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrBadDimension indicates that a shape parameter (rows, cols, depth, or a
// requested edge count) lies outside its valid domain.
// Usage: if errors.Is(err, ErrBadDimension) { /* fix shape parameters */ }.
var ErrBadDimension = errors.New("builder: dimension out of range")
