// Package stairs solves two classic dynamic-programming exercises: counting
// step sequences up a staircase and pricing the cheapest monotone path
// through a cost grid.
//
// Ways(n) counts the distinct ways to climb n steps taking one or two steps
// at a time; the sequence runs 1, 2, 3, 5, 8, ... (Fibonacci shifted by
// one). MinPathSum finds the minimum total cost of walking a rectangular
// grid from its top-left to its bottom-right cell moving only right or
// down.
//
// Complexity: Ways is O(n) time, O(1) memory; MinPathSum is O(rows*cols)
// time, O(cols) memory.
package stairs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("stairs: empty grid")
	// ErrRaggedGrid is returned when rows differ in length.
	ErrRaggedGrid = errors.New("stairs: ragged grid")
)

// Ways returns how many distinct step sequences climb a staircase of n
// steps, one or two steps at a time. Ways(1) is 1 and Ways(2) is 2; n below
// 1 yields 0.
func Ways(n int) int {
	if n < 1 {
		return 0
	}
	if n <= 2 {
		return n
	}
	prev, curr := 1, 2
	for i := 3; i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr
}

// MinPathSum returns the minimum cost of a top-left to bottom-right walk
// over grid, moving only right or down. The input is left untouched; the
// sweep keeps a single rolling row of partial sums.
func MinPathSum(grid [][]int) (int, error) {
	// 1) Reject shapes with no cells or uneven rows.
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i, len(row), cols)
		}
	}
	// 2) Seed the rolling row with the top-row prefix sums.
	dp := make([]int, cols)
	dp[0] = grid[0][0]
	for c := 1; c < cols; c++ {
		dp[c] = dp[c-1] + grid[0][c]
	}
	// 3) Fold each further row in: every cell takes the cheaper of the cell
	// above (dp[c]) and the cell to its left (dp[c-1]).
	for r := 1; r < len(grid); r++ {
		dp[0] += grid[r][0]
		for c := 1; c < cols; c++ {
			if dp[c-1] < dp[c] {
				dp[c] = dp[c-1]
			}
			dp[c] += grid[r][c]
		}
	}

	return dp[cols-1], nil
}
