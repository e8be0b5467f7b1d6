package bfs_test

import (
	"testing"

	"github.com/katalvlaran/intgraph/bfs"
	"github.com/katalvlaran/intgraph/builder"
	"github.com/katalvlaran/intgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of 10001 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const V = 10001
	g, err := builder.Path(V)
	if err != nil {
		b.Fatal(err)
	}
	E := V - 1

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10 (2047 vertices).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	g, err := builder.Tree(depth, 2, core.WithDirected(true))
	if err != nil {
		b.Fatal(err)
	}
	V := g.VertexCount()
	E := g.EdgeCount()

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on a 100×100 grid (10000 vertices, 19800 edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	g, err := builder.Grid(M, M)
	if err != nil {
		b.Fatal(err)
	}
	V := M * M
	E := 2 * M * (M - 1)

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a seeded sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const (
		V = 5000
		E = 10000
	)
	g, err := builder.RandomSparse(V, E, 42)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_HookOverhead compares BFS with and without an expensive OnVisit hook.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	const V = 1001
	g, err := builder.Path(V)
	if err != nil {
		b.Fatal(err)
	}
	E := V - 1

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(V + E))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0)
		}
	})

	b.Run("HeavyVisitHook", func(b *testing.B) {
		heavy := func(_, _ int) error {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum

			return nil
		}

		b.ReportAllocs()
		b.SetBytes(int64(V + E))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0, bfs.WithOnVisit(heavy))
		}
	})
}

// BenchmarkAllComponents covers a fragmented random graph in one sweep.
func BenchmarkAllComponents(b *testing.B) {
	const (
		V = 5000
		E = 4000
	)
	g, err := builder.RandomSparse(V, E, 7)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.AllComponents(g)
	}
}
