package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/intgraph/bfs"
	"github.com/katalvlaran/intgraph/core"
)

// buildGraph materializes an edge list over n vertices; fatal on failure.
func buildGraph(t *testing.T, n int, directed bool, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.New(n, core.WithDirected(directed))
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start index out of range, both sides
	g := core.New(2)
	if _, err := bfs.BFS(g, -1); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("negative start: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, 2); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("start beyond n: want ErrStartOutOfRange, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.New(1)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth[0] != 0 {
		t.Errorf("Depth[0] = %d; want 0", res.Depth[0])
	}
	if res.Parent[0] != -1 {
		t.Errorf("Parent[0] = %d; want -1 (root)", res.Parent[0])
	}
}

// TestBFS_TwoBranches walks an undirected tree with two branches and checks
// the layer-by-layer visit order and depths.
func TestBFS_TwoBranches(t *testing.T) {
	g := buildGraph(t, 5, false, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := []int{0, 1, 1, 2, 2}
	for v, want := range wantDepth {
		if res.Depth[v] != want {
			t.Errorf("Depth[%d] = %d; want %d", v, res.Depth[v], want)
		}
	}
	if res.Parent[3] != 1 || res.Parent[4] != 2 {
		t.Errorf("Parent = %v; want 3←1 and 4←2", res.Parent)
	}
}

// TestBFS_CycleAndDepths covers an undirected 4-cycle. The visit order is
// deterministic because adjacency lists preserve insertion order.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := buildGraph(t, 4, false, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := []int{0, 1, 2, 1}
	for v, want := range wantDepth {
		if res.Depth[v] != want {
			t.Errorf("Depth[%d] = %d; want %d", v, res.Depth[v], want)
		}
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, false, [][2]int{{0, 1}, {2, 3}})

	res0, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res0.Order, []int{0, 1}) {
		t.Errorf("from 0: got %v; want [0 1]", res0.Order)
	}
	if res0.Reached(2) || res0.Reached(3) {
		t.Errorf("vertices 2,3 must stay unreached, Depth = %v", res0.Depth)
	}

	res2, _ := bfs.BFS(g, 2)
	if !reflect.DeepEqual(res2.Order, []int{2, 3}) {
		t.Errorf("from 2: got %v; want [2 3]", res2.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})

	// depth = 1 should only visit 0,1
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})

	// filter out 1→2
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.New(2, core.WithLoops())
	for _, e := range [][2]int{{0, 0}, {0, 1}, {0, 1}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	res, _ := bfs.BFS(g, 0)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})

	var enq, deq, vis []string
	makeEntry := func(prefix string, v, d int) string {
		return prefix + ":" + strconv.Itoa(v) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, makeEntry("e", v, d)) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, makeEntry("d", v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, makeEntry("v", v, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths 0@0, 1@1, 2@2
	wantDepths := []string{"0@0", "1@1", "2@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitError verifies that a hook error aborts the traversal.
func TestBFS_OnVisitError(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})

	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return boom
		}

		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit abort: want wrapped boom, got %v", err)
	}
}

// TestBFS_PathTo covers trivial, regular, and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := buildGraph(t, 5, false, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}})
	res, _ := bfs.BFS(g, 0)

	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", path)
	}
	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []int{0, 1, 3}) {
		t.Errorf("PathTo 3: got %v; want [0 1 3]", path)
	}

	gd := buildGraph(t, 3, false, [][2]int{{0, 1}})
	resD, _ := bfs.BFS(gd, 0)
	if _, err := resD.PathTo(2); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.New(101)
	for i := 0; i < 100; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			t.Fatal(err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_Determinism checks that repeated runs over the same graph yield
// identical results.
func TestBFS_Determinism(t *testing.T) {
	g := buildGraph(t, 6, false, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {4, 5}})

	first, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Order, second.Order) {
		t.Errorf("runs differ: %v vs %v", first.Order, second.Order)
	}
	if !reflect.DeepEqual(first.Depth, second.Depth) {
		t.Errorf("depths differ: %v vs %v", first.Depth, second.Depth)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := buildGraph(t, 2, false, [][2]int{{0, 1}})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent run #%d: unexpected error %v", i, err)
		}
	}
}

// TestAllComponents_Permutation checks that the whole-graph variant covers
// every vertex exactly once and groups them per component.
func TestAllComponents_Permutation(t *testing.T) {
	// components: {0,1}, {2}, {3,4,5}
	g := buildGraph(t, 6, false, [][2]int{{0, 1}, {3, 4}, {4, 5}})

	res, err := bfs.AllComponents(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3, 4, 5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantComps := [][]int{{0, 1}, {2}, {3, 4, 5}}
	if !reflect.DeepEqual(res.Components, wantComps) {
		t.Errorf("Components = %v; want %v", res.Components, wantComps)
	}
	// depth restarts at every component root
	if res.Depth[3] != 0 || res.Depth[5] != 2 {
		t.Errorf("Depth = %v; want Depth[3]=0, Depth[5]=2", res.Depth)
	}
}

// TestAllComponents_RootOrder ensures components are seeded in index order,
// each rooted at its smallest unvisited vertex.
func TestAllComponents_RootOrder(t *testing.T) {
	// insertion order deliberately scrambled: {2,4} before {0,1}
	g := buildGraph(t, 5, false, [][2]int{{2, 4}, {1, 0}})

	res, err := bfs.AllComponents(g)
	if err != nil {
		t.Fatal(err)
	}
	wantComps := [][]int{{0, 1}, {2, 4}, {3}}
	if !reflect.DeepEqual(res.Components, wantComps) {
		t.Errorf("Components = %v; want %v", res.Components, wantComps)
	}
}

// TestAllComponents_Empty covers the zero-vertex graph.
func TestAllComponents_Empty(t *testing.T) {
	res, err := bfs.AllComponents(core.New(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 0 {
		t.Errorf("Order = %v; want empty", res.Order)
	}
	if res.Components != nil {
		t.Errorf("Components = %v; want nil", res.Components)
	}
}

// TestAllComponents_Errors verifies input and option validation.
func TestAllComponents_Errors(t *testing.T) {
	if _, err := bfs.AllComponents(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.AllComponents(core.New(1), bfs.WithMaxDepth(-2)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}
