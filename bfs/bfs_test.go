package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/rewire/bfs"
	"github.com/katalvlaran/rewire/core"
)

// chain builds 0→1→…→n-1 with unit weights.
func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1, 1); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", i, i+1, err)
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
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex(0)
	// unknown direction is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithDirection(bfs.Direction(9))); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("bad direction: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Directions checks that Forward, Backward and Both reach the
// expected parts of a directed chain.
func TestBFS_Directions(t *testing.T) {
	g := chain(t, 4)

	fwd, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(fwd.Order, want) {
		t.Errorf("forward Order = %v; want %v", fwd.Order, want)
	}

	back, err := bfs.BFS(g, 1, bfs.WithDirection(bfs.Backward))
	if err != nil {
		t.Fatalf("backward: %v", err)
	}
	if want := []int{1, 0}; !reflect.DeepEqual(back.Order, want) {
		t.Errorf("backward Order = %v; want %v", back.Order, want)
	}

	both, err := bfs.BFS(g, 1, bfs.WithDirection(bfs.Both))
	if err != nil {
		t.Fatalf("both: %v", err)
	}
	if both.Reached() != 4 {
		t.Errorf("both reached %d; want 4", both.Reached())
	}
	if both.Depth[3] != 2 || both.Depth[0] != 1 {
		t.Errorf("both depths = %v", both.Depth)
	}
}

// TestBFS_FilterEdge masks one edge of a reciprocal pair and checks that the
// mask applies to the stored orientation in every direction.
func TestBFS_FilterEdge(t *testing.T) {
	g := chain(t, 3)
	if err := g.AddEdge(2, 0, 0.5); err != nil {
		t.Fatal(err)
	}
	noOneTwo := func(from, to int) bool { return !(from == 1 && to == 2) }

	res, err := bfs.BFS(g, 0, bfs.WithFilterEdge(noOneTwo))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth[2]; ok {
		t.Errorf("vertex 2 reached through masked edge")
	}

	// Backward from 2 must not walk 2←1 either.
	res, err = bfs.BFS(g, 2, bfs.WithDirection(bfs.Backward), bfs.WithFilterEdge(noOneTwo))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("backward Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Cancellation returns the context error.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety runs parallel traversals on one graph.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(t, 50)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.BFS(g, 0, bfs.WithUnordered())
			if err != nil {
				t.Errorf("traversal failed: %v", err)
				return
			}
			if res.Reached() != 50 {
				t.Errorf("reached=%d; want 50", res.Reached())
			}
		}()
	}
	wg.Wait()
}
