package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/core"
)

// network builds a graph with zero-rate valves and two-way corridors.
func network(t testing.TB, corridors ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range corridors {
		for _, id := range c {
			if !g.HasValve(id) {
				if err := g.AddValve(id, 0); err != nil {
					t.Fatal(err)
				}
			}
		}
		if err := g.AddTunnel(c[0], c[1]); err != nil {
			t.Fatal(err)
		}
		if err := g.AddTunnel(c[1], c[0]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddValve("A", 0)
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleDepths covers a simple cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	g := network(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_FirstDiscoveryWins guards against recording a later, longer
// distance for a valve that was queued from two parents.
func TestBFS_FirstDiscoveryWins(t *testing.T) {
	// A reaches C directly and via B.
	g := network(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "C"}, [2]string{"C", "D"})
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Depth["C"] != 1 || res.Depth["D"] != 2 {
		t.Errorf("Depth = %v; want C=1 D=2", res.Depth)
	}
}

// TestBFS_Directed follows tunnels only in their stored direction.
func TestBFS_Directed(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddValve(id, 0)
	}
	_ = g.AddTunnel("A", "B")
	_ = g.AddTunnel("C", "B")

	res, _ := bfs.BFS(g, "B")
	if want := []string{"B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("from B: got %v; want %v", res.Order, want)
	}
	res, _ = bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("from A: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start valve.
func TestBFS_Disconnected(t *testing.T) {
	g := network(t, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	res, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(res.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", res.Order)
	}
	if _, ok := res.Depth["P"]; ok {
		t.Errorf("P must be absent from Depth")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := network(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(tc.depth))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, res.Order, tc.want)
		}
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain tunnels.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := network(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAbort checks that a hook error stops the traversal.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := network(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestBFS_PathTo covers both reachable and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := network(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	_ = g.AddValve("Z", 0)
	res, _ := bfs.BFS(g, "A")
	if path, _ := res.PathTo("C"); !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo C: got %v", path)
	}
	if path, _ := res.PathTo("A"); !reflect.DeepEqual(path, []string{"A"}) {
		t.Errorf("PathTo start: got %v", path)
	}
	if _, err := res.PathTo("Z"); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	var corridors [][2]string
	for i := 0; i < 100; i++ {
		corridors = append(corridors, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)})
	}
	g := network(t, corridors...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
