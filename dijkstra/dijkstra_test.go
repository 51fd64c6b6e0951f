// Package dijkstra_test validates the reference implementation on small
// hand-checked graphs plus option behavior. The heavyweight randomized
// cross-checks live in the bmssp package, where this implementation is
// the oracle.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(nil, 0); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceRange(t *testing.T) {
	g, _ := core.NewGraph(3)
	for _, src := range []int{-1, 3, 99} {
		if _, _, err := dijkstra.Dijkstra(g, src); !errors.Is(err, dijkstra.ErrSourceRange) {
			t.Fatalf("source %d: expected ErrSourceRange, got %v", src, err)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 0→1(1), 1→2(2), 0→2(5): best route to 2 is 0→1→2 = 3.
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	dist, prev, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("prev = %v; want nil without WithReturnPath", prev)
	}
	for v, want := range []int64{0, 1, 3} {
		if dist[v] != want {
			t.Errorf("dist[%d] = %d; want %d", v, dist[v], want)
		}
	}
}

func TestDijkstra_WithPath(t *testing.T) {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	_, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if prev[0] != 0 || prev[1] != 0 || prev[2] != 1 {
		t.Errorf("unexpected predecessors: %v", prev)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 3, 1)

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist[2] != core.Inf || dist[3] != core.Inf {
		t.Errorf("unreachable distances = %d,%d; want Inf", dist[2], dist[3])
	}
	if prev[2] != core.NoVertex || prev[3] != core.NoVertex {
		t.Errorf("unreachable predecessors = %d,%d; want NoVertex", prev[2], prev[3])
	}
}

func TestDijkstra_DirectedOnly(t *testing.T) {
	// The reverse direction must not be walkable.
	g, _ := core.NewGraph(2)
	_ = g.AddEdge(0, 1, 3)

	dist, _, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != core.Inf {
		t.Errorf("dist[0] = %d; want Inf (arc is one-way)", dist[0])
	}
}

func TestDijkstra_ZeroWeights(t *testing.T) {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 0, 0)
	_ = g.AddEdge(1, 2, 2)

	dist, _, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for v, want := range []int64{0, 0, 2} {
		if dist[v] != want {
			t.Errorf("dist[%d] = %d; want %d", v, dist[v], want)
		}
	}
}

// ------------------------------------------------------------------------
// 3. MaxDistance
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)

	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 || dist[1] != 1 {
		t.Errorf("capped run: dist[0..1] = %d,%d; want 0,1", dist[0], dist[1])
	}
	if dist[2] != core.Inf || dist[3] != core.Inf {
		t.Errorf("beyond cap: dist[2..3] = %d,%d; want Inf", dist[2], dist[3])
	}
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g, _ := core.NewGraph(2)
	_ = g.AddEdge(0, 1, 1)

	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 || dist[1] != core.Inf {
		t.Errorf("dist = %v; want [0 Inf]", dist)
	}
}
