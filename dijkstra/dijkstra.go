package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/bmssp/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the shortest distance, core.Inf if unreachable.
//   - prev: predecessor array when WithReturnPath is set (nil otherwise);
//     prev[source] = source, prev[v] = core.NoVertex for unreachable v.
//   - err:  ErrNilGraph or ErrSourceRange on invalid input.
//
// Negative weights cannot occur: core.Graph rejects them at AddEdge.
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("Dijkstra(source=%d): n=%d: %w", source, n, ErrSourceRange)
	}

	dist := make([]int64, n)
	for i := range dist {
		dist[i] = core.Inf
	}
	dist[source] = 0

	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, n)
		for i := range prev {
			prev[i] = core.NoVertex
		}
		prev[source] = source
	}

	visited := make([]bool, n)
	pq := &vertexHeap{{dist: 0, v: source}}
	heap.Init(pq)

	for pq.Len() > 0 {
		it := heap.Pop(pq).(vertexEntry)
		u := it.v

		// Stale lazy-decrease-key entry.
		if visited[u] {
			continue
		}
		// Beyond the cap nothing closer remains in the heap; stop.
		if it.dist > cfg.MaxDistance {
			break
		}
		visited[u] = true

		du := dist[u]
		g.ForEachArc(u, func(v int, w int64) {
			nd := du + w
			if nd > cfg.MaxDistance || nd >= dist[v] {
				return
			}
			dist[v] = nd
			if prev != nil {
				prev[v] = u
			}
			heap.Push(pq, vertexEntry{dist: nd, v: v})
		})
	}

	return dist, prev, nil
}

// vertexEntry is one (distance, vertex) pair in the priority queue.
type vertexEntry struct {
	dist int64
	v    int
}

// vertexHeap is a min-heap of vertexEntry ordered by (dist, v).
type vertexHeap []vertexEntry

func (h vertexHeap) Len() int { return len(h) }

func (h vertexHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].v < h[j].v
}

func (h vertexHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *vertexHeap) Push(x interface{}) { *h = append(*h, x.(vertexEntry)) }

func (h *vertexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
