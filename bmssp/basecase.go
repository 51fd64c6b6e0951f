package bmssp

import (
	"container/heap"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// baseCase settles the level-0 frame: a Dijkstra run from the single
// pivot x, restricted to tentative distances below bound. The pivot is
// complete on entry; every vertex the run pops with a fresh distance is
// complete on exit.
//
// Return policy: with at most k completions the whole set comes back under
// the original bound. With more, the new bound B' is the largest settled
// distance and only vertices strictly below B' are returned — the strict
// variant, so the maximal layer is re-processed by the caller. When that
// trim would discard everything (all settled distances equal, possible
// only with zero-weight arcs), the full set comes back under the original
// bound instead so the caller always observes progress.
func (r *runner) baseCase(bound int64, src []int) (int64, []int) {
	if len(src) == 0 {
		return bound, nil
	}
	if len(src) > 1 {
		// Level-0 frames receive singletons by construction (M = 1 one
		// level up); anything else is a corrupted recursion.
		panic(fmt.Sprintf("bmssp: base case got %d sources", len(src)))
	}
	x := src[0]

	u := mapset.NewThreadUnsafeSet[int]()
	done := mapset.NewThreadUnsafeSet[int]()

	pq := &distHeap{{dist: r.dis[x], v: x}}
	heap.Init(pq)

	for pq.Len() > 0 {
		it := heap.Pop(pq).(distEntry)

		// Lazy decrease-key: drop stale entries, process each vertex once.
		if it.dist != r.dis[it.v] || done.Contains(it.v) {
			continue
		}
		done.Add(it.v)
		u.Add(it.v)

		du := r.dis[it.v]
		r.g.ForEachArc(it.v, func(v int, wt int64) {
			nd := du + wt
			// The ≤ lets equal-distance vertices settled by an outer
			// frame join this frame's completed set.
			if nd > r.dis[v] || nd >= bound {
				return
			}
			if nd < r.dis[v] {
				r.dis[v] = nd
				r.setParent(v, it.v)
			}
			if !done.Contains(v) {
				heap.Push(pq, distEntry{dist: nd, v: v})
			}
		})
	}

	out := u.ToSlice()
	sort.Ints(out)

	if len(out) <= r.k {
		return bound, out
	}

	// More than k completions: shrink the bound to the largest settled
	// distance and return the strictly-smaller vertices.
	bPrime := r.dis[out[0]]
	for _, v := range out[1:] {
		if r.dis[v] > bPrime {
			bPrime = r.dis[v]
		}
	}

	trimmed := out[:0]
	for _, v := range out {
		if r.dis[v] < bPrime {
			trimmed = append(trimmed, v)
		}
	}
	if len(trimmed) == 0 {
		// Zero-weight degenerate layer; returning it whole keeps the
		// caller's loop advancing.
		return bound, out
	}

	return bPrime, trimmed
}

// distEntry is one (distance, vertex) pair in the base-case heap.
type distEntry struct {
	dist int64
	v    int
}

// distHeap is a min-heap of distEntry ordered by (dist, v); the vertex
// tie-break keeps pop order deterministic.
type distHeap []distEntry

func (h distHeap) Len() int { return len(h) }

func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].v < h[j].v
}

func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distEntry)) }

func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
