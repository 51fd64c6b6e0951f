package bmssp

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/bmssp/core"
)

// findPivots narrows a source set to the pivots worth recursing on.
//
// It runs k rounds of Bellman-Ford-style relaxation from src, collecting
// into W every vertex reached with tentative distance < bound. If W grows
// past k·|src| the whole source set is returned as pivots (early exit).
// Otherwise the forest induced by tight arcs inside W is built and the
// pivots are the src-members rooting subtrees of at least k vertices —
// the "heavy" starting points that dominate the remaining work.
//
// The forest parent map is local to this call; it is never the solver's
// route predecessor array, which is updated only on strict improvement.
func (r *runner) findPivots(bound int64, src []int) (pivots, w []int) {
	inW := mapset.NewThreadUnsafeSet[int]()
	w = make([]int, 0, len(src)*r.k)
	for _, v := range src {
		inW.Add(v)
		w = append(w, v)
	}

	// 1) k relaxation rounds; frontier holds the vertices discovered in
	//    the previous round.
	frontier := src
	for round := 1; round <= r.k; round++ {
		var next []int
		for _, x := range frontier {
			du := r.dis[x]
			if du == core.Inf {
				continue
			}
			r.g.ForEachArc(x, func(v int, wt int64) {
				nd := du + wt
				if nd > r.dis[v] {
					return
				}
				if nd < r.dis[v] {
					r.dis[v] = nd
					r.setParent(v, x)
				}
				if nd < bound && !inW.Contains(v) {
					inW.Add(v)
					w = append(w, v)
					next = append(next, v)
				}
			})
		}

		// Early exit: the neighborhood is already too big for subtree
		// accounting to pay off; every source is a pivot.
		if len(w) > r.k*len(src) {
			return append([]int(nil), src...), w
		}
		frontier = next
	}

	// 2) Forest of tight arcs within W: u→v with dis[v] = dis[u] + w.
	//    Each vertex takes at most one tight parent (the first found, in
	//    deterministic W order), so the structure is a forest.
	fparent := make(map[int]int, len(w))
	children := make(map[int][]int, len(w))
	for _, x := range w {
		du := r.dis[x]
		if du == core.Inf {
			continue
		}
		r.g.ForEachArc(x, func(v int, wt int64) {
			if v == x || !inW.Contains(v) {
				return
			}
			if r.dis[v] != du+wt {
				return
			}
			if _, claimed := fparent[v]; claimed {
				return
			}
			fparent[v] = x
			children[x] = append(children[x], v)
		})
	}

	// 3) Subtree sizes via iterative DFS from the roots (W-members with
	//    no tight in-arc). The visited set keeps degenerate tight cycles
	//    (possible only with zero-weight arcs) from looping.
	inS := mapset.NewThreadUnsafeSet[int](src...)
	visited := mapset.NewThreadUnsafeSet[int]()
	pivots = make([]int, 0, len(src))
	for _, root := range w {
		if _, hasParent := fparent[root]; hasParent {
			continue
		}
		size := subtreeSize(root, children, visited)
		if size >= r.k && inS.Contains(root) {
			pivots = append(pivots, root)
		}
	}

	return pivots, w
}

// subtreeSize counts the vertices reachable from root through the tight
// forest, skipping already-visited vertices.
func subtreeSize(root int, children map[int][]int, visited mapset.Set[int]) int {
	if visited.Contains(root) {
		return 0
	}
	visited.Add(root)

	size := 0
	stack := []int{root}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, c := range children[x] {
			if visited.Contains(c) {
				continue
			}
			visited.Add(c)
			stack = append(stack, c)
		}
	}

	return size
}
