package bmssp

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/bmssp/blockheap"
	"github.com/katalvlaran/bmssp/core"
)

// runner holds the mutable state shared by every frame of one Run: the
// graph, the distance array and the optional predecessor array. The
// recursion discipline guarantees dis only ever decreases, so deeper
// frames cannot invalidate shallower frames' views.
type runner struct {
	g      *core.Graph
	dis    []int64
	parent []int // nil when predecessor tracking is off
	k, t   int
}

// setParent records u as v's predecessor when route tracking is on.
func (r *runner) setParent(v, u int) {
	if r.parent != nil {
		r.parent[v] = u
	}
}

// bmssp is the main recursion. Given a level, a distance bound and a set
// of source pivots already relaxed into dis, it completes vertices with
// final distance < B' for some B' ≤ bound and returns (B', completed).
// The completed set is returned sorted so every downstream step — edge
// relaxation order, heap insertion order — is deterministic.
func (r *runner) bmssp(level int, bound int64, src []int) (int64, []int) {
	if level == 0 {
		return r.baseCase(bound, src)
	}

	// 1) Shrink the working set to heavy pivots; W collects every vertex
	//    discovered within k relaxation rounds below the bound.
	pivots, w := r.findPivots(bound, src)

	// 2) Fresh frontier structure for this frame: block capacity 2^{(ℓ-1)t},
	//    seeded with the pivots at their current distances.
	m := 1 << ((level - 1) * r.t)
	d, err := blockheap.New[int, int64](m, bound)
	if err != nil {
		panic(err) // m ≥ 1 by construction; reaching here is a defect
	}

	bPrime := bound
	for _, p := range pivots {
		if r.dis[p] < bPrime {
			bPrime = r.dis[p]
		}
		d.Insert(p, r.dis[p])
	}

	// 3) Main loop: complete at most k·2^{ℓt} vertices, pulling the M
	//    smallest frontier vertices and recursing on them at their
	//    separator bound.
	limit := r.k << (level * r.t)
	u := mapset.NewThreadUnsafeSet[int]()
	var batch []blockheap.Item[int, int64]

	for u.Cardinality() < limit && !d.IsEmpty() {
		si, bi := d.Pull()

		subBPrime, ui := r.bmssp(level-1, bi, si)
		bPrime = subBPrime
		for _, v := range ui {
			u.Add(v)
		}

		// 3c) Relax out-arcs of the newly completed vertices and classify
		//     each touched vertex by its tentative distance:
		//     [bi, bound) waits in D for a later Pull; [subBPrime, bi) is
		//     smaller than the current frontier and joins the prepend
		//     batch; anything below subBPrime is already complete.
		batch = batch[:0]
		for _, x := range ui {
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
				if nd >= bound {
					return
				}
				if nd >= bi {
					d.Insert(v, nd)
				} else if nd >= subBPrime {
					batch = append(batch, blockheap.Item[int, int64]{Key: v, Value: nd})
				}
			})
		}

		// 3d) Pulled vertices whose distance still lies in [subBPrime, bi)
		//     were not completed by the sub-call; feed them back.
		for _, x := range si {
			if r.dis[x] >= subBPrime && r.dis[x] < bi {
				batch = append(batch, blockheap.Item[int, int64]{Key: x, Value: r.dis[x]})
			}
		}
		if len(batch) > 0 {
			d.BatchPrepend(batch)
		}

		// 3e) Partial-execution guard: the frame completed more than its
		//     budget; stop at the sub-call's bound.
		if u.Cardinality() > limit {
			return bPrime, r.finish(u, w, bPrime)
		}
	}

	// 4) Normal exit: everything below the last sub-bound is complete,
	//    including the W-vertices FindPivots already settled.
	return bPrime, r.finish(u, w, bPrime)
}

// finish merges the W-vertices already below the final bound into the
// completed set and returns it as a sorted slice.
func (r *runner) finish(u mapset.Set[int], w []int, bound int64) []int {
	for _, v := range w {
		if r.dis[v] < bound {
			u.Add(v)
		}
	}
	out := u.ToSlice()
	sort.Ints(out)

	return out
}
