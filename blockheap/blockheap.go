package blockheap

import (
	"cmp"
	"fmt"
	"sort"
)

// Heap is the block-partitioned priority structure. Construct with New; the
// zero value is not usable and operations on it panic.
//
// Heap is single-owner state: exactly one shortest-path frame uses a given
// instance, so no internal synchronization exists.
type Heap[K cmp.Ordered, V cmp.Ordered] struct {
	m       int // block capacity M
	globalB V   // the owning frame's initial upper bound
	count   int // live entries across D0 ∪ D1

	d0 []*block[K, V] // batch-prepended blocks, value-ascending head to tail
	d1 []*block[K, V] // insert-fed blocks, upper bounds non-decreasing

	keyToNode map[K]*node[K, V] // authoritative key index, one node per key
}

// New returns a Heap with block capacity m and global upper bound globalB:
// D0 empty, D1 holding a single empty block with upperBound = globalB.
// Returns ErrBadBlockSize if m < 1.
func New[K cmp.Ordered, V cmp.Ordered](m int, globalB V) (*Heap[K, V], error) {
	if m < 1 {
		return nil, fmt.Errorf("New(m=%d): %w", m, ErrBadBlockSize)
	}

	h := &Heap[K, V]{
		m:         m,
		globalB:   globalB,
		keyToNode: make(map[K]*node[K, V]),
	}
	h.d1 = append(h.d1, &block[K, V]{upperBound: globalB})

	return h, nil
}

// mustInit guards every operation against a zero-value Heap. Misuse is a
// programming error, fatal by contract.
func (h *Heap[K, V]) mustInit() {
	if h.keyToNode == nil {
		panic("blockheap: Heap must be constructed with New")
	}
}

// Len returns the number of live entries.
func (h *Heap[K, V]) Len() int { return h.count }

// IsEmpty reports whether no live entries remain.
func (h *Heap[K, V]) IsEmpty() bool { return h.count == 0 }

// Insert adds (key, value) or lowers the value of an existing key.
// A key already present with an equal or smaller value is left untouched.
// The node lands in the first D1 block whose upper bound is ≥ value (the
// last block if none), and the block splits if it outgrows M.
func (h *Heap[K, V]) Insert(key K, value V) {
	h.mustInit()

	// 1) Duplicate-key handling: keep the smaller value.
	if old, ok := h.keyToNode[key]; ok {
		if value >= old.value {
			return
		}
		h.removeNode(old)
	}

	// 2) Locate the target D1 block: first upper bound ≥ value.
	//    D1 bounds are non-decreasing, so a binary search suffices.
	idx := sort.Search(len(h.d1), func(i int) bool { return h.d1[i].upperBound >= value })
	if idx == len(h.d1) {
		idx = len(h.d1) - 1
	}
	blk := h.d1[idx]

	// 3) Append and index the new node.
	n := &node[K, V]{key: key, value: value}
	blk.append(n)
	h.keyToNode[key] = n
	h.count++

	// 4) A value above the block's bound can only land in the tail block;
	//    stretch the bound so invariant (b) keeps holding.
	if value > blk.upperBound {
		blk.upperBound = value
	}

	// 5) Split on overflow.
	if blk.size > h.m {
		h.split(idx)
	}
}

// split partitions the overfull D1 block at idx around its value median.
// The smaller half stays in place, the larger half moves to a fresh block
// inserted immediately after, and both blocks' upper bounds become the
// maximum value they now contain.
func (h *Heap[K, V]) split(idx int) {
	blk := h.d1[idx]

	nodes := make([]*node[K, V], 0, blk.size)
	for n := blk.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}

	// Median partition by (value, key); expected linear time.
	mid := len(nodes) / 2
	nthElement(nodes, mid)

	// Rebuild the original block from the smaller half.
	blk.head, blk.tail, blk.size = nil, nil, 0
	for _, n := range nodes[:mid] {
		n.prev, n.next = nil, nil
		blk.append(n)
	}
	blk.upperBound = maxValue(nodes[:mid])

	// Fresh block takes the larger half.
	nb := &block[K, V]{}
	for _, n := range nodes[mid:] {
		n.prev, n.next = nil, nil
		nb.append(n)
	}
	nb.upperBound = maxValue(nodes[mid:])

	h.d1 = append(h.d1, nil)
	copy(h.d1[idx+2:], h.d1[idx+1:])
	h.d1[idx+1] = nb
}

// maxValue returns the largest value among nodes; nodes must be non-empty.
func maxValue[K cmp.Ordered, V cmp.Ordered](nodes []*node[K, V]) V {
	max := nodes[0].value
	for _, n := range nodes[1:] {
		if n.value > max {
			max = n.value
		}
	}

	return max
}

// BatchPrepend adds a batch whose values the caller guarantees to be
// smaller than the current minimum of D1. The batch is deduplicated by key
// (smallest value wins), entries not improving on a live key are dropped,
// and the survivors are chunked into new D0 blocks of at most ⌈M/2⌉
// entries, placed at the head so D0 stays value-ascending head to tail.
func (h *Heap[K, V]) BatchPrepend(items []Item[K, V]) {
	h.mustInit()
	if len(items) == 0 {
		return
	}

	// 1) Sort a copy by (value, key) so the first occurrence of a key is
	//    its smallest value and chunks come out value-ordered.
	sorted := make([]Item[K, V], len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value < sorted[j].Value
		}

		return sorted[i].Key < sorted[j].Key
	})

	// 2) Deduplicate within the batch and against live entries.
	seen := make(map[K]struct{}, len(sorted))
	kept := sorted[:0]
	for _, it := range sorted {
		if _, dup := seen[it.Key]; dup {
			continue
		}
		seen[it.Key] = struct{}{}
		if old, ok := h.keyToNode[it.Key]; ok && it.Value >= old.value {
			continue
		}
		kept = append(kept, it)
	}
	if len(kept) == 0 {
		return
	}

	// 3) Chunk into blocks of ≤ ⌈M/2⌉ and build them in ascending order.
	chunkCap := (h.m + 1) / 2
	fresh := make([]*block[K, V], 0, len(kept)/chunkCap+1)
	var nb *block[K, V]
	for _, it := range kept {
		if nb == nil || nb.size == chunkCap {
			nb = &block[K, V]{}
			fresh = append(fresh, nb)
		}
		// An improving duplicate replaces its live node.
		if old, ok := h.keyToNode[it.Key]; ok {
			h.removeNode(old)
		}
		n := &node[K, V]{key: it.Key, value: it.Value}
		nb.append(n)
		h.keyToNode[it.Key] = n
		h.count++
		if it.Value > nb.upperBound || nb.size == 1 {
			nb.upperBound = it.Value
		}
	}

	// 4) Prepend the chunks; the smallest chunk ends up at the head, so the
	//    overall D0 walk stays value-increasing.
	h.d0 = append(fresh, h.d0...)

	// 5) removeNode may have emptied blocks; reclaim them.
	h.cleanEmptyBlocks()
}

// Pull removes and returns up to M smallest keys together with a separator:
// every returned key had value < separator, every remaining entry has
// value ≥ separator. When the structure drains completely the separator is
// the global upper bound.
func (h *Heap[K, V]) Pull() ([]K, V) {
	h.mustInit()

	// 1) Everything fits in one pull: return all keys in walk order.
	if h.count <= h.m {
		keys := make([]K, 0, h.count)
		walkBlocks(h.d0, h.d1, func(n *node[K, V]) { keys = append(keys, n.key) })
		for _, k := range keys {
			h.removeNode(h.keyToNode[k])
		}
		h.cleanEmptyBlocks()

		return keys, h.globalB
	}

	// 2) Collect whole blocks head-to-tail from D0 until at least M of its
	//    entries are gathered, then likewise from D1. Block value ranges
	//    ascend within each sequence, but an Insert may put a value below
	//    D0's, so the M smallest entries all live inside the union of the
	//    two collected prefixes.
	cand := make([]*node[K, V], 0, 2*h.m)
	var restMin V
	haveRest := false
	noteRest := func(n *node[K, V]) {
		if !haveRest || n.value < restMin {
			restMin, haveRest = n.value, true
		}
	}
	collect := func(seq []*block[K, V]) {
		taken := 0
		for _, b := range seq {
			whole := taken < h.m
			for n := b.head; n != nil; n = n.next {
				if whole {
					cand = append(cand, n)
					taken++
				} else {
					noteRest(n)
				}
			}
		}
	}
	collect(h.d0)
	collect(h.d1)

	// 3) Select the M smallest candidates by (value, key).
	sort.Slice(cand, func(i, j int) bool { return pairLess(cand[i], cand[j]) })
	pulled := cand[:h.m]
	for _, n := range cand[h.m:] {
		noteRest(n)
	}

	// 4) The separator is the minimum value left behind.
	sep := h.globalB
	if haveRest {
		sep = restMin
	}

	keys := make([]K, len(pulled))
	for i, n := range pulled {
		keys[i] = n.key
	}
	for _, n := range pulled {
		h.removeNode(n)
	}
	h.cleanEmptyBlocks()

	return keys, sep
}

// Delete removes the entry for key if one is live; absent keys are a no-op.
func (h *Heap[K, V]) Delete(key K) {
	h.mustInit()
	n, ok := h.keyToNode[key]
	if !ok {
		return
	}
	h.removeNode(n)
	h.cleanEmptyBlocks()
}

// removeNode detaches n from its owning block and drops it from the key
// index. A node reachable from keyToNode without an owner is an invariant
// breach, fatal by contract.
func (h *Heap[K, V]) removeNode(n *node[K, V]) {
	if n.owner == nil {
		panic(fmt.Sprintf("blockheap: node for key %v has no owning block", n.key))
	}
	n.owner.detach(n)
	delete(h.keyToNode, n.key)
	h.count--
}

// cleanEmptyBlocks reclaims drained blocks. D1 keeps its final block even
// when empty so Insert always has a tail block bounded by globalB.
func (h *Heap[K, V]) cleanEmptyBlocks() {
	live0 := h.d0[:0]
	for _, b := range h.d0 {
		if b.size > 0 {
			live0 = append(live0, b)
		}
	}
	h.d0 = live0

	live1 := h.d1[:0]
	for _, b := range h.d1 {
		if b.size > 0 {
			live1 = append(live1, b)
		}
	}
	if len(live1) == 0 {
		live1 = append(live1, &block[K, V]{upperBound: h.globalB})
	}
	h.d1 = live1
}

// walkBlocks visits every node of D0 then D1 head-to-tail.
func walkBlocks[K cmp.Ordered, V cmp.Ordered](d0, d1 []*block[K, V], visit func(*node[K, V])) {
	walkBlocksPerBlock(d0, d1, func(b *block[K, V]) {
		for n := b.head; n != nil; n = n.next {
			visit(n)
		}
	})
}

// walkBlocksPerBlock visits every block of D0 then D1 in walk order.
func walkBlocksPerBlock[K cmp.Ordered, V cmp.Ordered](d0, d1 []*block[K, V], visit func(*block[K, V])) {
	for _, b := range d0 {
		visit(b)
	}
	for _, b := range d1 {
		visit(b)
	}
}
