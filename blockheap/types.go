package blockheap

import (
	"cmp"
	"errors"
)

// ErrBadBlockSize indicates New was called with a block capacity below 1.
var ErrBadBlockSize = errors.New("blockheap: block capacity must be at least 1")

// Item is one (key, value) pair handed to BatchPrepend.
type Item[K cmp.Ordered, V cmp.Ordered] struct {
	Key   K
	Value V
}

// node is a doubly-linked list entry inside a block. A node is owned by
// exactly one block at a time; owner is the authoritative back-pointer that
// makes Delete and duplicate-key replacement O(1).
type node[K cmp.Ordered, V cmp.Ordered] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
	owner *block[K, V]
}

// block is an ordered chunk of at most M nodes. upperBound is meaningful
// only for D1 blocks, where it bounds every contained value and drives
// Insert placement.
type block[K cmp.Ordered, V cmp.Ordered] struct {
	head       *node[K, V]
	tail       *node[K, V]
	size       int
	upperBound V
}

// append links n at the tail of b and claims ownership.
func (b *block[K, V]) append(n *node[K, V]) {
	n.prev = b.tail
	n.next = nil
	if b.tail != nil {
		b.tail.next = n
	} else {
		b.head = n
	}
	b.tail = n
	b.size++
	n.owner = b
}

// detach unlinks n from b. The caller is responsible for the keyToNode
// index; n keeps its key and value but no longer belongs to any block.
func (b *block[K, V]) detach(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		b.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		b.tail = n.prev
	}
	n.prev, n.next, n.owner = nil, nil, nil
	b.size--
}

// pairLess orders nodes by (value, key) lexicographically. All sorts,
// medians and selections in this package use this single comparator so that
// equal values break ties deterministically.
func pairLess[K cmp.Ordered, V cmp.Ordered](a, b *node[K, V]) bool {
	if a.value != b.value {
		return a.value < b.value
	}

	return a.key < b.key
}
