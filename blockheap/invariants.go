package blockheap

import "fmt"

// invariants walks the whole structure and reports the first breach of the
// contracts documented in doc.go. It exists for tests and defensive checks;
// production paths never call it.
func (h *Heap[K, V]) invariants() error {
	seen := make(map[K]struct{}, h.count)
	total := 0

	check := func(b *block[K, V], inD1 bool) error {
		n := b.head
		var prev *node[K, V]
		for ; n != nil; n = n.next {
			if n.owner != b {
				return fmt.Errorf("node %v: owner pointer does not match containing block", n.key)
			}
			if n.prev != prev {
				return fmt.Errorf("node %v: broken back-link", n.key)
			}
			if _, dup := seen[n.key]; dup {
				return fmt.Errorf("key %v appears more than once", n.key)
			}
			seen[n.key] = struct{}{}
			if ref, ok := h.keyToNode[n.key]; !ok || ref != n {
				return fmt.Errorf("key %v not indexed by keyToNode", n.key)
			}
			if inD1 && n.value > b.upperBound {
				return fmt.Errorf("key %v: value %v above block bound %v", n.key, n.value, b.upperBound)
			}
			prev = n
			total++
		}
		if b.tail != prev {
			return fmt.Errorf("block tail pointer does not match last node")
		}

		return nil
	}

	for _, b := range h.d0 {
		if err := check(b, false); err != nil {
			return err
		}
	}
	for i, b := range h.d1 {
		if err := check(b, true); err != nil {
			return err
		}
		if i > 0 && b.upperBound < h.d1[i-1].upperBound {
			return fmt.Errorf("D1 bounds decrease at block %d", i)
		}
	}

	if total != h.count {
		return fmt.Errorf("count=%d but %d nodes reachable", h.count, total)
	}
	if len(h.keyToNode) != total {
		return fmt.Errorf("keyToNode holds %d keys but %d nodes reachable", len(h.keyToNode), total)
	}

	return nil
}
