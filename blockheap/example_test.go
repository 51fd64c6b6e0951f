package blockheap_test

import (
	"fmt"

	"github.com/katalvlaran/bmssp/blockheap"
)

// ExampleHeap_Pull shows the basic frontier cycle: individual inserts,
// a batch of smaller values, and pulls that return the M smallest keys
// with a separating bound.
func ExampleHeap_Pull() {
	h, _ := blockheap.New[int, int64](2, 1000)

	h.Insert(10, 500)
	h.Insert(11, 700)
	h.Insert(12, 900)

	// Everything in the batch is smaller than the smallest insert.
	h.BatchPrepend([]blockheap.Item[int, int64]{
		{Key: 20, Value: 100},
		{Key: 21, Value: 300},
	})

	keys, sep := h.Pull()
	fmt.Println(keys, sep)

	keys, sep = h.Pull()
	fmt.Println(keys, sep)

	// Output:
	// [20 21] 500
	// [10 11] 900
}
