// Package blockheap implements the block-partitioned priority structure used
// as the frontier of the bounded multi-source shortest-path recursion.
//
// What:
//
//   - Heap[K, V] maintains (key, value) pairs, at most one live entry per
//     key, under four operations: Insert, BatchPrepend, Pull and Delete.
//   - Entries live in blocks of at most M nodes. Two block sequences exist:
//     D1 receives individual Inserts and is ordered by per-block upper
//     bounds; D0 receives batch-prepended entries that are smaller than
//     everything in D1 at the time of the prepend. A later Insert may
//     place a smaller value in D1.
//   - Pull removes and returns the M globally-smallest keys together with a
//     separator value: every returned key has value < separator and every
//     remaining entry has value ≥ separator.
//
// Why:
//
//   - A full comparison sort of the frontier is exactly what the recursion
//     avoids. Keeping entries only block-partitioned lets Insert place a
//     node with a logarithmic bound search plus an O(1) append, lets
//     BatchPrepend add a batch of small values without touching D1, and
//     confines sorting to the O(M) candidates a Pull inspects.
//
// Invariants (hold after every operation):
//
//   - Each key appears at most once across D0 ∪ D1.
//   - Every value in a D1 block is ≤ that block's upper bound.
//   - D1 upper bounds are non-decreasing in block order.
//   - Each D0 block's values precede the values of every later D0 block
//     and of every D1 block that existed when it was prepended, so each of
//     D0 and D1, walked head to tail, visits blocks in ascending value
//     ranges. Pull therefore draws candidates from a prefix of each.
//
// Ordering contract: after any operation sequence, Pull returns the M
// globally-smallest entries if at least M exist, otherwise all of them.
// Internal block composition is an implementation detail.
//
// Failure semantics: misuse (non-positive M, operating on a zero-value
// Heap) is a programming error. New reports ErrBadBlockSize; operations on
// an uninitialized Heap panic.
//
// Complexity (amortized, N = live entries, M = block capacity):
//
//   - Insert:       O(log #blocks) placement + O(1) append; O(M) when the
//     target block splits, amortized O(1) per insert.
//   - BatchPrepend: O(L log L) for a batch of L entries.
//   - Pull:         O(N) scan for the separator + O(M log M) candidate sort.
//   - Delete:       O(1) detach via the key index.
package blockheap
