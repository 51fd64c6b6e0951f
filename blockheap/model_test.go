package blockheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/bmssp/blockheap"
)

// modelPair mirrors one live entry in the reference model.
type modelPair struct {
	key   int
	value int64
}

// TestRandomizedAgainstModel drives random interleavings of Insert,
// BatchPrepend, Delete and Pull against a flat-map reference model and
// checks the Pull contract and the structural invariants after every
// operation. BatchPrepend inputs honor the caller contract: batch values
// lie strictly below every live value.
func TestRandomizedAgainstModel(t *testing.T) {
	const globalB = int64(1 << 40)

	cfgs := []struct {
		name string
		m    int
		ops  int
		seed int64
	}{
		{"M1", 1, 400, 1},
		{"M2", 2, 600, 2},
		{"M7", 7, 1200, 3},
		{"M32", 32, 2000, 4},
	}

	for _, cfg := range cfgs {
		t.Run(cfg.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(cfg.seed))
			h, err := blockheap.New[int, int64](cfg.m, globalB)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			model := make(map[int]int64)

			// floor never exceeds the live minimum; batch values are drawn
			// below it so the BatchPrepend precondition always holds.
			floor := globalB

			for op := 0; op < cfg.ops; op++ {
				switch r := rng.Intn(10); {
				case r < 5: // Insert at or above floor
					key := rng.Intn(200)
					value := globalB/2 + rng.Int63n(globalB/2)
					if floor < globalB {
						value = floor + rng.Int63n(globalB-floor)
					}
					h.Insert(key, value)
					if old, ok := model[key]; !ok || value < old {
						model[key] = value
					}

				case r < 7 && floor > 1: // BatchPrepend below every live value
					count := 1 + rng.Intn(2*cfg.m)
					items := make([]blockheap.Item[int, int64], 0, count)
					lo := floor / 2
					for i := 0; i < count; i++ {
						key := 1000 + rng.Intn(200)
						value := lo + rng.Int63n(floor-lo)
						items = append(items, blockheap.Item[int, int64]{Key: key, Value: value})
					}
					h.BatchPrepend(items)
					for _, it := range items {
						if old, ok := model[it.Key]; !ok || it.Value < old {
							model[it.Key] = it.Value
						}
						if it.Value < floor {
							floor = it.Value
						}
					}

				case r < 8: // Delete (present or absent)
					key := rng.Intn(200)
					if rng.Intn(2) == 0 {
						key += 1000
					}
					h.Delete(key)
					delete(model, key)

				default: // Pull
					gotKeys, sep := h.Pull()
					checkPull(t, cfg.m, globalB, model, gotKeys, sep)
					for _, k := range gotKeys {
						delete(model, k)
					}
					// Live minimum may have risen; floor follows it.
					floor = liveMin(model, globalB)
				}

				if h.Len() != len(model) {
					t.Fatalf("op %d: Len=%d, model=%d", op, h.Len(), len(model))
				}
				if err := h.Invariants(); err != nil {
					t.Fatalf("op %d: invariants: %v", op, err)
				}
				if m := liveMin(model, globalB); m < floor {
					floor = m
				}
			}
		})
	}
}

// checkPull asserts the Pull contract against the model's live entries.
func checkPull(t *testing.T, m int, globalB int64, model map[int]int64, gotKeys []int, sep int64) {
	t.Helper()

	pairs := make([]modelPair, 0, len(model))
	for k, v := range model {
		pairs = append(pairs, modelPair{key: k, value: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].value != pairs[j].value {
			return pairs[i].value < pairs[j].value
		}

		return pairs[i].key < pairs[j].key
	})

	want := len(pairs)
	if want > m {
		want = m
	}
	if len(gotKeys) != want {
		t.Fatalf("Pull returned %d keys; want %d", len(gotKeys), want)
	}

	wantKeys := make([]int, want)
	for i := 0; i < want; i++ {
		wantKeys[i] = pairs[i].key
	}
	sort.Ints(wantKeys)
	got := append([]int(nil), gotKeys...)
	sort.Ints(got)
	for i := range wantKeys {
		if got[i] != wantKeys[i] {
			t.Fatalf("Pull keys = %v; want the %d globally smallest %v", got, want, wantKeys)
		}
	}

	// Separator: strictly above every pulled value, not above any
	// remaining value.
	for _, k := range gotKeys {
		if model[k] >= sep {
			t.Fatalf("pulled key %d value %d ≥ separator %d", k, model[k], sep)
		}
	}
	if len(pairs) > want {
		if rem := pairs[want].value; sep > rem {
			t.Fatalf("separator %d above minimum remaining value %d", sep, rem)
		}
	} else if sep != globalB {
		t.Fatalf("draining Pull separator = %d; want globalB %d", sep, globalB)
	}
}

// liveMin returns the smallest live value or fallback when empty.
func liveMin(model map[int]int64, fallback int64) int64 {
	min := fallback
	for _, v := range model {
		if v < min {
			min = v
		}
	}

	return min
}
