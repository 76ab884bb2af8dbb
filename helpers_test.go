package acph

import (
	"math/rand/v2"
	"testing"
)

// newTestRNG returns a deterministic PRNG seeded from the test name,
// so a failing case reproduces on rerun without depending on wall-
// clock entropy.
func newTestRNG(t *testing.T) *rand.Rand {
	t.Helper()
	var seed [32]byte
	copy(seed[:], t.Name())
	return rand.New(rand.NewChaCha8(seed))
}

// generateRandomKeys creates n pseudo-random keys of keySize bytes,
// deduplicating so callers get a clean Build input.
func generateRandomKeys(rng *rand.Rand, n, keySize int) [][]byte {
	seen := make(map[string]bool, n)
	keys := make([][]byte, 0, n)
	for len(keys) < n {
		k := make([]byte, keySize)
		for i := range k {
			k[i] = byte(rng.IntN(256))
		}
		if seen[string(k)] {
			continue
		}
		seen[string(k)] = true
		keys = append(keys, k)
	}
	return keys
}

// sequentialPayloads returns []uint64{0, 1, ..., n-1}.
func sequentialPayloads(n int) []uint64 {
	p := make([]uint64, n)
	for i := range p {
		p[i] = uint64(i)
	}
	return p
}

// verifyRoundTrip asserts every key finds its paired payload.
func verifyRoundTrip(t *testing.T, tree *Tree[uint64], keys [][]byte, payloads []uint64) {
	t.Helper()
	for i, k := range keys {
		got, ok := tree.Find(k)
		if !ok {
			t.Errorf("key %d (%x): not found", i, k)
			continue
		}
		if got != payloads[i] {
			t.Errorf("key %d (%x): got payload %d, want %d", i, k, got, payloads[i])
		}
	}
}

// maxDepth returns the tree's maximum root-to-leaf depth, independent
// of Efficiency's bookkeeping, for cross-checking MaxComparisons.
func maxDepth[P any](t *Tree[P]) int {
	if t == nil || t.root == nil {
		return 0
	}
	return nodeMaxDepth(t.root)
}

func nodeMaxDepth[P any](n *node[P]) int {
	depth := 0
	for i := range n.slots {
		s := &n.slots[i]
		if s.isBranch() {
			if d := nodeMaxDepth(s.child); d > depth {
				depth = d
			}
		}
	}
	return depth + 1
}

