package acph

import (
	"bytes"
	"testing"
)

// TestPreHashDeterministic checks that PreHash is a pure function of
// its input.
func TestPreHashDeterministic(t *testing.T) {
	key := []byte("sequential-key-000123")
	a := PreHash(key)
	b := PreHash(key)
	if !bytes.Equal(a, b) {
		t.Fatal("PreHash is not deterministic")
	}
	if len(a) != 16 {
		t.Fatalf("len(PreHash(key)) = %d, want 16", len(a))
	}
}

// TestPreHashInPlaceMatchesPreHash checks the allocation-free variant
// agrees with the allocating one.
func TestPreHashInPlaceMatchesPreHash(t *testing.T) {
	key := []byte("another-key")
	want := PreHash(key)
	got := make([]byte, 16)
	PreHashInPlace(key, got)
	if !bytes.Equal(got, want) {
		t.Fatalf("PreHashInPlace(key) = %x, want %x", got, want)
	}
}

// TestPreHashSkewedKeySpaceRoundTrip builds a tree over a highly skewed
// key space (a shared 15-byte prefix, varying only the last byte)
// both directly and pre-hashed, checking both still round-trip; this
// is spec.md §9's "pre-hashing layer" caution made concrete.
func TestPreHashSkewedKeySpaceRoundTrip(t *testing.T) {
	n := 200
	keys := make([][]byte, n)
	hashed := make([][]byte, n)
	for i := range keys {
		k := make([]byte, 15)
		k = append(k, byte(i))
		keys[i] = k
		hashed[i] = PreHash(k)
	}
	payloads := sequentialPayloads(n)

	tree, err := Build(keys, payloads)
	if err != nil {
		t.Fatalf("Build(skewed keys): %v", err)
	}
	verifyRoundTrip(t, tree, keys, payloads)

	hashedTree, err := Build(hashed, payloads)
	if err != nil {
		t.Fatalf("Build(pre-hashed keys): %v", err)
	}
	verifyRoundTrip(t, hashedTree, hashed, payloads)
}
