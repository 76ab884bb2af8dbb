package acph

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint content-hashes the tree's structure: its shape (column,
// prime, slot count at every node) and every leaf's key bytes, in a
// canonical pre-order walk (a node's header, then its slots in order,
// descending into each branch child where its slot is reached). Two
// trees built from the same (keys, payloads) in the same order always
// produce the same fingerprint; this is spec.md §8's "round-trip
// determinism" property made checkable in one call, for tests.
//
// Fingerprint does not hash payloads, so it only attests to structure
// and key placement, not to payload content.
func (t *Tree[P]) Fingerprint() uint64 {
	h := xxhash.New()
	if t != nil && t.root != nil {
		fingerprintNode(h, t.root)
	}
	return h.Sum64()
}

func fingerprintNode[P any](h *xxhash.Digest, n *node[P]) {
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(n.column))
	hdr[4] = n.prime
	hdr[5] = n.slotCount
	_, _ = h.Write(hdr[:6])

	for i := range n.slots {
		s := &n.slots[i]
		var tag [2]byte
		tag[0] = byte(s.count)
		tag[1] = s.b
		_, _ = h.Write(tag[:])
		switch {
		case s.isLeaf():
			var lenBuf [4]byte
			binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s.key)))
			_, _ = h.Write(lenBuf[:])
			_, _ = h.Write(s.key)
		case s.isBranch():
			fingerprintNode(h, s.child)
		}
	}
}
