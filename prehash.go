package acph

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// PreHash applies xxHash3-128 to key, returning 16 bytes.
//
// ACPH's column survey assumes keys with genuine per-byte variation;
// it shines on the titles/prefixed-ID shape spec.md's worked examples
// use. Keys that are instead uniform apart from a handful of high
// bits (sequential integers, common-prefix UUIDs, monotonically
// assigned IDs) make every surveyed column nearly degenerate, forcing
// deep, unbalanced trees. spec.md §9 warns about exactly this:
// "Do not use ACPH for untrusted inputs without a pre-hashing layer."
// PreHash is that layer: hash a skewed key space into uniformly
// distributed bytes before calling Build, and hash query keys the
// same way before calling Find.
func PreHash(key []byte) []byte {
	h := xxh3.Hash128(key)
	out := make([]byte, 16)
	binary.LittleEndian.PutUint64(out[0:8], h.Lo)
	binary.LittleEndian.PutUint64(out[8:16], h.Hi)
	return out
}

// PreHashInPlace writes PreHash(key) into dst, which must be at least
// 16 bytes, avoiding an allocation when hashing many keys in a loop.
func PreHashInPlace(key []byte, dst []byte) {
	h := xxh3.Hash128(key)
	binary.LittleEndian.PutUint64(dst[0:8], h.Lo)
	binary.LittleEndian.PutUint64(dst[8:16], h.Hi)
}
