package acph

import (
	"bytes"
	"encoding/binary"
	"math"

	acpherrors "github.com/asutherland/acph/errors"
)

// Find looks up key in the tree: spec.md §4.5 / §6's find_bytes.
//
// Find is read-only: it never allocates and never mutates the tree,
// and is safe to call from unbounded concurrent goroutines once Build
// has returned (spec.md §5).
func (t *Tree[P]) Find(key []byte) (P, bool) {
	var zero P
	if t == nil || t.root == nil {
		return zero, false
	}

	n := t.root
	for {
		s := n.route(key)
		switch {
		case s.isEmpty():
			return zero, false
		case s.isLeaf():
			if bytes.Equal(s.key, key) {
				return s.payload, true
			}
			return zero, false
		default: // branch
			n = s.child
		}
	}
}

// FindString is the string convenience wrapper over Find.
func (t *Tree[P]) FindString(key string) (P, bool) {
	return t.Find([]byte(key))
}

// FindInt64 looks up an int64 key, using the same little-endian byte
// image BuildInt64s used to construct the tree. Looking up a tree
// built any other way produces undefined results: see spec.md §6's
// documented caller obligation.
func (t *Tree[P]) FindInt64(key int64) (P, bool) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return t.Find(buf[:])
}

// FindDouble looks up a float64 key, using the same little-endian
// IEEE-754 byte image BuildDoubles used to construct the tree.
func (t *Tree[P]) FindDouble(key float64) (P, bool) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(key))
	return t.Find(buf[:])
}

// FindByte looks up a single byte in a tree built by
// BuildBytesSingleColumn.
func (t *Tree[P]) FindByte(b byte) (P, bool) {
	return t.Find([]byte{b})
}

// Lookup is Find with an error-returning signature for callers that
// prefer it, returning errors.ErrNotFound on a miss and
// errors.ErrEmptyTree against a nil tree.
func (t *Tree[P]) Lookup(key []byte) (P, error) {
	if t == nil || t.root == nil {
		var zero P
		return zero, acpherrors.ErrEmptyTree
	}
	v, ok := t.Find(key)
	if !ok {
		return v, acpherrors.ErrNotFound
	}
	return v, nil
}
