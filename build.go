package acph

import (
	"encoding/binary"
	"math"

	acpherrors "github.com/asutherland/acph/errors"
)

// Tree is a built ACPH lookup structure over payload type P. The zero
// value is not a valid tree; obtain one from Build or one of its
// typed wrappers.
//
// A Tree owns its nodes and leaf key copies. There is no explicit
// Close/destroy: once the last reference to a Tree drops, the
// garbage collector reclaims everything it owns, which is the Go
// equivalent of spec.md §4.5's post-order teardown walk: see
// SPEC_FULL.md §1 and arena.go for how construction-time allocation
// accounting stands in for the C original's manual free_tree.
type Tree[P any] struct {
	root *node[P]
}

// Build constructs an ACPH tree over arbitrary byte-slice keys with
// parallel payloads. It is the build_bytes operation of spec.md §6.
//
// Build returns errors.ErrEmptyInput if keys is empty,
// errors.ErrPayloadSizeMismatch if len(payloads) != len(keys), and
// errors.ErrDuplicateKey if two keys are byte-identical.
//
// Build runs to completion on the calling goroutine; per spec.md §5
// it is not cancellable and must not be called concurrently with
// itself over data it is still consuming.
func Build[P any](keys [][]byte, payloads []P, opts ...BuildOption) (*Tree[P], error) {
	if len(keys) == 0 {
		return nil, acpherrors.ErrEmptyInput
	}
	if len(payloads) != len(keys) {
		return nil, acpherrors.ErrPayloadSizeMismatch
	}

	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.maxKeyLength > 0 {
		for _, k := range keys {
			if len(k) > cfg.maxKeyLength {
				return nil, acpherrors.ErrKeyTooLong
			}
		}
	}

	root, err := buildNode(keys, payloads, cfg)
	if err != nil {
		return nil, err
	}
	return &Tree[P]{root: root}, nil
}

// BuildStrings forwards to Build after taking the keys' native byte
// representation (spec.md §6's build_strings, adapted: Go strings are
// already length-prefixed, so there is no NUL-terminator to measure).
func BuildStrings[P any](keys []string, payloads []P, opts ...BuildOption) (*Tree[P], error) {
	byteKeys := make([][]byte, len(keys))
	for i, k := range keys {
		byteKeys[i] = []byte(k)
	}
	return Build(byteKeys, payloads, opts...)
}

// BuildInt64s forwards to Build using the little-endian byte image of
// each integer (spec.md §6's build_int64). Lookup on the resulting
// tree must use the same byte image: see FindInt64.
func BuildInt64s[P any](keys []int64, payloads []P, opts ...BuildOption) (*Tree[P], error) {
	byteKeys := make([][]byte, len(keys))
	for i, k := range keys {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
		byteKeys[i] = buf[:]
	}
	return Build(byteKeys, payloads, opts...)
}

// BuildDoubles forwards to Build using the little-endian byte image
// of each double's IEEE-754 bit pattern (spec.md §6's build_double).
func BuildDoubles[P any](keys []float64, payloads []P, opts ...BuildOption) (*Tree[P], error) {
	byteKeys := make([][]byte, len(keys))
	for i, k := range keys {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(k))
		byteKeys[i] = buf[:]
	}
	return Build(byteKeys, payloads, opts...)
}

// BuildBytesSingleColumn treats data as len(data) one-byte keys and
// builds a single-node tree directly, without recursion: spec.md
// §6's build_bytes_single_column. Duplicate byte values are silently
// coalesced: each byte value keeps the payload of its last occurrence
// in input order, exactly matching original_source/acph.c's
// create_character_hash (which clears multi-count slots to count 1,
// then overwrites the slot payload on every later match).
func BuildBytesSingleColumn[P any](data []byte, payloads []P, opts ...BuildOption) (*Tree[P], error) {
	if len(data) == 0 {
		return nil, acpherrors.ErrEmptyInput
	}
	if len(payloads) != len(data) {
		return nil, acpherrors.ErrPayloadSizeMismatch
	}

	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	unique, maxMult := columnDistribution(data)
	sel := selectPerfectHash(data, unique, maxMult, cfg.primes)

	n := &node[P]{
		column:    0,
		prime:     sel.prime,
		slotCount: sel.slotCount,
		slots:     make([]slot[P], len(sel.slots)),
	}
	if cfg.arena != nil {
		cfg.arena.track(n)
	}
	for i, m := range sel.slots {
		count := m.count
		if count > 1 {
			count = 1 // a single-column tree never branches: coalesce duplicates
		}
		n.slots[i] = slot[P]{b: m.b, count: count}
	}

	// Last occurrence wins: iterate input order, overwriting payloads.
	for i, b := range data {
		idx := hashByte(b, sel.prime, sel.slotCount)
		if n.slots[idx].count == 1 && n.slots[idx].b == b {
			n.slots[idx].key = []byte{b}
			n.slots[idx].payload = payloads[i]
		}
	}

	return &Tree[P]{root: n}, nil
}

// buildNode recursively builds one subtree over keys/payloads, per
// spec.md §4.4.
func buildNode[P any](keys [][]byte, payloads []P, cfg *buildConfig) (*node[P], error) {
	n := len(keys)

	if n == 1 {
		return buildLeafOnlyNode(keys[0], payloads[0], cfg), nil
	}

	column, image, uniqueBytes, maxMult := surveyColumns(keys)

	if uniqueBytes == 1 {
		// Every key collapses into one bucket at its best column; by
		// spec.md §4.4 step 2 and §9, this can only happen when every
		// surveyed column is equally degenerate: the keys are
		// byte-identical, or differ only by trailing 0x00 bytes, which
		// the virtual padding reads the same as absent bytes (so "a"
		// and "a\x00" are also reported as duplicates).
		return nil, acpherrors.ErrDuplicateKey
	}

	sel := selectPerfectHash(image, uniqueBytes, maxMult, cfg.primes)

	nd := &node[P]{
		column:    column,
		prime:     sel.prime,
		slotCount: sel.slotCount,
		slots:     make([]slot[P], len(sel.slots)),
	}
	if cfg.arena != nil {
		cfg.arena.track(nd)
	}

	// Group key indices by the byte value they present at this
	// column, so each slot's members can be located in one pass.
	var groups [256][]int
	for i, b := range image {
		groups[b] = append(groups[b], i)
	}

	for i, m := range sel.slots {
		nd.slots[i] = slot[P]{b: m.b, count: m.count}
		if m.count == 0 {
			continue
		}
		members := groups[m.b]
		if m.count == 1 {
			idx := members[0]
			nd.slots[i].key = append([]byte(nil), keys[idx]...)
			nd.slots[i].payload = payloads[idx]
			continue
		}

		childKeys := make([][]byte, len(members))
		childPayloads := make([]P, len(members))
		for j, idx := range members {
			childKeys[j] = keys[idx]
			childPayloads[j] = payloads[idx]
		}
		child, err := buildNode(childKeys, childPayloads, cfg)
		if err != nil {
			// The aborted subtree (child and everything below it) is
			// simply never referenced by nd; nothing further to
			// release here since Go has no manual allocations to
			// unwind: see Tree's doc comment.
			return nil, err
		}
		nd.slots[i].child = child
	}

	return nd, nil
}

// buildLeafOnlyNode builds the degenerate single-key subtree: one
// node, one populated leaf slot, matching spec.md §4.4's "a single
// key builds a one-node tree whose only populated slot is a leaf."
func buildLeafOnlyNode[P any](key []byte, payload P, cfg *buildConfig) *node[P] {
	b := virtualByte(key, 0)
	nd := &node[P]{column: 0, prime: cfg.primes[0], slotCount: 0, slots: make([]slot[P], 1)}
	if cfg.arena != nil {
		cfg.arena.track(nd)
	}
	nd.slots[0] = slot[P]{
		b:       b,
		count:   1,
		key:     append([]byte(nil), key...),
		payload: payload,
	}
	return nd
}

// surveyColumns scans columns 0, 1, 2, … while at least one key
// reaches the column, and returns the column with the smallest
// max_multiplicity (ties keep the earliest column), along with that
// column's virtual-zero-padded byte image and its distribution.
//
// Per spec.md §9, stopping as soon as no key reaches a column
// guarantees at least one key reaches every surveyed column, which is
// what the uniqueBytes==1 duplicate check in buildNode relies on (keys
// differing only by trailing 0x00 bytes still look identical there).
func surveyColumns(keys [][]byte) (column int, image []byte, uniqueBytes, maxMultiplicity int) {
	bestScore := -1
	n := len(keys)
	candidate := make([]byte, n)

	for c := 0; ; c++ {
		reached := false
		for i, k := range keys {
			if c < len(k) {
				reached = true
				candidate[i] = k[c]
			} else {
				candidate[i] = 0
			}
		}
		if !reached {
			break
		}

		unique, maxMult := columnDistribution(candidate)
		if bestScore == -1 || maxMult < bestScore {
			bestScore = maxMult
			column = c
			uniqueBytes = unique
			maxMultiplicity = maxMult
			image = append([]byte(nil), candidate...)
		}
	}

	if image == nil {
		// Every key has length 0 (all keys are the empty key): the
		// survey never finds a column any key reaches.
		image = make([]byte, n)
		uniqueBytes, maxMultiplicity = columnDistribution(image)
	}
	return column, image, uniqueBytes, maxMultiplicity
}
