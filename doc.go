// Package acph builds Adaptive Columnar Perfect Hash trees: static,
// read-only perfect hash structures over a fixed key set, chosen once
// at construction time and never rebalanced afterward.
//
// An ACPH tree discriminates one byte "column" of the key at each
// node: it picks the column with the least-skewed byte distribution,
// finds a small per-node multiplicative hash that routes every
// distinct byte at that column to its own slot with no collisions,
// and recurses into any slot still holding more than one key. Lookup
// walks the same path: one column read, one multiplicative hash, one
// slot step, until it reaches a leaf or an empty slot (not found).
//
// # Basic Usage
//
//	tree, err := acph.BuildStrings(
//		[]string{"Mr Smith", "Mr Jones", "Ms Leonard"},
//		[]int{1, 2, 3},
//	)
//	if err != nil {
//		// ...
//	}
//	id, ok := tree.FindString("Mr Jones")
//
// # Package Structure
//
//   - hash.go, column.go, selector.go: the per-node hash kernel, the
//     column distribution analyzer, and the perfect-hash search.
//   - node.go, slot.go, build.go: the tree data model and its
//     recursive builder.
//   - lookup.go, lifecycle.go, dump.go: typed lookup wrappers,
//     efficiency diagnostics, and a structural dump for debugging.
//   - prehash.go, fingerprint.go, forest.go: supporting utilities for
//     skewed key spaces, structural integrity checks, and building
//     many independent trees concurrently.
//   - errors/: exported error sentinels.
//
// ACPH trees hold no references to external resources and need no
// explicit teardown; once unreferenced, the garbage collector
// reclaims them like any other Go value.
package acph
