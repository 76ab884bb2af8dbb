package acph

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a level-indented structural dump of the tree to w,
// calling printLeaf for each leaf's payload. Dump is a diagnostic
// tool, not part of ACPH's invariant-bearing core: spec.md §1 names
// "the pretty-printers for tree diagnostics" as an out-of-scope
// external collaborator; this is the concrete shape
// original_source/acph.c's print_tree/print_*_leaf family takes,
// generalized to a caller-supplied leaf printer instead of one
// function per payload type.
func (t *Tree[P]) Dump(w io.Writer, printLeaf func(w io.Writer, p P)) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "<empty tree>")
		return
	}
	dumpNode(w, t.root, 0, printLeaf)
}

func dumpNode[P any](w io.Writer, n *node[P], level int, printLeaf func(io.Writer, P)) {
	indent := strings.Repeat("  ", level)
	fmt.Fprintf(w, "%scolumn=%d prime=%d slots=%d\n", indent, n.column, n.prime, int(n.slotCount)+1)
	for i := range n.slots {
		s := &n.slots[i]
		switch {
		case s.isEmpty():
			continue
		case s.isLeaf():
			fmt.Fprintf(w, "%s  [%d] byte=0x%02x leaf: ", indent, i, s.b)
			printLeaf(w, s.payload)
			fmt.Fprintln(w)
		default:
			fmt.Fprintf(w, "%s  [%d] byte=0x%02x branch ->\n", indent, i, s.b)
			dumpNode(w, s.child, level+2, printLeaf)
		}
	}
}
