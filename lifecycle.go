package acph

// Efficiency reports observability data for a tree: spec.md §4.5's
// efficiency operation: slots_used, slot_efficiency, and
// max_comparisons, all derived from a single post-order walk. These
// are diagnostics, not correctness properties.
type Efficiency struct {
	SlotsUsed      int     // Occupied (Leaf + Branch) slots across the whole tree.
	EmptySlots     int     // Unoccupied slots across the whole tree.
	SlotEfficiency float64 // SlotsUsed / (SlotsUsed + EmptySlots).
	MaxComparisons int     // Longest root-to-leaf depth (byte reads to resolve any key).
}

// Efficiency computes diagnostics for the whole tree.
func (t *Tree[P]) Efficiency() Efficiency {
	if t == nil || t.root == nil {
		return Efficiency{}
	}
	used, empty, maxCmp := nodeEfficiency(t.root)
	e := Efficiency{SlotsUsed: used, EmptySlots: empty, MaxComparisons: maxCmp}
	if total := used + empty; total > 0 {
		e.SlotEfficiency = float64(used) / float64(total)
	}
	return e
}

// nodeEfficiency sums occupied and empty slot counts across the whole
// subtree, counting each slot exactly once: see DESIGN.md for why
// this does not copy original_source/acph.c's hash_efficiency
// verbatim, which double-counts descendant empty slots against
// spec.md §4.5's "slots_used: total occupied slots" definition.
// max_comparisons at this level is one more than the deepest child's
// max_comparisons (a leaf slot contributes depth 0 at this level, so
// a node with only leaves and empties reports depth 1).
func nodeEfficiency[P any](n *node[P]) (slotsUsed, emptySlots, maxComparisons int) {
	for i := range n.slots {
		s := &n.slots[i]
		switch {
		case s.isEmpty():
			emptySlots++
		case s.isLeaf():
			slotsUsed++
		default:
			slotsUsed++
			childUsed, childEmpty, childMax := nodeEfficiency(s.child)
			slotsUsed += childUsed
			emptySlots += childEmpty
			if childMax > maxComparisons {
				maxComparisons = childMax
			}
		}
	}
	return slotsUsed, emptySlots, maxComparisons + 1
}
