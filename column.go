package acph

// columnDistribution computes, for an array of byte values, the
// number of distinct values (uniqueBytes) and the largest count of
// any single value (maxMultiplicity). Running time is linear in
// len(column).
//
// The selector uses uniqueBytes as a lower bound on the smallest
// feasible perfect-hash table (a perfect hash needs at least as many
// slots as distinct inputs); the tree builder uses a column where one
// value fills every entry (uniqueBytes == 1, the same condition as
// maxMultiplicity == len(column)) as the degenerate-column signal (see
// buildNode in build.go).
func columnDistribution(column []byte) (uniqueBytes int, maxMultiplicity int) {
	var counts [256]int
	for _, b := range column {
		counts[b]++
		if counts[b] > maxMultiplicity {
			maxMultiplicity = counts[b]
		}
	}
	for _, c := range counts {
		if c > 0 {
			uniqueBytes++
		}
	}
	return uniqueBytes, maxMultiplicity
}
