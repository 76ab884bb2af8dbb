package acph

// defaultPrimes is the fixed candidate list for the selected prime a,
// scanned in this exact ascending order so that construction is
// deterministic. Matches spec.md §4.3 / original_source/acph.c's
// primes[] table.
var defaultPrimes = [...]uint8{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 113, 127, 131, 137, 149, 151, 157, 163,
	167, 173, 211, 223, 227, 229, 233, 239, 241, 251,
}

// slotMeta is the selector's (byte, count) output for one slot,
// before payloads and children are filled in by the tree builder.
type slotMeta struct {
	b     byte
	count int
}

// selection is the selector's result: the chosen (prime, slotCount)
// and the slot layout they produce.
type selection struct {
	prime     uint8
	slotCount uint8 // zero-based
	slots     []slotMeta
}

// selectPerfectHash finds the smallest perfect-hash table that routes
// every value in column without placing two distinct byte values in
// the same slot.
//
// uniqueBytes (the number of distinct values in column) lower-bounds
// the table size; maxMultiplicity (the heaviest single-value count)
// is the best achievable differential score, since no hash can split
// occurrences of the same byte value into different slots.
//
// m is scanned from uniqueBytes-1 upward (zero-based slot count) until
// m == 255; for each m, primes are tried in primes' fixed order. The
// first (a, m) with no false positive and the lowest differential
// score wins, with ties broken by first-seen. A false positive (two
// different bytes landing in the same slot) disqualifies (a, m)
// immediately. If no candidate below m == 255 beats the natural hash,
// the identity table is used as the guaranteed fallback.
func selectPerfectHash(column []byte, uniqueBytes, maxMultiplicity int, primes []uint8) selection {
	bestScore := len(column) + 1
	var best selection
	found := false

	m := uniqueBytes - 1
	if m < 0 {
		m = 0
	}

	var scratch [256]slotMeta

	for {
		for _, a := range primes {
			for i := 0; i <= m; i++ {
				scratch[i] = slotMeta{}
			}

			falsePositive := false
			score := 0
			for _, b := range column {
				s := hashByte(b, a, uint8(m))
				if scratch[s].count == 0 {
					scratch[s] = slotMeta{b: b, count: 1}
				} else if scratch[s].b != b {
					falsePositive = true
					break
				} else {
					scratch[s].count++
					if scratch[s].count > score {
						score = scratch[s].count
					}
				}
			}

			if falsePositive {
				continue
			}
			if score < maxMultiplicity {
				score = maxMultiplicity
			}

			if !found || score < bestScore {
				bestScore = score
				found = true
				best = selection{
					prime:     a,
					slotCount: uint8(m),
					slots:     append([]slotMeta(nil), scratch[:m+1]...),
				}
			}
			if bestScore == maxMultiplicity {
				return best
			}
		}

		if m == 255 {
			break
		}
		m++
	}

	return best
}
