package acph

// hashByte computes the slot index for b under prime a and zero-based
// slot count m (actual table width is m+1).
//
// m == 255 selects the natural (identity) hash, the 256-slot table
// that is always collision-free by construction. Otherwise the slot
// is (((a-1) XOR b) * a) mod (m+1), computed in at least 16-bit
// arithmetic to avoid overflow before the modulus.
func hashByte(b byte, a, m uint8) uint8 {
	if m == 255 {
		return b
	}
	v := (uint16(a-1) ^ uint16(b)) * uint16(a)
	return uint8(v % (uint16(m) + 1))
}
