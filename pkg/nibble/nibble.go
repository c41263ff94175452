// Package nibble provides bit-level addressing of the 16 ordered 4-bit
// lanes inside a 64-bit block. Position 0 is the most significant nibble,
// position 15 the least significant, matching the hexadecimal rendering
// of the block: nibble p of 0x0123456789abcdef has value p.
package nibble

// Lanes is the number of nibbles in a 64-bit block.
const Lanes = 16

// Get returns the 4-bit value at position pos (0 = most significant).
func Get(s uint64, pos int) uint8 {
	return uint8(s>>uint((Lanes-pos-1)*4)) & 0xf
}

// Set returns s with the nibble at position pos replaced by the low 4 bits
// of val. Every other nibble is left untouched.
func Set(s uint64, pos int, val uint8) uint64 {
	shift := uint((Lanes - pos - 1) * 4)
	s &^= uint64(0xf) << shift
	return s | uint64(val&0xf)<<shift
}
