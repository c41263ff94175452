// Package midori implements the Midori-64 lightweight block cipher:
// a 64-bit block, a 128-bit key, and 16 rounds of nibble substitution,
// cell shuffling and column diffusion. The state is the 16-nibble view
// provided by pkg/nibble, most significant nibble first.
//
// Only the forward direction is implemented. The authenticated mode
// built on top of this cipher runs it forward on both the sealing and
// the opening side, so no inverse key schedule or inverse shuffle is
// needed.
package midori

import "cofb-go/pkg/nibble"

// Key is the 128-bit cipher key as two 64-bit words, K0 then K1.
type Key [2]uint64

const rounds = 15 // main rounds; a final substitution layer follows

// sboxTable packs the 16-entry S-box as 16 nibbles indexed by value:
// the substitute for v is nibble v of the constant, so S(0) = 0xc.
const sboxTable = 0xcad3ebf789150246

// shuffleTable packs the cell permutation: destination position i takes
// the source nibble at position nibble-i of the constant.
const shuffleTable = 0x0a5fe4b193c67d28

// roundConstant holds one 16-bit constant per main round. Bit (15-j) of
// constant i is folded into nibble j of round key i, matching the
// MSB-first nibble order of the state.
var roundConstant = [rounds]uint16{
	0x15b3, 0x78c0, 0xa435, 0x6213, 0x104f,
	0xd170, 0x0266, 0x0bcc, 0x9481, 0x40b8,
	0x7197, 0x228e, 0x5130, 0xf8ca, 0xdf90,
}

// keySchedule derives the whitening key and the 15 round keys from k.
// Round key i draws its nibbles from K0 or K1 by round parity, each
// nibble xored with one bit of the round constant.
func keySchedule(k Key) (wk uint64, rk [rounds]uint64) {
	wk = k[0] ^ k[1]
	for i := 0; i < rounds; i++ {
		src := k[i&1]
		var s uint64
		for j := 0; j < nibble.Lanes; j++ {
			bit := uint8(roundConstant[i]>>uint(15-j)) & 1
			s = nibble.Set(s, j, nibble.Get(src, j)^bit)
		}
		rk[i] = s
	}
	return wk, rk
}

// subCells substitutes every nibble of s through the S-box.
func subCells(s uint64) uint64 {
	var out uint64
	for i := 0; i < nibble.Lanes; i++ {
		out = nibble.Set(out, i, nibble.Get(sboxTable, int(nibble.Get(s, i))))
	}
	return out
}

// shuffleCells permutes the nibble positions of s.
func shuffleCells(s uint64) uint64 {
	var out uint64
	for i := 0; i < nibble.Lanes; i++ {
		out = nibble.Set(out, i, nibble.Get(s, int(nibble.Get(shuffleTable, i))))
	}
	return out
}

// mixColumns diffuses each of the four 4-nibble columns: every nibble is
// replaced by the xor of the other three, i.e. by column parity xor
// itself. The transform is an involution.
func mixColumns(s uint64) uint64 {
	var out uint64
	for c := 0; c < nibble.Lanes; c += 4 {
		var parity uint8
		for j := 0; j < 4; j++ {
			parity ^= nibble.Get(s, c+j)
		}
		for j := 0; j < 4; j++ {
			out = nibble.Set(out, c+j, parity^nibble.Get(s, c+j))
		}
	}
	return out
}

// Encrypt runs one forward Midori-64 invocation on a 64-bit block.
// The round keys are derived fresh on every call; nothing is cached
// between invocations.
func Encrypt(s uint64, k Key) uint64 {
	wk, rk := keySchedule(k)
	s ^= wk
	for i := 0; i < rounds; i++ {
		s = subCells(s)
		s = shuffleCells(s)
		s = mixColumns(s)
		s ^= rk[i]
	}
	s = subCells(s)
	return s ^ wk
}
