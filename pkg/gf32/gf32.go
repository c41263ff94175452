// Package gf32 implements arithmetic over GF(2^32) as used by the COFB
// mask schedule. The reduction polynomial is x^32 + x^4 + x^3 + x + 1;
// the x^32 term is implicit in the bit shifted out during doubling, so
// only the low part appears as a constant.
package gf32

// Poly is the representable part of the reduction polynomial.
const Poly uint32 = 0x1b

// Add returns the field sum of a and b. Addition in GF(2^n) is XOR; the
// reduction polynomial plays no part in it.
func Add(a, b uint32) uint32 {
	return a ^ b
}

// Double multiplies a by 2 in the field: a left shift, reduced by the
// polynomial when the shifted-out bit was set.
func Double(a uint32) uint32 {
	if a&0x80000000 != 0 {
		return (a << 1) ^ Poly
	}
	return a << 1
}

// Triple multiplies a by 3 in the field, i.e. a + 2a.
func Triple(a uint32) uint32 {
	return Add(a, Double(a))
}
