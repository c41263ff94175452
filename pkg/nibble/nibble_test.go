package nibble

import "testing"

func TestGetPositionOrder(t *testing.T) {
	// Nibble p of this constant carries the value p, so Get must return
	// its own position for every lane.
	const s = 0x0123456789abcdef
	for p := 0; p < Lanes; p++ {
		if got := Get(s, p); got != uint8(p) {
			t.Errorf("Get(%#016x, %d) = %#x, want %#x", uint64(s), p, got, p)
		}
	}
}

func TestSetReplacesOnlyTarget(t *testing.T) {
	const s = 0xffffffffffffffff
	for p := 0; p < Lanes; p++ {
		out := Set(s, p, 0x5)
		if got := Get(out, p); got != 0x5 {
			t.Fatalf("Set pos %d: target nibble = %#x, want 0x5", p, got)
		}
		for q := 0; q < Lanes; q++ {
			if q == p {
				continue
			}
			if got := Get(out, q); got != 0xf {
				t.Fatalf("Set pos %d disturbed nibble %d: %#x", p, q, got)
			}
		}
	}
}

func TestSetMasksValue(t *testing.T) {
	// Only the low 4 bits of val may land in the block.
	if got := Set(0, 3, 0xff); got != 0x000f000000000000 {
		t.Errorf("Set(0, 3, 0xff) = %#016x, want 0x000f000000000000", got)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	s := uint64(0xdeadbeefcafef00d)
	for p := 0; p < Lanes; p++ {
		if got := Set(s, p, Get(s, p)); got != s {
			t.Errorf("round trip at pos %d changed block: %#016x", p, got)
		}
	}
}
