package gf32

import "testing"

func TestAddIsXor(t *testing.T) {
	if got := Add(0xdeadbeef, 0xcafef00d); got != 0xdeadbeef^0xcafef00d {
		t.Errorf("Add = %#08x", got)
	}
	if got := Add(0x12345678, 0x12345678); got != 0 {
		t.Errorf("Add(a, a) = %#08x, want 0", got)
	}
}

func TestDouble(t *testing.T) {
	cases := []struct{ in, want uint32 }{
		{0x00000001, 0x00000002},
		{0x40000000, 0x80000000},
		{0x80000000, Poly},               // shifted-out bit forces reduction
		{0xffffffff, 0xfffffffe ^ Poly},  // reduction xors the low bits only
		{0x00000000, 0x00000000},
	}
	for _, c := range cases {
		if got := Double(c.in); got != c.want {
			t.Errorf("Double(%#08x) = %#08x, want %#08x", c.in, got, c.want)
		}
	}
}

func TestTripleIsAddOfDouble(t *testing.T) {
	for _, a := range []uint32{0, 1, 0x80000000, 0xdeadbeef, 0x7fffffff} {
		if got, want := Triple(a), Add(a, Double(a)); got != want {
			t.Errorf("Triple(%#08x) = %#08x, want %#08x", a, got, want)
		}
	}
}

func TestDoubleIsLinear(t *testing.T) {
	// 2(a + b) = 2a + 2b must hold in the field regardless of reduction.
	pairs := [][2]uint32{
		{0x80000001, 0x00000001},
		{0xcafebabe, 0xdeadbeef},
		{0xffffffff, 0x80000000},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if got, want := Double(Add(a, b)), Add(Double(a), Double(b)); got != want {
			t.Errorf("Double(%#08x + %#08x) = %#08x, want %#08x", a, b, got, want)
		}
	}
}
