package midori

import "testing"

func TestSubCellsZeroVector(t *testing.T) {
	// S(0) = 0xc, so a zero state maps to all-c.
	if got := subCells(0); got != 0xcccccccccccccccc {
		t.Fatalf("subCells(0) = %#016x, want 0xcccccccccccccccc", got)
	}
}

func TestSubCellsIsPermutation(t *testing.T) {
	var seen [16]bool
	for v := uint64(0); v < 16; v++ {
		out := subCells(v) & 0xf
		if seen[out] {
			t.Fatalf("S-box maps two inputs to %#x", out)
		}
		seen[out] = true
	}
}

func TestShuffleCellsIdentityVector(t *testing.T) {
	// With nibble p holding value p, each output nibble equals the index
	// it was sourced from, so the result is the shuffle table itself.
	if got := shuffleCells(0x0123456789abcdef); got != shuffleTable {
		t.Fatalf("shuffleCells = %#016x, want %#016x", got, uint64(shuffleTable))
	}
}

func TestMixColumnsVector(t *testing.T) {
	// Last column holds nibbles 0,0,0,1: parity 1 propagates to the three
	// zero nibbles and cancels the one that held it.
	if got := mixColumns(0x0000000000000001); got != 0x0000000000001110 {
		t.Fatalf("mixColumns(1) = %#016x, want 0x0000000000001110", got)
	}
}

func TestMixColumnsInvolution(t *testing.T) {
	for _, s := range []uint64{0, 1, 0xdeadbeef12345678, 0xffffffffffffffff, 0x0123456789abcdef} {
		if got := mixColumns(mixColumns(s)); got != s {
			t.Errorf("mixColumns^2(%#016x) = %#016x", s, got)
		}
	}
}

func TestKeyScheduleDeterministic(t *testing.T) {
	k := Key{0x0123456789abcdef, 0xfedcba9876543210}
	wk1, rk1 := keySchedule(k)
	wk2, rk2 := keySchedule(k)
	if wk1 != wk2 || rk1 != rk2 {
		t.Fatal("key schedule is not deterministic")
	}
	if wk1 != k[0]^k[1] {
		t.Errorf("whitening key = %#016x, want %#016x", wk1, k[0]^k[1])
	}
}

func TestEncryptKnownAnswers(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		in   uint64
		want uint64
	}{
		{
			name: "zero",
			key:  Key{0, 0},
			in:   0,
			want: 0x3c9cceda2bbd449a,
		},
		{
			name: "nonzero",
			key:  Key{0x687ded3b3c85b3f3, 0x5b1009863e2a8cbf},
			in:   0x42c20fd3b586879e,
			want: 0x66bcdc6270d901cd,
		},
	}
	for _, c := range cases {
		if got := Encrypt(c.in, c.key); got != c.want {
			t.Errorf("%s: Encrypt(%#016x) = %#016x, want %#016x", c.name, c.in, got, c.want)
		}
	}
}

func TestEncryptDeterministic(t *testing.T) {
	k := Key{0xa5a5a5a5a5a5a5a5, 0x5a5a5a5a5a5a5a5a}
	in := uint64(0x1122334455667788)
	first := Encrypt(in, k)
	for i := 0; i < 8; i++ {
		if got := Encrypt(in, k); got != first {
			t.Fatalf("iteration %d: Encrypt = %#016x, want %#016x", i, got, first)
		}
	}
}
