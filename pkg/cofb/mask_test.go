package cofb

import (
	"math/rand"
	"testing"
)

func TestMaskTagsPairwiseDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	for trial := 0; trial < 64; trial++ {
		beta := rng.Uint32()
		if beta == 0 {
			continue // zero is a fixed point of the whole ladder
		}
		g := NewMaskGenerator(beta)
		masks := []uint32{
			g.Next(TagADBlock),
			g.Next(TagADFinal),
			g.Next(TagMsgBlock),
			g.Next(TagMsgFinal),
		}
		for i := 0; i < len(masks); i++ {
			for j := i + 1; j < len(masks); j++ {
				if masks[i] == masks[j] {
					t.Fatalf("beta %#08x: tags %d and %d both yield %#08x",
						beta, i+1, j+1, masks[i])
				}
			}
		}
	}
}

func TestMaskLadderAdvances(t *testing.T) {
	g := NewMaskGenerator(0x00000001)
	// Tag 1 doubles the running value each time it is asked.
	if got := g.Next(TagADBlock); got != 0x2 {
		t.Fatalf("first double = %#x, want 0x2", got)
	}
	if got := g.Next(TagADBlock); got != 0x4 {
		t.Fatalf("second double = %#x, want 0x4", got)
	}
	// Tag 2 triples without advancing the doubled slot.
	if got := g.Next(TagADFinal); got != 0xc {
		t.Fatalf("triple = %#x, want 0xc", got)
	}
	if got := g.Next(TagADBlock); got != 0x8 {
		t.Fatalf("double after triple = %#x, want 0x8", got)
	}
}

func TestMaskGeneratorsIndependent(t *testing.T) {
	a := NewMaskGenerator(0xceda2bbd)
	b := NewMaskGenerator(0xceda2bbd)
	_ = a.Next(TagMsgBlock)
	_ = a.Next(TagMsgFinal)
	// b must be unaffected by a's progression.
	if got, want := b.Next(TagMsgBlock), NewMaskGenerator(0xceda2bbd).Next(TagMsgBlock); got != want {
		t.Fatalf("fresh generator diverged: %#08x vs %#08x", got, want)
	}
}
