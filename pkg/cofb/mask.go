package cofb

import "cofb-go/pkg/gf32"

// DomainTag selects the mask derivation for one block. It encodes which
// phase the block belongs to and whether it closes that phase, so blocks
// in different roles can never be confused by a forger.
type DomainTag uint8

const (
	// TagADBlock marks an associated-data block with more to follow.
	TagADBlock DomainTag = 1
	// TagADFinal marks the last associated-data block.
	TagADFinal DomainTag = 2
	// TagMsgBlock marks a message block with more to follow.
	TagMsgBlock DomainTag = 3
	// TagMsgFinal marks the last message block.
	TagMsgFinal DomainTag = 4
)

// MaskGenerator walks the per-session mask ladder over GF(2^32). It holds
// the running doubled value, the doubled-then-tripled value and the
// triple-of-triple value, all derived from the session's base mask.
//
// A generator belongs to exactly one (key, nonce) session. Reusing it
// across sessions, or sharing it between two concurrent ones, corrupts
// the mask progression of both.
type MaskGenerator struct {
	d  uint32 // running doubled value, seeded with beta
	dt uint32 // doubled-then-tripled value
	tt uint32 // triple-of-triple value
}

// NewMaskGenerator seeds a fresh ladder from the session's base mask.
func NewMaskGenerator(beta uint32) *MaskGenerator {
	return &MaskGenerator{d: beta}
}

// Next advances the ladder for one block and returns its mask.
func (g *MaskGenerator) Next(tag DomainTag) uint32 {
	switch tag {
	case TagADBlock:
		g.d = gf32.Double(g.d)
		return g.d
	case TagADFinal:
		g.dt = gf32.Triple(g.d)
		return g.dt
	case TagMsgBlock:
		g.d = gf32.Double(g.d)
		g.dt = gf32.Triple(g.d)
		return g.dt
	case TagMsgFinal:
		g.tt = gf32.Triple(gf32.Triple(g.d))
		return g.tt
	}
	panic("cofb: domain tag out of range")
}
