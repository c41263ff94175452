// Package cofb implements a nonce-based authenticated-encryption mode
// over the Midori-64 block cipher. One cipher call binds the nonce into
// the running state; every subsequent block folds a domain-separated
// GF(2^32) mask and a linear rearrangement of the state into the next
// cipher input. The state left after the last block is the tag.
//
// The cipher runs forward on both sides. Opening reverses the stream by
// folding the previous state back into the feedback value, so no block
// decryption is ever needed.
package cofb

import (
	"errors"

	"cofb-go/pkg/midori"
)

// ErrAuthentication is returned by Open when the recomputed tag does not
// match the supplied one. No plaintext is released alongside it.
var ErrAuthentication = errors.New("cofb: authentication failed")

// session threads one (key, nonce) pairing through the mode. It owns the
// running cipher state and the mask ladder for its whole lifetime and is
// discarded once the tag has been taken.
type session struct {
	key   midori.Key
	y     uint64 // running cipher state, nonce-derived
	masks *MaskGenerator
}

// newSession runs the nonce through the cipher and seeds the mask ladder
// from the middle 32 bits of the result.
func newSession(key midori.Key, nonce uint64) *session {
	y := midori.Encrypt(nonce, key)
	return &session{
		key:   key,
		y:     y,
		masks: NewMaskGenerator(extractBeta(y)),
	}
}

// extractBeta takes bits [16,48) of the nonce-derived state as the base
// mask for the session.
func extractBeta(y uint64) uint32 {
	return uint32(y >> 16)
}

// mixState spreads the outer 16-bit lanes of the state: the middle moves
// up 16 bits while the top and bottom lanes collapse, xored, into the low
// bits.
func mixState(y uint64) uint64 {
	return (y << 16) | ((y >> 48) ^ (y & 0xffff))
}

// step feeds one block into the state. feedback is the value folded into
// the next cipher input; for sealing and for associated data it is the
// block itself, for opening it carries the previous state as well.
func (s *session) step(feedback uint64, tag DomainTag) {
	mask := s.masks.Next(tag)
	x := uint64(mask)<<32 ^ feedback
	s.y = midori.Encrypt(x, s.key)
}

// absorb processes one associated-data block. Nothing is emitted;
// absorbing is identical on the sealing and the opening side.
func (s *session) absorb(b uint64, tag DomainTag) {
	s.step(b^mixState(s.y), tag)
}

// encryptBlock processes one message block and returns its ciphertext.
func (s *session) encryptBlock(b uint64, tag DomainTag) uint64 {
	c := s.y ^ b
	s.step(b^mixState(s.y), tag)
	return c
}

// decryptBlock processes one ciphertext block and returns its plaintext.
// The previous state is folded into the feedback value so both sides
// drive the cipher with the same input sequence.
func (s *session) decryptBlock(b uint64, tag DomainTag) uint64 {
	m := s.y ^ b
	s.step(s.y^(b^mixState(s.y)), tag)
	return m
}

// tag finalizes the session: the state left after the last block is the
// authentication tag.
func (s *session) tag() uint64 {
	return s.y
}

// phaseTag picks the domain tag for block i of n in either phase. The
// closing block of a phase carries the final tag.
func phaseTag(i, n int, block, final DomainTag) DomainTag {
	if i == n-1 {
		return final
	}
	return block
}

// Seal encrypts plaintext under key and nonce, binding ad into the tag.
// Both ad and plaintext are explicit sequences of 64-bit blocks; either
// may be empty. The returned ciphertext has one block per plaintext
// block, followed by the 64-bit tag.
//
// The nonce must not repeat under the same key.
func Seal(key midori.Key, nonce uint64, ad, plaintext []uint64) (ciphertext []uint64, tag uint64) {
	s := newSession(key, nonce)
	for i, b := range ad {
		s.absorb(b, phaseTag(i, len(ad), TagADBlock, TagADFinal))
	}
	ciphertext = make([]uint64, 0, len(plaintext))
	for i, b := range plaintext {
		c := s.encryptBlock(b, phaseTag(i, len(plaintext), TagMsgBlock, TagMsgFinal))
		ciphertext = append(ciphertext, c)
	}
	return ciphertext, s.tag()
}

// Open verifies tag over ad and ciphertext under key and nonce and
// returns the recovered plaintext. On any mismatch it returns
// ErrAuthentication and no plaintext: release is gated on the tag, a
// caller never sees unauthenticated output.
func Open(key midori.Key, nonce uint64, ad, ciphertext []uint64, tag uint64) ([]uint64, error) {
	s := newSession(key, nonce)
	for i, b := range ad {
		s.absorb(b, phaseTag(i, len(ad), TagADBlock, TagADFinal))
	}
	plaintext := make([]uint64, 0, len(ciphertext))
	for i, b := range ciphertext {
		m := s.decryptBlock(b, phaseTag(i, len(ciphertext), TagMsgBlock, TagMsgFinal))
		plaintext = append(plaintext, m)
	}
	if s.tag() != tag {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
