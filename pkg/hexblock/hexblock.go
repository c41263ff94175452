// Package hexblock converts between the external hexadecimal text
// representation and the 64-bit blocks the cipher and mode operate on.
// A block is exactly 16 hex digits, a key is two concatenated blocks,
// and free-length message text is cut into blocks with a trailing
// one-bit pad. Parsing is strict: malformed digits are rejected, never
// coerced to zero.
package hexblock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cofb-go/pkg/midori"
)

// BlockDigits is the width of one block in hex digits.
const BlockDigits = 16

// KeyDigits is the width of a 128-bit key in hex digits.
const KeyDigits = 32

// ErrInvalidHex reports a malformed hexadecimal digit in input text.
var ErrInvalidHex = errors.New("hexblock: invalid hexadecimal digit")

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// checkHex validates every digit of s, reporting the offset of the first
// bad one.
func checkHex(s string) error {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidHex, s[i], i)
		}
	}
	return nil
}

// ParseBlock parses exactly 16 hex digits into a 64-bit block. Upper and
// lower case are both accepted.
func ParseBlock(s string) (uint64, error) {
	if len(s) != BlockDigits {
		return 0, fmt.Errorf("hexblock: block must be %d hex digits, got %d", BlockDigits, len(s))
	}
	if err := checkHex(s); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return v, nil
}

// ParseKey parses 32 hex digits into a 128-bit key, K0 then K1.
func ParseKey(s string) (midori.Key, error) {
	if len(s) != KeyDigits {
		return midori.Key{}, fmt.Errorf("hexblock: key must be %d hex digits, got %d", KeyDigits, len(s))
	}
	k0, err := ParseBlock(s[:BlockDigits])
	if err != nil {
		return midori.Key{}, fmt.Errorf("hexblock: key word 0: %w", err)
	}
	k1, err := ParseBlock(s[BlockDigits:])
	if err != nil {
		return midori.Key{}, fmt.Errorf("hexblock: key word 1: %w", err)
	}
	return midori.Key{k0, k1}, nil
}

// ParseNonce parses 1 to 16 hex digits into a 64-bit nonce. Shorter text
// is zero-extended, so an 8-digit nonce and its 16-digit zero-padded
// form name the same session.
func ParseNonce(s string) (uint64, error) {
	if len(s) == 0 || len(s) > BlockDigits {
		return 0, fmt.Errorf("hexblock: nonce must be 1..%d hex digits, got %d", BlockDigits, len(s))
	}
	if err := checkHex(s); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return v, nil
}

// ParseBlocks parses a whole number of blocks, 16 hex digits each. Used
// for ciphertext, which is never padded.
func ParseBlocks(s string) ([]uint64, error) {
	if len(s)%BlockDigits != 0 {
		return nil, fmt.Errorf("hexblock: input length %d is not a multiple of %d digits", len(s), BlockDigits)
	}
	blocks := make([]uint64, 0, len(s)/BlockDigits)
	for i := 0; i < len(s); i += BlockDigits {
		b, err := ParseBlock(s[i : i+BlockDigits])
		if err != nil {
			return nil, fmt.Errorf("hexblock: block %d: %w", i/BlockDigits, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// ParseMessage parses free-length hex text into blocks. A partial final
// block is right-padded at nibble granularity with a single one bit and
// zeros: the digit 8, then 0 digits up to the block boundary. Empty text
// yields no blocks.
func ParseMessage(s string) ([]uint64, error) {
	if err := checkHex(s); err != nil {
		return nil, err
	}
	if rem := len(s) % BlockDigits; rem != 0 {
		s = s + "8" + strings.Repeat("0", BlockDigits-rem-1)
	}
	return ParseBlocks(s)
}

// FormatBlock renders one block as 16 lower-case, zero-padded hex digits.
func FormatBlock(b uint64) string {
	return fmt.Sprintf("%016x", b)
}

// FormatBlocks concatenates the rendering of each block.
func FormatBlocks(blocks []uint64) string {
	var sb strings.Builder
	sb.Grow(len(blocks) * BlockDigits)
	for _, b := range blocks {
		sb.WriteString(FormatBlock(b))
	}
	return sb.String()
}
