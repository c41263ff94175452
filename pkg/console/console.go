// Package console is the interactive front end around the engine. It
// parses hexadecimal key, nonce and message text, drives one Seal or
// Open session, and prints the labeled result frame (K:, N:, C:, T: and
// on opening M:, T_:). All text handling stays here; the engine only
// ever sees typed 64-bit blocks.
package console

import (
	"fmt"
	"io"
	"strings"

	"cofb-go/pkg/cofb"
	"cofb-go/pkg/hexblock"
	"cofb-go/pkg/log"
)

// Runner renders one session's frames to Out.
type Runner struct {
	Out       io.Writer
	Uppercase bool
}

func NewRunner(out io.Writer, uppercase bool) *Runner {
	return &Runner{Out: out, Uppercase: uppercase}
}

func (r *Runner) emit(label, hexText string) {
	if r.Uppercase {
		hexText = strings.ToUpper(hexText)
	}
	fmt.Fprintf(r.Out, "%s \t%s\n", label, hexText)
}

// Seal parses the inputs, seals the message and prints the frame. adHex
// may be empty for a session without associated data; a partial final
// message block is padded at the boundary before the engine sees it.
func (r *Runner) Seal(keyHex, nonceHex, adHex, msgHex string) error {
	key, err := hexblock.ParseKey(keyHex)
	if err != nil {
		return fmt.Errorf("console: key: %w", err)
	}
	nonce, err := hexblock.ParseNonce(nonceHex)
	if err != nil {
		return fmt.Errorf("console: nonce: %w", err)
	}
	ad, err := hexblock.ParseMessage(adHex)
	if err != nil {
		return fmt.Errorf("console: associated data: %w", err)
	}
	msg, err := hexblock.ParseMessage(msgHex)
	if err != nil {
		return fmt.Errorf("console: message: %w", err)
	}

	ct, tag := cofb.Seal(key, nonce, ad, msg)
	log.Info().
		Int("ad_blocks", len(ad)).
		Int("msg_blocks", len(msg)).
		Str("op", "seal").
		Msg("session complete")

	r.emit("K:", keyHex)
	r.emit("N:", hexblock.FormatBlock(nonce))
	if len(ad) > 0 {
		r.emit("A:", hexblock.FormatBlocks(ad))
	}
	r.emit("C:", hexblock.FormatBlocks(ct))
	r.emit("T:", hexblock.FormatBlock(tag))
	return nil
}

// Open parses the inputs, opens the ciphertext and prints the frame.
// When the tag does not verify, nothing of the message is printed and
// the engine's authentication error is returned.
func (r *Runner) Open(keyHex, nonceHex, adHex, ctHex, tagHex string) error {
	key, err := hexblock.ParseKey(keyHex)
	if err != nil {
		return fmt.Errorf("console: key: %w", err)
	}
	nonce, err := hexblock.ParseNonce(nonceHex)
	if err != nil {
		return fmt.Errorf("console: nonce: %w", err)
	}
	ad, err := hexblock.ParseMessage(adHex)
	if err != nil {
		return fmt.Errorf("console: associated data: %w", err)
	}
	ct, err := hexblock.ParseBlocks(ctHex)
	if err != nil {
		return fmt.Errorf("console: ciphertext: %w", err)
	}
	tag, err := hexblock.ParseBlock(tagHex)
	if err != nil {
		return fmt.Errorf("console: tag: %w", err)
	}

	msg, err := cofb.Open(key, nonce, ad, ct, tag)
	if err != nil {
		log.Warn().
			Int("ct_blocks", len(ct)).
			Str("op", "open").
			Msg("authentication failed")
		return err
	}
	log.Info().
		Int("ad_blocks", len(ad)).
		Int("ct_blocks", len(ct)).
		Str("op", "open").
		Msg("session complete")

	r.emit("M:", hexblock.FormatBlocks(msg))
	r.emit("T_:", hexblock.FormatBlock(tag))
	return nil
}
