package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"cofb-go/pkg/cofb"
	"cofb-go/pkg/console"
	"cofb-go/pkg/log"

	"github.com/urfave/cli/v2"
)

var (
	encryptCommand = &cli.Command{
		Name:        "encrypt",
		Usage:       "seals a message under a key and nonce",
		UsageText:   "encrypt [--key HEX32] [--nonce HEX] [--ad HEX] [--message HEX]",
		Description: `Seals a hexadecimal message and prints the K/N/C/T frame. Without flags, key, nonce and message are read as three lines from standard input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "128-bit key as 32 hex digits `HEX`"},
			&cli.StringFlag{Name: "nonce", Aliases: []string{"n"}, Usage: "nonce as 1..16 hex digits `HEX`"},
			&cli.StringFlag{Name: "ad", Aliases: []string{"a"}, Usage: "associated data as hex text `HEX`"},
			&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "message as hex text `HEX`"},
		},
		Action: encryptCmd,
	}

	decryptCommand = &cli.Command{
		Name:        "decrypt",
		Usage:       "opens a ciphertext and verifies its tag",
		UsageText:   "decrypt --tag HEX16 [--key HEX32] [--nonce HEX] [--ad HEX] [--ciphertext HEX]",
		Description: `Verifies the tag over the ciphertext and, only on success, prints the M/T_ frame. A failed verification releases nothing.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "128-bit key as 32 hex digits `HEX`"},
			&cli.StringFlag{Name: "nonce", Aliases: []string{"n"}, Usage: "nonce as 1..16 hex digits `HEX`"},
			&cli.StringFlag{Name: "ad", Aliases: []string{"a"}, Usage: "associated data as hex text `HEX`"},
			&cli.StringFlag{Name: "ciphertext", Aliases: []string{"c"}, Usage: "ciphertext as whole blocks `HEX`"},
			&cli.StringFlag{Name: "tag", Aliases: []string{"t"}, Usage: "authentication tag as 16 hex digits `HEX`", Required: true},
		},
		Action: decryptCmd,
	}
)

// readStdinFields reads one trimmed non-empty line per label from
// standard input, in the order the labels are given.
func readStdinFields(labels ...string) ([]string, error) {
	sc := bufio.NewScanner(os.Stdin)
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", label, err)
			}
			return nil, fmt.Errorf("missing %s on standard input", label)
		}
		out = append(out, strings.TrimSpace(sc.Text()))
	}
	return out, nil
}

func encryptCmd(c *cli.Context) error {
	cfg := loadConfig()
	setupLogger(cfg)
	defer log.Close()

	keyHex := c.String("key")
	nonceHex := c.String("nonce")
	msgHex := c.String("message")
	if keyHex == "" {
		fields, err := readStdinFields("key", "nonce", "message")
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		keyHex, nonceHex, msgHex = fields[0], fields[1], fields[2]
	}

	runner := console.NewRunner(os.Stdout, cfg.UppercaseOutput)
	if err := runner.Seal(keyHex, nonceHex, c.String("ad"), msgHex); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func decryptCmd(c *cli.Context) error {
	cfg := loadConfig()
	setupLogger(cfg)
	defer log.Close()

	keyHex := c.String("key")
	nonceHex := c.String("nonce")
	ctHex := c.String("ciphertext")
	if keyHex == "" {
		fields, err := readStdinFields("key", "nonce", "ciphertext")
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		keyHex, nonceHex, ctHex = fields[0], fields[1], fields[2]
	}

	runner := console.NewRunner(os.Stdout, cfg.UppercaseOutput)
	err := runner.Open(keyHex, nonceHex, c.String("ad"), ctHex, c.String("tag"))
	if errors.Is(err, cofb.ErrAuthentication) {
		return cli.Exit("authentication failed: tag mismatch, no plaintext released", 1)
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
