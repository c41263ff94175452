package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"cofb-go/pkg/cofb"
)

const (
	zeroKey   = "00000000000000000000000000000000"
	zeroNonce = "0000000000000000"
	zeroMsg   = "00000000000000000000000000000000"
)

func TestSealFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, false)
	if err := r.Seal(zeroKey, zeroNonce, "", zeroMsg); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"K: \t" + zeroKey,
		"N: \t" + zeroNonce,
		"C: \t3c9cceda2bbd449aff9d43bdffc452f7",
		"T: \t67a949ad59e44402",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "A: ") {
		t.Errorf("AD line printed for empty associated data:\n%s", out)
	}
}

func TestOpenFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, false)
	err := r.Open(zeroKey, zeroNonce, "",
		"3c9cceda2bbd449aff9d43bdffc452f7", "67a949ad59e44402")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "M: \t"+zeroMsg) {
		t.Errorf("recovered message missing:\n%s", out)
	}
	if !strings.Contains(out, "T_: \t67a949ad59e44402") {
		t.Errorf("verification tag missing:\n%s", out)
	}
}

func TestOpenForgeryPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, false)
	err := r.Open(zeroKey, zeroNonce, "",
		"3c9cceda2bbd449aff9d43bdffc452f7", "67a949ad59e44403")
	if !errors.Is(err, cofb.ErrAuthentication) {
		t.Fatalf("err = %v, want ErrAuthentication", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output printed despite failed authentication:\n%s", buf.String())
	}
}

func TestUppercaseOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, true)
	if err := r.Seal(zeroKey, zeroNonce, "", zeroMsg); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if !strings.Contains(buf.String(), "3C9CCEDA2BBD449A") {
		t.Errorf("output not upper-cased:\n%s", buf.String())
	}
}

func TestSealRejectsBadHex(t *testing.T) {
	r := NewRunner(&bytes.Buffer{}, false)
	if err := r.Seal("nothex", zeroNonce, "", zeroMsg); err == nil {
		t.Error("bad key accepted")
	}
	if err := r.Seal(zeroKey, "", "", zeroMsg); err == nil {
		t.Error("empty nonce accepted")
	}
	if err := r.Seal(zeroKey, zeroNonce, "", "xyz"); err == nil {
		t.Error("bad message accepted")
	}
}
