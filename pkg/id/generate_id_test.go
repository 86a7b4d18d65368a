package id

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var (
	reHex32  = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reCust   = regexp.MustCompile(`^CUST-[0-9A-F]{8}$`)
	reEmp    = regexp.MustCompile(`^EMP-[0-9A-F]{6}$`)
	reSerial = regexp.MustCompile(`^[0-9]{6}$`)
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestPrefixed_Format(t *testing.T) {
	if got := Prefixed("CUST-", 8); !reCust.MatchString(got) {
		t.Fatalf("customer id format: %q", got)
	}
	if got := Prefixed("EMP-", 6); !reEmp.MatchString(got) {
		t.Fatalf("employee id format: %q", got)
	}
}

func TestPrefixed_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := Prefixed("CUST-", 8)
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestAccountSerial_SixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := AccountSerial()
		if !reSerial.MatchString(got) {
			t.Fatalf("serial format: %q", got)
		}
	}
}
