package middleware

import (
	"testing"
	"time"
)

func TestParseRequestAt(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if got.Unix() != 1736123456 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("epoch milliseconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456789")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if got.UnixMilli() != 1736123456789 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("rfc3339 with zone", func(t *testing.T) {
		got, err := parseRequestAt("2026-08-31T10:00:00+07:00")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		want := time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("naive timestamp rejected", func(t *testing.T) {
		if _, err := parseRequestAt("2026-08-31 10:00:00"); err == nil {
			t.Fatal("naive timestamp accepted")
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := parseRequestAt("  "); err == nil {
			t.Fatal("empty accepted")
		}
	})
}

func TestValidReqID(t *testing.T) {
	valid := []string{
		"c2d29867-3d0b-4497-9191-18a9d8ee7830",
		"C2D298673D0BD497919118A9D8EE7830",
		"c2d298673d0bd497919118a9d8ee7830",
	}
	for _, id := range valid {
		if !validReqID(id) {
			t.Errorf("rejected %q", id)
		}
	}
	invalid := []string{"", "short", "zzz298673d0bd497919118a9d8ee7830"}
	for _, id := range invalid {
		if validReqID(id) {
			t.Errorf("accepted %q", id)
		}
	}
}

func TestBuildKey_PerPrincipal(t *testing.T) {
	a := buildKey("POST", "/account/transfer", "CUST-AAAA1111", "req-1")
	b := buildKey("POST", "/account/transfer", "CUST-BBBB2222", "req-1")
	if a == b {
		t.Fatal("keys must differ per principal")
	}
}
