package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Prefixed builds login identifiers like CUST-9F3A21BC or EMP-1A2B3C:
// the given prefix followed by n uppercased characters of a fresh UUID.
func Prefixed(prefix string, n int) string {
	u := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(u) {
		n = len(u)
	}
	return prefix + strings.ToUpper(u[:n])
}

// AccountSerial returns the zero-padded 6-digit serial that forms the tail
// of an account number.
func AccountSerial() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1_000_000))
	return fmt.Sprintf("%06d", n.Int64())
}
