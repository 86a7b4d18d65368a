package password

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Ambiguous characters (0/O, 1/l/I) are excluded.
const initialAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// GenerateInitial returns a random one-time credential for newly hired
// employees; the account keeps MustChangePassword set until it is rotated.
func GenerateInitial(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(initialAlphabet)))
	for i := range out {
		v, _ := rand.Int(rand.Reader, max)
		out[i] = initialAlphabet[v.Int64()]
	}
	return string(out)
}
