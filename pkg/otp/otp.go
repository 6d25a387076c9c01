package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const defaultDigits = 6

// Generate returns a random numeric code, zero padded to defaultDigits.
// Codes are independent per call; no cross-user uniqueness is guaranteed.
func Generate() string {
	return randomCode(defaultDigits)
}

func randomCode(digits int) string {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil) // 10^digits
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64())
}
