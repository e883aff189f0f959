package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost. OTP codes are short-lived,
	// so a moderate cost keeps verification cheap.
	DefaultCost = 10
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randInt                    = rand.Int
)

// HashSecret hashes a short-lived secret (an OTP code) using bcrypt.
func HashSecret(secret string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(bytes), nil
}

// CheckSecret compares a secret with its hash
func CheckSecret(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

// GenerateNumericCode generates a random numeric code of the given length,
// zero-padded. Used for OTP codes.
func GenerateNumericCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := randInt(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
