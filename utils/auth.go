package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret produces the bcrypt hash stored for the admin gate. The input is
// lowercased first, so the comparison is case-insensitive.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(normalizeSecret(secret)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// MustHashSecret is HashSecret for wiring defaults at startup.
func MustHashSecret(secret string) string {
	hash, err := HashSecret(secret)
	if err != nil {
		panic(err)
	}
	return hash
}

// VerifyAdminSecret checks user input against the configured secret hash.
// This is a convenience gate, not a real auth boundary: no lockout, unlimited
// retries.
func VerifyAdminSecret(input, wantHash string) bool {
	if input == "" || wantHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(wantHash), []byte(normalizeSecret(input))) == nil
}

func normalizeSecret(secret string) string {
	return strings.ToLower(strings.TrimSpace(secret))
}
