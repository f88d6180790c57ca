package helpers

import (
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

// Minimum zxcvbn score (0-4) a password must reach. Matches the
// storefront's client-side policy.
const MinPasswordScore = 2

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// PasswordStrongEnough applies the entropy-estimate policy to a
// candidate password. This is policy, not a cryptographic guarantee.
func PasswordStrongEnough(plain string) bool {
	return zxcvbn.PasswordStrength(plain, nil).Score >= MinPasswordScore
}
