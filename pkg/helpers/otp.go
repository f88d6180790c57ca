package helpers

import (
	"crypto/rand"
	"fmt"
)

// KeyResetCode is the Redis key for the phone reset-code record.
func KeyResetCode(phone string) string {
	return "pwd:reset:otp:" + phone
}

// KeyResetToken is the Redis key for an email reset-link token.
func KeyResetToken(tok string) string {
	return "pwd:reset:token:" + tok
}

// GenOTPCode generates a secure random 6-digit code as a zero-padded string
func GenOTPCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	// 6 digits: map random bytes to 000000-999999
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	if n < 0 {
		n = -n
	}
	code := n % 1000000
	return fmt.Sprintf("%06d", code), nil
}
