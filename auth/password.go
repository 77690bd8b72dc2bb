// Package auth provides admin credential verification and session
// handling for the admin console.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned when a password exceeds bcrypt's
// 72-byte limit.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// CredentialVerifier hashes and verifies admin passwords. Plaintext
// comparison is deliberately not offered.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptVerifier implements CredentialVerifier with bcrypt.
type BcryptVerifier struct {
	cost int
}

// compile-time assertion
var _ CredentialVerifier = (*BcryptVerifier)(nil)

// NewBcryptVerifier constructs a BcryptVerifier. A cost outside
// bcrypt's valid range falls back to the default cost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash generates a bcrypt hash of the given password.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches the stored hash.
func (v *BcryptVerifier) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
