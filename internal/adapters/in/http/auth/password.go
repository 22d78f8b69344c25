// Package auth provides credential handling for the HTTP adapter: bcrypt
// password hashing and JWT access tokens with the identity middleware that
// verifies them.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"dispatch/internal/pkg/errs"
)

// BcryptPasswordHasher hashes and verifies passwords with bcrypt.
// It satisfies both the registration hasher and the login verifier.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher using the bcrypt default cost.
func NewBcryptPasswordHasher() BcryptPasswordHasher {
	return BcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a bcrypt hash of the plaintext password.
func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks the plaintext password against the stored hash.
// A mismatch surfaces as an unauthorized error.
func (h BcryptPasswordHasher) Verify(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errs.NewUnauthorizedErrorWithCause("invalid credentials", err)
	}
	return nil
}
