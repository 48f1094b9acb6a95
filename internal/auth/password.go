package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher provides one-way password hashing and verification.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost.
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash generates a salted bcrypt hash of the given password. The salt is
// fresh on every call, so hashing the same password twice yields different
// strings; matches are only detectable through Verify.
func (h *Hasher) Hash(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashBytes), nil
}

// Verify reports whether the password matches the stored hash. A malformed
// hash yields false rather than an error; the bcrypt comparison itself is
// constant-time with respect to the guess.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
