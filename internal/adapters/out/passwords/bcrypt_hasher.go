// Package passwords implements credential hashing for agent authentication.
package passwords

import (
	"golang.org/x/crypto/bcrypt"

	"paquexpress/internal/core/ports"
)

var _ ports.PasswordHasher = BcryptHasher{}

// BcryptHasher implements ports.PasswordHasher using bcrypt.
// Each digest carries its own random salt, so equal passwords hash to
// different digests while all of them verify.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given work factor.
// A cost outside bcrypt's supported range falls back to the library default.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt digest of the plaintext.
func (h BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the digest was produced from the plaintext.
// A malformed digest yields false, never an error.
func (h BcryptHasher) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
