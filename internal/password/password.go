// Package password derives and verifies password digests.
//
// New digests are bcrypt hashes. Verify also accepts the unsalted SHA-256
// hex digests written by the original browser client so that existing
// stores keep working; those records are not rewritten.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and verifies password digests.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(digest, plaintext string) bool
}

// Bcrypt is a Hasher backed by bcrypt at a fixed cost.
type Bcrypt struct {
	Cost int
}

var _ Hasher = Bcrypt{}

// NewBcrypt returns a bcrypt Hasher. A zero cost selects bcrypt.DefaultCost.
func NewBcrypt(cost int) (Bcrypt, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return Bcrypt{}, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return Bcrypt{Cost: cost}, nil
}

// Hash returns a salted bcrypt digest of plaintext. bcrypt reads at most
// 72 bytes, so it is fed the SHA-256 hex of plaintext and any length works.
func (b Bcrypt) Hash(plaintext string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(SHA256Hex(plaintext)), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches digest. Legacy SHA-256 hex
// digests are compared in constant time.
func (b Bcrypt) Verify(digest, plaintext string) bool {
	if IsLegacy(digest) {
		return ConstantTimeCompare(digest, SHA256Hex(plaintext))
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(SHA256Hex(plaintext))) == nil
}

// SHA256Hex returns the lowercase hex SHA-256 digest of the UTF-8 plaintext.
func SHA256Hex(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// IsLegacy reports whether digest looks like a SHA-256 lowercase hex digest.
func IsLegacy(digest string) bool {
	if len(digest) != sha256.Size*2 {
		return false
	}
	for _, c := range digest {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// ConstantTimeCompare performs a constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
